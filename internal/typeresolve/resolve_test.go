package typeresolve

import (
	"testing"

	"github.com/rsicarelli/fakt/internal/hostir"
)

func primitive(name string) hostir.ResolvedType {
	return hostir.NewResolvedType(hostir.TypeKindPrimitive, name, false)
}

func class(name string, nullable bool, args ...hostir.ResolvedType) hostir.ResolvedType {
	return hostir.NewResolvedType(hostir.TypeKindClass, name, nullable, args...)
}

func TestRenderSimpleAndGeneric(t *testing.T) {
	got := Render(class(qnList, false, class(qnString, false)), true, nil)
	want := "List<String>"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderErasesClassLevelTypeParam(t *testing.T) {
	tp := hostir.NewResolvedType(hostir.TypeKindTypeParam, "T", false)
	erase := map[string]bool{"T": true}

	if got := Render(tp, false, erase); got != "Any" {
		t.Errorf("erased class-level param: got %q, want Any", got)
	}
	if got := Render(tp, true, erase); got != "T" {
		t.Errorf("preserveTypeParams=true must stay symbolic: got %q", got)
	}
}

func TestRenderPreservesMethodLevelTypeParam(t *testing.T) {
	tp := hostir.NewResolvedType(hostir.TypeKindTypeParam, "R", false)
	// R is a method-level param, not in the erase set for this declaration.
	if got := Render(tp, false, map[string]bool{"T": true}); got != "R" {
		t.Errorf("method-level param should remain symbolic, got %q", got)
	}
}

func TestRenderNullable(t *testing.T) {
	s := class(qnString, true)
	if got := Render(s, true, nil); got != "String?" {
		t.Errorf("Render() = %q, want String?", got)
	}
}

func TestIsPrimitive(t *testing.T) {
	if !IsPrimitive(primitive(qnInt)) {
		t.Error("expected Int to be primitive")
	}
	if IsPrimitive(class(qnString, false)) {
		t.Error("String should not be classified primitive (it is TypeKindClass)")
	}
}

func TestDefaultValueTable(t *testing.T) {
	cases := []struct {
		name string
		t    hostir.ResolvedType
		want string
	}{
		{"Unit", primitive(qnUnit), "Unit"},
		{"String", primitive(qnString), `""`},
		{"Boolean", primitive(qnBoolean), "false"},
		{"Int", primitive(qnInt), "0"},
		{"Long", primitive(qnLong), "0L"},
		{"Float", primitive(qnFloat), "0f"},
		{"Double", primitive(qnDouble), "0.0"},
		{"Char", primitive(qnChar), "'\\u0000'"},
		{"List<String>", class(qnList, false, class(qnString, false)), "emptyList<String>()"},
		{"MutableList<Int>", class(qnMutableList, false, primitive(qnInt)), "mutableListOf<Int>()"},
		{
			"Map<String, Int>",
			class(qnMap, false, class(qnString, false), primitive(qnInt)),
			"emptyMap<String, Int>()",
		},
		{"Nullable String", class(qnString, true), "null"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DefaultValue(c.t); got != c.want {
				t.Errorf("DefaultValue(%s) = %q, want %q", c.name, got, c.want)
			}
		})
	}
}

func TestDefaultValueNullableWinsOverContainerShape(t *testing.T) {
	nullableList := class(qnList, true, class(qnString, false))
	if got := DefaultValue(nullableList); got != "null" {
		t.Errorf("nullable container must default to null, got %q", got)
	}
}

func TestDefaultValueUnknownTypeEmitsErrorCall(t *testing.T) {
	custom := class("com.example.Widget", false)
	got := DefaultValue(custom)
	if got == "" {
		t.Fatal("expected a non-empty fallback expression")
	}
	if got[:6] != "error(" {
		t.Errorf("expected an error(...) fallback expression, got %q", got)
	}
}

func TestDefaultValueResultUnwrapsSuccess(t *testing.T) {
	r := class(qnResult, false, primitive(qnInt))
	if got := DefaultValue(r); got != "Result.success(0)" {
		t.Errorf("DefaultValue(Result<Int>) = %q, want Result.success(0)", got)
	}
}

func TestDefaultValuePrimitiveArray(t *testing.T) {
	arr := hostir.NewResolvedType(hostir.TypeKindArray, qnArray, false, primitive(qnInt))
	if got := DefaultValue(arr); got != "IntArray(0)" {
		t.Errorf("DefaultValue(IntArray) = %q, want IntArray(0)", got)
	}
}
