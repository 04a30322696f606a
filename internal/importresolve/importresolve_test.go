package importresolve

import (
	"reflect"
	"testing"

	"github.com/rsicarelli/fakt/internal/hostir"
)

func TestResolveExcludesPrimitivesAndTargetPackage(t *testing.T) {
	roots := []hostir.ResolvedType{
		hostir.NewResolvedType(hostir.TypeKindPrimitive, "kotlin.Int", false),
		hostir.NewResolvedType(hostir.TypeKindClass, "com.example.Widget", false),
		hostir.NewResolvedType(hostir.TypeKindClass, "com.example.fakes.OtherFake", false),
	}

	got := Resolve(roots, "com.example.fakes")
	want := []string{"com.example.Widget"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
}

func TestResolveDedupsAndSorts(t *testing.T) {
	widget := hostir.NewResolvedType(hostir.TypeKindClass, "com.example.Widget", false)
	roots := []hostir.ResolvedType{
		hostir.NewResolvedType(hostir.TypeKindClass, "kotlin.collections.List", false, widget),
		widget,
		hostir.NewResolvedType(hostir.TypeKindClass, "com.example.Aardvark", false),
	}

	got := Resolve(roots, "com.other")
	want := []string{"com.example.Aardvark", "com.example.Widget"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
}

func TestResolveSkipsTypeParamsAndPreludeArrays(t *testing.T) {
	roots := []hostir.ResolvedType{
		hostir.NewResolvedType(hostir.TypeKindTypeParam, "T", false),
		hostir.NewResolvedType(hostir.TypeKindArray, "kotlin.IntArray", false),
	}

	got := Resolve(roots, "com.example")
	if len(got) != 0 {
		t.Errorf("Resolve() = %v, want empty", got)
	}
}

func TestResolveRecursesIntoTypeArguments(t *testing.T) {
	inner := hostir.NewResolvedType(hostir.TypeKindClass, "com.example.Inner", false)
	outer := hostir.NewResolvedType(hostir.TypeKindClass, "kotlin.collections.Map", false,
		hostir.NewResolvedType(hostir.TypeKindPrimitive, "kotlin.String", false), inner)

	got := Resolve([]hostir.ResolvedType{outer}, "com.other")
	want := []string{"com.example.Inner"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
}
