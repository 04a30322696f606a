// Package typeresolve renders resolved IR types to Kotlin-flavored source
// syntax, classifies primitives, and computes safe default-value expressions
// (spec.md §4.4).
package typeresolve

import (
	"fmt"
	"strings"

	"github.com/rsicarelli/fakt/internal/hostir"
)

// Well-known qualified names the renderer and default-value table recognize.
const (
	qnUnit    = "kotlin.Unit"
	qnString  = "kotlin.String"
	qnBoolean = "kotlin.Boolean"
	qnChar    = "kotlin.Char"
	qnInt     = "kotlin.Int"
	qnLong    = "kotlin.Long"
	qnShort   = "kotlin.Short"
	qnByte    = "kotlin.Byte"
	qnFloat   = "kotlin.Float"
	qnDouble  = "kotlin.Double"

	qnList         = "kotlin.collections.List"
	qnIterable     = "kotlin.collections.Iterable"
	qnCollection   = "kotlin.collections.Collection"
	qnMutableList  = "kotlin.collections.MutableList"
	qnSet          = "kotlin.collections.Set"
	qnMutableSet   = "kotlin.collections.MutableSet"
	qnMap          = "kotlin.collections.Map"
	qnMutableMap   = "kotlin.collections.MutableMap"
	qnArray        = "kotlin.Array"
	qnSequence     = "kotlin.sequences.Sequence"
	qnResult       = "kotlin.Result"
)

var primitiveArrayElementSuffix = map[string]string{
	qnInt: "Int", qnLong: "Long", qnShort: "Short", qnByte: "Byte",
	qnFloat: "Float", qnDouble: "Double", qnBoolean: "Boolean", qnChar: "Char",
}

// IsPrimitive reports whether t is one of Fakt's recognized primitive kinds
// (spec.md §4.4).
func IsPrimitive(t hostir.ResolvedType) bool {
	return t.Kind == hostir.TypeKindPrimitive
}

// Render emits source syntax for a resolved type (spec.md §4.4). When
// preserveTypeParams is true, type-parameter references render symbolically
// regardless of erase. Otherwise, a type-parameter reference whose name is
// present in erase is rewritten to "Any" — the class-header erasure policy
// of spec.md §4.6.1, applied here because only the caller (the
// implementation-class emitter) knows which names are class-level for the
// declaration currently being rendered.
func Render(t hostir.ResolvedType, preserveTypeParams bool, erase map[string]bool) string {
	base := renderBase(t, preserveTypeParams, erase)
	if t.Nullable {
		return base + "?"
	}
	return base
}

func renderBase(t hostir.ResolvedType, preserveTypeParams bool, erase map[string]bool) string {
	switch t.Kind {
	case hostir.TypeKindTypeParam:
		if !preserveTypeParams && erase[t.QualifiedName] {
			return "Any"
		}
		return t.QualifiedName
	case hostir.TypeKindArray:
		if len(t.TypeArguments) == 0 {
			return simpleName(t.QualifiedName)
		}
		elem := Render(t.TypeArguments[0], preserveTypeParams, erase)
		return simpleName(t.QualifiedName) + "<" + elem + ">"
	default:
		name := simpleName(t.QualifiedName)
		if len(t.TypeArguments) == 0 {
			return name
		}
		args := make([]string, len(t.TypeArguments))
		for i, arg := range t.TypeArguments {
			args[i] = Render(arg, preserveTypeParams, erase)
		}
		return name + "<" + strings.Join(args, ", ") + ">"
	}
}

// simpleName drops a well-known qualified name down to its simple, import-
// resolved source spelling. Anything not recognized is returned unchanged
// (callers are responsible for importing it — see internal/importresolve).
func simpleName(qualifiedName string) string {
	if idx := strings.LastIndex(qualifiedName, "."); idx >= 0 {
		return qualifiedName[idx+1:]
	}
	return qualifiedName
}

// DefaultValue returns a source expression for a safe default of t, per the
// table in spec.md §4.4. Nullability is checked first: a nullable type's
// default is always "null", regardless of its underlying kind (spec.md
// Boundary Behaviors "Nullable return → default is null").
func DefaultValue(t hostir.ResolvedType) string {
	if t.Nullable {
		return "null"
	}

	switch t.QualifiedName {
	case qnUnit:
		return "Unit"
	case qnString:
		return `""`
	case qnBoolean:
		return "false"
	case qnChar:
		return "'\\u0000'"
	case qnInt, qnShort, qnByte:
		return "0"
	case qnLong:
		return "0L"
	case qnFloat:
		return "0f"
	case qnDouble:
		return "0.0"
	}

	if _, ok := primitiveArrayElementSuffix[arrayElementKey(t)]; ok && isPrimitiveArray(t) {
		return primitiveArrayDefault(t)
	}

	switch t.QualifiedName {
	case qnList, qnIterable, qnCollection:
		return "emptyList<" + elementArgText(t) + ">()"
	case qnMutableList:
		return "mutableListOf<" + elementArgText(t) + ">()"
	case qnSet:
		return "emptySet<" + elementArgText(t) + ">()"
	case qnMutableSet:
		return "mutableSetOf<" + elementArgText(t) + ">()"
	case qnMap:
		k, v := mapArgText(t)
		return "emptyMap<" + k + ", " + v + ">()"
	case qnMutableMap:
		k, v := mapArgText(t)
		return "mutableMapOf<" + k + ", " + v + ">()"
	case qnArray:
		return "emptyArray<" + elementArgText(t) + ">()"
	case qnSequence:
		return "emptySequence<" + elementArgText(t) + ">()"
	case qnResult:
		return "Result.success(" + DefaultValue(innerArg(t, 0)) + ")"
	}

	rendered := Render(t, true, nil)
	return fmt.Sprintf("error(%q)", "unimplemented: provide a default for "+rendered+" via the factory")
}

func arrayElementKey(t hostir.ResolvedType) string {
	if len(t.TypeArguments) == 0 {
		return ""
	}
	return t.TypeArguments[0].QualifiedName
}

func isPrimitiveArray(t hostir.ResolvedType) bool {
	return t.Kind == hostir.TypeKindArray && len(t.TypeArguments) == 1 && t.TypeArguments[0].Kind == hostir.TypeKindPrimitive
}

func primitiveArrayDefault(t hostir.ResolvedType) string {
	suffix := primitiveArrayElementSuffix[t.TypeArguments[0].QualifiedName]
	return suffix + "Array(0)"
}

// elementArgText renders a unary container's sole type argument. Per
// spec.md §4.4, this is extracted syntactically from the rendered type
// text rather than structurally from TypeArguments, to match an
// implementation that only has the rendered string available at this point
// in the pipeline.
func elementArgText(t hostir.ResolvedType) string {
	rendered := Render(t, true, nil)
	args := splitTypeArgs(rendered)
	if len(args) == 0 {
		return "Any"
	}
	return args[0]
}

func mapArgText(t hostir.ResolvedType) (string, string) {
	rendered := Render(t, true, nil)
	args := splitTypeArgs(rendered)
	if len(args) < 2 {
		return "Any", "Any"
	}
	return args[0], args[1]
}

func innerArg(t hostir.ResolvedType, i int) hostir.ResolvedType {
	if i < len(t.TypeArguments) {
		return t.TypeArguments[i]
	}
	return hostir.NewResolvedType(hostir.TypeKindClass, qnUnit, false)
}
