// Package importresolve walks resolved IR types reachable from a generation
// model and collects the fully-qualified names a generated file needs to
// import (spec.md §4.5).
package importresolve

import (
	"sort"
	"strings"

	"github.com/rsicarelli/fakt/internal/hostir"
)

// preludePackages never need an explicit import — they are Kotlin's
// always-in-scope prelude. The target package is not listed here; the
// caller passes it to Resolve and it is compared separately.
var preludePackages = map[string]bool{
	"kotlin":                     true,
	"kotlin.collections":         true,
	"kotlin.ranges":              true,
	"kotlin.sequences":           true,
	"kotlin.text":                true,
	"kotlin.io":                  true,
	"kotlin.comparisons":         true,
}

// Resolve collects the sorted, deduplicated set of fully-qualified names
// reachable from roots, excluding primitives, type-parameter references, the
// target package itself, and Kotlin's prelude packages (spec.md §4.5).
func Resolve(roots []hostir.ResolvedType, targetPackage string) []string {
	seen := make(map[string]bool)
	for _, root := range roots {
		collect(root, targetPackage, seen)
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func collect(t hostir.ResolvedType, targetPackage string, seen map[string]bool) {
	switch t.Kind {
	case hostir.TypeKindPrimitive, hostir.TypeKindTypeParam:
		// Primitives are always in scope; type-parameter symbols are never
		// importable declarations.
	case hostir.TypeKindArray:
		if !isPreludeArrayName(t.QualifiedName) {
			addIfForeign(t.QualifiedName, targetPackage, seen)
		}
	default:
		addIfForeign(t.QualifiedName, targetPackage, seen)
	}

	for _, arg := range t.TypeArguments {
		collect(arg, targetPackage, seen)
	}
}

func addIfForeign(qualifiedName string, targetPackage string, seen map[string]bool) {
	pkg := packageOf(qualifiedName)
	if pkg == targetPackage || preludePackages[pkg] {
		return
	}
	seen[qualifiedName] = true
}

func isPreludeArrayName(qualifiedName string) bool {
	// Array and its primitive specializations (IntArray, ...) live directly
	// under "kotlin", already covered by preludePackages via packageOf.
	return packageOf(qualifiedName) == "kotlin"
}

func packageOf(qualifiedName string) string {
	idx := strings.LastIndex(qualifiedName, ".")
	if idx < 0 {
		return ""
	}
	return qualifiedName[:idx]
}
