package codegen

import (
	"sort"

	"github.com/rsicarelli/fakt/internal/hostir"
	"github.com/rsicarelli/fakt/internal/importresolve"
)

// atomicsImports are always required once a declaration has at least one
// member, since every behavior-backed member gets an AtomicInt call-count
// handle (spec.md §4.6.1 item 5) — fixed infrastructure imports the §4.5
// resolved-type walk would never surface on its own.
var atomicsImports = []string{
	"kotlin.concurrent.atomics.AtomicInt",
	"kotlin.concurrent.atomics.ExperimentalAtomicApi",
}

// ComposeFile produces the full `Fake<Name>Impl.kt` source text: package
// declaration, sorted imports, implementation class, factory, and
// configuration DSL, separated by blank lines (spec.md §4.6.4).
func ComposeFile(d Declaration) string {
	imports := resolveImports(d)

	e := NewEmitter()
	e.Line("package %s", d.PackageName)
	if len(imports) > 0 {
		e.Blank()
		for _, imp := range imports {
			e.Line("import %s", imp)
		}
	}
	e.Blank()
	e.Raw(RenderImplClass(d))
	e.Blank()
	e.Raw(RenderFactory(d))
	e.Blank()
	e.Raw(RenderConfigDSL(d))

	return e.String()
}

func resolveImports(d Declaration) []string {
	roots := collectRoots(d)
	imports := importresolve.Resolve(roots, d.PackageName)
	if !d.hasMembers() {
		return imports
	}
	return mergeSorted(imports, atomicsImports)
}

func collectRoots(d Declaration) []hostir.ResolvedType {
	var roots []hostir.ResolvedType

	for _, p := range d.Properties {
		roots = append(roots, p.Type)
	}
	for _, f := range d.Functions {
		roots = append(roots, f.ReturnType)
		for _, p := range f.Params {
			roots = append(roots, p.Type)
		}
		for _, tp := range f.TypeParams {
			roots = append(roots, tp.Bounds...)
		}
	}
	for _, tp := range d.TypeParams {
		roots = append(roots, tp.Bounds...)
	}

	return roots
}

func mergeSorted(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range append(append([]string{}, a...), b...) {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
