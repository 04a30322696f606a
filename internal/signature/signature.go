// Package signature computes the stable, versioned text key used to decide
// whether a declaration's fake is already cached (spec.md §4.7). A
// signature is derivable from frontend descriptors alone, before the
// Transformer ever runs.
package signature

import (
	"fmt"
	"strings"

	"github.com/rsicarelli/fakt/internal/frontend"
	"github.com/zeebo/xxh3"
)

// Version is the signature grammar version. Bump it, and only it, whenever
// the text produced by ForInterface/ForClass changes shape — a mismatch
// between a reader's Version and a cache line's embedded "v<N>:" prefix is
// an unconditional full-rebuild trigger (spec.md §4.7).
const Version = 1

// ForInterface computes the signature of a validated interface descriptor.
func ForInterface(iface *frontend.ValidatedInterface) string {
	props := append(append([]frontend.PropertyInfo{}, iface.Properties...), iface.InheritedProperties...)
	funcs := append(append([]frontend.FunctionInfo{}, iface.Functions...), iface.InheritedFunctions...)
	return compose("interface", iface.QualifiedID, len(iface.TypeParams), props, funcs)
}

// ForClass computes the signature of a validated class descriptor.
func ForClass(class *frontend.ValidatedClass) string {
	props := class.AllProperties()
	funcs := class.AllMethods()
	return compose("class", class.QualifiedID, len(class.TypeParams), props, funcs)
}

// compose builds "v<N>:<kind>:<fqn>|tp:<count>|p:<count>|f:<count>|h:<digest>".
// The trailing h: extension carries a content hash over member names and
// type-rendered shapes, for invalidation precision finer than bare counts
// (spec.md §4.7 "Implementations MAY extend... provided the extension is
// deterministic and versioned").
func compose(kind, fqn string, typeParamCount int, props []frontend.PropertyInfo, funcs []frontend.FunctionInfo) string {
	digest := xxh3.HashString(memberShapeText(props, funcs))
	return fmt.Sprintf("v%d:%s:%s|tp:%d|p:%d|f:%d|h:%016x",
		Version, kind, fqn, typeParamCount, len(props), len(funcs), digest)
}

func memberShapeText(props []frontend.PropertyInfo, funcs []frontend.FunctionInfo) string {
	var b strings.Builder
	for _, p := range props {
		fmt.Fprintf(&b, "p:%s:%s:%t:%t;", p.Name, p.Type, p.IsMutable, p.IsNullable)
	}
	for _, f := range funcs {
		fmt.Fprintf(&b, "f:%s(", f.Name)
		for _, p := range f.Params {
			fmt.Fprintf(&b, "%s:%s,", p.Name, p.Type)
		}
		fmt.Fprintf(&b, "):%s:%t:%t;", f.ReturnType, f.IsSuspend, f.IsInline)
	}
	return b.String()
}
