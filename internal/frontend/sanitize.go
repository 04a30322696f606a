package frontend

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// stdlibPrefix is the well-known standard-library root package whose prefix
// is stripped from rendered bound/type text (spec.md §4.1).
const stdlibPrefix = "kotlin"

// stdlibPrefixPattern matches "kotlin." only when it begins a qualified name
// — i.e. it is not itself preceded by an identifier character or a dot. That
// excludes both mid-identifier false positives ("MyKotlin.Foo") and nested
// packages that merely contain the stdlib name as a segment
// ("android.kotlin.Foo" keeps its "kotlin." since it is not the root). Go's
// RE2-based regexp has no lookbehind, so this is built on regexp2.
var stdlibPrefixPattern = regexp2.MustCompile(`(?<![\w.])`+stdlibPrefix+`\.`, regexp2.None)

// sanitizeTypeText renders a raw, host-resolver type string into the text a
// frontend descriptor carries: path separators become dots and the stdlib
// root prefix is stripped, leaving every other package intact (spec.md
// §4.1).
func sanitizeTypeText(raw string) string {
	s := strings.ReplaceAll(raw, "/", ".")
	out, err := stdlibPrefixPattern.Replace(s, "", -1, -1)
	if err != nil {
		// regexp2.Replace only errors on catastrophic backtracking timeouts,
		// which this fixed, non-backtracking pattern cannot trigger; fall
		// back to the unstripped text rather than lose the declaration.
		return s
	}
	return out
}

// sanitizeBounds sanitizes a list of raw bound strings in place order,
// returning a new slice.
func sanitizeBounds(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, len(raw))
	for i, b := range raw {
		out[i] = sanitizeTypeText(b)
	}
	return out
}
