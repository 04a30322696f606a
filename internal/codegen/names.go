package codegen

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser capitalizes the first letter of an identifier while leaving the
// rest untouched. cases.Title's word-boundary algorithm only finds one word
// start in a camelCase identifier (there's no whitespace to split on), which
// is exactly the "first letter of the suffix capitalized" transform spec.md
// §4.6.1 calls for — and unlike a byte-level toupper, it stays correct for
// non-ASCII member names.
var titleCaser = cases.Title(language.Und, cases.NoLower)

// behaviorFieldName is the private, mutable function-typed field backing a
// member's generated behavior (spec.md §4.6.1 item 1).
func behaviorFieldName(base string) string {
	return base + "Behavior"
}

// configureMethodName is the internal setter for a behavior field.
func configureMethodName(base string) string {
	return "configure" + titleCaser.String(base)
}

// callCountName is the read-only call-count handle for a member.
func callCountName(base string) string {
	return base + "CallCount"
}

// setterBaseName derives the base name a mutable property's setter path
// uses for its own field/configure/call-count trio, e.g. "count" -> "setCount".
func setterBaseName(propertyName string) string {
	return "set" + titleCaser.String(propertyName)
}
