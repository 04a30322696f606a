package typeresolve

import "strings"

// splitTypeArgs extracts the top-level, comma-separated type arguments from
// an already-rendered type's "<...>" suffix (e.g. "Map<String, List<Int>>"
// yields ["String", "List<Int>"]). This is the syntactic extraction spec.md
// §4.4 calls for when computing container defaults, as opposed to walking
// the resolved type's structured TypeArguments. Depth tracking over "<"/">"
// keeps nested generics from being split on their inner commas.
func splitTypeArgs(rendered string) []string {
	open := strings.IndexByte(rendered, '<')
	if open < 0 || !strings.HasSuffix(rendered, ">") {
		return nil
	}
	inner := rendered[open+1 : len(rendered)-1]

	var args []string
	depth := 0
	start := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}
	args = append(args, strings.TrimSpace(inner[start:]))
	return args
}
