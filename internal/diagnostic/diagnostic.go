// Package diagnostic collects and formats the compile-time diagnostics Fakt
// attaches to rejected declarations (spec.md §6.4, §7).
package diagnostic

import (
	"fmt"
	"strings"
)

// Severity classifies how a diagnostic should be treated by the host compiler.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Code is a stable, "[FAKT] "-prefixed diagnostic identifier (spec.md §6.4).
type Code string

const (
	CodeMustBeInterface    Code = "FAKE_MUST_BE_INTERFACE"
	CodeCannotBeSealed     Code = "FAKE_CANNOT_BE_SEALED"
	CodeCannotBeLocal      Code = "FAKE_CANNOT_BE_LOCAL"
	CodeClassMustBeAbstract Code = "FAKE_CLASS_MUST_BE_ABSTRACT"
	CodeClassCannotBeSealed Code = "FAKE_CLASS_CANNOT_BE_SEALED"
)

// Location pinpoints a diagnostic against source, when the host resolver
// supplied one. A zero-value Location means "the compilation's generic
// location" (spec.md §6.4).
type Location struct {
	File   string
	Line   int
	Column int
}

func (l Location) String() string {
	if l.File == "" {
		return ""
	}
	if l.Line <= 0 {
		return l.File
	}
	if l.Column <= 0 {
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Diagnostic is a single reported frontend rejection or internal-invariant
// violation (spec.md §6.4).
type Diagnostic struct {
	Severity Severity
	Code     Code
	Location Location
	Message  string
}

// String renders the diagnostic the way a host compiler log line would.
func (d Diagnostic) String() string {
	var sb strings.Builder
	if loc := d.Location.String(); loc != "" {
		sb.WriteString(loc)
		sb.WriteString(": ")
	}
	sb.WriteString(d.Severity.String())
	sb.WriteString(": [FAKT] ")
	sb.WriteString(string(d.Code))
	if d.Message != "" {
		sb.WriteString(" - ")
		sb.WriteString(d.Message)
	}
	return sb.String()
}

// Collector accumulates diagnostics over the lifetime of a compilation.
// A nil *Collector is valid and silently discards everything, so
// extraction code can take an optional collector without nil-checking
// at every call site.
type Collector struct {
	diagnostics []Diagnostic
}

// NewCollector creates an empty diagnostic collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Reject records a user-authored frontend rejection (spec.md §7.1).
func (c *Collector) Reject(code Code, loc Location, message string) {
	if c == nil {
		return
	}
	c.diagnostics = append(c.diagnostics, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Location: loc,
		Message:  message,
	})
}

// Warn records a non-fatal warning (e.g. unknown plugin option, spec.md §6.2).
func (c *Collector) Warn(message string) {
	if c == nil {
		return
	}
	c.diagnostics = append(c.diagnostics, Diagnostic{
		Severity: SeverityWarning,
		Message:  message,
	})
}

// All returns every diagnostic recorded so far, in recording order.
func (c *Collector) All() []Diagnostic {
	if c == nil {
		return nil
	}
	return c.diagnostics
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (c *Collector) HasErrors() bool {
	if c == nil {
		return false
	}
	for _, d := range c.diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Len returns the number of diagnostics recorded.
func (c *Collector) Len() int {
	if c == nil {
		return 0
	}
	return len(c.diagnostics)
}
