// Package frontend validates annotated declarations against the shapes Fakt
// can generate fakes for, and extracts their shape into string-typed
// descriptors (spec.md §3 "Frontend Descriptors", §4.1).
package frontend

import "github.com/rsicarelli/fakt/internal/diagnostic"

// TypeParamInfo is a type parameter rendered as text (spec.md §3).
type TypeParamInfo struct {
	Name   string
	Bounds []string // sanitized, per sanitizeTypeText
}

// ParamInfo is a function parameter rendered as text (spec.md §3).
type ParamInfo struct {
	Name        string
	Type        string
	HasDefault  bool
	DefaultExpr *string
	IsVararg    bool
}

// PropertyInfo is a property rendered as text (spec.md §3).
type PropertyInfo struct {
	Name       string
	Type       string
	IsMutable  bool
	IsNullable bool
}

// FunctionInfo is a function rendered as text (spec.md §3).
type FunctionInfo struct {
	Name            string
	Params          []ParamInfo
	ReturnType      string
	IsSuspend       bool
	IsInline        bool
	TypeParams      []TypeParamInfo
	TypeParamBounds map[string]string // name -> sanitized, joined bound text
}

// ValidatedInterface is the extracted, validated shape of an `@Fake`
// interface (spec.md §3).
type ValidatedInterface struct {
	QualifiedID         string
	SimpleName          string
	PackageName         string
	TypeParams          []TypeParamInfo
	Properties          []PropertyInfo
	Functions           []FunctionInfo
	InheritedProperties []PropertyInfo
	InheritedFunctions  []FunctionInfo
	SourceLocation      diagnostic.Location
}

// ValidatedClass is the extracted, validated shape of an `@Fake` abstract
// class; members are partitioned by whether they are abstract (must be
// overridden) or open (may be overridden) (spec.md §3).
type ValidatedClass struct {
	QualifiedID     string
	SimpleName      string
	PackageName     string
	TypeParams      []TypeParamInfo
	AbstractProps   []PropertyInfo
	OpenProps       []PropertyInfo
	AbstractMethods []FunctionInfo
	OpenMethods     []FunctionInfo
	SourceLocation  diagnostic.Location
}

// AllProperties returns abstract then open properties, the order the
// extractor discovered them in.
func (c *ValidatedClass) AllProperties() []PropertyInfo {
	out := make([]PropertyInfo, 0, len(c.AbstractProps)+len(c.OpenProps))
	out = append(out, c.AbstractProps...)
	out = append(out, c.OpenProps...)
	return out
}

// AllMethods returns abstract then open methods, the order the extractor
// discovered them in.
func (c *ValidatedClass) AllMethods() []FunctionInfo {
	out := make([]FunctionInfo, 0, len(c.AbstractMethods)+len(c.OpenMethods))
	out = append(out, c.AbstractMethods...)
	out = append(out, c.OpenMethods...)
	return out
}
