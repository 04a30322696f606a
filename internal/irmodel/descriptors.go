// Package irmodel lowers validated frontend descriptors into the IR-level
// Generation Model (spec.md §3 "Generation Model", §4.2) and classifies each
// declaration's generic pattern (spec.md §4.3).
package irmodel

import "github.com/rsicarelli/fakt/internal/hostir"

// IrParamMeta is a function parameter in the Generation Model: a resolved
// type paired with the frontend's default/vararg facts (spec.md §3).
type IrParamMeta struct {
	Name        string
	Type        hostir.ResolvedType
	HasDefault  bool
	DefaultExpr *string
	IsVararg    bool
}

// IrPropertyMeta is a property in the Generation Model.
type IrPropertyMeta struct {
	Name       string
	Type       hostir.ResolvedType
	IsMutable  bool
	IsNullable bool
}

// IrFunctionMeta is a function in the Generation Model.
type IrFunctionMeta struct {
	Name                  string
	Params                []IrParamMeta
	ReturnType            hostir.ResolvedType
	IsSuspend             bool
	IsInline              bool
	IsOperator            bool
	ExtensionReceiverType *hostir.ResolvedType
	TypeParams            []hostir.IrTypeParam
}

// IrGenerationMetadata is the Generation Model for an `@Fake` interface
// (spec.md §3).
type IrGenerationMetadata struct {
	SimpleName  string
	PackageName string
	TypeParams  []hostir.IrTypeParam
	Properties  []IrPropertyMeta
	Functions   []IrFunctionMeta

	// SourceClass is the borrowed IR handle this metadata was lowered from.
	SourceClass *hostir.IrClass

	// Pattern is a lazily computed, memoized classification of this
	// declaration's generic shape (spec.md §4.3). Call it as many times as
	// needed; the underlying classification runs at most once.
	Pattern func() GenericPattern
}

// IrClassGenerationMetadata is the Generation Model for an `@Fake` abstract
// class; members are partitioned as they were by the frontend (spec.md §3).
type IrClassGenerationMetadata struct {
	SimpleName      string
	PackageName     string
	TypeParams      []hostir.IrTypeParam
	AbstractProps   []IrPropertyMeta
	OpenProps       []IrPropertyMeta
	AbstractMethods []IrFunctionMeta
	OpenMethods     []IrFunctionMeta

	SourceClass *hostir.IrClass
	Pattern     func() GenericPattern
}

// AllProperties returns abstract then open properties.
func (c *IrClassGenerationMetadata) AllProperties() []IrPropertyMeta {
	out := make([]IrPropertyMeta, 0, len(c.AbstractProps)+len(c.OpenProps))
	out = append(out, c.AbstractProps...)
	out = append(out, c.OpenProps...)
	return out
}

// AllMethods returns abstract then open methods.
func (c *IrClassGenerationMetadata) AllMethods() []IrFunctionMeta {
	out := make([]IrFunctionMeta, 0, len(c.AbstractMethods)+len(c.OpenMethods))
	out = append(out, c.AbstractMethods...)
	out = append(out, c.OpenMethods...)
	return out
}

// InvariantError reports that a frontend descriptor named a member the IR
// handle does not have — a desync between the frontend's string-typed walk
// and the host's resolved-type tree that should never happen in a
// consistent compilation (spec.md SPEC_FULL.md §10.2).
type InvariantError struct {
	Kind  string // "property" or "function"
	Name  string
	Owner string // qualified id of the declaration being lowered
}

func (e *InvariantError) Error() string {
	return "irmodel: internal invariant violated: " + e.Kind + " " + e.Name +
		" not found on IR handle for " + e.Owner
}
