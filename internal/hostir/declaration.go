// Package hostir stands in for the borrowed, host-compiler-owned declaration
// and IR trees a real Fakt plugin would receive from its frontend and
// IR-lowering phases (spec.md §1, §3, §9 "back-references to host compiler
// IR nodes"). Nothing in this package is owned by Fakt's own generation
// pipeline — values here model what the host hands over for the lifetime of
// one compilation, and must not be retained past it.
package hostir

import "github.com/rsicarelli/fakt/internal/diagnostic"

// DeclKind classifies the shape of a declaration the annotation processor
// observed on a resolved declaration tree (spec.md §4.1).
type DeclKind int

const (
	DeclInterface DeclKind = iota
	DeclClass
	DeclObject
	DeclEnum
	DeclAnnotationClass
)

// RawTypeParam is a type parameter as the host resolver renders it: bounds
// are raw text, using the JVM convention of "/" as a package separator
// (e.g. "kotlin/collections/List<T>") — sanitized later by the frontend
// extractor (spec.md §4.1).
type RawTypeParam struct {
	Name   string
	Bounds []string
}

// RawParam is a function parameter as seen on the resolved declaration tree.
type RawParam struct {
	Name        string
	Type        string
	HasDefault  bool
	DefaultExpr *string
	IsVararg    bool
}

// RawProperty is a directly declared or inherited property, string-typed.
// IsAbstract distinguishes, for class members only, a property that must be
// overridden from one that merely may be (spec.md §3 "partitions members
// into abstract_properties/open_properties/...").
type RawProperty struct {
	Name       string
	Type       string
	IsMutable  bool
	IsNullable bool
	IsAbstract bool
}

// RawFunction is a directly declared or inherited function, string-typed.
// IsSynthetic marks compiler-generated members (e.g. data class copy/
// componentN) that the extractor must skip (spec.md §4.1). IsAbstract has
// the same meaning as RawProperty.IsAbstract.
type RawFunction struct {
	Name        string
	Params      []RawParam
	ReturnType  string
	IsSuspend   bool
	IsInline    bool
	IsSynthetic bool
	IsAbstract  bool
	TypeParams  []RawTypeParam
}

// Decl is one node of the resolved declaration tree the frontend walks.
// Supertypes lists declared supertypes for transitive inherited-member
// collection (spec.md §4.1). IR is the matching lower-level IR class handle
// used by the Frontend→IR Transformer (spec.md §4.2) — borrowed, not owned.
type Decl struct {
	Kind        DeclKind
	QualifiedID string
	SimpleName  string
	PackageName string

	IsSealed bool
	IsLocal  bool

	// Class-only shape facts (spec.md §4.1 validation rules).
	IsAbstractClass              bool
	HasPrivatePrimaryConstructor bool
	HasAbstractConstructor       bool

	TypeParams []RawTypeParam
	Properties []RawProperty
	Functions  []RawFunction
	Supertypes []*Decl

	Location diagnostic.Location
	IR       *IrClass
}
