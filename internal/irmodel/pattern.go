package irmodel

import (
	"github.com/rsicarelli/fakt/internal/hostir"
	"github.com/rsicarelli/fakt/internal/typeresolve"
)

// GenericPatternKind is the four-way classification of spec.md §4.3.
type GenericPatternKind int

const (
	PatternNone GenericPatternKind = iota
	PatternClassLevel
	PatternMethodLevel
	PatternMixed
)

func (k GenericPatternKind) String() string {
	switch k {
	case PatternClassLevel:
		return "class-level"
	case PatternMethodLevel:
		return "method-level"
	case PatternMixed:
		return "mixed"
	default:
		return "none"
	}
}

// Constraint is a resolved upper bound on a type parameter, carrying both
// its rendered text (for emission) and its resolved type (for recursive
// default-value/import resolution) (spec.md §3 GenericPattern).
type Constraint struct {
	ParamName string
	BoundText string
	BoundType hostir.ResolvedType
}

// GenericParam is a generic method's parameter, with vararg element types
// unwrapped so emitters don't need to re-derive them (spec.md §4.3).
type GenericParam struct {
	Name        string
	Type        hostir.ResolvedType
	IsVararg    bool
	ElementType *hostir.ResolvedType
}

// GenericMethod describes one method that carries its own type parameters.
type GenericMethod struct {
	Name        string
	TypeParams  []string
	Constraints []Constraint
	Params      []GenericParam
	ReturnType  hostir.ResolvedType
	IsSuspend   bool
}

// GenericPattern is the full classification result for one declaration.
type GenericPattern struct {
	Kind             GenericPatternKind
	ClassTypeParams  []string
	ClassConstraints []Constraint
	GenericMethods   []GenericMethod
}

// classify inspects class-level type parameters and the set of functions
// that carry method-level type parameters, producing the four-way pattern
// of spec.md §4.3.
func classify(classTypeParams []hostir.IrTypeParam, funcs []IrFunctionMeta) GenericPattern {
	var pattern GenericPattern

	hasClassLevel := len(classTypeParams) > 0
	if hasClassLevel {
		pattern.ClassTypeParams = make([]string, len(classTypeParams))
		for i, tp := range classTypeParams {
			pattern.ClassTypeParams[i] = tp.Name
			pattern.ClassConstraints = append(pattern.ClassConstraints, constraintsFor(tp)...)
		}
	}

	for _, f := range funcs {
		if len(f.TypeParams) == 0 {
			continue
		}
		pattern.GenericMethods = append(pattern.GenericMethods, buildGenericMethod(f))
	}

	switch hasMethodLevel := len(pattern.GenericMethods) > 0; {
	case hasClassLevel && hasMethodLevel:
		pattern.Kind = PatternMixed
	case hasClassLevel:
		pattern.Kind = PatternClassLevel
	case hasMethodLevel:
		pattern.Kind = PatternMethodLevel
	default:
		pattern.Kind = PatternNone
	}
	return pattern
}

func constraintsFor(tp hostir.IrTypeParam) []Constraint {
	out := make([]Constraint, 0, len(tp.Bounds))
	for _, bound := range tp.Bounds {
		out = append(out, Constraint{
			ParamName: tp.Name,
			BoundText: typeresolve.Render(bound, true, nil),
			BoundType: bound,
		})
	}
	return out
}

func buildGenericMethod(f IrFunctionMeta) GenericMethod {
	names := make([]string, len(f.TypeParams))
	var constraints []Constraint
	for i, tp := range f.TypeParams {
		names[i] = tp.Name
		constraints = append(constraints, constraintsFor(tp)...)
	}

	params := make([]GenericParam, len(f.Params))
	for i, p := range f.Params {
		gp := GenericParam{Name: p.Name, Type: p.Type, IsVararg: p.IsVararg}
		if p.IsVararg && len(p.Type.TypeArguments) > 0 {
			elem := p.Type.TypeArguments[0]
			gp.ElementType = &elem
		}
		params[i] = gp
	}

	return GenericMethod{
		Name:        f.Name,
		TypeParams:  names,
		Constraints: constraints,
		Params:      params,
		ReturnType:  f.ReturnType,
		IsSuspend:   f.IsSuspend,
	}
}
