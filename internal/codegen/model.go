package codegen

import (
	"strings"

	"github.com/rsicarelli/fakt/internal/hostir"
	"github.com/rsicarelli/fakt/internal/irmodel"
)

// Declaration is the emitter-facing view of a Generation Model: interfaces
// and abstract classes converge here, since every accessible contract
// member — abstract or merely open — gets a behavior-backed override in the
// implementation class (spec.md §4.6.1).
type Declaration struct {
	SimpleName  string
	PackageName string
	TypeParams  []hostir.IrTypeParam
	Properties  []irmodel.IrPropertyMeta
	Functions   []irmodel.IrFunctionMeta
	Pattern     irmodel.GenericPattern
}

// FromInterface builds the emitter view of an interface's Generation Model.
func FromInterface(m *irmodel.IrGenerationMetadata) Declaration {
	return Declaration{
		SimpleName:  m.SimpleName,
		PackageName: m.PackageName,
		TypeParams:  m.TypeParams,
		Properties:  m.Properties,
		Functions:   m.Functions,
		Pattern:     m.Pattern(),
	}
}

// FromClass builds the emitter view of an abstract class's Generation
// Model, flattening the abstract/open partition — both are overridden the
// same way in the fake.
func FromClass(m *irmodel.IrClassGenerationMetadata) Declaration {
	return Declaration{
		SimpleName:  m.SimpleName,
		PackageName: m.PackageName,
		TypeParams:  m.TypeParams,
		Properties:  m.AllProperties(),
		Functions:   m.AllMethods(),
		Pattern:     m.Pattern(),
	}
}

func (d Declaration) implName() string   { return "Fake" + d.SimpleName + "Impl" }
func (d Declaration) configName() string { return "Fake" + d.SimpleName + "Config" }
func (d Declaration) factoryName() string { return "fake" + d.SimpleName }

func (d Declaration) hasMembers() bool {
	return len(d.Properties) > 0 || len(d.Functions) > 0
}

// erasedTypeParams returns the set of class-level type-parameter names that
// must render as "Any" within the implementation class's own body — the
// header substitution policy of spec.md §4.6.1. None/MethodLevel never
// erase (MethodLevel by definition carries zero class-level params).
func (d Declaration) erasedTypeParams() map[string]bool {
	if d.Pattern.Kind != irmodel.PatternClassLevel && d.Pattern.Kind != irmodel.PatternMixed {
		return nil
	}
	out := make(map[string]bool, len(d.Pattern.ClassTypeParams))
	for _, name := range d.Pattern.ClassTypeParams {
		out[name] = true
	}
	return out
}

// isGenericOverSupertype reports whether the factory must stay generic in
// the declaration's class-level type parameters (spec.md §4.6.2: true for
// ClassLevel/Mixed, false for None/MethodLevel).
func (d Declaration) isGenericOverSupertype() bool {
	return d.Pattern.Kind == irmodel.PatternClassLevel || d.Pattern.Kind == irmodel.PatternMixed
}

// genericMethodFor looks up the Pattern Classifier's data for a method-level
// generic function by name, so emitters can restate its type-parameter list
// and bounds at the point of use. Returns nil for functions that carry no
// type parameters of their own.
func (d Declaration) genericMethodFor(name string) *irmodel.GenericMethod {
	for i := range d.Pattern.GenericMethods {
		if d.Pattern.GenericMethods[i].Name == name {
			return &d.Pattern.GenericMethods[i]
		}
	}
	return nil
}

// typeParamClause formats a type-parameter list for a declaration site —
// `"T"` for an unbounded parameter, `"T : B1, B2"` for a bounded one — per
// spec.md §4.2's formatting rule. Returns "" for an empty list; callers wrap
// a non-empty result in the angle brackets themselves.
func typeParamClause(names []string, constraints []irmodel.Constraint) string {
	if len(names) == 0 {
		return ""
	}
	parts := make([]string, len(names))
	for i, name := range names {
		var bounds []string
		for _, c := range constraints {
			if c.ParamName == name {
				bounds = append(bounds, c.BoundText)
			}
		}
		if len(bounds) == 0 {
			parts[i] = name
		} else {
			parts[i] = name + " : " + strings.Join(bounds, ", ")
		}
	}
	return strings.Join(parts, ", ")
}
