package frontend

import (
	"strings"

	"github.com/rsicarelli/fakt/internal/diagnostic"
	"github.com/rsicarelli/fakt/internal/hostir"
)

// Validate walks one annotated declaration and either returns its extracted,
// validated shape or rejects it with a diagnostic (spec.md §4.1). Exactly
// one of the two returned pointers is non-nil when ok is true.
//
// Validation failures abort only this declaration; the caller proceeds to
// the next annotated declaration regardless (spec.md §4.1 "Failure
// semantics").
func Validate(decl *hostir.Decl, diags *diagnostic.Collector) (iface *ValidatedInterface, class *ValidatedClass, ok bool) {
	switch decl.Kind {
	case hostir.DeclInterface, hostir.DeclClass:
		// fall through to shape checks below
	default:
		diags.Reject(diagnostic.CodeMustBeInterface, decl.Location,
			"@Fake must target an interface or an abstract class, not "+declKindName(decl.Kind))
		return nil, nil, false
	}

	if decl.IsLocal {
		diags.Reject(diagnostic.CodeCannotBeLocal, decl.Location,
			"@Fake cannot target a declaration local to a function body")
		return nil, nil, false
	}

	if decl.IsSealed {
		code := diagnostic.CodeCannotBeSealed
		if decl.Kind == hostir.DeclClass {
			code = diagnostic.CodeClassCannotBeSealed
		}
		diags.Reject(code, decl.Location, "@Fake cannot target a sealed declaration")
		return nil, nil, false
	}

	if decl.Kind == hostir.DeclClass {
		// Constructor-shape preconditions (spec.md §4.1 "For classes: no
		// abstract constructors, no private primary constructor"). Neither
		// has its own diagnostic code in the spec's §6.4 table; both are
		// reported under FAKE_CLASS_MUST_BE_ABSTRACT since all three
		// preconditions amount to "this class must be a normal abstract
		// class with an instantiable contract."
		switch {
		case !decl.IsAbstractClass:
			diags.Reject(diagnostic.CodeClassMustBeAbstract, decl.Location,
				"@Fake cannot target a concrete class; mark it abstract or use an interface")
			return nil, nil, false
		case decl.HasAbstractConstructor:
			diags.Reject(diagnostic.CodeClassMustBeAbstract, decl.Location,
				"@Fake cannot target a class with an abstract primary constructor")
			return nil, nil, false
		case decl.HasPrivatePrimaryConstructor:
			diags.Reject(diagnostic.CodeClassMustBeAbstract, decl.Location,
				"@Fake cannot target a class with a private primary constructor")
			return nil, nil, false
		}
		c := extractClass(decl)
		return nil, c, true
	}

	i := extractInterface(decl)
	return i, nil, true
}

func declKindName(k hostir.DeclKind) string {
	switch k {
	case hostir.DeclObject:
		return "an object"
	case hostir.DeclEnum:
		return "an enum class"
	case hostir.DeclAnnotationClass:
		return "an annotation class"
	default:
		return "this declaration"
	}
}

func extractInterface(decl *hostir.Decl) *ValidatedInterface {
	props, funcs := directMembers(decl)
	inheritedProps, inheritedFuncs := inheritedMembers(decl, props, funcs)

	return &ValidatedInterface{
		QualifiedID:         decl.QualifiedID,
		SimpleName:          decl.SimpleName,
		PackageName:         decl.PackageName,
		TypeParams:          extractTypeParams(decl.TypeParams),
		Properties:          props,
		Functions:           funcs,
		InheritedProperties: inheritedProps,
		InheritedFunctions:  inheritedFuncs,
		SourceLocation:      decl.Location,
	}
}

func extractClass(decl *hostir.Decl) *ValidatedClass {
	props, funcs := directMembers(decl)

	class := &ValidatedClass{
		QualifiedID:    decl.QualifiedID,
		SimpleName:     decl.SimpleName,
		PackageName:    decl.PackageName,
		TypeParams:     extractTypeParams(decl.TypeParams),
		SourceLocation: decl.Location,
	}

	for i, p := range props {
		if decl.Properties[i].IsAbstract {
			class.AbstractProps = append(class.AbstractProps, p)
		} else {
			class.OpenProps = append(class.OpenProps, p)
		}
	}
	for i, f := range funcs {
		if decl.Functions[i].IsAbstract {
			class.AbstractMethods = append(class.AbstractMethods, f)
		} else {
			class.OpenMethods = append(class.OpenMethods, f)
		}
	}

	inheritedProps, inheritedFuncs := inheritedMembers(decl, props, funcs)
	for _, p := range inheritedProps {
		class.OpenProps = append(class.OpenProps, p)
	}
	for _, f := range inheritedFuncs {
		class.OpenMethods = append(class.OpenMethods, f)
	}

	return class
}

func extractTypeParams(raw []hostir.RawTypeParam) []TypeParamInfo {
	out := make([]TypeParamInfo, 0, len(raw))
	for _, tp := range raw {
		out = append(out, TypeParamInfo{Name: tp.Name, Bounds: sanitizeBounds(tp.Bounds)})
	}
	return out
}

func directMembers(decl *hostir.Decl) ([]PropertyInfo, []FunctionInfo) {
	props := make([]PropertyInfo, 0, len(decl.Properties))
	for _, p := range decl.Properties {
		props = append(props, PropertyInfo{
			Name:       p.Name,
			Type:       sanitizeTypeText(p.Type),
			IsMutable:  p.IsMutable,
			IsNullable: p.IsNullable,
		})
	}

	funcs := make([]FunctionInfo, 0, len(decl.Functions))
	for _, f := range decl.Functions {
		if f.IsSynthetic {
			continue
		}
		funcs = append(funcs, toFunctionInfo(f))
	}

	return props, funcs
}

func toFunctionInfo(f hostir.RawFunction) FunctionInfo {
	params := make([]ParamInfo, 0, len(f.Params))
	for _, p := range f.Params {
		params = append(params, ParamInfo{
			Name:        p.Name,
			Type:        sanitizeTypeText(p.Type),
			HasDefault:  p.HasDefault,
			DefaultExpr: p.DefaultExpr,
			IsVararg:    p.IsVararg,
		})
	}

	typeParams := extractTypeParams(f.TypeParams)
	bounds := make(map[string]string, len(typeParams))
	for _, tp := range typeParams {
		if len(tp.Bounds) > 0 {
			bounds[tp.Name] = strings.Join(tp.Bounds, ", ")
		}
	}

	return FunctionInfo{
		Name:            f.Name,
		Params:          params,
		ReturnType:      sanitizeTypeText(f.ReturnType),
		IsSuspend:       f.IsSuspend,
		IsInline:        f.IsInline,
		TypeParams:      typeParams,
		TypeParamBounds: bounds,
	}
}

// inheritedMembers walks decl.Supertypes transitively, collecting
// properties/functions not already present in the direct set, deduplicated
// by name (spec.md §9 Open Question #2: dedup is fixed to "by name" within
// the direct-declarations lookup, not by erased signature).
func inheritedMembers(decl *hostir.Decl, direct []PropertyInfo, directFuncs []FunctionInfo) ([]PropertyInfo, []FunctionInfo) {
	seenProp := make(map[string]bool, len(direct))
	for _, p := range direct {
		seenProp[p.Name] = true
	}
	seenFunc := make(map[string]bool, len(directFuncs))
	for _, f := range directFuncs {
		seenFunc[f.Name] = true
	}

	var props []PropertyInfo
	var funcs []FunctionInfo
	visited := make(map[string]bool)

	var walk func(*hostir.Decl)
	walk = func(d *hostir.Decl) {
		for _, super := range d.Supertypes {
			if visited[super.QualifiedID] {
				continue
			}
			visited[super.QualifiedID] = true

			for _, p := range super.Properties {
				if seenProp[p.Name] {
					continue
				}
				seenProp[p.Name] = true
				props = append(props, PropertyInfo{
					Name:       p.Name,
					Type:       sanitizeTypeText(p.Type),
					IsMutable:  p.IsMutable,
					IsNullable: p.IsNullable,
				})
			}
			for _, f := range super.Functions {
				if f.IsSynthetic || seenFunc[f.Name] {
					continue
				}
				seenFunc[f.Name] = true
				funcs = append(funcs, toFunctionInfo(f))
			}

			walk(super)
		}
	}
	walk(decl)

	return props, funcs
}
