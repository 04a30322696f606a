package irmodel

import (
	"sync"

	"github.com/rsicarelli/fakt/internal/frontend"
	"github.com/rsicarelli/fakt/internal/hostir"
)

// TransformInterface lowers a validated interface descriptor into its
// Generation Model by pure lookup against decl's IR handle chain: every
// name the frontend extracted must already exist on some IR handle reached
// by walking decl's declared and transitive supertypes (spec.md §4.2).
// Absence is an internal-invariant violation, not a user-facing diagnostic.
func TransformInterface(decl *hostir.Decl, iface *frontend.ValidatedInterface) (*IrGenerationMetadata, error) {
	chain := irChain(decl)

	props, err := buildProperties(chain, concatProps(iface.Properties, iface.InheritedProperties), iface.QualifiedID)
	if err != nil {
		return nil, err
	}
	funcs, err := buildFunctions(chain, concatFuncs(iface.Functions, iface.InheritedFunctions), iface.QualifiedID)
	if err != nil {
		return nil, err
	}

	meta := &IrGenerationMetadata{
		SimpleName:  iface.SimpleName,
		PackageName: iface.PackageName,
		TypeParams:  classTypeParams(decl),
		Properties:  props,
		Functions:   funcs,
		SourceClass: decl.IR,
	}
	meta.Pattern = sync.OnceValue(func() GenericPattern {
		return classify(meta.TypeParams, meta.Functions)
	})
	return meta, nil
}

// TransformClass lowers a validated class descriptor into its Generation
// Model, preserving the frontend's abstract/open partition (spec.md §4.2).
func TransformClass(decl *hostir.Decl, class *frontend.ValidatedClass) (*IrClassGenerationMetadata, error) {
	chain := irChain(decl)

	abstractProps, err := buildProperties(chain, class.AbstractProps, class.QualifiedID)
	if err != nil {
		return nil, err
	}
	openProps, err := buildProperties(chain, class.OpenProps, class.QualifiedID)
	if err != nil {
		return nil, err
	}
	abstractMethods, err := buildFunctions(chain, class.AbstractMethods, class.QualifiedID)
	if err != nil {
		return nil, err
	}
	openMethods, err := buildFunctions(chain, class.OpenMethods, class.QualifiedID)
	if err != nil {
		return nil, err
	}

	meta := &IrClassGenerationMetadata{
		SimpleName:      class.SimpleName,
		PackageName:     class.PackageName,
		TypeParams:      classTypeParams(decl),
		AbstractProps:   abstractProps,
		OpenProps:       openProps,
		AbstractMethods: abstractMethods,
		OpenMethods:     openMethods,
		SourceClass:     decl.IR,
	}
	meta.Pattern = sync.OnceValue(func() GenericPattern {
		return classify(meta.TypeParams, meta.AllMethods())
	})
	return meta, nil
}

func classTypeParams(decl *hostir.Decl) []hostir.IrTypeParam {
	if decl.IR == nil {
		return nil
	}
	return decl.IR.TypeParams
}

func concatProps(a, b []frontend.PropertyInfo) []frontend.PropertyInfo {
	out := make([]frontend.PropertyInfo, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func concatFuncs(a, b []frontend.FunctionInfo) []frontend.FunctionInfo {
	out := make([]frontend.FunctionInfo, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// irChain walks decl and its transitive supertypes in the same order the
// frontend's inheritance walk visits them, collecting each one's IR handle.
// A member name is looked up against this chain in order, matching the
// frontend's own shadowing/dedup order (spec.md §9 Open Question #2).
func irChain(decl *hostir.Decl) []*hostir.IrClass {
	var chain []*hostir.IrClass
	visited := make(map[string]bool)

	var walk func(*hostir.Decl)
	walk = func(d *hostir.Decl) {
		if d.IR != nil {
			chain = append(chain, d.IR)
		}
		for _, super := range d.Supertypes {
			if visited[super.QualifiedID] {
				continue
			}
			visited[super.QualifiedID] = true
			walk(super)
		}
	}
	walk(decl)
	return chain
}

func lookupProperty(chain []*hostir.IrClass, name string) (*hostir.IrProperty, bool) {
	for _, c := range chain {
		if p, ok := c.PropertyByName(name); ok {
			return p, true
		}
	}
	return nil, false
}

func lookupFunction(chain []*hostir.IrClass, name string) (*hostir.IrFunction, bool) {
	for _, c := range chain {
		if f, ok := c.FunctionByName(name); ok {
			return f, true
		}
	}
	return nil, false
}

func buildProperties(chain []*hostir.IrClass, descriptors []frontend.PropertyInfo, owner string) ([]IrPropertyMeta, error) {
	out := make([]IrPropertyMeta, 0, len(descriptors))
	for _, p := range descriptors {
		ir, ok := lookupProperty(chain, p.Name)
		if !ok {
			return nil, &InvariantError{Kind: "property", Name: p.Name, Owner: owner}
		}
		out = append(out, IrPropertyMeta{
			Name:       p.Name,
			Type:       ir.Type,
			IsMutable:  p.IsMutable,
			IsNullable: p.IsNullable,
		})
	}
	return out, nil
}

func buildFunctions(chain []*hostir.IrClass, descriptors []frontend.FunctionInfo, owner string) ([]IrFunctionMeta, error) {
	out := make([]IrFunctionMeta, 0, len(descriptors))
	for _, f := range descriptors {
		ir, ok := lookupFunction(chain, f.Name)
		if !ok {
			return nil, &InvariantError{Kind: "function", Name: f.Name, Owner: owner}
		}

		regular := ir.RegularParams()
		if len(regular) != len(f.Params) {
			return nil, &InvariantError{Kind: "function", Name: f.Name + " (parameter count mismatch)", Owner: owner}
		}
		params := make([]IrParamMeta, len(regular))
		for i, rp := range regular {
			fp := f.Params[i]
			params[i] = IrParamMeta{
				Name:        fp.Name,
				Type:        rp.Type,
				HasDefault:  fp.HasDefault,
				DefaultExpr: fp.DefaultExpr,
				IsVararg:    fp.IsVararg,
			}
		}

		out = append(out, IrFunctionMeta{
			Name:                  f.Name,
			Params:                params,
			ReturnType:            ir.ReturnType,
			IsSuspend:             f.IsSuspend,
			IsInline:              f.IsInline,
			IsOperator:            ir.IsOperator,
			ExtensionReceiverType: ir.ExtensionReceiverType,
			TypeParams:            ir.TypeParams,
		})
	}
	return out, nil
}
