package codegen

import (
	"github.com/rsicarelli/fakt/internal/irmodel"
	"github.com/rsicarelli/fakt/internal/typeresolve"
)

// RenderConfigDSL produces `class Fake<Name>Config(private val fake:
// Fake<Name>Impl)` with one method per member forwarding to the matching
// `configure…` method, per spec.md §4.6.3. Each DSL method must carry the
// exact same function type as the `configure…` method it forwards to, so
// class-level type parameters are erased the same way `impl.go` erases them
// for the Impl body: the config class is non-generic, with no `<T>` in
// scope, and `fake.configureX` already expects the erased `Any` shape.
func RenderConfigDSL(d Declaration) string {
	erase := d.erasedTypeParams()
	e := NewEmitter()
	e.Block("class %s(private val fake: %s)", d.configName(), d.implName())

	first := true
	for _, p := range d.Properties {
		if !first {
			e.Blank()
		}
		first = false
		emitConfigProperty(e, p, erase)
	}
	for _, f := range d.Functions {
		if !first {
			e.Blank()
		}
		first = false
		emitConfigFunction(e, f, erase, d.genericMethodFor(f.Name))
	}

	e.EndBlock()
	return e.String()
}

func emitConfigProperty(e *Emitter, p irmodel.IrPropertyMeta, erase map[string]bool) {
	base := p.Name
	typeText := typeresolve.Render(p.Type, false, erase)

	e.Block("fun %s(behavior: () -> %s)", base, typeText)
	e.Line("fake.%s(behavior)", configureMethodName(base))
	e.EndBlock()

	if p.IsMutable {
		setBase := setterBaseName(base)
		e.Blank()
		e.Block("fun %s(behavior: (%s) -> Unit)", setBase, typeText)
		e.Line("fake.%s(behavior)", configureMethodName(setBase))
		e.EndBlock()
	}
}

func emitConfigFunction(e *Emitter, f irmodel.IrFunctionMeta, erase map[string]bool, gm *irmodel.GenericMethod) {
	base := f.Name
	paramTypes := make([]string, len(f.Params))
	for i, p := range f.Params {
		paramTypes[i] = typeresolve.Render(p.Type, false, erase)
	}
	returnText := typeresolve.Render(f.ReturnType, false, erase)
	fnType := functionTypeText(paramTypes, returnText, f.IsSuspend)

	typeParamPrefix := ""
	if gm != nil && len(gm.TypeParams) > 0 {
		typeParamPrefix = "<" + typeParamClause(gm.TypeParams, gm.Constraints) + "> "
	}

	e.Block("fun %s%s(behavior: %s)", typeParamPrefix, base, fnType)
	e.Line("fake.%s(behavior)", configureMethodName(base))
	e.EndBlock()
}
