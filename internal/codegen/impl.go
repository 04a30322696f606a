package codegen

import (
	"strings"

	"github.com/rsicarelli/fakt/internal/hostir"
	"github.com/rsicarelli/fakt/internal/irmodel"
	"github.com/rsicarelli/fakt/internal/typeresolve"
)

// RenderImplClass produces the `Fake<Name>Impl` class per spec.md §4.6.1.
func RenderImplClass(d Declaration) string {
	erase := d.erasedTypeParams()
	e := NewEmitter()

	if d.hasMembers() {
		e.Line("@OptIn(ExperimentalAtomicApi::class)")
	}
	e.Block("class %s : %s%s", d.implName(), d.SimpleName, headerSupertypeArgs(d.Pattern))

	for i, p := range d.Properties {
		if i > 0 {
			e.Blank()
		}
		emitProperty(e, p, erase)
	}
	for i, f := range d.Functions {
		if len(d.Properties) > 0 || i > 0 {
			e.Blank()
		}
		emitFunction(e, f, erase, d.genericMethodFor(f.Name))
	}

	e.EndBlock()
	return e.String()
}

// headerSupertypeArgs renders the type-argument list the Impl class passes
// to its contract supertype: Any for every erased class-level parameter,
// or nothing when there are none (spec.md §4.6.1).
func headerSupertypeArgs(pattern irmodel.GenericPattern) string {
	if len(pattern.ClassTypeParams) == 0 {
		return ""
	}
	args := make([]string, len(pattern.ClassTypeParams))
	for i := range args {
		args[i] = "Any"
	}
	return "<" + strings.Join(args, ", ") + ">"
}

func emitProperty(e *Emitter, p irmodel.IrPropertyMeta, erase map[string]bool) {
	base := p.Name
	field := behaviorFieldName(base)
	configure := configureMethodName(base)
	count := callCountName(base)
	typeText := typeresolve.Render(p.Type, false, erase)

	e.Line("private var %s: () -> %s = { %s }", field, typeText, typeresolve.DefaultValue(p.Type))
	e.Line("private val %sState = AtomicInt(0)", count)
	e.Line("val %s: Int get() = %sState.load()", count, count)
	e.Blank()

	keyword := "val"
	if p.IsMutable {
		keyword = "var"
	}
	e.Line("override %s %s: %s", keyword, base, typeText)
	e.Indent()
	e.Block("get()")
	e.Line("%sState.incrementAndFetch()", count)
	e.Line("return %s()", field)
	e.EndBlock()

	if p.IsMutable {
		setBase := setterBaseName(base)
		setField := behaviorFieldName(setBase)
		setConfigure := configureMethodName(setBase)
		setCount := callCountName(setBase)
		e.Block("set(value)")
		e.Line("%sState.incrementAndFetch()", setCount)
		e.Line("%s(value)", setField)
		e.EndBlock()
		e.Dedent()

		e.Blank()
		e.Line("private var %s: (%s) -> Unit = { _ -> }", setField, typeText)
		e.Line("private val %sState = AtomicInt(0)", setCount)
		e.Line("val %s: Int get() = %sState.load()", setCount, setCount)
		e.Blank()
		e.Block("internal fun %s(behavior: (%s) -> Unit)", setConfigure, typeText)
		e.Line("%s = behavior", setField)
		e.EndBlock()
	} else {
		e.Dedent()
	}

	e.Blank()
	e.Block("internal fun %s(behavior: () -> %s)", configure, typeText)
	e.Line("%s = behavior", field)
	e.EndBlock()
}

func emitFunction(e *Emitter, f irmodel.IrFunctionMeta, erase map[string]bool, gm *irmodel.GenericMethod) {
	base := f.Name
	field := behaviorFieldName(base)
	configure := configureMethodName(base)
	count := callCountName(base)

	fieldParamTypes := make([]string, len(f.Params))
	for i, p := range f.Params {
		fieldParamTypes[i] = typeresolve.Render(p.Type, false, erase)
	}
	returnText := typeresolve.Render(f.ReturnType, false, erase)
	fnType := functionTypeText(fieldParamTypes, returnText, f.IsSuspend)

	e.Line("private var %s: %s = %s", field, fnType, lambdaLiteral(len(f.Params), typeresolve.DefaultValue(f.ReturnType)))
	e.Line("private val %sState = AtomicInt(0)", count)
	e.Line("val %s: Int get() = %sState.load()", count, count)
	e.Blank()

	overrideParams := make([]string, len(f.Params))
	forwardArgs := make([]string, len(f.Params))
	for i, p := range f.Params {
		if p.IsVararg {
			elem := varargElementType(p.Type)
			overrideParams[i] = "vararg " + p.Name + ": " + typeresolve.Render(elem, false, erase)
		} else {
			overrideParams[i] = p.Name + ": " + typeresolve.Render(p.Type, false, erase)
		}
		forwardArgs[i] = p.Name
	}

	suspendPrefix := ""
	if f.IsSuspend {
		suspendPrefix = "suspend "
	}
	typeParamPrefix := ""
	if gm != nil && len(gm.TypeParams) > 0 {
		typeParamPrefix = "<" + typeParamClause(gm.TypeParams, gm.Constraints) + "> "
	}
	e.Block("override %sfun %s%s(%s): %s", suspendPrefix, typeParamPrefix, base, strings.Join(overrideParams, ", "), returnText)
	e.Line("%sState.incrementAndFetch()", count)
	call := field + "(" + strings.Join(forwardArgs, ", ") + ")"
	if returnText == "Unit" {
		e.Line("%s", call)
	} else {
		e.Line("return %s", call)
	}
	e.EndBlock()

	e.Blank()
	e.Block("internal fun %s(behavior: %s)", configure, fnType)
	e.Line("%s = behavior", field)
	e.EndBlock()
}

func functionTypeText(paramTypes []string, returnText string, suspend bool) string {
	prefix := ""
	if suspend {
		prefix = "suspend "
	}
	return prefix + "(" + strings.Join(paramTypes, ", ") + ") -> " + returnText
}

// lambdaLiteral builds a lambda of the given arity whose body is the
// supplied expression, matching spec.md's Boundary Behaviors table for 0/1/
// many parameters: "{ default }", "{ _ -> default }", "{ _, _, … -> default }".
// A Unit-typed default is the one exception: an empty block already has
// type Unit, so parameter placeholders buy nothing — spec.md's vararg/Unit
// scenario (S6) emits the bare "{ }" regardless of arity.
func lambdaLiteral(arity int, body string) string {
	if body == "Unit" {
		return "{ }"
	}
	if arity == 0 {
		return "{ " + body + " }"
	}
	placeholders := make([]string, arity)
	for i := range placeholders {
		placeholders[i] = "_"
	}
	return "{ " + strings.Join(placeholders, ", ") + " -> " + body + " }"
}

func varargElementType(t hostir.ResolvedType) hostir.ResolvedType {
	if len(t.TypeArguments) == 0 {
		return t
	}
	return t.TypeArguments[0]
}
