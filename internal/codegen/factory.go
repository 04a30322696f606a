package codegen

import "strings"

// RenderFactory produces `fun fake<Name>(configure: Fake<Name>Config.() ->
// Unit = {}): <Name>` per spec.md §4.6.2. The factory stays generic in a
// declaration's class-level type parameters for ClassLevel/Mixed patterns;
// None/MethodLevel declarations carry no class-level parameters to be
// generic over.
func RenderFactory(d Declaration) string {
	e := NewEmitter()

	typeParamDecl := ""
	returnTypeArgs := ""
	if d.isGenericOverSupertype() {
		typeParamDecl = "<" + typeParamClause(d.Pattern.ClassTypeParams, d.Pattern.ClassConstraints) + "> "
		returnTypeArgs = "<" + strings.Join(d.Pattern.ClassTypeParams, ", ") + ">"
	}

	e.Block("fun %s%s(configure: %s.() -> Unit = {}): %s%s",
		typeParamDecl, d.factoryName(), d.configName(), d.SimpleName, returnTypeArgs)
	e.Line("val fake = %s()", d.implName())
	e.Line("%s(fake).configure()", d.configName())
	e.Line("return fake")
	e.EndBlock()

	return e.String()
}
