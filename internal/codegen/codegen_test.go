package codegen

import (
	"strings"
	"testing"

	"github.com/rsicarelli/fakt/internal/hostir"
	"github.com/rsicarelli/fakt/internal/irmodel"
)

func primitive(name string) hostir.ResolvedType {
	return hostir.NewResolvedType(hostir.TypeKindPrimitive, name, false)
}

func class(name string, args ...hostir.ResolvedType) hostir.ResolvedType {
	return hostir.NewResolvedType(hostir.TypeKindClass, name, false, args...)
}

func TestRenderImplClassEmptyInterface(t *testing.T) {
	d := Declaration{SimpleName: "Empty", PackageName: "com.example"}
	out := RenderImplClass(d)
	if !strings.Contains(out, "class FakeEmptyImpl : Empty") {
		t.Errorf("missing class header, got:\n%s", out)
	}
	if strings.Contains(out, "@OptIn") {
		t.Error("empty interface should not require the atomics opt-in annotation")
	}
}

func TestEmitFunctionS1Shape(t *testing.T) {
	d := Declaration{
		SimpleName:  "UserService",
		PackageName: "com.example",
		Functions: []irmodel.IrFunctionMeta{
			{
				Name:       "getUser",
				ReturnType: class("com.example.User"),
				Params: []irmodel.IrParamMeta{
					{Name: "id", Type: class("kotlin.String")},
				},
			},
		},
	}

	impl := RenderImplClass(d)
	for _, want := range []string{
		"getUserBehavior: (String) -> User",
		"override fun getUser(id: String): User",
		"getUserCallCountState.incrementAndFetch()",
		"return getUserBehavior(id)",
		"internal fun configureGetUser(behavior: (String) -> User)",
	} {
		if !strings.Contains(impl, want) {
			t.Errorf("impl class missing %q, got:\n%s", want, impl)
		}
	}

	factory := RenderFactory(d)
	if !strings.Contains(factory, "fun fakeUserService(configure: FakeUserServiceConfig.() -> Unit = {}): UserService") {
		t.Errorf("unexpected factory signature:\n%s", factory)
	}

	dsl := RenderConfigDSL(d)
	if !strings.Contains(dsl, "fun getUser(behavior: (String) -> User)") {
		t.Errorf("dsl missing forwarding method:\n%s", dsl)
	}
}

func TestEmitPropertyS2Shape(t *testing.T) {
	d := Declaration{
		SimpleName:  "Clock",
		PackageName: "com.example",
		Properties: []irmodel.IrPropertyMeta{
			{Name: "now", Type: primitive("kotlin.Long")},
		},
	}
	out := RenderImplClass(d)
	for _, want := range []string{
		"nowBehavior: () -> Long = { 0L }",
		"override val now: Long",
		"nowCallCountState.incrementAndFetch()",
		"return nowBehavior()",
		"internal fun configureNow(behavior: () -> Long)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q, got:\n%s", want, out)
		}
	}
}

func TestRenderClassLevelErasureS3Shape(t *testing.T) {
	resultUnit := class("kotlin.Result", primitive("kotlin.Unit"))
	tParam := hostir.NewResolvedType(hostir.TypeKindTypeParam, "T", false)

	d := Declaration{
		SimpleName:  "Repo",
		PackageName: "com.example",
		TypeParams:  []hostir.IrTypeParam{{Name: "T"}},
		Functions: []irmodel.IrFunctionMeta{
			{
				Name:       "save",
				ReturnType: resultUnit,
				Params:     []irmodel.IrParamMeta{{Name: "item", Type: tParam}},
			},
		},
		Pattern: irmodel.GenericPattern{Kind: irmodel.PatternClassLevel, ClassTypeParams: []string{"T"}},
	}

	impl := RenderImplClass(d)
	if !strings.Contains(impl, "class FakeRepoImpl : Repo<Any>") {
		t.Errorf("expected erased header, got:\n%s", impl)
	}
	if !strings.Contains(impl, "saveBehavior: (Any) -> Result<Unit> = { _ -> Result.success(Unit) }") {
		t.Errorf("expected erased+defaulted behavior field, got:\n%s", impl)
	}

	factory := RenderFactory(d)
	if !strings.Contains(factory, "fun <T> fakeRepo(configure: FakeRepoConfig.() -> Unit = {}): Repo<T>") {
		t.Errorf("expected generic factory, got:\n%s", factory)
	}
}

func TestRenderBoundedClassLevelThreadsConstraintIntoFactory(t *testing.T) {
	comparableOfT := class("kotlin.Comparable", hostir.NewResolvedType(hostir.TypeKindTypeParam, "T", false))

	d := Declaration{
		SimpleName:  "Repo",
		PackageName: "com.example",
		TypeParams:  []hostir.IrTypeParam{{Name: "T", Bounds: []hostir.ResolvedType{comparableOfT}}},
		Pattern: irmodel.GenericPattern{
			Kind:             irmodel.PatternClassLevel,
			ClassTypeParams:  []string{"T"},
			ClassConstraints: []irmodel.Constraint{{ParamName: "T", BoundText: "Comparable<T>", BoundType: comparableOfT}},
		},
	}

	factory := RenderFactory(d)
	if !strings.Contains(factory, "fun <T : Comparable<T>> fakeRepo(configure: FakeRepoConfig.() -> Unit = {}): Repo<T>") {
		t.Errorf("expected bounded generic factory, got:\n%s", factory)
	}
}

func TestEmitMethodLevelGenericThreadsTypeParamIntoOverrideAndDSL(t *testing.T) {
	tParam := hostir.NewResolvedType(hostir.TypeKindTypeParam, "T", false)
	comparableOfT := class("kotlin.Comparable", tParam)

	fn := irmodel.IrFunctionMeta{
		Name:       "identity",
		TypeParams: []hostir.IrTypeParam{{Name: "T", Bounds: []hostir.ResolvedType{comparableOfT}}},
		Params:     []irmodel.IrParamMeta{{Name: "value", Type: tParam}},
		ReturnType: tParam,
	}
	d := Declaration{
		SimpleName:  "Identity",
		PackageName: "com.example",
		Functions:   []irmodel.IrFunctionMeta{fn},
		Pattern: irmodel.GenericPattern{
			Kind: irmodel.PatternMethodLevel,
			GenericMethods: []irmodel.GenericMethod{
				{
					Name:        "identity",
					TypeParams:  []string{"T"},
					Constraints: []irmodel.Constraint{{ParamName: "T", BoundText: "Comparable<T>", BoundType: comparableOfT}},
					Params:      []irmodel.GenericParam{{Name: "value", Type: tParam}},
					ReturnType:  tParam,
				},
			},
		},
	}

	impl := RenderImplClass(d)
	if !strings.Contains(impl, "override fun <T : Comparable<T>> identity(value: T): T") {
		t.Errorf("expected scoped type-param clause on override, got:\n%s", impl)
	}

	dsl := RenderConfigDSL(d)
	if !strings.Contains(dsl, "fun <T : Comparable<T>> identity(behavior: (T) -> T)") {
		t.Errorf("expected scoped type-param clause on DSL method, got:\n%s", dsl)
	}
}

func TestEmitFunctionUnitReturnOmitsReturnKeyword(t *testing.T) {
	arrayOfString := hostir.NewResolvedType(hostir.TypeKindArray, "kotlin.Array", false, class("kotlin.String"))

	d := Declaration{
		SimpleName:  "Logger",
		PackageName: "com.example",
		Functions: []irmodel.IrFunctionMeta{
			{
				Name:       "log",
				ReturnType: primitive("kotlin.Unit"),
				Params: []irmodel.IrParamMeta{
					{Name: "msg", Type: arrayOfString, IsVararg: true},
				},
			},
		},
	}
	out := RenderImplClass(d)
	if !strings.Contains(out, "override fun log(vararg msg: String): Unit") {
		t.Errorf("expected vararg override signature, got:\n%s", out)
	}
	if !strings.Contains(out, "logBehavior(msg)") || strings.Contains(out, "return logBehavior(msg)") {
		t.Errorf("Unit-returning override must not use return, got:\n%s", out)
	}
	if !strings.Contains(out, "logBehavior: (Array<String>) -> Unit = { }") {
		t.Errorf("expected Array<String> field type with empty Unit body, got:\n%s", out)
	}
}

func TestComposeFileDedupsAndSortsImports(t *testing.T) {
	widget := class("com.example.model.Widget")
	d := Declaration{
		SimpleName:  "Repo",
		PackageName: "com.example",
		Functions: []irmodel.IrFunctionMeta{
			{Name: "one", ReturnType: widget},
			{Name: "two", ReturnType: widget},
		},
	}
	out := ComposeFile(d)
	if !strings.Contains(out, "package com.example") {
		t.Errorf("missing package line, got:\n%s", out)
	}
	if strings.Count(out, "import com.example.model.Widget") != 1 {
		t.Errorf("expected a single deduped import, got:\n%s", out)
	}
	if !strings.Contains(out, "import kotlin.concurrent.atomics.AtomicInt") {
		t.Errorf("expected the fixed atomics import, got:\n%s", out)
	}
}
