package hostir

// TypeKind classifies a ResolvedType at the IR level.
type TypeKind int

const (
	// TypeKindPrimitive covers Unit, String, Boolean, the numeric types, and Char.
	TypeKindPrimitive TypeKind = iota
	// TypeKindClass covers ordinary class/interface types, including generic
	// containers (List<T>, Map<K,V>, ...) and native types (Date, Regex, ...).
	TypeKindClass
	// TypeKindTypeParam is a reference to an in-scope type parameter symbol.
	TypeKindTypeParam
	// TypeKindArray is Array<T> or one of the primitive array specializations
	// (IntArray, LongArray, ...).
	TypeKindArray
)

// ResolvedType is the IR-level, opaque-to-the-frontend type handle (spec.md
// §3 "Type Model"). It is rich enough for the Type Resolver (§4.4) to render
// source syntax, classify primitives, and compute defaults — the "opacity"
// described in the spec is from the frontend descriptor's point of view
// (which only ever sees pre-rendered text), not from the IR-level components
// that consume ResolvedType directly.
type ResolvedType struct {
	id            uint64
	Kind          TypeKind
	QualifiedName string // e.g. "kotlin.String", "kotlin.collections.List", "com.example.User", or a type param's symbolic name ("T")
	Nullable      bool
	TypeArguments []ResolvedType
}

var nextTypeHandle uint64

// NewResolvedType mints a fresh opaque handle for a resolved type. Two
// ResolvedType values describing the same shape are never required to share
// an id — id exists only to model "opaque handle" identity, not structural
// equality.
func NewResolvedType(kind TypeKind, qualifiedName string, nullable bool, args ...ResolvedType) ResolvedType {
	nextTypeHandle++
	return ResolvedType{
		id:            nextTypeHandle,
		Kind:          kind,
		QualifiedName: qualifiedName,
		Nullable:      nullable,
		TypeArguments: args,
	}
}

// ID returns the opaque handle identity of this resolved type.
func (t ResolvedType) ID() uint64 { return t.id }

// IrParamKind distinguishes regular parameters from receiver/context
// parameters, which the Frontend→IR Transformer filters out before
// positional matching (spec.md §4.2 step 2).
type IrParamKind int

const (
	IrParamRegular IrParamKind = iota
	IrParamReceiver
	IrParamContext
)

// IrParam is a function parameter at the IR level.
type IrParam struct {
	Name        string
	Type        ResolvedType
	Kind        IrParamKind
	IsVararg    bool
	DefaultExpr *string
}

// IrTypeParam is a type parameter at the IR level, with resolved bound types
// (spec.md §3 GenericPattern "Constraint { param_name, bound_text, bound_type }").
type IrTypeParam struct {
	Name   string
	Bounds []ResolvedType
}

// IrProperty is a directly declared property on an IrClass.
type IrProperty struct {
	Name string
	Type ResolvedType
}

// IrFunction is a directly declared function on an IrClass.
type IrFunction struct {
	Name                  string
	Params                []IrParam
	ReturnType            ResolvedType
	IsSuspend             bool
	IsInline              bool
	IsOperator            bool
	ExtensionReceiverType *ResolvedType
	TypeParams            []IrTypeParam
}

// IrClass is the lower-level, resolved-type IR handle for a declaration
// (spec.md §4.2). Only direct declarations are present — inherited members
// live on the supertypes' own IrClass handles, which the Frontend→IR
// Transformer reaches by walking the Decl's supertype chain and looking
// each member up by name.
type IrClass struct {
	QualifiedName string
	TypeParams    []IrTypeParam
	Properties    []IrProperty
	Functions     []IrFunction
}

// PropertyByName looks up a direct-declaration property by name.
func (c *IrClass) PropertyByName(name string) (*IrProperty, bool) {
	for i := range c.Properties {
		if c.Properties[i].Name == name {
			return &c.Properties[i], true
		}
	}
	return nil, false
}

// FunctionByName looks up a direct-declaration function by name.
func (c *IrClass) FunctionByName(name string) (*IrFunction, bool) {
	for i := range c.Functions {
		if c.Functions[i].Name == name {
			return &c.Functions[i], true
		}
	}
	return nil, false
}

// RegularParams returns params of the given function excluding receiver and
// context parameters, preserving order (spec.md §4.2 step 2).
func (f *IrFunction) RegularParams() []IrParam {
	out := make([]IrParam, 0, len(f.Params))
	for _, p := range f.Params {
		if p.Kind == IrParamRegular {
			out = append(out, p)
		}
	}
	return out
}
