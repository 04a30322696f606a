package irmodel

import (
	"errors"
	"reflect"
	"testing"

	"github.com/rsicarelli/fakt/internal/frontend"
	"github.com/rsicarelli/fakt/internal/hostir"
)

func TestTransformInterfaceLooksUpByName(t *testing.T) {
	stringType := hostir.NewResolvedType(hostir.TypeKindClass, "kotlin.String", false)

	ir := &hostir.IrClass{
		QualifiedName: "com.example.Repo",
		Properties:    []hostir.IrProperty{{Name: "name", Type: stringType}},
		Functions: []hostir.IrFunction{
			{Name: "fetch", ReturnType: stringType},
		},
	}
	decl := &hostir.Decl{QualifiedID: "com.example.Repo", IR: ir}

	iface := &frontend.ValidatedInterface{
		QualifiedID: "com.example.Repo",
		SimpleName:  "Repo",
		PackageName: "com.example",
		Properties:  []frontend.PropertyInfo{{Name: "name", Type: "kotlin.String"}},
		Functions:   []frontend.FunctionInfo{{Name: "fetch", ReturnType: "kotlin.String"}},
	}

	meta, err := TransformInterface(decl, iface)
	if err != nil {
		t.Fatalf("TransformInterface() error = %v", err)
	}
	if len(meta.Properties) != 1 || meta.Properties[0].Type.QualifiedName != "kotlin.String" {
		t.Errorf("Properties = %+v", meta.Properties)
	}
	if len(meta.Functions) != 1 || meta.Functions[0].ReturnType.QualifiedName != "kotlin.String" {
		t.Errorf("Functions = %+v", meta.Functions)
	}

	if !reflect.DeepEqual(meta.Pattern(), meta.Pattern()) {
		t.Error("Pattern() should be stable across calls")
	}
}

func TestTransformInterfaceDesyncIsInvariantError(t *testing.T) {
	ir := &hostir.IrClass{QualifiedName: "com.example.Repo"}
	decl := &hostir.Decl{QualifiedID: "com.example.Repo", IR: ir}

	iface := &frontend.ValidatedInterface{
		QualifiedID: "com.example.Repo",
		Properties:  []frontend.PropertyInfo{{Name: "missing", Type: "kotlin.String"}},
	}

	_, err := TransformInterface(decl, iface)
	var invariantErr *InvariantError
	if !errors.As(err, &invariantErr) {
		t.Fatalf("expected *InvariantError, got %v (%T)", err, err)
	}
	if invariantErr.Name != "missing" {
		t.Errorf("Name = %q", invariantErr.Name)
	}
}

func TestTransformInterfaceWalksSupertypes(t *testing.T) {
	intType := hostir.NewResolvedType(hostir.TypeKindPrimitive, "kotlin.Int", false)
	superIR := &hostir.IrClass{
		Properties: []hostir.IrProperty{{Name: "id", Type: intType}},
	}
	super := &hostir.Decl{QualifiedID: "com.example.Base", IR: superIR}

	ir := &hostir.IrClass{QualifiedName: "com.example.Repo"}
	decl := &hostir.Decl{QualifiedID: "com.example.Repo", IR: ir, Supertypes: []*hostir.Decl{super}}

	iface := &frontend.ValidatedInterface{
		QualifiedID:         "com.example.Repo",
		InheritedProperties: []frontend.PropertyInfo{{Name: "id", Type: "kotlin.Int"}},
	}

	meta, err := TransformInterface(decl, iface)
	if err != nil {
		t.Fatalf("TransformInterface() error = %v", err)
	}
	if len(meta.Properties) != 1 || meta.Properties[0].Type.QualifiedName != "kotlin.Int" {
		t.Errorf("Properties = %+v", meta.Properties)
	}
}
