package orchestrator

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rsicarelli/fakt/internal/diagnostic"
	"github.com/rsicarelli/fakt/internal/hostir"
	"github.com/rsicarelli/fakt/internal/routing"
	"github.com/rsicarelli/fakt/internal/telemetry"
)

func userServiceDecl() *hostir.Decl {
	ir := &hostir.IrClass{
		QualifiedName: "com.example.UserService",
		Functions: []hostir.IrFunction{
			{
				Name:       "getUser",
				ReturnType: hostir.NewResolvedType(hostir.TypeKindClass, "com.example.User", false),
				Params: []hostir.IrParam{
					{Name: "id", Type: hostir.NewResolvedType(hostir.TypeKindClass, "kotlin.String", false)},
				},
			},
		},
	}
	return &hostir.Decl{
		Kind:        hostir.DeclInterface,
		QualifiedID: "com.example.UserService",
		SimpleName:  "UserService",
		PackageName: "com.example",
		Functions: []hostir.RawFunction{
			{
				Name:       "getUser",
				ReturnType: "com.example.User",
				Params:     []hostir.RawParam{{Name: "id", Type: "kotlin.String"}},
			},
		},
		IR: ir,
	}
}

func newCompilation(t *testing.T, outDir string, decls ...*hostir.Decl) *Compilation {
	t.Helper()
	return &Compilation{
		Record:     &routing.Record{OutputDirectory: outDir},
		Decls:      decls,
		Diagnostic: diagnostic.NewCollector(),
		Logger:     telemetry.NewLogger(telemetry.LevelSilent),
		Reporter:   telemetry.New(telemetry.LevelSilent),
	}
}

func TestRunGeneratesFileAtExpectedPath(t *testing.T) {
	outDir := t.TempDir()
	comp := newCompilation(t, outDir, userServiceDecl())

	if err := Run(context.Background(), comp); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := filepath.Join(outDir, "com", "example", "FakeUserServiceImpl.kt")
	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("expected generated file at %s: %v", want, err)
	}
	if !strings.Contains(string(data), "class FakeUserServiceImpl : UserService") {
		t.Errorf("unexpected generated content:\n%s", data)
	}
}

func TestRunSkipsReemissionOnCacheHit(t *testing.T) {
	outDir := t.TempDir()
	decl := userServiceDecl()

	first := newCompilation(t, outDir, decl)
	if err := Run(context.Background(), first); err != nil {
		t.Fatalf("first Run: %v", err)
	}

	generated := filepath.Join(outDir, "com", "example", "FakeUserServiceImpl.kt")
	before, err := os.ReadFile(generated)
	if err != nil {
		t.Fatal(err)
	}

	second := newCompilation(t, outDir, decl)
	if err := Run(context.Background(), second); err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if second.Reporter.CacheHits() != 1 {
		t.Errorf("expected a cache hit on the second run, got %d", second.Reporter.CacheHits())
	}

	after, err := os.ReadFile(generated)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("expected byte-identical file across re-runs (idempotence)")
	}
}

func TestRunRejectsSealedDeclarationWithoutEmittingFile(t *testing.T) {
	outDir := t.TempDir()
	decl := userServiceDecl()
	decl.IsSealed = true

	comp := newCompilation(t, outDir, decl)
	if err := Run(context.Background(), comp); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if comp.Diagnostic.HasErrors() == false {
		t.Error("expected a diagnostic error for the sealed declaration")
	}
	if _, err := os.Stat(filepath.Join(outDir, "com", "example", "FakeUserServiceImpl.kt")); !os.IsNotExist(err) {
		t.Error("expected no file to be generated for a rejected declaration")
	}
}
