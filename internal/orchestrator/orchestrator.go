// Package orchestrator drives one compilation's worth of fake generation
// end to end: cache-check, transform, emit, atomic write, record
// (spec.md §4.8). It is grounded on cmd/tsgonest/build.go's overall
// per-compilation driver shape — load config, walk declarations,
// fan out codegen across a bounded worker pool, accumulate timings, report —
// generalized from a TypeScript-compiler-driven batch build to a
// declaration-at-a-time pipeline with a cache gate in front of it.
package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rsicarelli/fakt/internal/buildcache"
	"github.com/rsicarelli/fakt/internal/codegen"
	"github.com/rsicarelli/fakt/internal/diagnostic"
	"github.com/rsicarelli/fakt/internal/frontend"
	"github.com/rsicarelli/fakt/internal/hostir"
	"github.com/rsicarelli/fakt/internal/irmodel"
	"github.com/rsicarelli/fakt/internal/routing"
	"github.com/rsicarelli/fakt/internal/signature"
	"github.com/rsicarelli/fakt/internal/telemetry"
)

// maxConcurrency bounds how many declarations are processed at once
// (spec.md §5 "Declarations MAY be processed concurrently across threads if
// the host provides them so").
const maxConcurrency = 8

// Compilation bundles everything one run of the orchestrator needs: the
// decoded Routing Record, the host-supplied declaration tree, and the
// telemetry sinks to report through.
type Compilation struct {
	Record     *routing.Record
	Decls      []*hostir.Decl
	Diagnostic *diagnostic.Collector
	Logger     *telemetry.Logger
	Reporter   *telemetry.Reporter
}

// Run executes the full pipeline described in spec.md §4.8 over every
// declaration in c.Decls, writing generated files under
// c.Record.OutputDirectory. It returns the first unexpected (non-per-
// declaration) error encountered, such as being unable to create the output
// root; per-declaration failures are reported through diagnostics/telemetry
// and do not abort the run.
func Run(ctx context.Context, c *Compilation) error {
	stopTotal := c.Reporter.StartPhase(telemetry.PhaseTotal)
	defer stopTotal()

	if err := os.MkdirAll(c.Record.OutputDirectory, 0o755); err != nil {
		return fmt.Errorf("orchestrator: creating output directory: %w", err)
	}

	cache := buildcache.New(c.Record.OutputDirectory)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrency)

	for _, decl := range c.Decls {
		decl := decl
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			processDeclaration(decl, cache, c)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("orchestrator: %w", err)
	}

	if warn := cache.LoadWarning(); warn != nil {
		c.Logger.Warnf("%v", warn)
	}

	if report := c.Reporter.Render(); report != "" {
		fmt.Fprintln(os.Stderr, report)
	}

	return nil
}

// processDeclaration runs the cache-check → transform → emit → write →
// record pipeline for a single declaration (spec.md §4.8 step 3). All
// failures are reported via diagnostics/logging rather than returned, so one
// bad declaration never stops its siblings.
func processDeclaration(decl *hostir.Decl, cache *buildcache.Cache, c *Compilation) {
	start := time.Now()
	stopValidate := c.Reporter.StartPhase(telemetry.PhaseValidate)
	iface, class, ok := frontend.Validate(decl, c.Diagnostic)
	stopValidate()
	if !ok {
		return
	}

	var sig string
	if iface != nil {
		sig = signature.ForInterface(iface)
	} else {
		sig = signature.ForClass(class)
	}

	stopCache := c.Reporter.StartPhase(telemetry.PhaseCache)
	hit := cache.Contains(sig)
	stopCache()
	if hit {
		c.Reporter.IncrementCacheHit()
		c.Reporter.RecordFake(telemetry.FakeMetrics{QualifiedName: decl.QualifiedID, CacheHit: true})
		return
	}

	stopTransform := c.Reporter.StartPhase(telemetry.PhaseTransform)
	var decln codegen.Declaration
	var transformErr error
	if iface != nil {
		meta, err := irmodel.TransformInterface(decl, iface)
		if err == nil {
			decln = codegen.FromInterface(meta)
		}
		transformErr = err
	} else {
		meta, err := irmodel.TransformClass(decl, class)
		if err == nil {
			decln = codegen.FromClass(meta)
		}
		transformErr = err
	}
	stopTransform()
	if transformErr != nil {
		c.Logger.Warnf("internal error generating fake for %s: %v", decl.QualifiedID, transformErr)
		return
	}

	stopEmit := c.Reporter.StartPhase(telemetry.PhaseEmit)
	source := codegen.ComposeFile(decln)
	stopEmit()

	outputPath := filepath.Join(c.Record.OutputDirectory, packagePath(decln.PackageName), "Fake"+decln.SimpleName+"Impl.kt")
	if err := writeAtomic(outputPath, []byte(source)); err != nil {
		c.Logger.Warnf("writing fake for %s: %v", decl.QualifiedID, err)
		return
	}

	if err := cache.Record(sig); err != nil {
		c.Logger.Warnf("recording signature for %s: %v", decl.QualifiedID, err)
	}

	c.Reporter.RecordFake(telemetry.FakeMetrics{
		QualifiedName: decl.QualifiedID,
		Duration:      time.Since(start),
		Lines:         strings.Count(source, "\n"),
		Bytes:         len(source),
		Imports:       strings.Count(source, "\nimport "),
	})
}

// packagePath converts a dotted package name to its path-segment form
// (spec.md §6.3 "<outputDirectory>/<package-as-path>/Fake<Name>Impl.kt").
func packagePath(pkg string) string {
	return filepath.Join(strings.Split(pkg, ".")...)
}

// writeAtomic writes data to path via a temp file in the same directory
// followed by a rename, guaranteeing a reader never observes a partial file
// (spec.md §4.8 "Atomic write guarantees either the old file or the new file
// is visible at all times"). Grounded on the teacher's
// buildcache.Save temp-file-then-rename pattern, generalized from the cache
// blob to arbitrary generated source.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming into place: %w", err)
	}

	return nil
}
