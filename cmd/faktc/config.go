package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-json-experiment/json"

	"github.com/rsicarelli/fakt/internal/diagnostic"
	"github.com/rsicarelli/fakt/internal/hostir"
	"github.com/rsicarelli/fakt/internal/orchestrator"
	"github.com/rsicarelli/fakt/internal/routing"
	"github.com/rsicarelli/fakt/internal/telemetry"
)

// config bundles everything loadConfig resolved from flags, mirroring the
// teacher's ConfigResult (cmd/tsgonest/pipeline.go): the parsed inputs, ready
// to be turned into a runnable Compilation. The paths they came from are not
// kept.
type config struct {
	Record *routing.Record
	Decls  []*hostir.Decl
	Level  telemetry.Level
}

// loadConfig reads the routing record and declaration fixtures named on the
// command line. The routing file may be either raw JSON (for convenience
// when hand-authoring fixtures) or the base64 encoding a real host compiler
// would pass as the sourceSetContext option value.
func loadConfig(routingPath, declsDir, level string) (*config, error) {
	record, err := loadRoutingRecord(routingPath)
	if err != nil {
		return nil, fmt.Errorf("loading routing record: %w", err)
	}

	decls, err := loadDeclFixtures(declsDir)
	if err != nil {
		return nil, fmt.Errorf("loading declaration fixtures: %w", err)
	}

	return &config{Record: record, Decls: decls, Level: telemetry.ParseLevel(level)}, nil
}

func loadRoutingRecord(path string) (*routing.Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "{") {
		var rec routing.Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("%w: %v", routing.ErrMalformed, err)
		}
		return &rec, nil
	}

	return routing.Decode(trimmed)
}

func loadDeclFixtures(dir string) ([]*hostir.Decl, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var decls []*hostir.Decl
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		var decl hostir.Decl
		if err := json.Unmarshal(data, &decl); err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		decls = append(decls, &decl)
	}
	return decls, nil
}

// buildCompilation assembles an orchestrator.Compilation from the loaded
// config, wiring a fresh diagnostic collector, logger, and reporter.
func (c *config) buildCompilation() (*orchestrator.Compilation, error) {
	if c.Record.OutputDirectory == "" {
		return nil, fmt.Errorf("routing record has no outputDirectory")
	}
	return &orchestrator.Compilation{
		Record:     c.Record,
		Decls:      c.Decls,
		Diagnostic: diagnostic.NewCollector(),
		Logger:     telemetry.NewLogger(c.Level),
		Reporter:   telemetry.New(c.Level),
	}, nil
}

func runCompilation(ctx context.Context, comp *orchestrator.Compilation) error {
	return orchestrator.Run(ctx, comp)
}
