package telemetry

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-json-experiment/json"
)

var (
	colorTitle = lipgloss.Color("#2563eb")
	colorMuted = lipgloss.Color("#6b7280")
	colorHit   = lipgloss.Color("#10b981")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorTitle)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	hitStyle   = lipgloss.NewStyle().Foreground(colorHit)
)

var phaseOrder = []string{PhaseParse, PhaseValidate, PhaseTransform, PhaseEmit, PhaseCache, PhaseTotal}

// Render formats the report as a styled human-readable table, or an empty
// string below LevelNormal (spec.md §4.8 "format and emit the telemetry
// report at the configured level").
func (r *Reporter) Render() string {
	if r.level < LevelNormal {
		return ""
	}

	snap := r.snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("fakt build report"))
	b.WriteString("\n")

	for _, name := range phaseOrder {
		d, ok := snap.Phases[name]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %-12s %s\n", name+":", d.Round(time.Microsecond))
	}

	fmt.Fprintf(&b, "%s %d\n", hitStyle.Render("cache hits:"), snap.CacheHits)
	fmt.Fprintf(&b, "%s %d\n", mutedStyle.Render("generated:"), len(snap.Fakes))

	if r.level >= LevelVerbose {
		sorted := append([]FakeMetrics{}, snap.Fakes...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].QualifiedName < sorted[j].QualifiedName })
		for _, f := range sorted {
			status := "emitted"
			if f.CacheHit {
				status = "cached"
			}
			fmt.Fprintf(&b, "  %-50s %-8s %6s  %4d lines  %5d bytes  %2d imports\n",
				f.QualifiedName, status, f.Duration.Round(time.Microsecond), f.Lines, f.Bytes, f.Imports)
		}
	}

	return b.String()
}

// RenderJSON formats the report as machine-readable JSON, regardless of
// Level (SPEC_FULL.md §10.1). No faktc flag selects this output.
func (r *Reporter) RenderJSON() ([]byte, error) {
	snap := r.snapshot()
	return json.Marshal(snap)
}
