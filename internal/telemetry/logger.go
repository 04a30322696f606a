package telemetry

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b"))
	debugStyle = lipgloss.NewStyle().Foreground(colorMuted)
)

// Logger is a level-gated line logger, the Fakt analog of the teacher's
// diagnostic.Collector's quiet/strict discipline generalized to four levels
// instead of two (SPEC_FULL.md §10.1). A nil *Logger is valid and silently
// discards everything, matching diagnostic.Collector's nil-receiver idiom.
type Logger struct {
	level Level
	out   io.Writer
}

// NewLogger returns a Logger bound to os.Stderr at the given Level.
func NewLogger(level Level) *Logger {
	return &Logger{level: level, out: os.Stderr}
}

// Verbosef prints a message only at LevelVerbose or above.
func (l *Logger) Verbosef(format string, args ...any) {
	if l == nil || l.level < LevelVerbose {
		return
	}
	fmt.Fprintln(l.out, fmt.Sprintf(format, args...))
}

// Debugf prints a muted-styled message only at LevelDebug.
func (l *Logger) Debugf(format string, args ...any) {
	if l == nil || l.level < LevelDebug {
		return
	}
	fmt.Fprintln(l.out, debugStyle.Render(fmt.Sprintf(format, args...)))
}

// Warnf prints a warning-styled message at LevelNormal or above. Warnings
// are never suppressed above LevelSilent — a degraded-but-safe condition
// (e.g. a corrupt cache line, a cache-lock timeout) should still surface
// unless the caller explicitly asked for silence.
func (l *Logger) Warnf(format string, args ...any) {
	if l == nil || l.level < LevelNormal {
		return
	}
	fmt.Fprintln(l.out, warnStyle.Render("warning: "+fmt.Sprintf(format, args...)))
}
