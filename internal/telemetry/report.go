package telemetry

import (
	"sync"
	"sync/atomic"
	"time"
)

// Phase names accumulated into a Report's timing table (spec.md §4.8).
const (
	PhaseParse     = "parse"
	PhaseValidate  = "validate"
	PhaseTransform = "transform"
	PhaseEmit      = "emit"
	PhaseCache     = "cache"
	PhaseTotal     = "total"
)

// FakeMetrics captures the per-declaration accounting spec.md §4.8 step 3d
// asks the orchestrator to accumulate.
type FakeMetrics struct {
	QualifiedName string
	Duration      time.Duration
	Lines         int
	Bytes         int
	Imports       int
	CacheHit      bool
}

// Reporter aggregates phase timings, per-fake metrics, and cache-hit counts
// for a single compilation. The zero value is not ready for use; call New.
//
// Shared state matches spec.md §5's "telemetry uses a single thread-local
// facade; aggregate counters use atomic increments": the cache-hit counter
// is a lock-free atomic, while the phase/fakes maps (written far less often,
// once per phase or per declaration) are guarded by a mutex.
type Reporter struct {
	level Level

	mu     sync.Mutex
	phases map[string]time.Duration
	fakes  []FakeMetrics

	cacheHits atomic.Int64
}

// New returns a Reporter that emits at the given Level.
func New(level Level) *Reporter {
	return &Reporter{
		level:  level,
		phases: make(map[string]time.Duration),
	}
}

// Level reports the Reporter's configured verbosity.
func (r *Reporter) Level() Level {
	return r.level
}

// StartPhase begins timing a named phase and returns a func that records its
// elapsed duration when called. Safe to call concurrently for distinct
// phase names; calling it twice for the same name accumulates.
func (r *Reporter) StartPhase(name string) func() {
	start := time.Now()
	return func() {
		elapsed := time.Since(start)
		r.mu.Lock()
		r.phases[name] += elapsed
		r.mu.Unlock()
	}
}

// RecordFake appends a completed declaration's metrics to the report.
func (r *Reporter) RecordFake(m FakeMetrics) {
	r.mu.Lock()
	r.fakes = append(r.fakes, m)
	r.mu.Unlock()
}

// IncrementCacheHit bumps the cache-hit counter (spec.md §4.8 step 3b).
func (r *Reporter) IncrementCacheHit() {
	r.cacheHits.Add(1)
}

// CacheHits returns the current cache-hit count.
func (r *Reporter) CacheHits() int64 {
	return r.cacheHits.Load()
}

// snapshot is the serializable view of a Reporter at report time.
type snapshot struct {
	Phases    map[string]time.Duration `json:"phases"`
	Fakes     []FakeMetrics            `json:"fakes"`
	CacheHits int64                    `json:"cacheHits"`
}

func (r *Reporter) snapshot() snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	phases := make(map[string]time.Duration, len(r.phases))
	for k, v := range r.phases {
		phases[k] = v
	}
	fakes := append([]FakeMetrics{}, r.fakes...)
	return snapshot{Phases: phases, Fakes: fakes, CacheHits: r.cacheHits.Load()}
}
