package metrics

import (
	"sync"
	"time"
)

type modeStats struct {
	games        int
	possessions  int
	overtimes    int
	lastDuration time.Duration
}

// Recorder captures in-memory simulation counters and forwards them to
// OpenTelemetry instruments when configured. A nil Recorder is a no-op.
type Recorder struct {
	mu             sync.Mutex
	modes          map[string]*modeStats
	folds          map[string]int
	autoplayCycles int
	autoplayErrors int
	otel           *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		modes: make(map[string]*modeStats),
		folds: make(map[string]int),
		otel:  otel,
	}
}

// RecordGame tracks one simulated game for a mode.
func (r *Recorder) RecordGame(mode string, possessions, overtimes int, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.modes[mode]
	if !ok {
		stats = &modeStats{}
		r.modes[mode] = stats
	}
	stats.games++
	stats.possessions += possessions
	stats.overtimes += overtimes
	stats.lastDuration = duration
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordGame(mode, possessions, overtimes, duration)
	}
}

// RecordFold tracks a game folded into a stat stream.
func (r *Recorder) RecordFold(stream string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.folds[stream]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFold(stream)
	}
}

// RecordAutoplayCycle tracks autoplay cycles and errors.
func (r *Recorder) RecordAutoplayCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.autoplayCycles++
	if err != nil {
		r.autoplayErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordAutoplay(duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot returns a copy of the counters for a simulation mode.
type Snapshot struct {
	Games        int
	Possessions  int
	Overtimes    int
	LastDuration time.Duration
}

func (r *Recorder) Snapshot(mode string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.modes[mode]
	if !ok {
		return Snapshot{}
	}
	return Snapshot{
		Games:        stats.games,
		Possessions:  stats.possessions,
		Overtimes:    stats.overtimes,
		LastDuration: stats.lastDuration,
	}
}

// Folds returns how many games were folded into stream.
func (r *Recorder) Folds(stream string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.folds[stream]
}

// AutoplayCycles returns total cycles and failed cycles.
func (r *Recorder) AutoplayCycles() (cycles, errors int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.autoplayCycles, r.autoplayErrors
}
