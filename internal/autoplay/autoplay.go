package autoplay

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/courtside-sim/internal/app/league"
	"github.com/preston-bernstein/courtside-sim/internal/logging"
	"github.com/preston-bernstein/courtside-sim/internal/metrics"
)

const defaultInterval = 30 * time.Second

// RoundPlayer advances the schedule by one game day.
type RoundPlayer interface {
	PlayNextRound(ctx context.Context) (league.Round, error)
}

// Runner plays the next round of the schedule on an interval.
type Runner struct {
	league   RoundPlayer
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	exited   chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the autoplay loop.
type Status struct {
	ConsecutiveFailures int       `json:"consecutiveFailures"`
	LastError           string    `json:"lastError,omitempty"`
	LastAttempt         time.Time `json:"lastAttempt"`
	LastSuccess         time.Time `json:"lastSuccess"`
	LastDate            string    `json:"lastDate,omitempty"`
	SeasonComplete      bool      `json:"seasonComplete"`
}

// IsReady reports whether the loop has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Runner. A non-positive interval uses the default.
func New(player RoundPlayer, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Runner{
		league:   player,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		done:     make(chan struct{}),
		exited:   make(chan struct{}),
	}
}

// Start plays rounds until the context is cancelled or Stop is called.
func (r *Runner) Start(ctx context.Context) {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return
	}
	r.started = true
	r.startMu.Unlock()

	r.ticker = time.NewTicker(r.interval)

	go func() {
		defer close(r.exited)
		logging.Info(r.logger, "autoplay started", "interval", r.interval.String())
		r.playOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				r.stopTicker()
				logging.Info(r.logger, "autoplay stopped")
				return
			case <-r.done:
				r.stopTicker()
				logging.Info(r.logger, "autoplay stopped")
				return
			case <-r.ticker.C:
				r.playOnce(ctx)
			}
		}
	}()
}

// Stop halts the loop and waits for an in-flight round to finish, or for ctx
// to expire. It is safe to call more than once.
func (r *Runner) Stop(ctx context.Context) error {
	r.stopOnce.Do(func() {
		close(r.done)
		r.stopTicker()
	})

	r.startMu.Lock()
	started := r.started
	r.startMu.Unlock()
	if !started {
		return nil
	}
	select {
	case <-r.exited:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runner) playOnce(ctx context.Context) {
	start := time.Now()
	r.recordAttempt(start)
	round, err := r.league.PlayNextRound(ctx)
	if errors.Is(err, league.ErrNoPendingGames) {
		// Nothing left to play is a healthy idle state.
		r.metrics.RecordAutoplayCycle(time.Since(start), nil)
		r.recordSuccess(start, "", true)
		return
	}
	r.metrics.RecordAutoplayCycle(time.Since(start), err)
	if err != nil {
		logging.Error(r.logger, "autoplay round failed", err, logging.Since(start))
		r.recordFailure(err, start)
		return
	}
	r.recordSuccess(start, round.Date, false)
}

func (r *Runner) stopTicker() {
	if r.ticker != nil {
		r.ticker.Stop()
	}
}

func (r *Runner) recordAttempt(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.LastAttempt = at
}

func (r *Runner) recordSuccess(at time.Time, date string, complete bool) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures = 0
	r.status.LastError = ""
	r.status.LastSuccess = at
	r.status.SeasonComplete = complete
	if date != "" {
		r.status.LastDate = date
	}
}

func (r *Runner) recordFailure(err error, at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures++
	if err != nil {
		r.status.LastError = err.Error()
	}
	r.status.LastAttempt = at
}

// Status returns a snapshot of the loop's recent health.
func (r *Runner) Status() Status {
	r.statusMu.RLock()
	defer r.statusMu.RUnlock()
	return r.status
}
