package autoplay

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/preston-bernstein/courtside-sim/internal/app/league"
	"github.com/preston-bernstein/courtside-sim/internal/metrics"
)

type stubPlayer struct {
	calls  atomic.Int32
	notify chan struct{}
	once   sync.Once
	err    error
	date   string
}

func (s *stubPlayer) PlayNextRound(ctx context.Context) (league.Round, error) {
	s.calls.Add(1)
	if s.notify != nil {
		s.once.Do(func() { close(s.notify) })
	}
	if s.err != nil {
		return league.Round{}, s.err
	}
	return league.Round{Date: s.date}, nil
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for first round")
	}
}

func TestRunnerPlaysRoundsOnInterval(t *testing.T) {
	player := &stubPlayer{notify: make(chan struct{}), date: "2024-10-22"}
	rec := metrics.NewRecorder()
	r := New(player, nil, rec, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)
	waitFor(t, player.notify)
	time.Sleep(40 * time.Millisecond)
	cancel()
	_ = r.Stop(context.Background())

	if player.calls.Load() < 2 {
		t.Fatalf("expected repeated rounds, got %d", player.calls.Load())
	}
	st := r.Status()
	if !st.IsReady() || st.LastDate != "2024-10-22" || st.SeasonComplete {
		t.Fatalf("unexpected status %+v", st)
	}
	if cycles, errs := rec.AutoplayCycles(); cycles < 2 || errs != 0 {
		t.Fatalf("expected recorded cycles without errors, got %d/%d", cycles, errs)
	}
}

func TestRunnerTreatsCompleteSeasonAsHealthy(t *testing.T) {
	player := &stubPlayer{notify: make(chan struct{}), err: league.ErrNoPendingGames}
	r := New(player, nil, nil, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)
	waitFor(t, player.notify)
	_ = r.Stop(context.Background())

	deadline := time.Now().Add(500 * time.Millisecond)
	for !r.Status().IsReady() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if st := r.Status(); !st.IsReady() || !st.SeasonComplete {
		t.Fatalf("expected ready and complete, got %+v", st)
	}
}

func TestRunnerRecordsFailures(t *testing.T) {
	rec := metrics.NewRecorder()
	r := New(&stubPlayer{err: errors.New("boom")}, nil, rec, time.Hour)
	for i := 0; i < 3; i++ {
		r.playOnce(context.Background())
	}
	st := r.Status()
	if st.ConsecutiveFailures != 3 || st.LastError != "boom" || st.IsReady() {
		t.Fatalf("unexpected status %+v", st)
	}
	if _, errs := rec.AutoplayCycles(); errs != 3 {
		t.Fatalf("expected 3 recorded errors, got %d", errs)
	}
}

func TestRunnerRecoversAfterSuccess(t *testing.T) {
	player := &stubPlayer{err: errors.New("boom")}
	r := New(player, nil, nil, time.Hour)
	r.playOnce(context.Background())
	player.err = nil
	player.date = "2024-10-24"
	r.playOnce(context.Background())
	if st := r.Status(); st.ConsecutiveFailures != 0 || st.LastError != "" || !st.IsReady() {
		t.Fatalf("expected recovery, got %+v", st)
	}
}

func TestRunnerStopsOnContextCancel(t *testing.T) {
	player := &stubPlayer{notify: make(chan struct{})}
	r := New(player, nil, nil, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)
	waitFor(t, player.notify)
	cancel()
	_ = r.Stop(context.Background())

	time.Sleep(10 * time.Millisecond)
	before := player.calls.Load()
	time.Sleep(20 * time.Millisecond)
	if player.calls.Load() != before {
		t.Fatalf("expected no rounds after stop; before=%d after=%d", before, player.calls.Load())
	}
}

func TestRunnerStartAndStopAreIdempotent(t *testing.T) {
	r := New(&stubPlayer{}, nil, nil, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)
	r.Start(ctx)
	if err := r.Stop(context.Background()); err != nil {
		t.Fatalf("first stop: %v", err)
	}
	if err := r.Stop(context.Background()); err != nil {
		t.Fatalf("second stop: %v", err)
	}
}

func TestRunnerDefaultsInterval(t *testing.T) {
	r := New(&stubPlayer{}, nil, nil, 0)
	if r.interval != defaultInterval {
		t.Fatalf("expected default interval %s, got %s", defaultInterval, r.interval)
	}
}

func TestStatusIsReady(t *testing.T) {
	if (Status{}).IsReady() {
		t.Fatalf("expected zero status not ready")
	}
	if !(Status{LastSuccess: time.Now(), ConsecutiveFailures: 2}).IsReady() {
		t.Fatalf("expected ready under failure threshold")
	}
}

type blockingPlayer struct {
	entered  chan struct{}
	release  chan struct{}
	once     sync.Once
	finished atomic.Bool
}

func newBlockingPlayer() *blockingPlayer {
	return &blockingPlayer{entered: make(chan struct{}), release: make(chan struct{})}
}

func (b *blockingPlayer) PlayNextRound(ctx context.Context) (league.Round, error) {
	b.once.Do(func() { close(b.entered) })
	<-b.release
	b.finished.Store(true)
	return league.Round{Date: "2024-10-22"}, nil
}

func TestStopWaitsForInFlightRound(t *testing.T) {
	player := newBlockingPlayer()
	r := New(player, nil, nil, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)
	waitFor(t, player.entered)

	stopped := make(chan error, 1)
	go func() { stopped <- r.Stop(context.Background()) }()
	select {
	case <-stopped:
		t.Fatalf("expected stop to wait for the running round")
	case <-time.After(20 * time.Millisecond):
	}

	close(player.release)
	select {
	case err := <-stopped:
		if err != nil {
			t.Fatalf("stop: %v", err)
		}
		if !player.finished.Load() {
			t.Fatalf("expected round finished before stop returned")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for stop")
	}
}

func TestStopGivesUpWhenContextExpires(t *testing.T) {
	player := newBlockingPlayer()
	r := New(player, nil, nil, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)
	waitFor(t, player.entered)
	defer close(player.release)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer stopCancel()
	if err := r.Stop(stopCtx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestStopBeforeStartReturns(t *testing.T) {
	r := New(&stubPlayer{}, nil, nil, time.Hour)
	if err := r.Stop(context.Background()); err != nil {
		t.Fatalf("stop without start: %v", err)
	}
}
