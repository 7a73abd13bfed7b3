package league

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	appgames "github.com/preston-bernstein/courtside-sim/internal/app/games"
	"github.com/preston-bernstein/courtside-sim/internal/domain/games"
	"github.com/preston-bernstein/courtside-sim/internal/domain/seasons"
	"github.com/preston-bernstein/courtside-sim/internal/domain/stats"
	"github.com/preston-bernstein/courtside-sim/internal/events"
	"github.com/preston-bernstein/courtside-sim/internal/logging"
	"github.com/preston-bernstein/courtside-sim/internal/metrics"
	"github.com/preston-bernstein/courtside-sim/internal/sim"
	"github.com/preston-bernstein/courtside-sim/internal/store"
	"github.com/preston-bernstein/courtside-sim/internal/timeutil"
)

var (
	ErrGameNotFound   = errors.New("game not found")
	ErrTeamNotFound   = errors.New("team not found")
	ErrAlreadyPlayed  = errors.New("game already played")
	ErrNoPendingGames = errors.New("no pending games")
)

const (
	defaultWorkers = 4
	// settleTimeout bounds persisting and publishing a commit, which outlive the caller's context.
	settleTimeout = 10 * time.Second
)

// Config tunes the league service.
type Config struct {
	SeasonID    string
	DefaultMode games.Mode
	Workers     int
	Seed        uint64 // 0 seeds from the clock
	Engine      []sim.Option
}

// Deps are the optional collaborators. Nil members are skipped.
type Deps struct {
	Repository store.SeasonRepository
	Publisher  events.Publisher
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// Round is one simulated date of the schedule.
type Round struct {
	Date  string       `json:"date"`
	Games []games.Game `json:"games"`
}

// Service plays scheduled games and folds them into the season ledger.
// Plays and folds are serialized; reads go straight to the store.
type Service struct {
	store     *store.MemoryStore
	schedule  *appgames.Service
	cfg       Config
	repo      store.SeasonRepository
	publisher events.Publisher
	logger    *slog.Logger
	metrics   *metrics.Recorder
	now       func() time.Time

	mu     sync.Mutex
	seedMu sync.Mutex
	seeder *rand.Rand
}

// New constructs a Service over mem.
func New(mem *store.MemoryStore, cfg Config, deps Deps) *Service {
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.DefaultMode == "" {
		cfg.DefaultMode = games.ModeDetailed
	}
	if cfg.SeasonID == "" {
		cfg.SeasonID = mem.Season().ID
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	publisher := deps.Publisher
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &Service{
		store:     mem,
		schedule:  appgames.NewService(mem),
		cfg:       cfg,
		repo:      deps.Repository,
		publisher: publisher,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
		now:       time.Now,
		seeder:    sim.NewRand(seed),
	}
}

// Mode parses raw, falling back to the configured default.
func (s *Service) Mode(raw string) games.Mode {
	return games.ParseMode(raw, s.cfg.DefaultMode)
}

// Season returns the current ledger.
func (s *Service) Season() seasons.Season {
	return s.store.Season()
}

// Leaders returns per-player summaries for stream.
func (s *Service) Leaders(stream stats.Stream) []stats.Summary {
	return s.store.Season().Stats(stream).Leaders()
}

// Standings returns the regular-season table.
func (s *Service) Standings() []seasons.Standing {
	return s.store.Season().Standings()
}

// PlayGame simulates one scheduled game and records it.
func (s *Service) PlayGame(ctx context.Context, id string, mode games.Mode, opts sim.Options) (sim.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.store.GetGame(id)
	if !ok {
		return sim.Result{}, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	if g.Played {
		return sim.Result{}, fmt.Errorf("%w: %s", ErrAlreadyPlayed, id)
	}
	res, err := s.simulate(g, mode, s.nextSeed(), opts)
	if err != nil {
		return sim.Result{}, err
	}
	if err := s.commit(ctx, []sim.Result{res}); err != nil {
		return sim.Result{}, err
	}
	return res, nil
}

// PlayNextRound simulates every pending game of the earliest unplayed date in
// parallel, then folds them in schedule order. Seeds are drawn in schedule
// order, so a seeded league replays identically for any worker count.
func (s *Service) PlayNextRound(ctx context.Context) (Round, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	date, pending := s.schedule.NextRound()
	if len(pending) == 0 {
		return Round{}, ErrNoPendingGames
	}
	seeds := make([]uint64, len(pending))
	for i := range seeds {
		seeds[i] = s.nextSeed()
	}

	results := make([]sim.Result, len(pending))
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(s.cfg.Workers)
	for i, g := range pending {
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := s.simulate(g, s.cfg.DefaultMode, seeds[i], sim.Options{})
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Round{}, err
	}
	if err := s.commit(ctx, results); err != nil {
		return Round{}, err
	}

	round := Round{Date: date, Games: make([]games.Game, len(results))}
	for i, r := range results {
		round.Games[i] = r.Game
	}
	logging.Info(s.logger, "round played",
		logging.FieldDate, date,
		logging.FieldCount, len(round.Games),
		logging.FieldSeason, s.cfg.SeasonID,
		logging.Since(start),
	)
	return round, nil
}

// Exhibition plays two teams outside the schedule. The result is neither
// stored nor folded into the season.
func (s *Service) Exhibition(homeID, awayID string, mode games.Mode, opts sim.Options) (sim.Result, error) {
	g := games.NewScheduled("exh-"+uuid.NewString(), timeutil.FormatDate(s.now().UTC()), homeID, awayID, false)
	return s.simulate(g, mode, s.nextSeed(), opts)
}

// Restore loads a persisted season and its played games into the store.
// A missing season leaves the fresh ledger in place.
func (s *Service) Restore(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	season, err := s.repo.LoadSeason(ctx, s.cfg.SeasonID)
	if errors.Is(err, store.ErrSeasonNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load season %s: %w", s.cfg.SeasonID, err)
	}
	played, err := s.repo.LoadGames(ctx, s.cfg.SeasonID)
	if err != nil {
		return fmt.Errorf("load games for %s: %w", s.cfg.SeasonID, err)
	}

	season, healed := s.refold(season, played)
	s.store.PutGames(played...)
	s.store.SetSeason(season)
	if healed > 0 {
		logging.Warn(s.logger, "season ledger behind saved games, refolded",
			logging.FieldSeason, season.ID,
			logging.FieldCount, healed,
		)
		if err := s.repo.SaveSeason(ctx, season); err != nil {
			logging.Error(s.logger, "persist season failed", err, logging.FieldSeason, season.ID)
		}
	}
	logging.Info(s.logger, "season restored",
		logging.FieldSeason, season.ID,
		logging.FieldCount, len(season.Results),
	)
	return nil
}

// refold records saved played games the ledger is missing, in schedule order.
// Games are saved before the season, so a failed season save leaves the ledger behind.
func (s *Service) refold(season seasons.Season, played []games.Game) (seasons.Season, int) {
	ordered := append([]games.Game(nil), played...)
	store.SortGames(ordered)

	healed := 0
	for _, g := range ordered {
		if !g.Played || season.Has(g.ID) {
			continue
		}
		next, added, err := season.Record(g)
		if err != nil {
			logging.Warn(s.logger, "saved game not folded", logging.FieldGameID, g.ID, "error", err)
			continue
		}
		if added {
			season = next
			healed++
		}
	}
	return season, healed
}

func (s *Service) nextSeed() uint64 {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()
	return s.seeder.Uint64()
}

func (s *Service) simulate(g games.Game, mode games.Mode, seed uint64, opts sim.Options) (sim.Result, error) {
	home, ok := s.store.GetTeam(g.HomeTeamID)
	if !ok {
		return sim.Result{}, fmt.Errorf("%w: %s", ErrTeamNotFound, g.HomeTeamID)
	}
	away, ok := s.store.GetTeam(g.AwayTeamID)
	if !ok {
		return sim.Result{}, fmt.Errorf("%w: %s", ErrTeamNotFound, g.AwayTeamID)
	}

	start := time.Now()
	res, err := sim.New(sim.NewRand(seed), s.cfg.Engine...).Play(g, home, away, mode, opts)
	if err != nil {
		return sim.Result{}, fmt.Errorf("simulate %s: %w", g.ID, err)
	}
	s.metrics.RecordGame(string(res.Game.Mode), res.Possessions, res.Overtimes, time.Since(start))
	return res, nil
}

// commit folds results in order. The store only changes once every fold succeeded.
func (s *Service) commit(ctx context.Context, results []sim.Result) error {
	season := s.store.Season()
	played := make([]games.Game, 0, len(results))
	for _, r := range results {
		next, added, err := season.Record(r.Game)
		if err != nil {
			return fmt.Errorf("record %s: %w", r.Game.ID, err)
		}
		season = next
		if added {
			s.metrics.RecordFold(string(stats.StreamFor(r.Game)))
		}
		played = append(played, r.Game)
	}

	s.store.PutGames(played...)
	s.store.SetSeason(season)

	for _, g := range played {
		logging.Info(s.logger, "game final",
			logging.FieldGameID, g.ID,
			logging.FieldMode, string(g.Mode),
			logging.FieldScore, fmt.Sprintf("%d-%d", *g.HomeScore, *g.AwayScore),
		)
	}
	// The fold is committed; a cancelled caller must not drop its persistence.
	settle, cancel := context.WithTimeout(context.WithoutCancel(ctx), settleTimeout)
	defer cancel()
	s.persist(settle, season, played)
	s.publish(settle, season.ID, played)
	return nil
}

// persist writes the ledger; failures are logged and the in-memory fold stands.
func (s *Service) persist(ctx context.Context, season seasons.Season, played []games.Game) {
	if s.repo == nil {
		return
	}
	if err := s.repo.SaveGames(ctx, season.ID, played); err != nil {
		logging.Error(s.logger, "persist games failed", err, logging.FieldSeason, season.ID)
		return
	}
	if err := s.repo.SaveSeason(ctx, season); err != nil {
		logging.Error(s.logger, "persist season failed", err, logging.FieldSeason, season.ID)
	}
}

func (s *Service) publish(ctx context.Context, seasonID string, played []games.Game) {
	at := s.now()
	for _, g := range played {
		if err := s.publisher.Publish(ctx, events.NewGameFinal(seasonID, g, at)); err != nil {
			logging.Warn(s.logger, "publish game final failed", logging.FieldGameID, g.ID, "error", err)
		}
	}
}
