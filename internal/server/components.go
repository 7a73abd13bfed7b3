package server

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/courtside-sim/internal/app/league"
	"github.com/preston-bernstein/courtside-sim/internal/config"
	"github.com/preston-bernstein/courtside-sim/internal/domain/games"
	"github.com/preston-bernstein/courtside-sim/internal/events"
	"github.com/preston-bernstein/courtside-sim/internal/fixture"
	"github.com/preston-bernstein/courtside-sim/internal/logging"
	"github.com/preston-bernstein/courtside-sim/internal/metrics"
	"github.com/preston-bernstein/courtside-sim/internal/sim"
	"github.com/preston-bernstein/courtside-sim/internal/snapshots"
	"github.com/preston-bernstein/courtside-sim/internal/store"
)

// Overridable in tests.
var (
	openSQLite  = func(ctx context.Context, path string) (store.SeasonRepository, error) { return store.OpenSQLite(ctx, path) }
	connectNATS  = func(url, subject string) (events.Publisher, error) { return events.NewNATSPublisher(url, subject) }
)

// buildRepository selects season persistence by driver. A failed open falls
// back to in-memory only.
func buildRepository(cfg config.Config, logger *slog.Logger) store.SeasonRepository {
	switch cfg.Persist.Driver {
	case config.PersistFS:
		logging.Info(logger, "persisting season snapshots", logging.FieldDriver, config.PersistFS, logging.FieldPath, cfg.Persist.SnapshotDir)
		return snapshots.NewRepository(cfg.Persist.SnapshotDir)
	case config.PersistSQLite:
		repo, err := openSQLite(context.Background(), cfg.Persist.SQLitePath)
		if err != nil {
			logging.Error(logger, "sqlite open failed, continuing without persistence", err, logging.FieldPath, cfg.Persist.SQLitePath)
			return nil
		}
		logging.Info(logger, "persisting season snapshots", logging.FieldDriver, config.PersistSQLite, logging.FieldPath, cfg.Persist.SQLitePath)
		return repo
	}
	return nil
}

// buildPublisher connects the game feed when a NATS URL is configured.
func buildPublisher(cfg config.Config, logger *slog.Logger) events.Publisher {
	if cfg.Events.URL == "" {
		return events.Noop{}
	}
	pub, err := connectNATS(cfg.Events.URL, cfg.Events.Subject)
	if err != nil {
		logging.Warn(logger, "nats connect failed, game feed disabled", "error", err)
		return events.Noop{}
	}
	logging.Info(logger, "publishing game feed", "subject", cfg.Events.Subject)
	return events.NewRetryingPublisher(pub, logger, 0, 0)
}

// buildLeague seeds a memory store with the fixture league and wires the league service.
func buildLeague(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, repo store.SeasonRepository, pub events.Publisher) (*store.MemoryStore, *league.Service) {
	mem := store.NewMemoryStore(cfg.SeasonID)
	mem.SetTeams(fixture.Teams())
	mem.SetGames(fixture.Schedule(fixture.SeasonStart))

	engine := []sim.Option{sim.WithCoaching(fixture.Staff())}
	if cfg.Sim.Possessions > 0 {
		engine = append(engine, sim.WithPossessions(cfg.Sim.Possessions))
	}
	svc := league.New(mem, league.Config{
		SeasonID:    cfg.SeasonID,
		DefaultMode: games.ParseMode(cfg.Sim.DefaultMode, games.ModeDetailed),
		Workers:     cfg.Sim.Workers,
		Seed:        uint64(cfg.Sim.Seed),
		Engine:      engine,
	}, league.Deps{
		Repository: repo,
		Publisher:  pub,
		Logger:     logger,
		Metrics:    recorder,
	})
	return mem, svc
}
