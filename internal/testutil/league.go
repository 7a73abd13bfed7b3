package testutil

import (
	appgames "github.com/preston-bernstein/courtside-sim/internal/app/games"
	"github.com/preston-bernstein/courtside-sim/internal/app/league"
	appplayers "github.com/preston-bernstein/courtside-sim/internal/app/players"
	appteams "github.com/preston-bernstein/courtside-sim/internal/app/teams"
	"github.com/preston-bernstein/courtside-sim/internal/domain/games"
	"github.com/preston-bernstein/courtside-sim/internal/fixture"
	"github.com/preston-bernstein/courtside-sim/internal/sim"
	"github.com/preston-bernstein/courtside-sim/internal/store"
)

// FixtureSeed keeps fixture leagues reproducible across test runs.
const FixtureSeed = 2024

// League bundles a fixture-backed store with the services built on it.
type League struct {
	Store   *store.MemoryStore
	League  *league.Service
	Teams   *appteams.Service
	Players *appplayers.Service
	Games   *appgames.Service
}

// NewLeague seeds a memory store with the fixture teams and schedule and wires
// fast-mode services over it. deps may carry a logger, recorder, or publisher.
func NewLeague(deps league.Deps) League {
	mem := store.NewMemoryStore("2024")
	mem.SetTeams(fixture.Teams())
	mem.SetGames(fixture.Schedule(fixture.SeasonStart))
	svc := league.New(mem, league.Config{
		DefaultMode: games.ModeFast,
		Seed:        FixtureSeed,
		Engine:      []sim.Option{sim.WithCoaching(fixture.Staff())},
	}, deps)
	return League{
		Store:   mem,
		League:  svc,
		Teams:   appteams.NewService(mem),
		Players: appplayers.NewService(mem),
		Games:   appgames.NewService(mem),
	}
}
