package games

import (
	"github.com/preston-bernstein/courtside-sim/internal/domain/games"
)

// Store defines the contract for persisting and retrieving games.
type Store interface {
	ListGames() []games.Game
	GetGame(id string) (games.Game, bool)
	SetGames([]games.Game)
}

// Filter narrows a game listing. Zero values match everything.
type Filter struct {
	Date   string
	TeamID string
	Played *bool
}

func (f Filter) match(g games.Game) bool {
	if f.Date != "" && g.Date != f.Date {
		return false
	}
	if f.TeamID != "" && g.HomeTeamID != f.TeamID && g.AwayTeamID != f.TeamID {
		return false
	}
	if f.Played != nil && g.Played != *f.Played {
		return false
	}
	return true
}

// Service coordinates game operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Games returns the schedule in date order, narrowed by f.
func (s *Service) Games(f Filter) []games.Game {
	all := s.store.ListGames()
	out := make([]games.Game, 0, len(all))
	for _, g := range all {
		if f.match(g) {
			out = append(out, g)
		}
	}
	return out
}

// GameByID returns a single game if present.
func (s *Service) GameByID(id string) (games.Game, bool) {
	return s.store.GetGame(id)
}

// NextRound returns the earliest date holding unplayed games and those games.
func (s *Service) NextRound() (string, []games.Game) {
	var (
		date  string
		round []games.Game
	)
	for _, g := range s.store.ListGames() {
		if g.Played {
			continue
		}
		if date == "" {
			date = g.Date
		}
		if g.Date != date {
			break
		}
		round = append(round, g)
	}
	return date, round
}

// ReplaceGames swaps the in-memory schedule with a new snapshot.
func (s *Service) ReplaceGames(items []games.Game) {
	s.store.SetGames(items)
}
