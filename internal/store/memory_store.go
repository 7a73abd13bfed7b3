package store

import (
	"sort"
	"sync"

	"github.com/preston-bernstein/courtside-sim/internal/domain/games"
	"github.com/preston-bernstein/courtside-sim/internal/domain/seasons"
	"github.com/preston-bernstein/courtside-sim/internal/domain/teams"
)

// MemoryStore keeps a thread-safe snapshot of the league in memory.
type MemoryStore struct {
	mu     sync.RWMutex
	teams  map[string]teams.Team
	games  map[string]games.Game
	season seasons.Season
}

// NewMemoryStore constructs an empty MemoryStore holding an empty season.
func NewMemoryStore(seasonID string) *MemoryStore {
	return &MemoryStore{
		teams:  make(map[string]teams.Team),
		games:  make(map[string]games.Game),
		season: seasons.New(seasonID),
	}
}

// ListTeams returns the teams ordered by id.
func (s *MemoryStore) ListTeams() []teams.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]teams.Team, 0, len(s.teams))
	for _, t := range s.teams {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// GetTeam retrieves a team by ID.
func (s *MemoryStore) GetTeam(id string) (teams.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[id]
	return t, ok
}

// SetTeams replaces the existing teams.
func (s *MemoryStore) SetTeams(list []teams.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams = make(map[string]teams.Team, len(list))
	for _, t := range list {
		s.teams[t.ID] = t
	}
}

// ListGames returns the schedule ordered by date, then id.
func (s *MemoryStore) ListGames() []games.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]games.Game, 0, len(s.games))
	for _, g := range s.games {
		result = append(result, g)
	}
	SortGames(result)
	return result
}

// GetGame retrieves a game by ID.
func (s *MemoryStore) GetGame(id string) (games.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	return g, ok
}

// SetGames replaces the existing schedule.
func (s *MemoryStore) SetGames(list []games.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]games.Game, len(list))
	for _, g := range list {
		s.games[g.ID] = g
	}
}

// PutGames inserts or replaces the given games.
func (s *MemoryStore) PutGames(list ...games.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range list {
		s.games[g.ID] = g
	}
}

// Season returns the current season ledger.
func (s *MemoryStore) Season() seasons.Season {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.season
}

// SetSeason replaces the season ledger.
func (s *MemoryStore) SetSeason(season seasons.Season) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.season = season
}

// SortGames orders games by date, then id.
func SortGames(list []games.Game) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Date != list[j].Date {
			return list[i].Date < list[j].Date
		}
		return list[i].ID < list[j].ID
	})
}
