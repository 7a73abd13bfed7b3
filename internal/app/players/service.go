package players

import (
	"sort"

	"github.com/preston-bernstein/courtside-sim/internal/domain/players"
	"github.com/preston-bernstein/courtside-sim/internal/domain/roles"
	"github.com/preston-bernstein/courtside-sim/internal/domain/teams"
)

// Store is the read side of the team store; players live on rosters.
type Store interface {
	ListTeams() []teams.Team
}

// Rostered is a player together with the team carrying them.
type Rostered struct {
	TeamID string `json:"teamId"`
	players.Player
}

// Service answers player and role-fit lookups across every roster.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Players returns every rostered player ordered by id.
func (s *Service) Players() []Rostered {
	var out []Rostered
	for _, t := range s.store.ListTeams() {
		for _, p := range t.Roster {
			out = append(out, Rostered{TeamID: t.ID, Player: p})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PlayerByID returns a single player if present.
func (s *Service) PlayerByID(id string) (Rostered, bool) {
	for _, t := range s.store.ListTeams() {
		if p, ok := t.Player(id); ok {
			return Rostered{TeamID: t.ID, Player: p}, true
		}
	}
	return Rostered{}, false
}

// RoleReport is a player's current archetype and ranked alternatives.
type RoleReport struct {
	Player  Rostered    `json:"player"`
	Current *roles.Fit  `json:"current,omitempty"`
	Best    roles.Fit   `json:"best"`
	Ranked  []roles.Fit `json:"ranked"`
}

// RoleFits scores the player against every archetype for their position.
func (s *Service) RoleFits(id string) (RoleReport, bool) {
	p, ok := s.PlayerByID(id)
	if !ok {
		return RoleReport{}, false
	}
	ranked := roles.RankFits(p.Player)
	report := RoleReport{Player: p, Ranked: ranked}
	if len(ranked) > 0 {
		report.Best = ranked[0]
	}
	if a, ok := roles.Resolve(p.Player); ok {
		report.Current = &roles.Fit{Archetype: a, Score: roles.FitScore(p.Player, a)}
	}
	return report, true
}
