package teams

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/courtside-sim/internal/domain/teams"
)

// Store defines the contract for persisting and retrieving teams.
type Store interface {
	ListTeams() []teams.Team
	GetTeam(id string) (teams.Team, bool)
	SetTeams([]teams.Team)
}

// Service coordinates team operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Teams returns the current set of teams ordered by id.
func (s *Service) Teams() []teams.Team {
	return s.store.ListTeams()
}

// TeamByID returns a single team if present.
func (s *Service) TeamByID(id string) (teams.Team, bool) {
	return s.store.GetTeam(id)
}

// ReplaceTeams validates every team, then swaps the in-memory set. Nothing
// is replaced when any team is invalid or ids repeat.
func (s *Service) ReplaceTeams(items []teams.Team) error {
	seen := make(map[string]bool, len(items))
	var errs []error
	for _, t := range items {
		if seen[t.ID] {
			errs = append(errs, fmt.Errorf("%w: duplicate team id %s", teams.ErrInvalidRoster, t.ID))
			continue
		}
		seen[t.ID] = true
		if err := t.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("team %s: %w", t.ID, err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	s.store.SetTeams(items)
	return nil
}
