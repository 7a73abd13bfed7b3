package teams

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/courtside-sim/internal/domain/players"
)

const (
	// LineupSize is the number of players on the floor per side.
	LineupSize = 5
	// MaxRoster caps roster size.
	MaxRoster = 15
)

var (
	ErrInvalidRoster   = errors.New("invalid roster")
	ErrInvalidLineup   = errors.New("invalid starting lineup")
	ErrInvalidRotation = errors.New("invalid rotation")
)

// Team is a roster snapshot handed to the simulation engine.
type Team struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Abbreviation string           `json:"abbreviation"`
	City         string           `json:"city"`
	Conference   string           `json:"conference"`
	Division     string           `json:"division"`
	Roster       []players.Player `json:"roster"`
	Starters     []string         `json:"starters"`
	Rotation     *Rotation        `json:"rotation,omitempty"`
}

// Player returns the roster entry with id.
func (t Team) Player(id string) (players.Player, bool) {
	for _, p := range t.Roster {
		if p.ID == id {
			return p, true
		}
	}
	return players.Player{}, false
}

// WithPlayer returns a copy of t with the roster entry matching p.ID replaced (or appended).
func (t Team) WithPlayer(p players.Player) Team {
	roster := make([]players.Player, 0, len(t.Roster)+1)
	replaced := false
	for _, existing := range t.Roster {
		if existing.ID == p.ID {
			roster = append(roster, p)
			replaced = true
			continue
		}
		roster = append(roster, existing)
	}
	if !replaced {
		roster = append(roster, p)
	}
	t.Roster = roster
	return t
}

// WithRotation returns a copy of t using r (nil clears it).
func (t Team) WithRotation(r *Rotation) Team {
	t.Rotation = r
	return t
}

// Validate checks the roster and lineup contract the engine depends on.
func (t Team) Validate() error {
	if len(t.Roster) < LineupSize || len(t.Roster) > MaxRoster {
		return fmt.Errorf("%w: team %s has %d players", ErrInvalidRoster, t.ID, len(t.Roster))
	}
	seen := make(map[string]struct{}, len(t.Roster))
	for _, p := range t.Roster {
		if p.ID == "" {
			return fmt.Errorf("%w: team %s has a player without id", ErrInvalidRoster, t.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: team %s lists player %s twice", ErrInvalidRoster, t.ID, p.ID)
		}
		if !p.Position.Valid() {
			return fmt.Errorf("%w: player %s has position %q", ErrInvalidRoster, p.ID, p.Position)
		}
		seen[p.ID] = struct{}{}
	}
	if t.Rotation != nil {
		if err := t.Rotation.Validate(t); err != nil {
			return err
		}
	}
	_, err := t.StartingLineup()
	return err
}

// StartingLineup returns the five starters in slot order. With a rotation the
// rank-1 entry of each position's depth chart starts; otherwise the flagged starters do.
func (t Team) StartingLineup() ([]players.Player, error) {
	if t.Rotation != nil {
		ids, err := t.Rotation.starterIDs()
		if err != nil {
			return nil, err
		}
		return t.resolve(ids)
	}
	if len(t.Starters) != LineupSize {
		return nil, fmt.Errorf("%w: team %s flags %d starters", ErrInvalidLineup, t.ID, len(t.Starters))
	}
	lineup, err := t.resolve(t.Starters)
	if err != nil {
		return nil, err
	}
	sortBySlot(lineup)
	return lineup, nil
}

func (t Team) resolve(ids []string) ([]players.Player, error) {
	out := make([]players.Player, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: player %s listed twice", ErrInvalidLineup, id)
		}
		seen[id] = struct{}{}
		p, ok := t.Player(id)
		if !ok {
			return nil, fmt.Errorf("%w: player %s not on team %s", ErrInvalidLineup, id, t.ID)
		}
		out = append(out, p)
	}
	return out, nil
}

// sortBySlot orders a lineup PG..C, keeping input order for shared positions.
func sortBySlot(lineup []players.Player) {
	for i := 1; i < len(lineup); i++ {
		for j := i; j > 0 && lineup[j].Position.Slot() < lineup[j-1].Position.Slot(); j-- {
			lineup[j], lineup[j-1] = lineup[j-1], lineup[j]
		}
	}
}
