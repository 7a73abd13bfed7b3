package teams

import (
	"fmt"

	"github.com/preston-bernstein/courtside-sim/internal/domain/players"
)

const (
	// GameMinutes is the length of regulation.
	GameMinutes = 48
	// RotationMinutes is the total minutes five slots cover in regulation.
	RotationMinutes = LineupSize * GameMinutes
)

// Rotation allocates minutes per player and ranks players per position.
type Rotation struct {
	Minutes    map[string]int                `json:"minutes"`
	DepthChart map[players.Position][]string `json:"depthChart"`
}

// Validate checks that minutes sum to RotationMinutes and that every chart entry is on the roster.
func (r *Rotation) Validate(t Team) error {
	if r == nil {
		return nil
	}
	total := 0
	for id, m := range r.Minutes {
		if m < 0 || m > GameMinutes {
			return fmt.Errorf("%w: player %s allotted %d minutes", ErrInvalidRotation, id, m)
		}
		if _, ok := t.Player(id); !ok {
			return fmt.Errorf("%w: player %s not on team %s", ErrInvalidRotation, id, t.ID)
		}
		total += m
	}
	if total != RotationMinutes {
		return fmt.Errorf("%w: minutes sum to %d, want %d", ErrInvalidRotation, total, RotationMinutes)
	}
	for _, pos := range players.Positions {
		for _, id := range r.DepthChart[pos] {
			if _, ok := t.Player(id); !ok {
				return fmt.Errorf("%w: depth chart %s lists unknown player %s", ErrInvalidRotation, pos, id)
			}
		}
	}
	_, err := r.slots()
	return err
}

// Stint is a stretch of game clock, in minutes from tip-off, a player spends in a slot.
type Stint struct {
	PlayerID string  `json:"playerId"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
}

// Timeline holds the stints for each of the five lineup slots across regulation.
type Timeline [LineupSize][]Stint

// OnCourt returns the player ids in each slot at the given minute of regulation.
// Minutes past regulation (overtime) reuse the closing stint of each slot.
func (tl Timeline) OnCourt(minute float64) [LineupSize]string {
	var out [LineupSize]string
	for slot, stints := range tl {
		if len(stints) == 0 {
			continue
		}
		out[slot] = stints[len(stints)-1].PlayerID
		for _, s := range stints {
			if minute >= s.Start && minute < s.End {
				out[slot] = s.PlayerID
				break
			}
		}
	}
	return out
}

// Timeline builds the substitution schedule for t. Without a rotation the
// five starters play every minute. Callers should Validate first.
func (t Team) Timeline() (Timeline, error) {
	var tl Timeline
	if t.Rotation == nil {
		lineup, err := t.StartingLineup()
		if err != nil {
			return tl, err
		}
		for slot, p := range lineup {
			tl[slot] = []Stint{{PlayerID: p.ID, Start: 0, End: GameMinutes}}
		}
		return tl, nil
	}

	slots, err := t.Rotation.slots()
	if err != nil {
		return tl, err
	}
	for slot, entries := range slots {
		tl[slot] = splitHalves(entries, t.Rotation.Minutes)
	}
	return tl, nil
}

// slots assigns each depth-chart player to the first position chart listing them.
func (r *Rotation) slots() ([LineupSize][]string, error) {
	var out [LineupSize][]string
	taken := make(map[string]struct{})
	for slot, pos := range players.Positions {
		for _, id := range r.DepthChart[pos] {
			if _, dup := taken[id]; dup {
				continue
			}
			taken[id] = struct{}{}
			out[slot] = append(out[slot], id)
		}
		if len(out[slot]) == 0 {
			return out, fmt.Errorf("%w: no player available at %s", ErrInvalidRotation, pos)
		}
	}
	return out, nil
}

func (r *Rotation) starterIDs() ([]string, error) {
	slots, err := r.slots()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, LineupSize)
	for _, entries := range slots {
		ids = append(ids, entries[0])
	}
	return ids, nil
}

// splitHalves scales a slot's minutes to a full game and plays them in rank
// order once per half, so starters open both halves.
func splitHalves(entries []string, minutes map[string]int) []Stint {
	total := 0
	for _, id := range entries {
		total += minutes[id]
	}
	if total == 0 {
		return []Stint{{PlayerID: entries[0], Start: 0, End: GameMinutes}}
	}

	const half = GameMinutes / 2.0
	var stints []Stint
	for h := 0; h < 2; h++ {
		clock := float64(h) * half
		for _, id := range entries {
			m := minutes[id]
			if m <= 0 {
				continue
			}
			length := float64(m) * half / float64(total)
			stints = append(stints, Stint{PlayerID: id, Start: clock, End: clock + length})
			clock += length
		}
		// Absorb float drift so the half always ends on the boundary.
		stints[len(stints)-1].End = float64(h+1) * half
	}
	return stints
}
