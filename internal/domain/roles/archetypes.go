package roles

import (
	"maps"

	"github.com/preston-bernstein/courtside-sim/internal/domain/players"
	"github.com/preston-bernstein/courtside-sim/internal/domain/tendency"
)

// Kind enumerates the role archetypes. None and Unknown are not archetypes.
type Kind int

const (
	None Kind = iota

	// Point guard
	FloorGeneral
	ScoringPoint
	DefensivePest
	PaceSetter

	// Shooting guard
	Sharpshooter
	Slasher
	ThreeAndD

	// Small forward
	PointForward
	TwoWayWing
	ScoringWing

	// Power forward
	StretchFour
	GlassCleaner
	PostBruiser

	// Center
	PaintBeast
	StretchFive
	RimProtector

	// Unknown marks a persisted id that no longer resolves to an archetype.
	Unknown
)

// Archetype is a named specialization tied to exactly one position.
type Archetype struct {
	Kind      Kind                          `json:"-"`
	ID        string                        `json:"id"`
	Name      string                        `json:"name"`
	Position  players.Position              `json:"position"`
	Weights   map[players.Attribute]float64 `json:"weights"`
	Modifiers tendency.Factors              `json:"modifiers"`
}

var registry = [...]Archetype{
	FloorGeneral: {
		ID: "floor_general", Name: "Floor General", Position: players.PointGuard,
		Weights: map[players.Attribute]float64{
			players.AttrPassing: 0.40, players.AttrBallHandling: 0.35, players.AttrSpeed: 0.15, players.AttrShooting: 0.10,
		},
		Modifiers: tendency.Factors{tendency.Assist: 1.20, tendency.Turnover: 0.90, tendency.Usage: 0.95},
	},
	ScoringPoint: {
		ID: "scoring_point", Name: "Scoring Point", Position: players.PointGuard,
		Weights: map[players.Attribute]float64{
			players.AttrShooting: 0.35, players.AttrThreePoint: 0.25, players.AttrBallHandling: 0.25, players.AttrSpeed: 0.15,
		},
		Modifiers: tendency.Factors{tendency.Usage: 1.15, tendency.Assist: 0.85, tendency.ThreePointAttempt: 1.15},
	},
	DefensivePest: {
		ID: "defensive_pest", Name: "Defensive Pest", Position: players.PointGuard,
		Weights: map[players.Attribute]float64{
			players.AttrSteals: 0.40, players.AttrDefense: 0.35, players.AttrSpeed: 0.25,
		},
		Modifiers: tendency.Factors{tendency.Steal: 1.35, tendency.PerimeterDefense: 1.10, tendency.Usage: 0.90},
	},
	PaceSetter: {
		ID: "pace_setter", Name: "Pace Setter", Position: players.PointGuard,
		Weights: map[players.Attribute]float64{
			players.AttrSpeed: 0.45, players.AttrBallHandling: 0.30, players.AttrPassing: 0.25,
		},
		Modifiers: tendency.Factors{tendency.FoulDrawn: 1.20, tendency.InsideScoring: 1.05, tendency.Turnover: 1.05},
	},
	Sharpshooter: {
		ID: "sharpshooter", Name: "Sharpshooter", Position: players.ShootingGuard,
		Weights: map[players.Attribute]float64{
			players.AttrThreePoint: 0.55, players.AttrShooting: 0.35, players.AttrBallHandling: 0.10,
		},
		Modifiers: tendency.Factors{tendency.ThreePointAttempt: 1.30, tendency.ThreePointShooting: 1.05, tendency.FoulDrawn: 0.80},
	},
	Slasher: {
		ID: "slasher", Name: "Slasher", Position: players.ShootingGuard,
		Weights: map[players.Attribute]float64{
			players.AttrSpeed: 0.35, players.AttrBallHandling: 0.30, players.AttrPostShooting: 0.20, players.AttrShooting: 0.15,
		},
		Modifiers: tendency.Factors{tendency.ThreePointAttempt: 0.70, tendency.InsideScoring: 1.10, tendency.FoulDrawn: 1.30},
	},
	ThreeAndD: {
		ID: "three_and_d", Name: "3-and-D", Position: players.ShootingGuard,
		Weights: map[players.Attribute]float64{
			players.AttrThreePoint: 0.45, players.AttrDefense: 0.40, players.AttrSteals: 0.15,
		},
		Modifiers: tendency.Factors{tendency.ThreePointAttempt: 1.10, tendency.PerimeterDefense: 1.15, tendency.Usage: 0.85},
	},
	PointForward: {
		ID: "point_forward", Name: "Point Forward", Position: players.SmallForward,
		Weights: map[players.Attribute]float64{
			players.AttrPassing: 0.40, players.AttrBallHandling: 0.30, players.AttrRebounding: 0.15, players.AttrShooting: 0.15,
		},
		Modifiers: tendency.Factors{tendency.Assist: 1.25, tendency.Usage: 1.05, tendency.Turnover: 1.05},
	},
	TwoWayWing: {
		ID: "two_way_wing", Name: "Two-Way Wing", Position: players.SmallForward,
		Weights: map[players.Attribute]float64{
			players.AttrDefense: 0.35, players.AttrShooting: 0.30, players.AttrSteals: 0.15, players.AttrRebounding: 0.20,
		},
		Modifiers: tendency.Factors{tendency.PerimeterDefense: 1.10, tendency.Steal: 1.10, tendency.InsideScoring: 1.03},
	},
	ScoringWing: {
		ID: "scoring_wing", Name: "Scoring Wing", Position: players.SmallForward,
		Weights: map[players.Attribute]float64{
			players.AttrShooting: 0.45, players.AttrThreePoint: 0.25, players.AttrPostShooting: 0.15, players.AttrBallHandling: 0.15,
		},
		Modifiers: tendency.Factors{tendency.Usage: 1.20, tendency.InsideScoring: 1.05, tendency.Assist: 0.90},
	},
	StretchFour: {
		ID: "stretch_four", Name: "Stretch Four", Position: players.PowerForward,
		Weights: map[players.Attribute]float64{
			players.AttrThreePoint: 0.50, players.AttrShooting: 0.30, players.AttrRebounding: 0.20,
		},
		Modifiers: tendency.Factors{tendency.ThreePointAttempt: 1.80, tendency.Rebound: 0.90, tendency.InteriorDefense: 0.95},
	},
	GlassCleaner: {
		ID: "glass_cleaner", Name: "Glass Cleaner", Position: players.PowerForward,
		Weights: map[players.Attribute]float64{
			players.AttrRebounding: 0.55, players.AttrBlocks: 0.20, players.AttrDefense: 0.25,
		},
		Modifiers: tendency.Factors{tendency.Rebound: 1.30, tendency.Usage: 0.80, tendency.ThreePointAttempt: 0.50},
	},
	PostBruiser: {
		ID: "post_bruiser", Name: "Post Bruiser", Position: players.PowerForward,
		Weights: map[players.Attribute]float64{
			players.AttrPostShooting: 0.50, players.AttrRebounding: 0.25, players.AttrShooting: 0.25,
		},
		Modifiers: tendency.Factors{tendency.InsideScoring: 1.10, tendency.FoulDrawn: 1.20, tendency.ThreePointAttempt: 0.40},
	},
	PaintBeast: {
		ID: "paint_beast", Name: "Paint Beast", Position: players.Center,
		Weights: map[players.Attribute]float64{
			players.AttrPostShooting: 0.40, players.AttrRebounding: 0.35, players.AttrBlocks: 0.25,
		},
		Modifiers: tendency.Factors{tendency.ThreePointAttempt: 0.0, tendency.InsideScoring: 1.15, tendency.Rebound: 1.20, tendency.Block: 1.10},
	},
	StretchFive: {
		ID: "stretch_five", Name: "Stretch Five", Position: players.Center,
		Weights: map[players.Attribute]float64{
			players.AttrThreePoint: 0.45, players.AttrShooting: 0.30, players.AttrRebounding: 0.25,
		},
		Modifiers: tendency.Factors{tendency.ThreePointAttempt: 3.0, tendency.ThreePointShooting: 1.05, tendency.Rebound: 0.85, tendency.Block: 0.85},
	},
	RimProtector: {
		ID: "rim_protector", Name: "Rim Protector", Position: players.Center,
		Weights: map[players.Attribute]float64{
			players.AttrBlocks: 0.45, players.AttrDefense: 0.35, players.AttrRebounding: 0.20,
		},
		Modifiers: tendency.Factors{tendency.Block: 1.35, tendency.InteriorDefense: 1.15, tendency.Usage: 0.85},
	},
}

var byID = func() map[string]Kind {
	m := make(map[string]Kind, len(registry))
	for k := range registry {
		if Kind(k) == None {
			continue
		}
		m[registry[k].ID] = Kind(k)
	}
	return m
}()

// Valid reports whether k names a real archetype.
func (k Kind) Valid() bool {
	return k > None && k < Unknown
}

// Archetype returns a copy of the definition for k; callers may modify its maps.
// ok is false for None and Unknown.
func (k Kind) Archetype() (Archetype, bool) {
	if !k.Valid() {
		return Archetype{}, false
	}
	a := registry[k]
	a.Kind = k
	a.Weights = maps.Clone(a.Weights)
	a.Modifiers = maps.Clone(a.Modifiers)
	return a, true
}

// String returns the persisted identifier.
func (k Kind) String() string {
	switch {
	case k == None:
		return "none"
	case k.Valid():
		return registry[k].ID
	}
	return "unknown"
}

// Lookup resolves a persisted role id. Empty ids resolve to None; ids missing
// from the registry resolve to Unknown and must be treated as no role.
func Lookup(id string) Kind {
	if id == "" {
		return None
	}
	if k, ok := byID[id]; ok {
		return k
	}
	return Unknown
}

// All returns every archetype in declaration order.
func All() []Archetype {
	out := make([]Archetype, 0, len(registry)-1)
	for k := FloorGeneral; k < Unknown; k++ {
		a, _ := k.Archetype()
		out = append(out, a)
	}
	return out
}

// ForPosition returns the archetypes available to pos.
func ForPosition(pos players.Position) []Archetype {
	var out []Archetype
	for _, a := range All() {
		if a.Position == pos {
			out = append(out, a)
		}
	}
	return out
}

// Resolve returns the archetype that applies to p in play. A stale id or an
// archetype belonging to another position yields ok=false.
func Resolve(p players.Player) (Archetype, bool) {
	a, ok := Lookup(p.Role).Archetype()
	if !ok || a.Position != p.Position {
		return Archetype{}, false
	}
	return a, true
}
