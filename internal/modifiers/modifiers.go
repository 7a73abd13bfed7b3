package modifiers

import (
	"math"

	"github.com/preston-bernstein/courtside-sim/internal/coaching"
	"github.com/preston-bernstein/courtside-sim/internal/domain/players"
	"github.com/preston-bernstein/courtside-sim/internal/domain/roles"
	"github.com/preston-bernstein/courtside-sim/internal/domain/tendency"
)

// maxFactor caps a single provider's contribution so a bad table entry cannot overflow.
const maxFactor = 10.0

// Subject is the player a modifier is computed for, with the team whose staff coaches them.
type Subject struct {
	Player players.Player
	TeamID string
}

// Provider contributes one multiplicative factor per category.
type Provider interface {
	Name() string
	Factor(s Subject, c tendency.Category) float64
}

// Contribution is one provider's factor, used to explain a composed modifier.
type Contribution struct {
	Provider string  `json:"provider"`
	Factor   float64 `json:"factor"`
}

// Pipeline composes providers in order by multiplication.
type Pipeline struct {
	providers []Provider
}

// NewPipeline builds a pipeline from providers; nil entries are skipped.
func NewPipeline(providers ...Provider) Pipeline {
	out := make([]Provider, 0, len(providers))
	for _, p := range providers {
		if p != nil {
			out = append(out, p)
		}
	}
	return Pipeline{providers: out}
}

// Default is position × role × coaching. A nil coaching source is neutral.
func Default(staff coaching.Provider) Pipeline {
	return NewPipeline(PositionProvider{}, RoleProvider{}, CoachingProvider{Source: staff})
}

// Modifier returns the product of every provider's factor for c.
func (p Pipeline) Modifier(s Subject, c tendency.Category) float64 {
	m := 1.0
	for _, prov := range p.providers {
		m *= sanitize(prov.Factor(s, c))
	}
	return m
}

// Breakdown lists each provider's factor for c in pipeline order.
func (p Pipeline) Breakdown(s Subject, c tendency.Category) []Contribution {
	out := make([]Contribution, 0, len(p.providers))
	for _, prov := range p.providers {
		out = append(out, Contribution{Provider: prov.Name(), Factor: sanitize(prov.Factor(s, c))})
	}
	return out
}

// Apply scales a base probability by the composed modifier and clamps the result to [0,1].
func (p Pipeline) Apply(base float64, s Subject, c tendency.Category) float64 {
	return Clamp01(Clamp01(base) * p.Modifier(s, c))
}

// Table precomputes the composed modifier for every category.
func (p Pipeline) Table(s Subject) tendency.Factors {
	out := make(tendency.Factors, len(tendency.All))
	for _, c := range tendency.All {
		out[c] = p.Modifier(s, c)
	}
	return out
}

// Clamp01 bounds v to [0,1]; NaN maps to 0.
func Clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 1:
		return 1
	}
	return v
}

func sanitize(f float64) float64 {
	switch {
	case math.IsNaN(f), f <= 0:
		return 0
	case f > maxFactor:
		return maxFactor
	}
	return f
}

// PositionProvider applies the fixed per-position table.
type PositionProvider struct{}

func (PositionProvider) Name() string { return "position" }

func (PositionProvider) Factor(s Subject, c tendency.Category) float64 {
	return positionTable[s.Player.Position].Of(c)
}

// PositionFactors returns a copy of the table row for pos.
func PositionFactors(pos players.Position) tendency.Factors {
	row := positionTable[pos]
	out := make(tendency.Factors, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}

var positionTable = map[players.Position]tendency.Factors{
	players.PointGuard: {
		tendency.Usage:             1.15,
		tendency.Assist:            1.35,
		tendency.ThreePointAttempt: 1.10,
		tendency.Rebound:           0.70,
		tendency.Block:             0.50,
		tendency.Steal:             1.20,
		tendency.Turnover:          1.10,
		tendency.PerimeterDefense:  1.05,
		tendency.InteriorDefense:   0.85,
	},
	players.ShootingGuard: {
		tendency.Usage:              1.10,
		tendency.ThreePointAttempt:  1.30,
		tendency.ThreePointShooting: 1.05,
		tendency.Assist:             0.95,
		tendency.Rebound:            0.80,
		tendency.Block:              0.60,
		tendency.Steal:              1.10,
		tendency.PerimeterDefense:   1.05,
		tendency.InteriorDefense:    0.90,
	},
	players.SmallForward: {
		tendency.Block: 0.90,
	},
	players.PowerForward: {
		tendency.ThreePointAttempt: 0.60,
		tendency.InsideScoring:     1.05,
		tendency.Assist:            0.80,
		tendency.Rebound:           1.25,
		tendency.Block:             1.20,
		tendency.InteriorDefense:   1.05,
		tendency.PerimeterDefense:  0.95,
	},
	players.Center: {
		tendency.Usage:             0.90,
		tendency.ThreePointAttempt: 0.20,
		tendency.InsideScoring:     1.10,
		tendency.FoulDrawn:         1.15,
		tendency.Assist:            0.65,
		tendency.Rebound:           1.45,
		tendency.Block:             1.50,
		tendency.Steal:             0.75,
		tendency.InteriorDefense:   1.15,
		tendency.PerimeterDefense:  0.85,
	},
}

// RoleProvider applies the assigned archetype's table. No role, a stale id,
// or an archetype for another position contributes 1.0.
type RoleProvider struct{}

func (RoleProvider) Name() string { return "role" }

func (RoleProvider) Factor(s Subject, c tendency.Category) float64 {
	a, ok := roles.Resolve(s.Player)
	if !ok {
		return 1
	}
	return a.Modifiers.Of(c)
}

// CoachingProvider reads the subject team's staff bonus. Offense and defense
// bonuses scale their categories; development refines free throws and ball security.
type CoachingProvider struct {
	Source coaching.Provider
}

func (CoachingProvider) Name() string { return "coaching" }

func (cp CoachingProvider) Factor(s Subject, c tendency.Category) float64 {
	if cp.Source == nil {
		return 1
	}
	b, ok := cp.Source.Bonus(s.TeamID)
	if !ok {
		return 1
	}
	switch c {
	case tendency.ThreePointShooting, tendency.InsideScoring, tendency.Assist:
		return b.OffenseFactor()
	case tendency.PerimeterDefense, tendency.InteriorDefense, tendency.Steal, tendency.Block:
		return b.DefenseFactor()
	case tendency.FreeThrow:
		return b.DevelopmentFactor()
	case tendency.Turnover:
		return b.BallSecurityFactor()
	}
	return 1
}
