package sim

import (
	"math"

	"github.com/preston-bernstein/courtside-sim/internal/domain/games"
	"github.com/preston-bernstein/courtside-sim/internal/domain/players"
	"github.com/preston-bernstein/courtside-sim/internal/domain/tendency"
	"github.com/preston-bernstein/courtside-sim/internal/modifiers"
)

// Rate constants. These are tuning values, not derived from league data.
const (
	baseTurnover      = 0.14
	baseThreeAttempt  = 0.38
	baseAssistCredit  = 0.75
	baseFoulOnTwo     = 0.10
	baseFoulOnThree   = 0.03
	baseBlock         = 0.25
	baseSteal         = 0.35
	offensiveBoardCut = 0.30
	interiorContest   = 0.24
	perimeterContest  = 0.20
)

// profile holds one player's per-game probabilities with every modifier already applied.
type profile struct {
	id       string
	name     string
	position players.Position

	usage     float64
	turnover  float64
	pass      float64
	assist    float64
	three     float64
	make2     float64
	make3     float64
	freeThrow float64
	foul2     float64
	foul3     float64
	rebound   float64
	block     float64
	steal     float64
	perimeter float64
	interior  float64
}

// athlete is a profile plus its running box score line for one game.
type athlete struct {
	profile
	line    games.Line
	minutes float64
}

func rating(v int) float64 { return float64(v) / 100 }

func newProfile(p players.Player, teamID string, pipe modifiers.Pipeline) profile {
	m := pipe.Table(modifiers.Subject{Player: p, TeamID: teamID})
	r := p.Ratings.Clamped()
	clamp := modifiers.Clamp01

	creation := math.Max(rating(r.ThreePoint), rating(r.PostShooting))
	usage := (0.35*rating(r.BallHandling) + 0.35*rating(r.Shooting) + 0.15*rating(r.Passing) + 0.15*creation) * m.Of(tendency.Usage)

	inside := 0.6*rating(r.Shooting) + 0.4*rating(r.PostShooting)

	return profile{
		id:       p.ID,
		name:     p.Name,
		position: p.Position,

		usage:     usage,
		turnover:  clamp(baseTurnover * (1.3 - 0.6*rating(r.BallHandling)) * m.Of(tendency.Turnover)),
		pass:      clamp(0.15 + 0.35*rating(r.Passing)),
		assist:    clamp(baseAssistCredit * m.Of(tendency.Assist)),
		three:     clamp(baseThreeAttempt * math.Pow(rating(r.ThreePoint), 1.5) * m.Of(tendency.ThreePointAttempt)),
		make2:     (0.30 + 0.30*inside) * m.Of(tendency.InsideScoring),
		make3:     (0.20 + 0.25*rating(r.ThreePoint)) * m.Of(tendency.ThreePointShooting),
		freeThrow: clamp((0.55 + 0.35*rating(r.Shooting)) * m.Of(tendency.FreeThrow)),
		foul2:     clamp(baseFoulOnTwo * m.Of(tendency.FoulDrawn)),
		foul3:     clamp(baseFoulOnThree * m.Of(tendency.FoulDrawn)),
		rebound:   (0.2 + 0.8*rating(r.Rebounding)) * m.Of(tendency.Rebound),
		block:     rating(r.Blocks) * m.Of(tendency.Block),
		steal:     rating(r.Steals) * m.Of(tendency.Steal),
		perimeter: rating(r.Defense) * m.Of(tendency.PerimeterDefense),
		interior:  (0.7*rating(r.Defense) + 0.3*rating(r.Blocks)) * m.Of(tendency.InteriorDefense),
	}
}

// twoPointMake is the make probability on a two against the given interior
// contest. The contest scales the shooter's rate, so a zero rate stays zero.
func (p profile) twoPointMake(contest float64) float64 {
	return modifiers.Clamp01(p.make2 * (1 - interiorContest*(contest-0.5)))
}

func (p profile) threePointMake(contest float64) float64 {
	return modifiers.Clamp01(p.make3 * (1 - perimeterContest*(contest-0.5)))
}

// blockChance is the chance this defender blocks a missed two.
func (p profile) blockChance() float64 {
	return modifiers.Clamp01(baseBlock * p.block)
}

func (p profile) stealChance() float64 {
	return modifiers.Clamp01(baseSteal + baseSteal*p.steal)
}
