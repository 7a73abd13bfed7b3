package roles

import (
	"math"

	"github.com/preston-bernstein/courtside-sim/internal/domain/players"
)

// FitScore measures how closely p's raw ratings match a's ideal profile, in [0,100].
// Players at a different position score 0. The score is advisory and never feeds gameplay.
func FitScore(p players.Player, a Archetype) float64 {
	if a.Position != p.Position {
		return 0
	}
	var sum, weights float64
	for attr, w := range a.Weights {
		if w <= 0 {
			continue
		}
		sum += w * float64(p.Ratings.Get(attr))
		weights += w
	}
	if weights == 0 {
		return 0
	}
	score := sum / weights
	return math.Round(math.Max(0, math.Min(100, score))*10) / 10
}

// Fit pairs an archetype with a player's fit score.
type Fit struct {
	Archetype Archetype `json:"archetype"`
	Score     float64   `json:"score"`
}

// RankFits scores p against every archetype for its position, best first.
func RankFits(p players.Player) []Fit {
	candidates := ForPosition(p.Position)
	fits := make([]Fit, 0, len(candidates))
	for _, a := range candidates {
		fits = append(fits, Fit{Archetype: a, Score: FitScore(p, a)})
	}
	// Insertion sort keeps declaration order on ties.
	for i := 1; i < len(fits); i++ {
		for j := i; j > 0 && fits[j].Score > fits[j-1].Score; j-- {
			fits[j], fits[j-1] = fits[j-1], fits[j]
		}
	}
	return fits
}

// BestFit returns the highest scoring archetype for p's position.
func BestFit(p players.Player) (Fit, bool) {
	fits := RankFits(p)
	if len(fits) == 0 {
		return Fit{}, false
	}
	return fits[0], true
}
