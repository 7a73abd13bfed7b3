package coaching

import "github.com/preston-bernstein/courtside-sim/internal/domain/players"

// Bonus bounds keep a single staff from dominating the modifier product.
const (
	MinBonus = -0.25
	MaxBonus = 0.25
)

// Bonus is the fractional uplift a coaching staff supplies per category.
// Zero is neutral; 0.05 scales the affected rates by 1.05.
type Bonus struct {
	Offense     float64 `json:"offense"`
	Defense     float64 `json:"defense"`
	Development float64 `json:"development"`
}

// OffenseFactor is the multiplicative factor for offensive categories.
func (b Bonus) OffenseFactor() float64 { return factor(b.Offense) }

// DefenseFactor is the multiplicative factor for defensive categories.
func (b Bonus) DefenseFactor() float64 { return factor(b.Defense) }

// DevelopmentFactor scales the skill-refinement categories such as free throw shooting.
func (b Bonus) DevelopmentFactor() float64 { return factor(b.Development) }

// BallSecurityFactor mirrors DevelopmentFactor for rates that should fall as
// players improve: a 0.05 development bonus scales turnovers by 0.95.
func (b Bonus) BallSecurityFactor() float64 { return 1 - clampBonus(b.Development) }

func factor(v float64) float64 {
	return 1 + clampBonus(v)
}

func clampBonus(v float64) float64 {
	if v != v {
		return 0
	}
	if v < MinBonus {
		return MinBonus
	}
	if v > MaxBonus {
		return MaxBonus
	}
	return v
}

// Provider supplies the bonus for a team. ok=false means no staff data, which is neutral.
type Provider interface {
	Bonus(teamID string) (Bonus, bool)
}

// Static serves fixed bonuses keyed by team id.
type Static map[string]Bonus

func (s Static) Bonus(teamID string) (Bonus, bool) {
	b, ok := s[teamID]
	return b, ok
}

// Coach is the slice of a head coach's record the engine consumes.
type Coach struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Offense     int    `json:"offense"`
	Defense     int    `json:"defense"`
	Development int    `json:"development"`
	Experience  int    `json:"experience"`
}

// Bonus derives the staff bonus: ratings above 50 add up to 0.10,
// and each season of experience adds 0.0025, capped at 20 seasons.
func (c Coach) Bonus() Bonus {
	exp := c.Experience
	if exp < 0 {
		exp = 0
	}
	if exp > 20 {
		exp = 20
	}
	seasoned := float64(exp) * 0.0025
	return Bonus{
		Offense:     clampBonus(ratingBonus(c.Offense) + seasoned),
		Defense:     clampBonus(ratingBonus(c.Defense) + seasoned),
		Development: clampBonus(ratingBonus(c.Development) + seasoned),
	}
}

func ratingBonus(r int) float64 {
	if r < players.MinRating {
		r = players.MinRating
	}
	if r > players.MaxRating {
		r = players.MaxRating
	}
	return float64(r-50) / 500
}

// Staff adapts head coach records, keyed by team id, to a Provider.
type Staff map[string]Coach

func (s Staff) Bonus(teamID string) (Bonus, bool) {
	c, ok := s[teamID]
	if !ok {
		return Bonus{}, false
	}
	return c.Bonus(), true
}
