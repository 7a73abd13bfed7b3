package players

import (
	"fmt"
	"strings"
)

// Rating bounds applied to every skill rating.
const (
	MinRating = 0
	MaxRating = 100
)

// Position is one of the five on-court positions.
type Position string

const (
	PointGuard    Position = "PG"
	ShootingGuard Position = "SG"
	SmallForward  Position = "SF"
	PowerForward  Position = "PF"
	Center        Position = "C"
)

// Positions lists the five positions in lineup slot order.
var Positions = []Position{PointGuard, ShootingGuard, SmallForward, PowerForward, Center}

// Valid reports whether p is one of the five known positions.
func (p Position) Valid() bool {
	switch p {
	case PointGuard, ShootingGuard, SmallForward, PowerForward, Center:
		return true
	}
	return false
}

// Slot returns the lineup slot index (0-4) for the position, or -1.
func (p Position) Slot() int {
	for i, pos := range Positions {
		if pos == p {
			return i
		}
	}
	return -1
}

// ParsePosition accepts short codes ("PG") and long names ("point guard").
func ParsePosition(raw string) (Position, error) {
	norm := strings.ToUpper(strings.TrimSpace(raw))
	switch norm {
	case "PG", "POINT GUARD":
		return PointGuard, nil
	case "SG", "SHOOTING GUARD":
		return ShootingGuard, nil
	case "SF", "SMALL FORWARD":
		return SmallForward, nil
	case "PF", "POWER FORWARD":
		return PowerForward, nil
	case "C", "CENTER":
		return Center, nil
	}
	return "", fmt.Errorf("unknown position %q", raw)
}

// Ratings holds the raw skill ratings for a player.
type Ratings struct {
	Shooting     int `json:"shooting"`
	Defense      int `json:"defense"`
	Speed        int `json:"speed"`
	Rebounding   int `json:"rebounding"`
	Passing      int `json:"passing"`
	BallHandling int `json:"ballHandling"`
	ThreePoint   int `json:"threePoint"`
	Blocks       int `json:"blocks"`
	Steals       int `json:"steals"`
	PostShooting int `json:"postShooting"`
}

// Clamped returns a copy with every rating forced into [MinRating, MaxRating].
func (r Ratings) Clamped() Ratings {
	return Ratings{
		Shooting:     clampRating(r.Shooting),
		Defense:      clampRating(r.Defense),
		Speed:        clampRating(r.Speed),
		Rebounding:   clampRating(r.Rebounding),
		Passing:      clampRating(r.Passing),
		BallHandling: clampRating(r.BallHandling),
		ThreePoint:   clampRating(r.ThreePoint),
		Blocks:       clampRating(r.Blocks),
		Steals:       clampRating(r.Steals),
		PostShooting: clampRating(r.PostShooting),
	}
}

// Get returns a rating by attribute.
func (r Ratings) Get(a Attribute) int {
	switch a {
	case AttrShooting:
		return r.Shooting
	case AttrDefense:
		return r.Defense
	case AttrSpeed:
		return r.Speed
	case AttrRebounding:
		return r.Rebounding
	case AttrPassing:
		return r.Passing
	case AttrBallHandling:
		return r.BallHandling
	case AttrThreePoint:
		return r.ThreePoint
	case AttrBlocks:
		return r.Blocks
	case AttrSteals:
		return r.Steals
	case AttrPostShooting:
		return r.PostShooting
	}
	return 0
}

// Attribute names a single rating.
type Attribute string

const (
	AttrShooting     Attribute = "shooting"
	AttrDefense      Attribute = "defense"
	AttrSpeed        Attribute = "speed"
	AttrRebounding   Attribute = "rebounding"
	AttrPassing      Attribute = "passing"
	AttrBallHandling Attribute = "ballHandling"
	AttrThreePoint   Attribute = "threePoint"
	AttrBlocks       Attribute = "blocks"
	AttrSteals       Attribute = "steals"
	AttrPostShooting Attribute = "postShooting"
)

func clampRating(v int) int {
	if v < MinRating {
		return MinRating
	}
	if v > MaxRating {
		return MaxRating
	}
	return v
}

// Player is an immutable roster entry. Use the With* methods to derive changed copies.
type Player struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	HeightInches int      `json:"heightInches"`
	Position     Position `json:"position"`
	Role         string   `json:"role,omitempty"`
	Ratings      Ratings  `json:"ratings"`
}

// New builds a player with clamped ratings.
func New(id, name string, heightInches int, pos Position, ratings Ratings) Player {
	return Player{
		ID:           id,
		Name:         name,
		HeightInches: heightInches,
		Position:     pos,
		Ratings:      ratings.Clamped(),
	}
}

// WithRole returns a copy assigned to the given role archetype id ("" clears it).
func (p Player) WithRole(roleID string) Player {
	p.Role = roleID
	return p
}

// WithPosition returns a copy moved to pos. The role is dropped because archetypes belong to one position.
func (p Player) WithPosition(pos Position) Player {
	if p.Position != pos {
		p.Role = ""
	}
	p.Position = pos
	return p
}

// WithRatings returns a copy carrying the clamped ratings.
func (p Player) WithRatings(r Ratings) Player {
	p.Ratings = r.Clamped()
	return p
}
