package games

import (
	"errors"
	"fmt"
)

// ErrInvariant marks a played game whose scores and box score disagree.
var ErrInvariant = errors.New("game invariant violated")

// Mode names the simulation fidelity used to play a game.
type Mode string

const (
	ModeDetailed Mode = "detailed"
	ModeFast     Mode = "fast"
)

// ParseMode maps a raw value to a Mode, falling back to def for empty or unknown input.
func ParseMode(raw string, def Mode) Mode {
	switch Mode(raw) {
	case ModeDetailed, ModeFast:
		return Mode(raw)
	}
	return def
}

// Line is one player's counting stats for a single game.
type Line struct {
	Minutes           int `json:"minutes"`
	Points            int `json:"points"`
	Rebounds          int `json:"rebounds"`
	OffensiveRebounds int `json:"offensiveRebounds"`
	Assists           int `json:"assists"`
	Steals            int `json:"steals"`
	Blocks            int `json:"blocks"`
	Turnovers         int `json:"turnovers"`
	Fouls             int `json:"fouls"`
	FieldGoalsMade    int `json:"fgm"`
	FieldGoalsTried   int `json:"fga"`
	ThreesMade        int `json:"tpm"`
	ThreesTried       int `json:"tpa"`
	FreeThrowsMade    int `json:"ftm"`
	FreeThrowsTried   int `json:"fta"`
}

// Add returns the field-wise sum of l and o.
func (l Line) Add(o Line) Line {
	return Line{
		Minutes:           l.Minutes + o.Minutes,
		Points:            l.Points + o.Points,
		Rebounds:          l.Rebounds + o.Rebounds,
		OffensiveRebounds: l.OffensiveRebounds + o.OffensiveRebounds,
		Assists:           l.Assists + o.Assists,
		Steals:            l.Steals + o.Steals,
		Blocks:            l.Blocks + o.Blocks,
		Turnovers:         l.Turnovers + o.Turnovers,
		Fouls:             l.Fouls + o.Fouls,
		FieldGoalsMade:    l.FieldGoalsMade + o.FieldGoalsMade,
		FieldGoalsTried:   l.FieldGoalsTried + o.FieldGoalsTried,
		ThreesMade:        l.ThreesMade + o.ThreesMade,
		ThreesTried:       l.ThreesTried + o.ThreesTried,
		FreeThrowsMade:    l.FreeThrowsMade + o.FreeThrowsMade,
		FreeThrowsTried:   l.FreeThrowsTried + o.FreeThrowsTried,
	}
}

// TeamBox holds the lines for one side of a game, keyed by player id.
type TeamBox struct {
	TeamID  string          `json:"teamId"`
	Players map[string]Line `json:"players"`
}

// Points sums the side's player points.
func (tb TeamBox) Points() int {
	total := 0
	for _, l := range tb.Players {
		total += l.Points
	}
	return total
}

// Totals sums every line on the side.
func (tb TeamBox) Totals() Line {
	var total Line
	for _, l := range tb.Players {
		total = total.Add(l)
	}
	return total
}

// BoxScore is the per-player record of a single game.
type BoxScore struct {
	Home TeamBox `json:"home"`
	Away TeamBox `json:"away"`
}

// Line looks up a player's line on either side.
func (b BoxScore) Line(playerID string) (Line, bool) {
	if l, ok := b.Home.Players[playerID]; ok {
		return l, true
	}
	l, ok := b.Away.Players[playerID]
	return l, ok
}

// Lines flattens both sides into one player id keyed map.
func (b BoxScore) Lines() map[string]Line {
	out := make(map[string]Line, len(b.Home.Players)+len(b.Away.Players))
	for id, l := range b.Home.Players {
		out[id] = l
	}
	for id, l := range b.Away.Players {
		out[id] = l
	}
	return out
}

// PeriodScore is the points each side scored in one period.
type PeriodScore struct {
	Period int    `json:"period"`
	Label  string `json:"label"`
	Home   int    `json:"home"`
	Away   int    `json:"away"`
}

// Game is a scheduled or completed fixture.
type Game struct {
	ID         string        `json:"id"`
	Date       string        `json:"date,omitempty"`
	HomeTeamID string        `json:"homeTeamId"`
	AwayTeamID string        `json:"awayTeamId"`
	Postseason bool          `json:"postseason,omitempty"`
	Played     bool          `json:"played"`
	HomeScore  *int          `json:"homeScore,omitempty"`
	AwayScore  *int          `json:"awayScore,omitempty"`
	Mode       Mode          `json:"mode,omitempty"`
	BoxScore   *BoxScore     `json:"boxScore,omitempty"`
	Periods    []PeriodScore `json:"periods,omitempty"`
}

// NewScheduled returns an unplayed game stub.
func NewScheduled(id, date, homeID, awayID string, postseason bool) Game {
	return Game{
		ID:         id,
		Date:       date,
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		Postseason: postseason,
	}
}

// Final returns a copy of g marked played with scores derived from box.
func (g Game) Final(box BoxScore, mode Mode, periods []PeriodScore) Game {
	home, away := box.Home.Points(), box.Away.Points()
	g.Played = true
	g.HomeScore = &home
	g.AwayScore = &away
	g.Mode = mode
	g.BoxScore = &box
	g.Periods = periods
	return g
}

// Winner returns the winning team id; empty for unplayed games.
func (g Game) Winner() string {
	if !g.Played || g.HomeScore == nil || g.AwayScore == nil {
		return ""
	}
	if *g.HomeScore > *g.AwayScore {
		return g.HomeTeamID
	}
	return g.AwayTeamID
}

// Validate enforces the played-game invariants: both scores present and
// unequal, and a box score whose side sums match them.
func (g Game) Validate() error {
	if !g.Played {
		return nil
	}
	if g.HomeScore == nil || g.AwayScore == nil {
		return fmt.Errorf("%w: game %s played without scores", ErrInvariant, g.ID)
	}
	if *g.HomeScore == *g.AwayScore {
		return fmt.Errorf("%w: game %s tied at %d", ErrInvariant, g.ID, *g.HomeScore)
	}
	if g.BoxScore == nil {
		return fmt.Errorf("%w: game %s played without box score", ErrInvariant, g.ID)
	}
	if got := g.BoxScore.Home.Points(); got != *g.HomeScore {
		return fmt.Errorf("%w: game %s home box sums to %d, score %d", ErrInvariant, g.ID, got, *g.HomeScore)
	}
	if got := g.BoxScore.Away.Points(); got != *g.AwayScore {
		return fmt.Errorf("%w: game %s away box sums to %d, score %d", ErrInvariant, g.ID, got, *g.AwayScore)
	}
	return nil
}
