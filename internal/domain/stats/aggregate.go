package stats

import (
	"sort"

	"github.com/preston-bernstein/courtside-sim/internal/domain/games"
)

// Stream separates regular-season and playoff accumulation.
type Stream string

const (
	RegularSeason Stream = "regular"
	Playoffs      Stream = "playoff"
)

// ParseStream maps raw input to a Stream, defaulting to RegularSeason.
func ParseStream(raw string) Stream {
	if Stream(raw) == Playoffs || raw == "playoffs" {
		return Playoffs
	}
	return RegularSeason
}

// StreamFor routes a game to the stream it accumulates into.
func StreamFor(g games.Game) Stream {
	if g.Postseason {
		return Playoffs
	}
	return RegularSeason
}

// Totals are cumulative counting stats for one player. Rates are derived on read.
type Totals struct {
	GamesPlayed int        `json:"gamesPlayed"`
	Line        games.Line `json:"totals"`
}

func perGame(total, gp int) float64 {
	if gp == 0 {
		return 0
	}
	return float64(total) / float64(gp)
}

func pct(made, tried int) float64 {
	if tried == 0 {
		return 0
	}
	return float64(made) / float64(tried)
}

func (t Totals) PointsPerGame() float64   { return perGame(t.Line.Points, t.GamesPlayed) }
func (t Totals) ReboundsPerGame() float64 { return perGame(t.Line.Rebounds, t.GamesPlayed) }
func (t Totals) AssistsPerGame() float64  { return perGame(t.Line.Assists, t.GamesPlayed) }
func (t Totals) StealsPerGame() float64   { return perGame(t.Line.Steals, t.GamesPlayed) }
func (t Totals) BlocksPerGame() float64   { return perGame(t.Line.Blocks, t.GamesPlayed) }
func (t Totals) MinutesPerGame() float64  { return perGame(t.Line.Minutes, t.GamesPlayed) }

// ThreesTriedPerGame is three-point attempts per game.
func (t Totals) ThreesTriedPerGame() float64 { return perGame(t.Line.ThreesTried, t.GamesPlayed) }

// FieldGoalPct is made over attempted field goals, 0 when none were attempted.
func (t Totals) FieldGoalPct() float64 {
	return pct(t.Line.FieldGoalsMade, t.Line.FieldGoalsTried)
}

func (t Totals) ThreePointPct() float64 { return pct(t.Line.ThreesMade, t.Line.ThreesTried) }
func (t Totals) FreeThrowPct() float64  { return pct(t.Line.FreeThrowsMade, t.Line.FreeThrowsTried) }

// ThreePointRate is the share of field goal attempts taken from three.
func (t Totals) ThreePointRate() float64 {
	return pct(t.Line.ThreesTried, t.Line.FieldGoalsTried)
}

// Summary is the read view with derived metrics, used by the HTTP layer.
type Summary struct {
	PlayerID      string     `json:"playerId"`
	GamesPlayed   int        `json:"gamesPlayed"`
	Totals        games.Line `json:"totals"`
	PointsPerGame float64    `json:"ppg"`
	ReboundsPer   float64    `json:"rpg"`
	AssistsPer    float64    `json:"apg"`
	FieldGoalPct  float64    `json:"fgPct"`
	ThreePointPct float64    `json:"threePct"`
	FreeThrowPct  float64    `json:"ftPct"`
}

// Summarize derives the read view for a player's totals.
func (t Totals) Summarize(playerID string) Summary {
	return Summary{
		PlayerID:      playerID,
		GamesPlayed:   t.GamesPlayed,
		Totals:        t.Line,
		PointsPerGame: t.PointsPerGame(),
		ReboundsPer:   t.ReboundsPerGame(),
		AssistsPer:    t.AssistsPerGame(),
		FieldGoalPct:  t.FieldGoalPct(),
		ThreePointPct: t.ThreePointPct(),
		FreeThrowPct:  t.FreeThrowPct(),
	}
}

// Aggregate maps player ids to cumulative totals. A nil Aggregate is the empty aggregate.
type Aggregate map[string]Totals

// AddGame folds one box score into prev and returns a new aggregate; prev is not modified.
// Every player with a line in the box score is credited one game played.
// An aggregate with no players is returned as nil, so empty and absent encode alike.
func AddGame(prev Aggregate, box games.BoxScore) Aggregate {
	if len(prev) == 0 && len(box.Home.Players)+len(box.Away.Players) == 0 {
		return nil
	}
	next := make(Aggregate, len(prev)+len(box.Home.Players)+len(box.Away.Players))
	for id, t := range prev {
		next[id] = t
	}
	for id, line := range box.Lines() {
		t := next[id]
		t.GamesPlayed++
		t.Line = t.Line.Add(line)
		next[id] = t
	}
	return next
}

// Player returns the totals for id; zero totals when the player has not appeared.
func (a Aggregate) Player(id string) Totals {
	return a[id]
}

// Leaders summarizes every player, highest scoring average first.
func (a Aggregate) Leaders() []Summary {
	out := make([]Summary, 0, len(a))
	for id, t := range a {
		out = append(out, t.Summarize(id))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PointsPerGame != out[j].PointsPerGame {
			return out[i].PointsPerGame > out[j].PointsPerGame
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out
}
