package seasons

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/preston-bernstein/courtside-sim/internal/domain/games"
	"github.com/preston-bernstein/courtside-sim/internal/domain/stats"
)

// ErrNotPlayed is returned when folding a game that has no final box score.
var ErrNotPlayed = errors.New("game not played")

// Result is the ledger entry for one folded game.
type Result struct {
	GameID     string `json:"gameId"`
	Date       string `json:"date,omitempty"`
	HomeTeamID string `json:"homeTeamId"`
	AwayTeamID string `json:"awayTeamId"`
	HomeScore  int    `json:"homeScore"`
	AwayScore  int    `json:"awayScore"`
	Postseason bool   `json:"postseason,omitempty"`
}

// Winner returns the winning team id.
func (r Result) Winner() string {
	if r.HomeScore > r.AwayScore {
		return r.HomeTeamID
	}
	return r.AwayTeamID
}

// Season carries the regular-season and playoff aggregates and the games folded
// into them, in fold order. Values are immutable; Record returns a new Season.
type Season struct {
	ID       string          `json:"id"`
	Regular  stats.Aggregate `json:"regular,omitempty"`
	Playoffs stats.Aggregate `json:"playoffs,omitempty"`
	Results  []Result        `json:"results,omitempty"`
}

// New returns an empty season.
func New(id string) Season {
	return Season{ID: id}
}

// Has reports whether the game has already been folded.
func (s Season) Has(gameID string) bool {
	for _, r := range s.Results {
		if r.GameID == gameID {
			return true
		}
	}
	return false
}

// Record folds a played game into the stream its Postseason flag selects.
// Folding the same game id twice is a no-op reported by added=false.
func (s Season) Record(g games.Game) (next Season, added bool, err error) {
	if !g.Played || g.BoxScore == nil {
		return s, false, fmt.Errorf("%w: %s", ErrNotPlayed, g.ID)
	}
	if err := g.Validate(); err != nil {
		return s, false, err
	}
	if s.Has(g.ID) {
		return s, false, nil
	}

	next = s
	switch stats.StreamFor(g) {
	case stats.Playoffs:
		next.Playoffs = stats.AddGame(s.Playoffs, *g.BoxScore)
	default:
		next.Regular = stats.AddGame(s.Regular, *g.BoxScore)
	}
	next.Results = append(slices.Clip(s.Results), Result{
		GameID:     g.ID,
		Date:       g.Date,
		HomeTeamID: g.HomeTeamID,
		AwayTeamID: g.AwayTeamID,
		HomeScore:  *g.HomeScore,
		AwayScore:  *g.AwayScore,
		Postseason: g.Postseason,
	})
	return next, true, nil
}

// Stats returns the aggregate for stream. A missing aggregate reads as empty.
func (s Season) Stats(stream stats.Stream) stats.Aggregate {
	if stream == stats.Playoffs {
		return s.Playoffs
	}
	return s.Regular
}

// Standing is one team's regular-season record.
type Standing struct {
	TeamID        string  `json:"teamId"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	PointsFor     int     `json:"pointsFor"`
	PointsAgainst int     `json:"pointsAgainst"`
	WinPct        float64 `json:"winPct"`
}

// Standings derives regular-season records from the ledger, best record first.
func (s Season) Standings() []Standing {
	byTeam := make(map[string]*Standing)
	get := func(id string) *Standing {
		st, ok := byTeam[id]
		if !ok {
			st = &Standing{TeamID: id}
			byTeam[id] = st
		}
		return st
	}
	for _, r := range s.Results {
		if r.Postseason {
			continue
		}
		home, away := get(r.HomeTeamID), get(r.AwayTeamID)
		home.PointsFor += r.HomeScore
		home.PointsAgainst += r.AwayScore
		away.PointsFor += r.AwayScore
		away.PointsAgainst += r.HomeScore
		if r.Winner() == r.HomeTeamID {
			home.Wins++
			away.Losses++
		} else {
			away.Wins++
			home.Losses++
		}
	}

	out := make([]Standing, 0, len(byTeam))
	for _, st := range byTeam {
		if played := st.Wins + st.Losses; played > 0 {
			st.WinPct = float64(st.Wins) / float64(played)
		}
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WinPct != out[j].WinPct {
			return out[i].WinPct > out[j].WinPct
		}
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return out[i].TeamID < out[j].TeamID
	})
	return out
}
