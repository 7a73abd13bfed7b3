package seasons

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/preston-bernstein/courtside-sim/internal/domain/games"
	"github.com/preston-bernstein/courtside-sim/internal/domain/stats"
)

func played(id, home, away string, homePts, awayPts int, postseason bool) games.Game {
	box := games.BoxScore{
		Home: games.TeamBox{TeamID: home, Players: map[string]games.Line{home + "-1": {Points: homePts, Minutes: 48}}},
		Away: games.TeamBox{TeamID: away, Players: map[string]games.Line{away + "-1": {Points: awayPts, Minutes: 48}}},
	}
	return games.NewScheduled(id, "2024-11-01", home, away, postseason).Final(box, games.ModeFast, nil)
}

func TestRecordRoutesStreams(t *testing.T) {
	s := New("2024")
	s, added, err := s.Record(played("g1", "a", "b", 100, 90, false))
	if err != nil || !added {
		t.Fatalf("record regular: added=%v err=%v", added, err)
	}
	s, added, err = s.Record(played("g2", "a", "b", 80, 95, true))
	if err != nil || !added {
		t.Fatalf("record playoff: added=%v err=%v", added, err)
	}

	if got := s.Stats(stats.RegularSeason).Player("a-1"); got.GamesPlayed != 1 || got.Line.Points != 100 {
		t.Fatalf("unexpected regular totals %+v", got)
	}
	if got := s.Stats(stats.Playoffs).Player("a-1"); got.GamesPlayed != 1 || got.Line.Points != 80 {
		t.Fatalf("unexpected playoff totals %+v", got)
	}
}

func TestRecordIsIdempotentPerGame(t *testing.T) {
	g := played("g1", "a", "b", 100, 90, false)
	s, _, _ := New("2024").Record(g)
	again, added, err := s.Record(g)
	if err != nil || added {
		t.Fatalf("expected duplicate fold to be skipped, added=%v err=%v", added, err)
	}
	if got := again.Regular.Player("a-1").GamesPlayed; got != 1 {
		t.Fatalf("expected one game played, got %d", got)
	}
	if len(again.Results) != 1 {
		t.Fatalf("expected one ledger entry, got %d", len(again.Results))
	}
}

func TestRecordDoesNotMutatePreviousSeason(t *testing.T) {
	base, _, _ := New("2024").Record(played("g1", "a", "b", 100, 90, false))
	left, _, _ := base.Record(played("g2", "a", "c", 100, 90, false))
	right, _, _ := base.Record(played("g3", "b", "c", 100, 90, false))

	if len(base.Results) != 1 || base.Regular.Player("a-1").GamesPlayed != 1 {
		t.Fatalf("expected base untouched, got %+v", base)
	}
	if left.Results[1].GameID != "g2" || right.Results[1].GameID != "g3" {
		t.Fatalf("expected independent ledgers, got %v and %v", left.Results, right.Results)
	}
}

func TestRecordRejectsUnplayedOrBrokenGames(t *testing.T) {
	if _, _, err := New("2024").Record(games.NewScheduled("g1", "", "a", "b", false)); !errors.Is(err, ErrNotPlayed) {
		t.Fatalf("expected ErrNotPlayed, got %v", err)
	}
	g := played("g2", "a", "b", 100, 90, false)
	bad := 50
	g.HomeScore = &bad
	if _, _, err := New("2024").Record(g); !errors.Is(err, games.ErrInvariant) {
		t.Fatalf("expected ErrInvariant, got %v", err)
	}
}

func TestStandings(t *testing.T) {
	s := New("2024")
	for _, g := range []games.Game{
		played("g1", "a", "b", 100, 90, false),
		played("g2", "b", "c", 100, 90, false),
		played("g3", "c", "a", 80, 99, false),
		played("g4", "c", "a", 120, 99, true),
	} {
		s, _, _ = s.Record(g)
	}
	st := s.Standings()
	if len(st) != 3 {
		t.Fatalf("expected three teams, got %d", len(st))
	}
	if st[0].TeamID != "a" || st[0].Wins != 2 || st[0].Losses != 0 {
		t.Fatalf("expected a first at 2-0, got %+v", st[0])
	}
	if st[2].TeamID != "c" || st[2].Losses != 2 || st[2].PointsAgainst != 199 {
		t.Fatalf("expected c last at 0-2 ignoring playoffs, got %+v", st[2])
	}
}

func TestSeasonRoundTrip(t *testing.T) {
	full, _, _ := New("2024").Record(played("g1", "a", "b", 100, 90, false))
	full, _, _ = full.Record(played("g2", "a", "b", 100, 90, true))

	for _, s := range []Season{full, New("empty")} {
		data, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		var back Season
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !reflect.DeepEqual(s, back) {
			t.Fatalf("round trip mismatch:\n%+v\n%+v", s, back)
		}
	}
}

func TestLegacySeasonWithoutPlayoffsLoads(t *testing.T) {
	legacy := []byte(`{"id":"2019","regular":{"p1":{"gamesPlayed":2,"totals":{"points":30}}}}`)
	var s Season
	if err := json.Unmarshal(legacy, &s); err != nil {
		t.Fatalf("decode legacy season: %v", err)
	}
	if s.Playoffs != nil || s.Results != nil {
		t.Fatalf("expected empty playoff data, got %+v", s)
	}
	if got := s.Stats(stats.Playoffs).Player("p1"); got.GamesPlayed != 0 {
		t.Fatalf("expected empty playoff totals, got %+v", got)
	}

	next, added, err := s.Record(played("g1", "a", "b", 100, 90, true))
	if err != nil || !added {
		t.Fatalf("expected fold onto legacy season, added=%v err=%v", added, err)
	}
	if next.Regular.Player("p1").Line.Points != 30 || next.Playoffs.Player("a-1").Line.Points != 100 {
		t.Fatalf("unexpected streams after fold %+v", next)
	}
}
