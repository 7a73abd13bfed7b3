package stats

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"github.com/preston-bernstein/courtside-sim/internal/domain/games"
)

func box(homePts, awayPts int) games.BoxScore {
	return games.BoxScore{
		Home: games.TeamBox{TeamID: "h", Players: map[string]games.Line{
			"h1": {Points: homePts, FieldGoalsMade: homePts / 2, FieldGoalsTried: homePts, ThreesTried: 3, ThreesMade: 1},
		}},
		Away: games.TeamBox{TeamID: "a", Players: map[string]games.Line{
			"a1": {Points: awayPts, Rebounds: 4},
		}},
	}
}

func TestAddGameFromNilAggregate(t *testing.T) {
	var prev Aggregate
	got := AddGame(prev, box(20, 10))

	h1 := got.Player("h1")
	if h1.GamesPlayed != 1 || h1.Line.Points != 20 {
		t.Fatalf("unexpected totals %+v", h1)
	}
	if prev != nil {
		t.Fatalf("expected prev to stay nil")
	}
}

func TestAddGameDoesNotMutatePrevious(t *testing.T) {
	first := AddGame(nil, box(20, 10))
	second := AddGame(first, box(8, 12))

	if first.Player("h1").Line.Points != 20 {
		t.Fatalf("expected first aggregate untouched, got %+v", first.Player("h1"))
	}
	h1 := second.Player("h1")
	if h1.GamesPlayed != 2 || h1.Line.Points != 28 {
		t.Fatalf("unexpected cumulative totals %+v", h1)
	}
	if got := h1.PointsPerGame(); got != 14 {
		t.Fatalf("expected 14 ppg, got %v", got)
	}
}

func TestDerivedMetricsFromTotals(t *testing.T) {
	tot := Totals{GamesPlayed: 4, Line: games.Line{
		Points: 80, FieldGoalsMade: 30, FieldGoalsTried: 60, ThreesMade: 5, ThreesTried: 20, FreeThrowsMade: 15, FreeThrowsTried: 20,
	}}
	checks := map[string][2]float64{
		"ppg":   {tot.PointsPerGame(), 20},
		"fg":    {tot.FieldGoalPct(), 0.5},
		"three": {tot.ThreePointPct(), 0.25},
		"ft":    {tot.FreeThrowPct(), 0.75},
		"rate":  {tot.ThreePointRate(), 1.0 / 3.0},
		"3pa":   {tot.ThreesTriedPerGame(), 5},
	}
	for name, c := range checks {
		if math.Abs(c[0]-c[1]) > 1e-9 {
			t.Fatalf("%s: expected %v, got %v", name, c[1], c[0])
		}
	}

	var empty Totals
	if empty.PointsPerGame() != 0 || empty.FieldGoalPct() != 0 {
		t.Fatalf("expected zero rates for empty totals")
	}
	s := tot.Summarize("p1")
	if s.PlayerID != "p1" || s.PointsPerGame != 20 || s.FieldGoalPct != 0.5 {
		t.Fatalf("unexpected summary %+v", s)
	}
}

func genLine() *rapid.Generator[games.Line] {
	return rapid.Custom(func(t *rapid.T) games.Line {
		n := rapid.IntRange(0, 40)
		return games.Line{
			Minutes:  n.Draw(t, "minutes"),
			Points:   n.Draw(t, "points"),
			Rebounds: n.Draw(t, "rebounds"),
			Assists:  n.Draw(t, "assists"),
			Steals:   n.Draw(t, "steals"),
			Blocks:   n.Draw(t, "blocks"),
		}
	})
}

func genBox() *rapid.Generator[games.BoxScore] {
	return rapid.Custom(func(t *rapid.T) games.BoxScore {
		ids := []string{"p1", "p2", "p3", "p4"}
		home := make(map[string]games.Line)
		away := make(map[string]games.Line)
		for _, id := range ids[:2] {
			if rapid.Bool().Draw(t, "plays-"+id) {
				home[id] = genLine().Draw(t, "line-"+id)
			}
		}
		for _, id := range ids[2:] {
			if rapid.Bool().Draw(t, "plays-"+id) {
				away[id] = genLine().Draw(t, "line-"+id)
			}
		}
		return games.BoxScore{
			Home: games.TeamBox{TeamID: "h", Players: home},
			Away: games.TeamBox{TeamID: "a", Players: away},
		}
	})
}

func TestAddGameOrderIndependent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		boxes := rapid.SliceOfN(genBox(), 1, 8).Draw(t, "boxes")
		shuffled := rapid.Permutation(boxes).Draw(t, "shuffled")

		var forward, permuted Aggregate
		for _, b := range boxes {
			forward = AddGame(forward, b)
		}
		for _, b := range shuffled {
			permuted = AddGame(permuted, b)
		}
		if !reflect.DeepEqual(forward, permuted) {
			t.Fatalf("order changed totals:\n%+v\n%+v", forward, permuted)
		}

		for _, id := range []string{"p1", "p2", "p3", "p4"} {
			appearances, points := 0, 0
			for _, b := range boxes {
				if l, ok := b.Line(id); ok {
					appearances++
					points += l.Points
				}
			}
			got := forward.Player(id)
			if got.GamesPlayed != appearances {
				t.Fatalf("%s: games played %d, want %d", id, got.GamesPlayed, appearances)
			}
			if got.Line.Points != points {
				t.Fatalf("%s: points %d, want %d", id, got.Line.Points, points)
			}
		}
	})
}

func TestAggregateRoundTrip(t *testing.T) {
	full := AddGame(AddGame(nil, box(20, 10)), box(11, 30))
	for name, agg := range map[string]Aggregate{"full": full, "empty": {}, "nil": nil} {
		data, err := json.Marshal(agg)
		if err != nil {
			t.Fatalf("%s encode: %v", name, err)
		}
		var back Aggregate
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("%s decode: %v", name, err)
		}
		if !reflect.DeepEqual(agg, back) {
			t.Fatalf("%s round trip mismatch: %s", name, fmt.Sprint(back))
		}
	}
}

func TestStreamRouting(t *testing.T) {
	if StreamFor(games.Game{Postseason: true}) != Playoffs {
		t.Fatalf("expected playoff stream")
	}
	if StreamFor(games.Game{}) != RegularSeason {
		t.Fatalf("expected regular stream")
	}
	if ParseStream("playoffs") != Playoffs || ParseStream("playoff") != Playoffs || ParseStream("") != RegularSeason {
		t.Fatalf("unexpected ParseStream mapping")
	}
}

func TestLeadersOrderByScoringThenID(t *testing.T) {
	agg := Aggregate{
		"b": {GamesPlayed: 2, Line: games.Line{Points: 40}},
		"a": {GamesPlayed: 1, Line: games.Line{Points: 20}},
		"c": {GamesPlayed: 4, Line: games.Line{Points: 100}},
	}
	got := agg.Leaders()
	if len(got) != 3 || got[0].PlayerID != "c" || got[1].PlayerID != "a" || got[2].PlayerID != "b" {
		t.Fatalf("unexpected leader order %+v", got)
	}
	if len(Aggregate(nil).Leaders()) != 0 {
		t.Fatalf("expected no leaders for empty aggregate")
	}
}

func TestAddGameKeepsEmptyAggregateNil(t *testing.T) {
	if got := AddGame(nil, games.BoxScore{}); got != nil {
		t.Fatalf("expected nil aggregate for an empty box, got %+v", got)
	}
	if got := AddGame(Aggregate{}, games.BoxScore{}); got != nil {
		t.Fatalf("expected empty aggregate normalized to nil, got %+v", got)
	}
}

func TestFoldedAggregateRoundTripsThroughJSON(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var agg Aggregate
		for _, b := range rapid.SliceOfN(genBox(), 0, 6).Draw(t, "boxes") {
			agg = AddGame(agg, b)
		}
		data, err := json.Marshal(agg)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		var back Aggregate
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !reflect.DeepEqual(agg, back) {
			t.Fatalf("round trip mismatch:\n%+v\n%+v", agg, back)
		}
	})
}
