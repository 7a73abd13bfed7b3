package games

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"

	"pgregory.net/rapid"
)

func genLine() *rapid.Generator[Line] {
	return rapid.Custom(func(t *rapid.T) Line {
		n := rapid.IntRange(0, 48)
		return Line{
			Minutes:           n.Draw(t, "minutes"),
			Points:            n.Draw(t, "points"),
			Rebounds:          n.Draw(t, "rebounds"),
			OffensiveRebounds: n.Draw(t, "offensiveRebounds"),
			Assists:           n.Draw(t, "assists"),
			Steals:            n.Draw(t, "steals"),
			Blocks:            n.Draw(t, "blocks"),
			Turnovers:         n.Draw(t, "turnovers"),
			Fouls:             n.Draw(t, "fouls"),
			FieldGoalsMade:    n.Draw(t, "fgm"),
			FieldGoalsTried:   n.Draw(t, "fga"),
			ThreesMade:        n.Draw(t, "tpm"),
			ThreesTried:       n.Draw(t, "tpa"),
			FreeThrowsMade:    n.Draw(t, "ftm"),
			FreeThrowsTried:   n.Draw(t, "fta"),
		}
	})
}

func genTeamBox(teamID string) *rapid.Generator[TeamBox] {
	return rapid.Custom(func(t *rapid.T) TeamBox {
		n := rapid.IntRange(1, 8).Draw(t, teamID+"-players")
		players := make(map[string]Line, n)
		for i := 0; i < n; i++ {
			players[fmt.Sprintf("%s-%d", teamID, i)] = genLine().Draw(t, fmt.Sprintf("%s-line-%d", teamID, i))
		}
		return TeamBox{TeamID: teamID, Players: players}
	})
}

// genGame draws a scheduled stub or a played game. Periods are nil or
// non-empty, as the engines produce them.
func genGame() *rapid.Generator[Game] {
	return rapid.Custom(func(t *rapid.T) Game {
		g := NewScheduled(
			rapid.StringMatching(`g[0-9]{1,4}`).Draw(t, "id"),
			rapid.SampledFrom([]string{"", "2024-10-22", "2025-04-19"}).Draw(t, "date"),
			"bos", "lal",
			rapid.Bool().Draw(t, "postseason"),
		)
		if !rapid.Bool().Draw(t, "played") {
			return g
		}
		box := BoxScore{Home: genTeamBox("bos").Draw(t, "home"), Away: genTeamBox("lal").Draw(t, "away")}
		var periods []PeriodScore
		if rapid.Bool().Draw(t, "detailed") {
			n := rapid.IntRange(4, 7).Draw(t, "periods")
			for i := 1; i <= n; i++ {
				periods = append(periods, PeriodScore{
					Period: i,
					Label:  fmt.Sprintf("P%d", i),
					Home:   rapid.IntRange(0, 40).Draw(t, "periodHome"),
					Away:   rapid.IntRange(0, 40).Draw(t, "periodAway"),
				})
			}
			return g.Final(box, ModeDetailed, periods)
		}
		return g.Final(box, ModeFast, nil)
	})
}

func TestGameRoundTripsThroughJSON(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := genGame().Draw(t, "game")
		data, err := json.Marshal(g)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		var back Game
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !reflect.DeepEqual(g, back) {
			t.Fatalf("round trip mismatch:\n%+v\n%+v", g, back)
		}
	})
}
