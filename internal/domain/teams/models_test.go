package teams

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/preston-bernstein/courtside-sim/internal/domain/players"
)

func rosterOf(n int) []players.Player {
	out := make([]players.Player, 0, n)
	for i := 0; i < n; i++ {
		pos := players.Positions[i%len(players.Positions)]
		out = append(out, players.New(fmt.Sprintf("p%d", i), fmt.Sprintf("Player %d", i), 78, pos, players.Ratings{Shooting: 60}))
	}
	return out
}

func sampleTeam() Team {
	roster := rosterOf(10)
	return Team{
		ID:       "t1",
		Name:     "Testers",
		Roster:   roster,
		Starters: []string{"p4", "p3", "p2", "p1", "p0"},
	}
}

func sampleRotation() *Rotation {
	return &Rotation{
		Minutes: map[string]int{
			"p0": 36, "p1": 34, "p2": 34, "p3": 32, "p4": 30,
			"p5": 12, "p6": 14, "p7": 14, "p8": 16, "p9": 18,
		},
		DepthChart: map[players.Position][]string{
			players.PointGuard:    {"p0", "p5"},
			players.ShootingGuard: {"p1", "p6"},
			players.SmallForward:  {"p2", "p7"},
			players.PowerForward:  {"p3", "p8"},
			players.Center:        {"p4", "p9"},
		},
	}
}

func TestTeamJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	teamType := reflect.TypeOf(Team{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"Name", "name"},
		{"Abbreviation", "abbreviation"},
		{"City", "city"},
		{"Conference", "conference"},
		{"Division", "division"},
		{"Roster", "roster"},
		{"Starters", "starters"},
		{"Rotation", "rotation,omitempty"},
	}
	for _, fc := range fields {
		f, ok := teamType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestStartingLineupSortsBySlot(t *testing.T) {
	lineup, err := sampleTeam().StartingLineup()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, p := range lineup {
		if p.Position != players.Positions[i] {
			t.Fatalf("slot %d expected %s, got %s", i, players.Positions[i], p.Position)
		}
	}
}

func TestValidateRejectsShortRoster(t *testing.T) {
	team := Team{ID: "short", Roster: rosterOf(4), Starters: []string{"p0", "p1", "p2", "p3"}}
	if err := team.Validate(); !errors.Is(err, ErrInvalidRoster) {
		t.Fatalf("expected ErrInvalidRoster, got %v", err)
	}
}

func TestValidateRejectsBadStarters(t *testing.T) {
	team := sampleTeam()
	team.Starters = []string{"p0", "p1", "p2", "p3"}
	if err := team.Validate(); !errors.Is(err, ErrInvalidLineup) {
		t.Fatalf("expected ErrInvalidLineup for four starters, got %v", err)
	}

	team.Starters = []string{"p0", "p1", "p2", "p3", "ghost"}
	if err := team.Validate(); !errors.Is(err, ErrInvalidLineup) {
		t.Fatalf("expected ErrInvalidLineup for unknown starter, got %v", err)
	}

	team.Starters = []string{"p0", "p1", "p2", "p3", "p3"}
	if err := team.Validate(); !errors.Is(err, ErrInvalidLineup) {
		t.Fatalf("expected ErrInvalidLineup for duplicate starter, got %v", err)
	}
}

func TestValidateRejectsDuplicatePlayers(t *testing.T) {
	team := sampleTeam()
	team.Roster = append(team.Roster, team.Roster[0])
	if err := team.Validate(); !errors.Is(err, ErrInvalidRoster) {
		t.Fatalf("expected ErrInvalidRoster, got %v", err)
	}
}

func TestRotationMinutesMustSumTo240(t *testing.T) {
	team := sampleTeam().WithRotation(sampleRotation())
	if err := team.Validate(); err != nil {
		t.Fatalf("expected valid rotation, got %v", err)
	}

	bad := sampleRotation()
	bad.Minutes["p9"] = 10
	if err := sampleTeam().WithRotation(bad).Validate(); !errors.Is(err, ErrInvalidRotation) {
		t.Fatalf("expected ErrInvalidRotation, got %v", err)
	}
}

func TestRotationStartersComeFromDepthChart(t *testing.T) {
	team := sampleTeam()
	team.Starters = nil
	team = team.WithRotation(sampleRotation())

	lineup, err := team.StartingLineup()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"p0", "p1", "p2", "p3", "p4"}
	for i, p := range lineup {
		if p.ID != want[i] {
			t.Fatalf("slot %d expected %s, got %s", i, want[i], p.ID)
		}
	}
}

func TestTimelineWithoutRotationPlaysStarters(t *testing.T) {
	tl, err := sampleTeam().Timeline()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := tl.OnCourt(0)
	last := tl.OnCourt(47.9)
	if first != last {
		t.Fatalf("expected same five all game, got %v then %v", first, last)
	}
	if tl.OnCourt(50) != first {
		t.Fatalf("expected overtime to keep closing lineup")
	}
}

func TestTimelineHonorsRotationMinutes(t *testing.T) {
	team := sampleTeam().WithRotation(sampleRotation())
	tl, err := team.Timeline()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	played := make(map[string]float64)
	for _, stints := range tl {
		var covered float64
		for _, s := range stints {
			played[s.PlayerID] += s.End - s.Start
			covered += s.End - s.Start
		}
		if math.Abs(covered-GameMinutes) > 1e-9 {
			t.Fatalf("slot covers %.3f minutes, want %d", covered, GameMinutes)
		}
	}
	for id, want := range sampleRotation().Minutes {
		if math.Abs(played[id]-float64(want)) > 1e-6 {
			t.Fatalf("player %s played %.3f, want %d", id, played[id], want)
		}
	}

	if got := tl.OnCourt(0); got[0] != "p0" {
		t.Fatalf("expected p0 to open the game, got %v", got)
	}
	if got := tl.OnCourt(24); got[0] != "p0" {
		t.Fatalf("expected p0 to open the second half, got %v", got)
	}
	if got := tl.OnCourt(23.9); got[0] != "p5" {
		t.Fatalf("expected backup to close the first half, got %v", got)
	}
}

func TestWithPlayerReplacesWithoutAliasing(t *testing.T) {
	team := sampleTeam()
	updated := team.WithPlayer(team.Roster[0].WithRole("floor_general"))

	if team.Roster[0].Role != "" {
		t.Fatalf("expected original roster untouched")
	}
	p, _ := updated.Player("p0")
	if p.Role != "floor_general" {
		t.Fatalf("expected updated role, got %q", p.Role)
	}
	if len(updated.Roster) != len(team.Roster) {
		t.Fatalf("expected replace not append")
	}
}

func TestTeamRoundTrip(t *testing.T) {
	for _, team := range []Team{sampleTeam(), sampleTeam().WithRotation(sampleRotation())} {
		data, err := json.Marshal(team)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		var back Team
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !reflect.DeepEqual(team, back) {
			t.Fatalf("round trip mismatch:\n%+v\n%+v", team, back)
		}
	}
}
