// Package fixture supplies a small static league so the server boots with
// teams and a schedule to simulate.
package fixture

import (
	"fmt"
	"time"

	"github.com/preston-bernstein/courtside-sim/internal/coaching"
	"github.com/preston-bernstein/courtside-sim/internal/domain/games"
	"github.com/preston-bernstein/courtside-sim/internal/domain/players"
	"github.com/preston-bernstein/courtside-sim/internal/domain/teams"
	"github.com/preston-bernstein/courtside-sim/internal/timeutil"
)

// SeasonStart is the first game date of the fixture schedule.
var SeasonStart = time.Date(2024, time.October, 22, 0, 0, 0, 0, time.UTC)

type slotSpec struct {
	name    string
	height  int
	role    string
	minutes int
	ratings players.Ratings
}

type teamSpec struct {
	id, name, abbr, city, conference, division string
	coach                                      coaching.Coach
	// starter and backup per position, PG..C
	slots [5][2]slotSpec
}

func r(shoot, def, speed, reb, pass, handle, three, blk, stl, post int) players.Ratings {
	return players.Ratings{
		Shooting: shoot, Defense: def, Speed: speed, Rebounding: reb, Passing: pass,
		BallHandling: handle, ThreePoint: three, Blocks: blk, Steals: stl, PostShooting: post,
	}
}

var specs = []teamSpec{
	{
		id: "bos", name: "Celtics", abbr: "BOS", city: "Boston", conference: "East", division: "Atlantic",
		coach: coaching.Coach{ID: "coach-bos", Name: "Mara Quinlan", Offense: 72, Defense: 80, Development: 65, Experience: 9},
		slots: [5][2]slotSpec{
			{{"Jalen Brooks", 75, "floor_general", 34, r(74, 70, 78, 40, 84, 86, 72, 20, 68, 45)}, {"Theo Park", 73, "pace_setter", 14, r(64, 60, 82, 35, 70, 74, 60, 15, 60, 35)}},
			{{"Derrick Vance", 77, "three_and_d", 34, r(76, 80, 72, 45, 55, 65, 80, 30, 72, 45)}, {"Owen Hale", 76, "sharpshooter", 14, r(70, 55, 66, 38, 50, 58, 78, 20, 50, 40)}},
			{{"Marcus Reid", 79, "two_way_wing", 36, r(78, 82, 74, 60, 62, 68, 70, 45, 70, 62)}, {"Luis Ortega", 79, "scoring_wing", 12, r(72, 55, 70, 50, 52, 60, 66, 30, 50, 58)}},
			{{"Andre Coles", 81, "stretch_four", 32, r(72, 66, 62, 72, 56, 50, 74, 55, 50, 64)}, {"Grant Tillman", 81, "glass_cleaner", 16, r(55, 68, 58, 80, 45, 40, 30, 60, 45, 58)}},
			{{"Samuel Ike", 84, "rim_protector", 30, r(58, 84, 52, 84, 45, 35, 20, 88, 50, 66)}, {"Nate Fowler", 83, "paint_beast", 18, r(60, 64, 50, 78, 40, 30, 10, 66, 40, 74)}},
		},
	},
	{
		id: "lal", name: "Lakers", abbr: "LAL", city: "Los Angeles", conference: "West", division: "Pacific",
		coach: coaching.Coach{ID: "coach-lal", Name: "Devon Ashby", Offense: 78, Defense: 66, Development: 70, Experience: 14},
		slots: [5][2]slotSpec{
			{{"Chris Monroe", 74, "scoring_point", 34, r(80, 60, 80, 38, 72, 84, 76, 15, 62, 50)}, {"Eli Santos", 73, "defensive_pest", 14, r(58, 76, 78, 36, 62, 70, 55, 18, 78, 30)}},
			{{"Isaiah Grant", 77, "slasher", 34, r(78, 62, 82, 48, 58, 72, 62, 30, 60, 66)}, {"Ryan Cho", 76, "sharpshooter", 14, r(68, 52, 64, 35, 48, 56, 82, 15, 45, 35)}},
			{{"Victor Lang", 80, "point_forward", 36, r(76, 70, 72, 66, 82, 78, 66, 45, 62, 68)}, {"Bryce Dunn", 79, "two_way_wing", 12, r(62, 72, 68, 55, 50, 56, 60, 40, 62, 52)}},
			{{"Tyrell Banks", 81, "post_bruiser", 32, r(70, 64, 58, 76, 50, 45, 40, 58, 45, 80)}, {"Cody Marsh", 82, "stretch_four", 16, r(66, 56, 56, 64, 46, 44, 70, 45, 40, 55)}},
			{{"Ade Okafor", 84, "stretch_five", 32, r(72, 70, 54, 78, 55, 45, 70, 70, 45, 70)}, {"Paul Strand", 85, "rim_protector", 16, r(50, 76, 45, 80, 35, 30, 10, 82, 40, 58)}},
		},
	},
	{
		id: "gsw", name: "Warriors", abbr: "GSW", city: "San Francisco", conference: "West", division: "Pacific",
		coach: coaching.Coach{ID: "coach-gsw", Name: "Iris Calloway", Offense: 86, Defense: 62, Development: 74, Experience: 18},
		slots: [5][2]slotSpec{
			{{"Miles Harper", 75, "scoring_point", 34, r(84, 58, 78, 40, 76, 86, 90, 15, 60, 45)}, {"Kai Novak", 74, "floor_general", 14, r(62, 58, 72, 34, 78, 76, 64, 12, 55, 35)}},
			{{"Jordan Pike", 77, "sharpshooter", 34, r(80, 60, 70, 42, 56, 64, 88, 22, 58, 42)}, {"Sean Whitley", 76, "three_and_d", 14, r(64, 74, 70, 44, 50, 58, 72, 28, 66, 40)}},
			{{"Dario Fuentes", 79, "scoring_wing", 34, r(80, 64, 72, 56, 60, 70, 76, 38, 58, 64)}, {"Lamar Price", 80, "two_way_wing", 14, r(60, 74, 70, 58, 52, 56, 62, 40, 64, 50)}},
			{{"Ben Ostrowski", 82, "stretch_four", 34, r(74, 62, 60, 68, 62, 52, 80, 50, 48, 58)}, {"Hank Mills", 81, "glass_cleaner", 14, r(52, 64, 56, 78, 44, 40, 28, 56, 44, 54)}},
			{{"Femi Adebayo", 83, "stretch_five", 30, r(70, 68, 58, 74, 60, 48, 68, 66, 50, 64)}, {"Ivan Petrov", 85, "paint_beast", 18, r(58, 62, 44, 80, 36, 28, 10, 64, 36, 76)}},
		},
	},
	{
		id: "mia", name: "Heat", abbr: "MIA", city: "Miami", conference: "East", division: "Southeast",
		coach: coaching.Coach{ID: "coach-mia", Name: "Ron Castellano", Offense: 68, Defense: 88, Development: 82, Experience: 22},
		slots: [5][2]slotSpec{
			{{"Tyler Nash", 74, "defensive_pest", 34, r(68, 82, 80, 40, 70, 78, 66, 18, 84, 40)}, {"Omar Little", 73, "pace_setter", 14, r(60, 62, 84, 34, 66, 72, 58, 12, 62, 32)}},
			{{"Caleb Frost", 77, "three_and_d", 34, r(72, 84, 72, 46, 54, 62, 76, 32, 76, 44)}, {"Nico Alves", 76, "slasher", 14, r(68, 58, 80, 42, 50, 66, 52, 24, 56, 60)}},
			{{"Jamal Whitfield", 80, "two_way_wing", 36, r(76, 86, 74, 62, 60, 66, 68, 50, 74, 64)}, {"Pete Larkin", 79, "point_forward", 12, r(62, 62, 66, 56, 72, 68, 58, 34, 52, 52)}},
			{{"Keon Dorsey", 81, "glass_cleaner", 32, r(62, 74, 62, 82, 52, 46, 44, 64, 54, 66)}, {"Gabe Rowan", 81, "post_bruiser", 16, r(64, 66, 54, 70, 44, 40, 30, 56, 42, 72)}},
			{{"Moses Diallo", 84, "rim_protector", 32, r(60, 86, 54, 86, 48, 36, 20, 90, 52, 68)}, {"Ezra Kline", 84, "paint_beast", 16, r(58, 66, 46, 76, 38, 28, 10, 62, 38, 72)}},
		},
	},
}

// Teams returns the fixture teams with rotations and assigned roles.
func Teams() []teams.Team {
	out := make([]teams.Team, 0, len(specs))
	for _, spec := range specs {
		t := teams.Team{
			ID:           spec.id,
			Name:         spec.name,
			Abbreviation: spec.abbr,
			City:         spec.city,
			Conference:   spec.conference,
			Division:     spec.division,
			Rotation: &teams.Rotation{
				Minutes:    make(map[string]int, 10),
				DepthChart: make(map[players.Position][]string, 5),
			},
		}
		for i, pos := range players.Positions {
			for rank, slot := range spec.slots[i] {
				id := fmt.Sprintf("%s-%s-%d", spec.id, pos, rank+1)
				p := players.New(id, slot.name, slot.height, pos, slot.ratings).WithRole(slot.role)
				t.Roster = append(t.Roster, p)
				t.Rotation.Minutes[id] = slot.minutes
				t.Rotation.DepthChart[pos] = append(t.Rotation.DepthChart[pos], id)
				if rank == 0 {
					t.Starters = append(t.Starters, id)
				}
			}
		}
		out = append(out, t)
	}
	return out
}

// Staff returns the head coach of every fixture team keyed by team id.
func Staff() coaching.Staff {
	staff := make(coaching.Staff, len(specs))
	for _, spec := range specs {
		staff[spec.id] = spec.coach
	}
	return staff
}

// rounds lists home/away pairs per game day: a double round robin followed
// by three postseason games.
var rounds = []struct {
	postseason bool
	pairs      [][2]string
}{
	{false, [][2]string{{"bos", "lal"}, {"gsw", "mia"}}},
	{false, [][2]string{{"lal", "gsw"}, {"mia", "bos"}}},
	{false, [][2]string{{"bos", "gsw"}, {"lal", "mia"}}},
	{false, [][2]string{{"lal", "bos"}, {"mia", "gsw"}}},
	{false, [][2]string{{"gsw", "lal"}, {"bos", "mia"}}},
	{false, [][2]string{{"gsw", "bos"}, {"mia", "lal"}}},
	{true, [][2]string{{"bos", "gsw"}}},
	{true, [][2]string{{"gsw", "bos"}}},
	{true, [][2]string{{"bos", "gsw"}}},
}

// Schedule returns the unplayed fixture schedule, one game day every other day from start.
func Schedule(start time.Time) []games.Game {
	var out []games.Game
	for day, round := range rounds {
		date := timeutil.GameDay(start, day, 2)
		for i, pair := range round.pairs {
			id := fmt.Sprintf("g%s-%d", date, i+1)
			out = append(out, games.NewScheduled(id, date, pair[0], pair[1], round.postseason))
		}
	}
	return out
}
