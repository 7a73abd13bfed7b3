package sim

import (
	"github.com/preston-bernstein/courtside-sim/internal/domain/players"
	"github.com/preston-bernstein/courtside-sim/internal/domain/teams"
)

func baseRatings() players.Ratings {
	return players.Ratings{
		Shooting:     70,
		Defense:      65,
		Speed:        65,
		Rebounding:   60,
		Passing:      60,
		BallHandling: 60,
		ThreePoint:   65,
		Blocks:       50,
		Steals:       55,
		PostShooting: 60,
	}
}

func ratingsFor(pos players.Position) players.Ratings {
	r := baseRatings()
	switch pos {
	case players.PointGuard:
		r.BallHandling, r.Passing = 80, 80
	case players.PowerForward:
		r.Rebounding, r.ThreePoint = 75, 50
	case players.Center:
		r.Rebounding, r.Blocks, r.PostShooting, r.ThreePoint, r.BallHandling = 80, 75, 70, 30, 40
	}
	return r
}

func bench(r players.Ratings) players.Ratings {
	r.Shooting -= 8
	r.Defense -= 8
	r.ThreePoint -= 8
	r.PostShooting -= 8
	return r
}

// slotID names the starter (rank 0) or backup (rank 1) at pos for team.
func slotID(team string, pos players.Position, rank int) string {
	if rank == 0 {
		return team + "-" + string(pos)
	}
	return team + "-" + string(pos) + "2"
}

// rotationTeam builds a ten-man team: starters play 34 minutes, backups 14.
func rotationTeam(id string) teams.Team {
	var roster []players.Player
	rot := &teams.Rotation{
		Minutes:    map[string]int{},
		DepthChart: map[players.Position][]string{},
	}
	for _, pos := range players.Positions {
		starter := players.New(slotID(id, pos, 0), id+" "+string(pos), 78, pos, ratingsFor(pos))
		backup := players.New(slotID(id, pos, 1), id+" "+string(pos)+" backup", 78, pos, bench(ratingsFor(pos)))
		roster = append(roster, starter, backup)
		rot.Minutes[starter.ID] = 34
		rot.Minutes[backup.ID] = 14
		rot.DepthChart[pos] = []string{starter.ID, backup.ID}
	}
	return teams.Team{ID: id, Name: id, Roster: roster, Rotation: rot}
}

// startersTeam builds a five-man team with no rotation.
func startersTeam(id string) teams.Team {
	var roster []players.Player
	var starters []string
	for _, pos := range players.Positions {
		p := players.New(slotID(id, pos, 0), id+" "+string(pos), 78, pos, ratingsFor(pos))
		roster = append(roster, p)
		starters = append(starters, p.ID)
	}
	return teams.Team{ID: id, Name: id, Roster: roster, Starters: starters}
}

// adjust returns t with the player id rewritten by fn.
func adjust(t teams.Team, id string, fn func(players.Player) players.Player) teams.Team {
	p, ok := t.Player(id)
	if !ok {
		panic("unknown player " + id)
	}
	return t.WithPlayer(fn(p))
}
