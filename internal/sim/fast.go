package sim

import (
	"github.com/preston-bernstein/courtside-sim/internal/domain/games"
	"github.com/preston-bernstein/courtside-sim/internal/domain/teams"
)

// entry is a player's share of a segment: 1.0 means on the floor throughout.
type entry struct {
	a     *athlete
	share float64
}

// SimulateFast samples per-player counts from each side's rates without
// resolving individual possessions. The box score satisfies the same game
// invariants as Simulate; period scores and play-by-play are not produced.
func (e *Engine) SimulateFast(g games.Game, home, away teams.Team) (Result, error) {
	h, a, err := e.prepare(g, home, away)
	if err != nil {
		return Result{}, err
	}
	hs, as := h.regulationShares(), a.regulationShares()
	h.points += sampleSegment(e.rng, hs, as, e.possessions)
	a.points += sampleSegment(e.rng, as, hs, e.possessions)
	res := Result{Possessions: 2 * e.possessions}

	otShare := overtimePossessions(e.possessions)
	for h.points == a.points && res.Overtimes < e.maxOvertimes {
		res.Overtimes++
		hc, ac := h.closers(), a.closers()
		h.points += sampleSegment(e.rng, hc, ac, otShare)
		a.points += sampleSegment(e.rng, ac, hc, otShare)
		res.Possessions += 2 * otShare
	}
	if h.points == a.points {
		h.setCourt(teams.GameMinutes)
		a.setCourt(teams.GameMinutes)
		tiebreakFreeThrow(e.rng, [2]*side{h, a})
		res.Tiebreak = true
	}
	return finish(g, h, a, games.ModeFast, nil, res)
}

// regulationShares credits timeline minutes and returns each player's share of regulation.
func (s *side) regulationShares() []entry {
	minutes := make(map[string]float64)
	for _, stints := range s.timeline {
		for _, st := range stints {
			minutes[st.PlayerID] += st.End - st.Start
		}
	}
	out := make([]entry, 0, len(minutes))
	for _, a := range s.order {
		m, ok := minutes[a.id]
		if !ok || m <= 0 {
			continue
		}
		a.minutes += m
		out = append(out, entry{a: a, share: m / teams.GameMinutes})
	}
	return out
}

// closers returns the closing five for an overtime segment and credits their minutes.
func (s *side) closers() []entry {
	s.setCourt(teams.GameMinutes)
	out := make([]entry, 0, teams.LineupSize)
	for _, a := range s.court {
		a.minutes += overtimeMinutes
		out = append(out, entry{a: a, share: 1})
	}
	return out
}

// sampleSegment draws n possessions for off against def and credits both sides' lines.
// It returns the points off scored.
func sampleSegment(rng Rand, off, def []entry, n int) int {
	usage := make([]float64, len(off))
	for i, e := range off {
		usage[i] = e.a.usage * e.share
	}
	counts := multinomial(rng, n, usage)

	perimeter, interior := defensiveContest(def)
	var points, made, missedTwos, missed, turnovers, fouled int
	for i, e := range off {
		p := e.a
		to := binomial(rng, counts[i], p.turnover)
		shots := counts[i] - to
		threes := binomial(rng, shots, p.three)
		twos := shots - threes
		f3 := binomial(rng, threes, p.foul3)
		f2 := binomial(rng, twos, p.foul2)
		fga3, fga2 := threes-f3, twos-f2
		m3 := binomial(rng, fga3, p.threePointMake(perimeter))
		m2 := binomial(rng, fga2, p.twoPointMake(interior))
		fta := 3*f3 + 2*f2
		ftm := binomial(rng, fta, p.freeThrow)
		pts := 2*m2 + 3*m3 + ftm

		l := &p.line
		l.Turnovers += to
		l.FieldGoalsTried += fga2 + fga3
		l.FieldGoalsMade += m2 + m3
		l.ThreesTried += fga3
		l.ThreesMade += m3
		l.FreeThrowsTried += fta
		l.FreeThrowsMade += ftm
		l.Points += pts

		points += pts
		made += m2 + m3
		missedTwos += fga2 - m2
		missed += fga2 - m2 + fga3 - m3
		turnovers += to
		fouled += f2 + f3
	}

	creditAssists(rng, off, made)
	creditDefense(rng, def, missedTwos, turnovers, fouled)
	creditRebounds(rng, off, def, missed)
	return points
}

func defensiveContest(def []entry) (perimeter, interior float64) {
	total := 0.0
	for _, e := range def {
		perimeter += e.a.perimeter * e.share
		interior += e.a.interior * e.share
		total += e.share
	}
	if total <= 0 {
		return 0.5, 0.5
	}
	return perimeter / total, interior / total
}

// creditAssists assigns assists on made field goals, weighted by passing and assist tendency.
func creditAssists(rng Rand, off []entry, made int) {
	weights := make([]float64, len(off))
	var rate, total float64
	for i, e := range off {
		w := e.a.usage * e.share
		rate += w * e.a.pass * e.a.assist
		total += w
		weights[i] = e.a.pass * e.a.assist * e.share
	}
	if total <= 0 {
		return
	}
	assisted := binomial(rng, made, rate/total)
	for i, k := range multinomial(rng, assisted, weights) {
		off[i].a.line.Assists += k
	}
}

func creditDefense(rng Rand, def []entry, missedTwos, turnovers, fouled int) {
	blockW := make([]float64, len(def))
	stealW := make([]float64, len(def))
	foulW := make([]float64, len(def))
	var blockRate, blockTotal, stealRate, stealTotal float64
	for i, e := range def {
		bw := e.a.block * e.share
		sw := e.a.steal * e.share
		blockRate += bw * e.a.blockChance()
		blockTotal += bw
		stealRate += sw * e.a.stealChance()
		stealTotal += sw
		blockW[i] = bw * e.a.blockChance()
		stealW[i] = sw * e.a.stealChance()
		foulW[i] = e.share
	}
	if blockTotal > 0 {
		blocks := binomial(rng, missedTwos, blockRate/blockTotal)
		for i, k := range multinomial(rng, blocks, blockW) {
			def[i].a.line.Blocks += k
		}
	}
	if stealTotal > 0 {
		steals := binomial(rng, turnovers, stealRate/stealTotal)
		for i, k := range multinomial(rng, steals, stealW) {
			def[i].a.line.Steals += k
		}
	}
	for i, k := range multinomial(rng, fouled, foulW) {
		def[i].a.line.Fouls += k
	}
}

func creditRebounds(rng Rand, off, def []entry, missed int) {
	offW := make([]float64, len(off))
	defW := make([]float64, len(def))
	var offTotal, defTotal float64
	for i, e := range off {
		offW[i] = e.a.rebound * e.share
		offTotal += offW[i] * offensiveBoardCut
	}
	for i, e := range def {
		defW[i] = e.a.rebound * e.share
		defTotal += defW[i]
	}
	if offTotal+defTotal <= 0 {
		return
	}
	offensive := binomial(rng, missed, offTotal/(offTotal+defTotal))
	for i, k := range multinomial(rng, offensive, offW) {
		off[i].a.line.Rebounds += k
		off[i].a.line.OffensiveRebounds += k
	}
	for i, k := range multinomial(rng, missed-offensive, defW) {
		def[i].a.line.Rebounds += k
	}
}
