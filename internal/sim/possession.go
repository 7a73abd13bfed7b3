package sim

import "github.com/preston-bernstein/courtside-sim/internal/domain/teams"

// State is a step of the possession state machine.
type State int

const (
	SelectBallHandler State = iota
	SelectAction
	ResolveOutcome
	AttributeStats
	Done
)

func (s State) String() string {
	switch s {
	case SelectBallHandler:
		return "select_ball_handler"
	case SelectAction:
		return "select_action"
	case ResolveOutcome:
		return "resolve_outcome"
	case AttributeStats:
		return "attribute_stats"
	case Done:
		return "done"
	}
	return "unknown"
}

// Action is what the possession became once the handler decided.
type Action int

const (
	TwoPointAttempt Action = iota
	ThreePointAttempt
	Turnover
)

func (a Action) String() string {
	switch a {
	case TwoPointAttempt:
		return "two"
	case ThreePointAttempt:
		return "three"
	case Turnover:
		return "turnover"
	}
	return "unknown"
}

// Outcome is the terminal result of one possession. Player fields are ids; empty means nobody.
type Outcome struct {
	Handler          string
	Shooter          string
	Passer           string
	Action           Action
	Made             bool
	Fouled           bool
	Fouler           string
	FreeThrows       int
	FreeThrowsMade   int
	Assister         string
	Blocker          string
	Stealer          string
	Rebounder        string
	OffensiveRebound bool
	Points           int
}

// lineup is the five players on the floor for one side, in slot order.
type lineup [teams.LineupSize]*athlete

// Resolver runs single possessions. It holds no per-game state beyond its random source.
type Resolver struct {
	rng Rand
}

// NewResolver returns a Resolver drawing from rng.
func NewResolver(rng Rand) *Resolver {
	return &Resolver{rng: rng}
}

type possession struct {
	off, def *lineup

	handler  *athlete
	shooter  *athlete
	slot     int
	passer   *athlete
	fouler   *athlete
	assister *athlete
	blocker  *athlete
	stealer  *athlete
	boards   *athlete

	out Outcome
}

// Resolve plays one possession with off attacking def and credits the lines of
// everyone involved. It always reaches Done.
func (r *Resolver) Resolve(off, def *lineup) Outcome {
	ps := possession{off: off, def: def}
	for st := SelectBallHandler; st != Done; {
		st = r.step(st, &ps)
	}
	return ps.out
}

func (r *Resolver) step(st State, ps *possession) State {
	switch st {
	case SelectBallHandler:
		r.selectBallHandler(ps)
		return SelectAction
	case SelectAction:
		r.selectAction(ps)
		return ResolveOutcome
	case ResolveOutcome:
		r.resolveOutcome(ps)
		return AttributeStats
	case AttributeStats:
		attribute(ps)
		return Done
	}
	return Done
}

func (r *Resolver) selectBallHandler(ps *possession) {
	var weights [teams.LineupSize]float64
	for i, a := range ps.off {
		weights[i] = a.usage
	}
	idx := pick(r.rng, weights[:])
	ps.handler = ps.off[idx]
	ps.shooter = ps.handler
	ps.slot = idx
	ps.out.Handler = ps.handler.id
}

func (r *Resolver) selectAction(ps *possession) {
	h := ps.handler
	if chance(r.rng, h.turnover) {
		ps.out.Action = Turnover
		return
	}
	if chance(r.rng, h.pass) {
		var weights [teams.LineupSize]float64
		for i, a := range ps.off {
			if a != h {
				weights[i] = a.usage
			}
		}
		if idx := pick(r.rng, weights[:]); ps.off[idx] != h {
			ps.passer = h
			ps.shooter = ps.off[idx]
			ps.slot = idx
			ps.out.Passer = h.id
		}
	}
	ps.out.Shooter = ps.shooter.id
	if chance(r.rng, ps.shooter.three) {
		ps.out.Action = ThreePointAttempt
	} else {
		ps.out.Action = TwoPointAttempt
	}
}

func (r *Resolver) resolveOutcome(ps *possession) {
	if ps.out.Action == Turnover {
		r.resolveTurnover(ps)
		return
	}

	defender := ps.def[ps.slot]
	three := ps.out.Action == ThreePointAttempt
	shots, value, foul := 2, 2, ps.shooter.foul2
	if three {
		shots, value, foul = 3, 3, ps.shooter.foul3
	}

	if chance(r.rng, foul) {
		ps.out.Fouled = true
		ps.fouler = defender
		ps.out.Fouler = defender.id
		ps.out.FreeThrows = shots
		lastMissed := false
		for i := 0; i < shots; i++ {
			made := chance(r.rng, ps.shooter.freeThrow)
			if made {
				ps.out.FreeThrowsMade++
			}
			lastMissed = !made
		}
		ps.out.Points = ps.out.FreeThrowsMade
		if lastMissed {
			r.rebound(ps)
		}
		return
	}

	var p float64
	if three {
		p = ps.shooter.threePointMake(defender.perimeter)
	} else {
		p = ps.shooter.twoPointMake(defender.interior)
	}
	if chance(r.rng, p) {
		ps.out.Made = true
		ps.out.Points = value
		if ps.passer != nil && chance(r.rng, ps.passer.assist) {
			ps.assister = ps.passer
			ps.out.Assister = ps.passer.id
		}
		return
	}

	if !three {
		r.contest(ps)
	}
	r.rebound(ps)
}

func (r *Resolver) resolveTurnover(ps *possession) {
	var weights [teams.LineupSize]float64
	for i, a := range ps.def {
		weights[i] = a.steal
	}
	cand := ps.def[pick(r.rng, weights[:])]
	if chance(r.rng, cand.stealChance()) {
		ps.stealer = cand
		ps.out.Stealer = cand.id
	}
}

// contest gives the defense a chance to block a missed two.
func (r *Resolver) contest(ps *possession) {
	var weights [teams.LineupSize]float64
	for i, a := range ps.def {
		weights[i] = a.block
	}
	cand := ps.def[pick(r.rng, weights[:])]
	if chance(r.rng, cand.blockChance()) {
		ps.blocker = cand
		ps.out.Blocker = cand.id
	}
}

// rebound draws the rebounder from all ten players; offensive players are discounted.
func (r *Resolver) rebound(ps *possession) {
	var weights [2 * teams.LineupSize]float64
	for i, a := range ps.off {
		weights[i] = a.rebound * offensiveBoardCut
	}
	for i, a := range ps.def {
		weights[teams.LineupSize+i] = a.rebound
	}
	idx := pick(r.rng, weights[:])
	if idx < teams.LineupSize {
		ps.boards = ps.off[idx]
		ps.out.OffensiveRebound = true
	} else {
		ps.boards = ps.def[idx-teams.LineupSize]
	}
	ps.out.Rebounder = ps.boards.id
}

func attribute(ps *possession) {
	if ps.out.Action == Turnover {
		ps.handler.line.Turnovers++
		if ps.stealer != nil {
			ps.stealer.line.Steals++
		}
		return
	}

	s := &ps.shooter.line
	if ps.out.Fouled {
		s.FreeThrowsTried += ps.out.FreeThrows
		s.FreeThrowsMade += ps.out.FreeThrowsMade
		ps.fouler.line.Fouls++
	} else {
		s.FieldGoalsTried++
		if ps.out.Action == ThreePointAttempt {
			s.ThreesTried++
		}
		if ps.out.Made {
			s.FieldGoalsMade++
			if ps.out.Action == ThreePointAttempt {
				s.ThreesMade++
			}
		}
	}
	s.Points += ps.out.Points

	if ps.assister != nil {
		ps.assister.line.Assists++
	}
	if ps.blocker != nil {
		ps.blocker.line.Blocks++
	}
	if ps.boards != nil {
		ps.boards.line.Rebounds++
		if ps.out.OffensiveRebound {
			ps.boards.line.OffensiveRebounds++
		}
	}
}
