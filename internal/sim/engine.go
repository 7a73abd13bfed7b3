package sim

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/preston-bernstein/courtside-sim/internal/coaching"
	"github.com/preston-bernstein/courtside-sim/internal/domain/games"
	"github.com/preston-bernstein/courtside-sim/internal/domain/teams"
	"github.com/preston-bernstein/courtside-sim/internal/modifiers"
)

const (
	// DefaultPossessions is the regulation possession count per team.
	DefaultPossessions = 98
	// DefaultMaxOvertimes bounds overtime before the tiebreak settles a game.
	DefaultMaxOvertimes = 3

	quarters        = 4
	quarterMinutes  = teams.GameMinutes / quarters
	overtimeMinutes = 5
)

// ErrInvalidMatchup marks a game whose two sides cannot meet (same team, shared players, wrong ids).
var ErrInvalidMatchup = errors.New("invalid matchup")

// Option configures an Engine.
type Option func(*Engine)

// WithPossessions sets the regulation possessions per team; non-positive values are ignored.
func WithPossessions(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.possessions = n
		}
	}
}

// WithMaxOvertimes sets how many overtimes run before the tiebreak; negative values are ignored.
func WithMaxOvertimes(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.maxOvertimes = n
		}
	}
}

// WithCoaching uses the default pipeline fed by staff.
func WithCoaching(staff coaching.Provider) Option {
	return func(e *Engine) {
		e.pipeline = modifiers.Default(staff)
	}
}

// WithPipeline replaces the modifier pipeline outright.
func WithPipeline(p modifiers.Pipeline) Option {
	return func(e *Engine) {
		e.pipeline = p
	}
}

// Engine simulates games. It is not safe for concurrent use; give each goroutine its own.
type Engine struct {
	rng          Rand
	resolver     *Resolver
	pipeline     modifiers.Pipeline
	possessions  int
	maxOvertimes int
}

// New builds an Engine drawing from rng. A nil rng is seeded from the clock.
func New(rng Rand, opts ...Option) *Engine {
	if rng == nil {
		rng = NewRand(uint64(time.Now().UnixNano()))
	}
	e := &Engine{
		rng:          rng,
		pipeline:     modifiers.Default(nil),
		possessions:  DefaultPossessions,
		maxOvertimes: DefaultMaxOvertimes,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.resolver = NewResolver(e.rng)
	return e
}

// Options tune a single detailed simulation.
type Options struct {
	RecordPlays bool
}

// Result is a completed game plus engine bookkeeping.
type Result struct {
	Game        games.Game `json:"game"`
	Plays       []Play     `json:"plays,omitempty"`
	Possessions int        `json:"possessions"`
	Overtimes   int        `json:"overtimes"`
	Tiebreak    bool       `json:"tiebreak"`
}

// Play dispatches to Simulate or SimulateFast by mode.
func (e *Engine) Play(g games.Game, home, away teams.Team, mode games.Mode, opts Options) (Result, error) {
	if mode == games.ModeFast {
		return e.SimulateFast(g, home, away)
	}
	return e.Simulate(g, home, away, opts)
}

// Simulate plays g possession by possession. The returned game is played,
// untied, and its box score sums to its scores.
func (e *Engine) Simulate(g games.Game, home, away teams.Team, opts Options) (Result, error) {
	h, a, err := e.prepare(g, home, away)
	if err != nil {
		return Result{}, err
	}
	d := &detailed{
		rng:      e.rng,
		resolver: e.resolver,
		sides:    [2]*side{h, a},
		record:   opts.RecordPlays,
		offense:  e.rng.IntN(2),
	}

	for q := 0; q < quarters; q++ {
		share := e.possessions / quarters
		if q < e.possessions%quarters {
			share++
		}
		d.period(q+1, fmt.Sprintf("Q%d", q+1), float64(q*quarterMinutes), quarterMinutes, share)
	}
	otShare := overtimePossessions(e.possessions)
	for d.tied() && d.overtimes < e.maxOvertimes {
		d.overtimes++
		d.offense = e.rng.IntN(2)
		start := float64(teams.GameMinutes + (d.overtimes-1)*overtimeMinutes)
		d.period(quarters+d.overtimes, fmt.Sprintf("OT%d", d.overtimes), start, overtimeMinutes, otShare)
	}
	if d.tied() {
		d.tiebreak()
	}

	return finish(g, h, a, games.ModeDetailed, d.periods, Result{
		Plays:       d.plays,
		Possessions: d.possessions,
		Overtimes:   d.overtimes,
		Tiebreak:    d.broke,
	})
}

func overtimePossessions(regulation int) int {
	n := int(math.Round(float64(regulation) * overtimeMinutes / teams.GameMinutes))
	if n < 1 {
		return 1
	}
	return n
}

func finish(g games.Game, h, a *side, mode games.Mode, periods []games.PeriodScore, res Result) (Result, error) {
	if g.HomeTeamID == "" {
		g.HomeTeamID = h.team.ID
	}
	if g.AwayTeamID == "" {
		g.AwayTeamID = a.team.ID
	}
	box := games.BoxScore{Home: h.box(), Away: a.box()}
	res.Game = g.Final(box, mode, periods)
	if err := res.Game.Validate(); err != nil {
		return Result{}, err
	}
	return res, nil
}

// side is one team's state for a single game.
type side struct {
	team     teams.Team
	timeline teams.Timeline
	athletes map[string]*athlete
	order    []*athlete
	court    lineup
	points   int
}

func (e *Engine) prepare(g games.Game, home, away teams.Team) (*side, *side, error) {
	if err := home.Validate(); err != nil {
		return nil, nil, fmt.Errorf("home team %s: %w", home.ID, err)
	}
	if err := away.Validate(); err != nil {
		return nil, nil, fmt.Errorf("away team %s: %w", away.ID, err)
	}
	if home.ID == away.ID {
		return nil, nil, fmt.Errorf("%w: team %s cannot play itself", ErrInvalidMatchup, home.ID)
	}
	if g.HomeTeamID != "" && g.HomeTeamID != home.ID {
		return nil, nil, fmt.Errorf("%w: game %s expects home team %s, got %s", ErrInvalidMatchup, g.ID, g.HomeTeamID, home.ID)
	}
	if g.AwayTeamID != "" && g.AwayTeamID != away.ID {
		return nil, nil, fmt.Errorf("%w: game %s expects away team %s, got %s", ErrInvalidMatchup, g.ID, g.AwayTeamID, away.ID)
	}
	for _, p := range home.Roster {
		if _, shared := away.Player(p.ID); shared {
			return nil, nil, fmt.Errorf("%w: player %s is on both rosters", ErrInvalidMatchup, p.ID)
		}
	}

	h, err := e.newSide(home)
	if err != nil {
		return nil, nil, err
	}
	a, err := e.newSide(away)
	if err != nil {
		return nil, nil, err
	}
	return h, a, nil
}

func (e *Engine) newSide(t teams.Team) (*side, error) {
	tl, err := t.Timeline()
	if err != nil {
		return nil, fmt.Errorf("team %s: %w", t.ID, err)
	}
	s := &side{
		team:     t,
		timeline: tl,
		athletes: make(map[string]*athlete, len(t.Roster)),
		order:    make([]*athlete, 0, len(t.Roster)),
	}
	for _, p := range t.Roster {
		a := &athlete{profile: newProfile(p, t.ID, e.pipeline)}
		s.athletes[p.ID] = a
		s.order = append(s.order, a)
	}
	s.setCourt(0)
	return s, nil
}

// setCourt puts the timeline's five for minute on the floor.
func (s *side) setCourt(minute float64) {
	for slot, id := range s.timeline.OnCourt(minute) {
		s.court[slot] = s.athletes[id]
	}
}

// box renders the lines of every player who took the floor or recorded a stat.
func (s *side) box() games.TeamBox {
	out := make(map[string]games.Line, len(s.order))
	for _, a := range s.order {
		if a.minutes <= 0 && a.line == (games.Line{}) {
			continue
		}
		l := a.line
		l.Minutes = int(math.Round(a.minutes))
		out[a.id] = l
	}
	return games.TeamBox{TeamID: s.team.ID, Players: out}
}

// tiebreakFreeThrow credits one made free throw to a random on-court player of a random side.
func tiebreakFreeThrow(rng Rand, sides [2]*side) (int, *athlete) {
	idx := rng.IntN(2)
	s := sides[idx]
	shooter := s.court[rng.IntN(teams.LineupSize)]
	shooter.line.FreeThrowsTried++
	shooter.line.FreeThrowsMade++
	shooter.line.Points++
	s.points++
	return idx, shooter
}

// detailed is the running state of one possession-by-possession game.
type detailed struct {
	rng      Rand
	resolver *Resolver
	sides    [2]*side
	offense  int

	periods     []games.PeriodScore
	plays       []Play
	record      bool
	possessions int
	overtimes   int
	broke       bool
}

func (d *detailed) tied() bool {
	return d.sides[0].points == d.sides[1].points
}

// period plays perTeam possessions a side over length minutes starting at start.
func (d *detailed) period(n int, label string, start, length float64, perTeam int) {
	score := games.PeriodScore{Period: n, Label: label}
	total := 2 * perTeam
	if total == 0 {
		d.periods = append(d.periods, score)
		return
	}
	tick := length / float64(total)
	for i := 0; i < total; i++ {
		clock := start + float64(i)*tick
		off, def := d.sides[d.offense], d.sides[1-d.offense]
		off.setCourt(clock)
		def.setCourt(clock)

		out := d.resolver.Resolve(&off.court, &def.court)
		for _, s := range d.sides {
			for _, a := range s.court {
				a.minutes += tick
			}
		}
		off.points += out.Points
		if d.offense == 0 {
			score.Home += out.Points
		} else {
			score.Away += out.Points
		}
		d.possessions++
		if d.record {
			d.plays = append(d.plays, d.describe(n, start+length-clock, off, out))
		}
		if !out.OffensiveRebound {
			d.offense = 1 - d.offense
		}
	}
	d.periods = append(d.periods, score)
}

func (d *detailed) tiebreak() {
	idx, shooter := tiebreakFreeThrow(d.rng, d.sides)
	last := &d.periods[len(d.periods)-1]
	if idx == 0 {
		last.Home++
	} else {
		last.Away++
	}
	d.broke = true
	if d.record {
		d.plays = append(d.plays, Play{
			Period: last.Period,
			Clock:  formatClock(0),
			TeamID: d.sides[idx].team.ID,
			Text:   shooter.name + " makes tiebreak free throw",
			Home:   d.sides[0].points,
			Away:   d.sides[1].points,
		})
	}
}
