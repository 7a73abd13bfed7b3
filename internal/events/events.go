package events

import (
	"context"
	"sync"
	"time"

	"github.com/preston-bernstein/courtside-sim/internal/domain/games"
)

// TypeGameFinal marks a game that finished and was folded into the season.
const TypeGameFinal = "game.final"

// GameFinal is the payload published after a game is recorded.
type GameFinal struct {
	Type       string     `json:"type"`
	SeasonID   string     `json:"seasonId"`
	GameID     string     `json:"gameId"`
	Date       string     `json:"date,omitempty"`
	HomeTeamID string     `json:"homeTeamId"`
	AwayTeamID string     `json:"awayTeamId"`
	HomeScore  int        `json:"homeScore"`
	AwayScore  int        `json:"awayScore"`
	Mode       games.Mode `json:"mode"`
	Postseason bool       `json:"postseason,omitempty"`
	Overtimes  int        `json:"overtimes"`
	At         time.Time  `json:"at"`
}

// NewGameFinal builds the event for a played game.
func NewGameFinal(seasonID string, g games.Game, at time.Time) GameFinal {
	ev := GameFinal{
		Type:       TypeGameFinal,
		SeasonID:   seasonID,
		GameID:     g.ID,
		Date:       g.Date,
		HomeTeamID: g.HomeTeamID,
		AwayTeamID: g.AwayTeamID,
		Mode:       g.Mode,
		Postseason: g.Postseason,
		At:         at.UTC(),
	}
	if g.HomeScore != nil {
		ev.HomeScore = *g.HomeScore
	}
	if g.AwayScore != nil {
		ev.AwayScore = *g.AwayScore
	}
	for _, p := range g.Periods {
		if p.Period > 4 {
			ev.Overtimes++
		}
	}
	return ev
}

// Publisher delivers game events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, ev GameFinal) error
	Close()
}

// Noop discards events.
type Noop struct{}

func (Noop) Publish(context.Context, GameFinal) error { return nil }
func (Noop) Close()                                   {}

// Memory keeps published events and fans them out to local subscribers.
type Memory struct {
	mu          sync.RWMutex
	events      []GameFinal
	subscribers []chan GameFinal
}

// NewMemory returns an in-process publisher.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Publish(ctx context.Context, ev GameFinal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	m.events = append(m.events, ev)
	subs := make([]chan GameFinal, len(m.subscribers))
	copy(subs, m.subscribers)
	m.mu.Unlock()

	for _, sub := range subs {
		select {
		case sub <- ev:
		default:
		}
	}
	return nil
}

// Subscribe returns a buffered channel receiving future events. Slow
// subscribers miss events rather than block publishers.
func (m *Memory) Subscribe() <-chan GameFinal {
	ch := make(chan GameFinal, 64)
	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()
	return ch
}

// Events returns a copy of everything published so far.
func (m *Memory) Events() []GameFinal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]GameFinal, len(m.events))
	copy(out, m.events)
	return out
}

// Close closes every subscriber channel.
func (m *Memory) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, sub := range m.subscribers {
		close(sub)
	}
	m.subscribers = nil
}
