package sim

import (
	"fmt"
	"math"
	"strings"
)

// Play is one line of play-by-play. Home and Away are the running score after the play.
type Play struct {
	Period int    `json:"period"`
	Clock  string `json:"clock"`
	TeamID string `json:"teamId"`
	Text   string `json:"text"`
	Home   int    `json:"home"`
	Away   int    `json:"away"`
}

// formatClock renders remaining minutes as M:SS.
func formatClock(remaining float64) string {
	if remaining < 0 {
		remaining = 0
	}
	secs := int(math.Round(remaining * 60))
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func (d *detailed) nameOf(id string) string {
	for _, s := range d.sides {
		if a, ok := s.athletes[id]; ok {
			return a.name
		}
	}
	return id
}

func (d *detailed) describe(period int, remaining float64, off *side, out Outcome) Play {
	var b strings.Builder
	switch {
	case out.Action == Turnover:
		b.WriteString(d.nameOf(out.Handler) + " turnover")
		if out.Stealer != "" {
			b.WriteString(" (" + d.nameOf(out.Stealer) + " steal)")
		}
	case out.Fouled:
		fmt.Fprintf(&b, "%s fouled by %s, makes %d of %d free throws",
			d.nameOf(out.Shooter), d.nameOf(out.Fouler), out.FreeThrowsMade, out.FreeThrows)
	default:
		shot := "two"
		if out.Action == ThreePointAttempt {
			shot = "three"
		}
		verb := "misses"
		if out.Made {
			verb = "makes"
		}
		fmt.Fprintf(&b, "%s %s %s", d.nameOf(out.Shooter), verb, shot)
		if out.Assister != "" {
			b.WriteString(" (" + d.nameOf(out.Assister) + " assist)")
		}
		if out.Blocker != "" {
			b.WriteString(" (" + d.nameOf(out.Blocker) + " block)")
		}
	}
	if out.Rebounder != "" {
		kind := "defensive"
		if out.OffensiveRebound {
			kind = "offensive"
		}
		fmt.Fprintf(&b, "; %s %s rebound", d.nameOf(out.Rebounder), kind)
	}
	return Play{
		Period: period,
		Clock:  formatClock(remaining),
		TeamID: off.team.ID,
		Text:   b.String(),
		Home:   d.sides[0].points,
		Away:   d.sides[1].points,
	}
}
