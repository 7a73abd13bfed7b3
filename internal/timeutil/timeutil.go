package timeutil

import "time"

// DateLayout is the YYYY-MM-DD layout used for game days and snapshot paths.
const DateLayout = "2006-01-02"

// ParseDate parses a game day.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats t as a game day in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// GameDay returns the game day n slots after start, with gap days between slots.
// A gap below one is treated as one.
func GameDay(start time.Time, n, gap int) string {
	if gap < 1 {
		gap = 1
	}
	return FormatDate(start.AddDate(0, 0, n*gap))
}
