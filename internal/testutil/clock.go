package testutil

import "time"

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// OpeningNight is the fixture season's first game date at tip-off.
var OpeningNight = time.Date(2024, time.October, 22, 23, 30, 0, 0, time.UTC)
