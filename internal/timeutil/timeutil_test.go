package timeutil

import (
	"testing"
	"time"
)

func TestParseDateRoundTrips(t *testing.T) {
	parsed, err := ParseDate("2024-10-22")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2024-10-22" {
		t.Fatalf("expected game day to round-trip, got %s", got)
	}
	if _, err := ParseDate("10/22/2024"); err == nil {
		t.Fatalf("expected error for non ISO date")
	}
}

func TestFormatDateUsesLocation(t *testing.T) {
	loc := time.FixedZone("pacific", -7*60*60)
	tipoff := time.Date(2024, 10, 22, 22, 0, 0, 0, loc)
	if got := FormatDate(tipoff); got != "2024-10-22" {
		t.Fatalf("expected local game day, got %s", got)
	}
}

func TestGameDay(t *testing.T) {
	start := time.Date(2024, 10, 30, 19, 0, 0, 0, time.UTC)
	cases := []struct {
		n, gap int
		want   string
	}{
		{0, 2, "2024-10-30"},
		{1, 2, "2024-11-01"},
		{3, 1, "2024-11-02"},
		{2, 0, "2024-11-01"},
	}
	for _, tc := range cases {
		if got := GameDay(start, tc.n, tc.gap); got != tc.want {
			t.Fatalf("GameDay(%d, %d) = %s, want %s", tc.n, tc.gap, got, tc.want)
		}
	}
}
