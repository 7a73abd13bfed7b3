package snapshots

import (
	"os"
	"testing"

	"github.com/preston-bernstein/courtside-sim/internal/domain/games"
)

func playedGame(id, date string, home, away int) games.Game {
	box := games.BoxScore{
		Home: games.TeamBox{TeamID: "h", Players: map[string]games.Line{"h-1": {Points: home, Minutes: 48}}},
		Away: games.TeamBox{TeamID: "a", Players: map[string]games.Line{"a-1": {Points: away, Minutes: 48}}},
	}
	return games.NewScheduled(id, date, "h", "a", false).Final(box, games.ModeFast, nil)
}

func writeGames(t *testing.T, w *Writer, seasonID string, list ...games.Game) {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil for season %s", seasonID)
	}
	if err := w.WriteGames(seasonID, list); err != nil {
		t.Fatalf("failed to write games for %s: %v", seasonID, err)
	}
}

func requireFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected %s to be written: %v", path, err)
	}
}

func assertDatesEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("dates length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("dates mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}
