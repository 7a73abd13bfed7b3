package snapshots

import (
	"os"
	"testing"
	"time"

	"github.com/preston-bernstein/courtside-sim/internal/domain/games"
	"github.com/preston-bernstein/courtside-sim/internal/domain/seasons"
)

func TestWriterWritesGameDaysAndManifest(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	writeGames(t, w, "2024",
		playedGame("g2", "2024-11-02", 100, 90),
		playedGame("g1", "2024-11-01", 100, 90),
		playedGame("g3", "2024-11-01", 99, 101),
	)

	requireFileExists(t, GameDayPath(dir, "2024", "2024-11-01"))
	requireFileExists(t, GameDayPath(dir, "2024", "2024-11-02"))

	m, err := ReadManifest(dir, "2024")
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	assertDatesEqual(t, m.Games.Dates, []string{"2024-11-01", "2024-11-02"})
	if m.Games.LastRefreshed.IsZero() || m.SeasonID != "2024" {
		t.Fatalf("unexpected manifest %+v", m)
	}

	day, err := NewFSStore(dir).LoadGameDay("2024", "2024-11-01")
	if err != nil {
		t.Fatalf("load day: %v", err)
	}
	if len(day.Games) != 2 || day.Games[0].ID != "g1" || day.Games[1].ID != "g3" {
		t.Fatalf("expected sorted games for the day, got %+v", day.Games)
	}
}

func TestWriterMergesGamesById(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	writeGames(t, w, "2024", playedGame("g1", "2024-11-01", 100, 90))
	writeGames(t, w, "2024", playedGame("g1", "2024-11-01", 70, 90), playedGame("g2", "2024-11-01", 70, 90))

	day, err := NewFSStore(dir).LoadGameDay("2024", "2024-11-01")
	if err != nil {
		t.Fatalf("load day: %v", err)
	}
	if len(day.Games) != 2 || *day.Games[0].HomeScore != 70 {
		t.Fatalf("expected merged day with replaced g1, got %+v", day.Games)
	}
}

func TestWriterSkipsIdenticalContent(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	g := playedGame("g1", "2024-11-01", 100, 90)

	writeGames(t, w, "2024", g)
	path := GameDayPath(dir, "2024", "2024-11-01")
	old := time.Now().Add(-time.Hour)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	writeGames(t, w, "2024", g)
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.ModTime().Equal(old) {
		t.Fatalf("expected identical snapshot to be left untouched")
	}
}

func TestWriterRejectsBadInput(t *testing.T) {
	w := NewWriter(t.TempDir())
	if err := w.WriteGames("", []games.Game{playedGame("g1", "2024-11-01", 1, 0)}); err == nil {
		t.Fatalf("expected missing season id error")
	}
	if err := w.WriteGames("2024", []games.Game{playedGame("g1", "Nov 1", 1, 0)}); err == nil {
		t.Fatalf("expected invalid date error")
	}
	if err := w.WriteGames("2024", nil); err != nil {
		t.Fatalf("expected empty write to succeed, got %v", err)
	}
	if err := w.WriteSeason(seasons.Season{}); err == nil {
		t.Fatalf("expected missing season id error")
	}

	var nilWriter *Writer
	if err := nilWriter.WriteSeason(seasons.New("2024")); err == nil {
		t.Fatalf("expected nil writer error")
	}
	if nilWriter.BasePath() != "" {
		t.Fatalf("expected empty base path for nil writer")
	}
}

func TestWriterSeasonUpdatesManifest(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	s, _, _ := seasons.New("2024").Record(playedGame("g1", "2024-11-01", 100, 90))
	if err := w.WriteSeason(s); err != nil {
		t.Fatalf("write season: %v", err)
	}
	writeGames(t, w, "2024", playedGame("g1", "2024-11-01", 100, 90))

	m, err := ReadManifest(dir, "2024")
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if m.Season.Folded != 1 || m.Season.LastRefreshed.IsZero() || len(m.Games.Dates) != 1 {
		t.Fatalf("expected season and games metadata preserved, got %+v", m)
	}
}
