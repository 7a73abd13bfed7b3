package snapshots

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/preston-bernstein/courtside-sim/internal/domain/games"
	"github.com/preston-bernstein/courtside-sim/internal/domain/seasons"
	"github.com/preston-bernstein/courtside-sim/internal/store"
	"github.com/preston-bernstein/courtside-sim/internal/timeutil"
)

// GameDay is the payload of one date's snapshot file.
type GameDay struct {
	SeasonID string       `json:"seasonId"`
	Date     string       `json:"date"`
	Games    []games.Game `json:"games"`
}

// Writer persists season and game-day snapshots and keeps the manifest current.
type Writer struct {
	basePath string
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{basePath: basePath}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteSeason writes the season ledger snapshot.
func (w *Writer) WriteSeason(s seasons.Season) error {
	if w == nil {
		return errors.New("snapshot writer not configured")
	}
	if s.ID == "" {
		return errors.New("season id required")
	}
	if _, err := w.writeJSON(SeasonPath(w.basePath, s.ID), s); err != nil {
		return err
	}
	m, _ := ReadManifest(w.basePath, s.ID)
	m.SeasonID = s.ID
	m.Season.Folded = len(s.Results)
	m.Season.LastRefreshed = time.Now().UTC()
	return writeManifest(w.basePath, m)
}

// WriteGames merges played games into their date files, replacing entries
// with the same id.
func (w *Writer) WriteGames(seasonID string, played []games.Game) error {
	if w == nil {
		return errors.New("snapshot writer not configured")
	}
	if seasonID == "" {
		return errors.New("season id required")
	}
	if len(played) == 0 {
		return nil
	}

	byDate := make(map[string][]games.Game)
	for _, g := range played {
		if _, err := timeutil.ParseDate(g.Date); err != nil {
			return fmt.Errorf("game %s: invalid date %q: %w", g.ID, g.Date, err)
		}
		byDate[g.Date] = append(byDate[g.Date], g)
	}

	for date, list := range byDate {
		day, err := NewFSStore(w.basePath).LoadGameDay(seasonID, date)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		day.SeasonID = seasonID
		day.Date = date
		day.Games = mergeGames(day.Games, list)
		if _, err := w.writeJSON(GameDayPath(w.basePath, seasonID, date), day); err != nil {
			return err
		}
	}
	return w.updateGamesManifest(seasonID)
}

func mergeGames(existing, incoming []games.Game) []games.Game {
	byID := make(map[string]games.Game, len(existing)+len(incoming))
	for _, g := range existing {
		byID[g.ID] = g
	}
	for _, g := range incoming {
		byID[g.ID] = g
	}
	out := make([]games.Game, 0, len(byID))
	for _, g := range byID {
		out = append(out, g)
	}
	store.SortGames(out)
	return out
}

// writeJSON writes payload atomically; changed=false means the file already held it.
func (w *Writer) writeJSON(target string, payload any) (changed bool, err error) {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return false, err
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return false, err
	}
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return false, nil
	}
	if err := writeAtomic(target, data); err != nil {
		return false, err
	}
	return true, nil
}

func (w *Writer) updateGamesManifest(seasonID string) error {
	m, _ := ReadManifest(w.basePath, seasonID)
	dates, err := w.listDates(seasonID)
	if err != nil {
		return err
	}
	m.SeasonID = seasonID
	m.Games.Dates = dates
	m.Games.LastRefreshed = time.Now().UTC()
	return writeManifest(w.basePath, m)
}

func (w *Writer) listDates(seasonID string) ([]string, error) {
	dir := filepath.Dir(GameDayPath(w.basePath, seasonID, "x"))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	dates := []string{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".json" {
			continue
		}
		dates = append(dates, name[:len(name)-len(".json")])
	}
	sort.Strings(dates)
	return dates, nil
}
