package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/glebarez/go-sqlite"

	"github.com/preston-bernstein/courtside-sim/internal/domain/games"
	"github.com/preston-bernstein/courtside-sim/internal/domain/seasons"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS seasons (
	id TEXT PRIMARY KEY,
	payload TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS games (
	id TEXT PRIMARY KEY,
	season_id TEXT NOT NULL,
	date TEXT NOT NULL,
	payload TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_games_season ON games(season_id, date, id);
`

// SQLiteStore persists seasons and played games in a SQLite database.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens (creating if needed) the database at path and applies the schema.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// SQLite serializes writers.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply sqlite schema: %w", err)
	}
	return &SQLiteStore{db: db, now: time.Now}, nil
}

// SaveSeason upserts the season ledger.
func (s *SQLiteStore) SaveSeason(ctx context.Context, season seasons.Season) error {
	payload, err := json.Marshal(season)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO seasons (id, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		season.ID, string(payload), s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save season %s: %w", season.ID, err)
	}
	return nil
}

// SaveGames upserts played games in a single transaction.
func (s *SQLiteStore) SaveGames(ctx context.Context, seasonID string, played []games.Game) error {
	if len(played) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO games (id, season_id, date, payload) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET season_id = excluded.season_id, date = excluded.date, payload = excluded.payload`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, g := range played {
		payload, err := json.Marshal(g)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, g.ID, seasonID, g.Date, string(payload)); err != nil {
			return fmt.Errorf("save game %s: %w", g.ID, err)
		}
	}
	return tx.Commit()
}

// LoadSeason reads a season ledger by id.
func (s *SQLiteStore) LoadSeason(ctx context.Context, id string) (seasons.Season, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM seasons WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return seasons.Season{}, fmt.Errorf("%w: %s", ErrSeasonNotFound, id)
	}
	if err != nil {
		return seasons.Season{}, err
	}
	var season seasons.Season
	if err := json.Unmarshal([]byte(payload), &season); err != nil {
		return seasons.Season{}, fmt.Errorf("decode season %s: %w", id, err)
	}
	return season, nil
}

// LoadGames returns the played games of a season ordered by date, then id.
func (s *SQLiteStore) LoadGames(ctx context.Context, seasonID string) ([]games.Game, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM games WHERE season_id = ? ORDER BY date, id`, seasonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []games.Game
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var g games.Game
		if err := json.Unmarshal([]byte(payload), &g); err != nil {
			return nil, fmt.Errorf("decode game: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
