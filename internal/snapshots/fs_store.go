package snapshots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/preston-bernstein/courtside-sim/internal/domain/games"
	"github.com/preston-bernstein/courtside-sim/internal/domain/seasons"
	"github.com/preston-bernstein/courtside-sim/internal/store"
)

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadSeason reads {basePath}/{id}/season.json.
func (s *FSStore) LoadSeason(id string) (seasons.Season, error) {
	var season seasons.Season
	if err := s.decodeFile(SeasonPath(s.basePath, id), &season); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return seasons.Season{}, fmt.Errorf("%w: %s", store.ErrSeasonNotFound, id)
		}
		return seasons.Season{}, err
	}
	return season, nil
}

// LoadGameDay reads the played games of one date.
func (s *FSStore) LoadGameDay(seasonID, date string) (GameDay, error) {
	var day GameDay
	if err := s.decodeFile(GameDayPath(s.basePath, seasonID, date), &day); err != nil {
		return GameDay{}, err
	}
	if day.Date == "" {
		day.Date = date
	}
	return day, nil
}

// LoadGames reads every game day listed in the season manifest, in date order.
func (s *FSStore) LoadGames(seasonID string) ([]games.Game, error) {
	m, err := ReadManifest(s.basePath, seasonID)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var out []games.Game
	for _, date := range m.Games.Dates {
		day, err := s.LoadGameDay(seasonID, date)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", date, err)
		}
		out = append(out, day.Games...)
	}
	return out, nil
}

func (s *FSStore) decodeFile(path string, payload any) error {
	if s == nil {
		return errors.New("snapshot store not configured")
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}

// Repository adapts the FS writer and reader to store.SeasonRepository.
type Repository struct {
	writer *Writer
	reader *FSStore
}

// NewRepository roots a file-backed season repository at basePath.
func NewRepository(basePath string) *Repository {
	return &Repository{writer: NewWriter(basePath), reader: NewFSStore(basePath)}
}

func (r *Repository) SaveSeason(ctx context.Context, s seasons.Season) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.writer.WriteSeason(s)
}

func (r *Repository) SaveGames(ctx context.Context, seasonID string, played []games.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.writer.WriteGames(seasonID, played)
}

func (r *Repository) LoadSeason(ctx context.Context, id string) (seasons.Season, error) {
	if err := ctx.Err(); err != nil {
		return seasons.Season{}, err
	}
	return r.reader.LoadSeason(id)
}

func (r *Repository) LoadGames(ctx context.Context, seasonID string) ([]games.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.reader.LoadGames(seasonID)
}

func (r *Repository) Close() error { return nil }

var _ store.SeasonRepository = (*Repository)(nil)
