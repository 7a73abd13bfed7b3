package store

import (
	"context"
	"errors"

	"github.com/preston-bernstein/courtside-sim/internal/domain/games"
	"github.com/preston-bernstein/courtside-sim/internal/domain/seasons"
)

// ErrSeasonNotFound is returned when no persisted season matches an id.
var ErrSeasonNotFound = errors.New("season not found")

// SeasonRepository persists season ledgers and the played games behind them.
type SeasonRepository interface {
	SaveSeason(ctx context.Context, s seasons.Season) error
	SaveGames(ctx context.Context, seasonID string, played []games.Game) error
	LoadSeason(ctx context.Context, id string) (seasons.Season, error)
	LoadGames(ctx context.Context, seasonID string) ([]games.Game, error)
	Close() error
}
