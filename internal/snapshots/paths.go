package snapshots

import (
	"fmt"
	"path/filepath"
)

// SeasonPath builds the path to a season ledger snapshot.
func SeasonPath(basePath, seasonID string) string {
	return filepath.Join(basePath, seasonID, "season.json")
}

// GameDayPath builds the path to the played games of one date.
func GameDayPath(basePath, seasonID, date string) string {
	return filepath.Join(basePath, seasonID, "games", fmt.Sprintf("%s.json", date))
}

// ManifestPath builds the path to a season's manifest.
func ManifestPath(basePath, seasonID string) string {
	return filepath.Join(basePath, seasonID, "manifest.json")
}
