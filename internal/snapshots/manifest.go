package snapshots

import (
	"encoding/json"
	"os"
	"time"
)

// Manifest tracks snapshot metadata for one season.
type Manifest struct {
	Version     int        `json:"version"`
	GeneratedAt time.Time  `json:"generatedAt"`
	SeasonID    string     `json:"seasonId"`
	Season      SeasonMeta `json:"season"`
	Games       GamesMeta  `json:"games"`
}

type SeasonMeta struct {
	Folded        int       `json:"folded"`
	LastRefreshed time.Time `json:"lastRefreshed"`
}

type GamesMeta struct {
	Dates         []string  `json:"dates"`
	LastRefreshed time.Time `json:"lastRefreshed"`
}

func defaultManifest(seasonID string) Manifest {
	return Manifest{
		Version:     1,
		GeneratedAt: time.Now().UTC(),
		SeasonID:    seasonID,
		Games: GamesMeta{
			Dates: []string{},
		},
	}
}

// ReadManifest loads a season manifest. A missing or corrupt manifest yields
// the default alongside the error.
func ReadManifest(basePath, seasonID string) (Manifest, error) {
	f, err := os.Open(ManifestPath(basePath, seasonID))
	if err != nil {
		return defaultManifest(seasonID), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(seasonID), err
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest) error {
	m.GeneratedAt = time.Now().UTC()
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(ManifestPath(basePath, m.SeasonID), data)
}

func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
