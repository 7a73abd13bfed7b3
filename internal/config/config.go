package config

// Config holds runtime configuration for the server.
type Config struct {
	Port       string
	SeasonID   string
	AdminToken string
	Log        LogConfig
	Metrics    MetricsConfig
	Sim        SimConfig
	Autoplay   AutoplayConfig
	Persist    PersistConfig
	Events     EventsConfig
}

// LogConfig controls logger level and output format.
type LogConfig struct {
	Level  string
	Format string
}

// SimConfig controls engine construction.
type SimConfig struct {
	Seed        int64 // 0 seeds from the clock
	Possessions int   // per team in regulation
	DefaultMode string
	Workers     int // games simulated in parallel per round
}

// AutoplayConfig controls the background round player.
type AutoplayConfig struct {
	Enabled  bool
	Interval Duration
}

// PersistConfig selects where season snapshots are written.
type PersistConfig struct {
	Driver      string
	SnapshotDir string
	SQLitePath  string
}

// EventsConfig controls the NATS game feed. An empty URL disables publishing.
type EventsConfig struct {
	URL     string
	Subject string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:       envOrDefault(envPort, defaultPort),
		SeasonID:   envOrDefault(envSeasonID, defaultSeasonID),
		AdminToken: envOrDefault(envAdminToken, ""),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Metrics:  loadMetrics(),
		Sim:      loadSim(),
		Autoplay: loadAutoplay(),
		Persist:  loadPersist(),
		Events: EventsConfig{
			URL:     envOrDefault(envNatsURL, ""),
			Subject: envOrDefault(envNatsSubject, defaultNatsSubject),
		},
	}
}

func loadSim() SimConfig {
	return SimConfig{
		Seed:        int64EnvOrDefault(envSimSeed, 0),
		Possessions: intEnvOrDefault(envSimPossessions, defaultPossessions),
		DefaultMode: envOrDefault(envSimMode, defaultSimMode),
		Workers:     intEnvOrDefault(envSimWorkers, defaultSimWorkers),
	}
}

func loadAutoplay() AutoplayConfig {
	return AutoplayConfig{
		Enabled:  boolEnvOrDefault(envAutoplayOn, false),
		Interval: durationEnvOrDefault(envAutoplayRate, defaultAutoplayInterval),
	}
}

func loadPersist() PersistConfig {
	driver := envOrDefault(envPersistDriver, defaultPersistDriver)
	switch driver {
	case PersistNone, PersistFS, PersistSQLite:
	default:
		driver = defaultPersistDriver
	}
	return PersistConfig{
		Driver:      driver,
		SnapshotDir: envOrDefault(envSnapshotDir, defaultSnapshotDir),
		SQLitePath:  envOrDefault(envSQLitePath, defaultSQLitePath),
	}
}
