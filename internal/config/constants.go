package config

import "time"

// Persistence drivers.
const (
	PersistNone   = "none"
	PersistFS     = "fs"
	PersistSQLite = "sqlite"
)

const (
	envPort           = "PORT"
	envSeasonID       = "SEASON_ID"
	envAdminToken     = "ADMIN_TOKEN"
	envLogLevel       = "LOG_LEVEL"
	envLogFormat      = "LOG_FORMAT"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envSimSeed        = "SIM_SEED"
	envSimPossessions = "SIM_POSSESSIONS"
	envSimMode        = "SIM_DEFAULT_MODE"
	envSimWorkers     = "SIM_WORKERS"
	envAutoplayOn     = "AUTOPLAY_ENABLED"
	envAutoplayRate   = "AUTOPLAY_INTERVAL"
	envPersistDriver  = "PERSIST_DRIVER"
	envSnapshotDir    = "SNAPSHOT_DIR"
	envSQLitePath     = "SQLITE_PATH"
	envNatsURL        = "NATS_URL"
	envNatsSubject    = "NATS_SUBJECT"

	defaultPort        = "4000"
	defaultSeasonID    = "2024"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultMetricsPort = "9090"
	defaultServiceName = "courtside-sim"
	defaultPossessions = 98
	defaultSimMode     = "detailed"
	defaultSimWorkers  = 4
	// One simulated round per interval when autoplay is on.
	defaultAutoplayInterval = 30 * Duration(time.Second)
	defaultPersistDriver    = PersistNone
	defaultSnapshotDir      = "data/snapshots"
	defaultSQLitePath       = "data/courtside.db"
	defaultNatsSubject      = "courtside.games.final"
)
