package config

import "time"

const (
	envPort          = "PORT"
	envPollInterval  = "POLL_INTERVAL"
	envProvider      = "PROVIDER"
	envLogLevel      = "LOG_LEVEL"
	envLogFormat     = "LOG_FORMAT"
	envVersion       = "SERVICE_VERSION"
	envSeasonFile    = "SEASON_FILE"
	envSQLitePath    = "SQLITE_PATH"
	envSQLiteMigrate = "SQLITE_AUTO_MIGRATE"
	envFetchRetries  = "PROVIDER_MAX_RETRIES"
	envFetchBackoff  = "PROVIDER_RETRY_BACKOFF"
	envLeadersN      = "LEADERS_DEFAULT_N"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken    = "ADMIN_TOKEN"
	envSnapshotOn    = "SNAPSHOT_ENABLED"
	envSnapshotDir   = "SNAPSHOT_DIR"
	envSnapshotKeep  = "SNAPSHOT_RETENTION_DAYS"
	envSnapshotHour  = "SNAPSHOT_DAILY_HOUR"

	defaultPort = "4000"
	// Season data changes when scores are entered; a minute is plenty fresh.
	defaultPollInterval  = Duration(time.Minute)
	defaultProvider      = "fixture"
	defaultLogLevel      = "info"
	defaultLogFormat     = "text"
	defaultVersion       = "dev"
	defaultSeasonFile    = "data/season.json"
	defaultSQLitePath    = "data/league.db"
	defaultSQLiteMigrate = true
	defaultFetchRetries  = 3
	defaultFetchBackoff  = 200 * Duration(time.Millisecond)
	defaultLeadersN      = 5
	defaultMetricsPort   = "9090"
	defaultServiceName   = "league-stats-service"
	defaultSnapshotOn    = true
	defaultSnapshotDir   = "data/snapshots"
	defaultSnapshotKeep  = 30
	// UTC hour to write the daily standings snapshot (2 AM UTC by default).
	defaultSnapshotDailyHour = 2
)
