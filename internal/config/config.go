package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	Provider     string
	Log          LogConfig
	Season       SeasonConfig
	Leaders      LeadersConfig
	Metrics      MetricsConfig
	Snapshots    SnapshotConfig
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level   string
	Format  string
	Version string
}

// LeadersConfig holds leaderboard defaults.
type LeadersConfig struct {
	DefaultN int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:     envOrDefault(envProvider, defaultProvider),
		Log: LogConfig{
			Level:   envOrDefault(envLogLevel, defaultLogLevel),
			Format:  envOrDefault(envLogFormat, defaultLogFormat),
			Version: envOrDefault(envVersion, defaultVersion),
		},
		Season:    loadSeason(),
		Leaders:   LeadersConfig{DefaultN: intEnvOrDefault(envLeadersN, defaultLeadersN)},
		Metrics:   loadMetrics(),
		Snapshots: loadSnapshots(),
	}
}
