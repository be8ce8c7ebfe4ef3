package config

// SeasonConfig controls where season data is read from and how fetches are retried.
type SeasonConfig struct {
	File         string
	SQLitePath   string
	AutoMigrate  bool
	MaxRetries   int
	RetryBackoff Duration
}

func loadSeason() SeasonConfig {
	return SeasonConfig{
		File:         envOrDefault(envSeasonFile, defaultSeasonFile),
		SQLitePath:   envOrDefault(envSQLitePath, defaultSQLitePath),
		AutoMigrate:  boolEnvOrDefault(envSQLiteMigrate, defaultSQLiteMigrate),
		MaxRetries:   intEnvOrDefault(envFetchRetries, defaultFetchRetries),
		RetryBackoff: durationEnvOrDefault(envFetchBackoff, defaultFetchBackoff),
	}
}
