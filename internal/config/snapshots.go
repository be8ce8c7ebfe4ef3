package config

// SnapshotConfig controls daily standings snapshots.
type SnapshotConfig struct {
	Enabled       bool
	Dir           string
	RetentionDays int
	DailyHourUTC  int    // hour of day (0-23) for the daily write
	AdminToken    string // guards the manual refresh endpoint
}

func loadSnapshots() SnapshotConfig {
	hour := intEnvOrDefault(envSnapshotHour, defaultSnapshotDailyHour)
	if hour > 23 {
		hour = defaultSnapshotDailyHour
	}
	return SnapshotConfig{
		Enabled:       boolEnvOrDefault(envSnapshotOn, defaultSnapshotOn),
		Dir:           envOrDefault(envSnapshotDir, defaultSnapshotDir),
		RetentionDays: intEnvOrDefault(envSnapshotKeep, defaultSnapshotKeep),
		DailyHourUTC:  hour,
		AdminToken:    envOrDefault(envAdminToken, ""),
	}
}
