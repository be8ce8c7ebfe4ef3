package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval %s, got %s", defaultPollInterval, cfg.PollInterval)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.Season.File != defaultSeasonFile || cfg.Season.SQLitePath != defaultSQLitePath {
		t.Fatalf("unexpected season defaults %+v", cfg.Season)
	}
	if !cfg.Season.AutoMigrate {
		t.Fatalf("expected auto-migrate on by default")
	}
	if cfg.Leaders.DefaultN != defaultLeadersN {
		t.Fatalf("expected leaders default %d, got %d", defaultLeadersN, cfg.Leaders.DefaultN)
	}
	if cfg.Log.Level != defaultLogLevel || cfg.Log.Format != defaultLogFormat {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
	if cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("expected service name %s, got %s", defaultServiceName, cfg.Metrics.ServiceName)
	}
	if cfg.Snapshots.Dir != defaultSnapshotDir || cfg.Snapshots.RetentionDays != defaultSnapshotKeep {
		t.Fatalf("unexpected snapshot defaults %+v", cfg.Snapshots)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envPollInterval, "45s")
	t.Setenv(envProvider, "sqlite")
	t.Setenv(envSQLitePath, "/tmp/league.db")
	t.Setenv(envSQLiteMigrate, "false")
	t.Setenv(envFetchRetries, "5")
	t.Setenv(envLeadersN, "10")
	t.Setenv(envLogFormat, "json")
	t.Setenv(envAdminToken, "secret")
	t.Setenv(envSnapshotHour, "6")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.PollInterval != 45*time.Second {
		t.Fatalf("expected poll interval 45s, got %s", cfg.PollInterval)
	}
	if cfg.Provider != "sqlite" {
		t.Fatalf("expected provider sqlite, got %s", cfg.Provider)
	}
	if cfg.Season.SQLitePath != "/tmp/league.db" || cfg.Season.AutoMigrate {
		t.Fatalf("unexpected season config %+v", cfg.Season)
	}
	if cfg.Season.MaxRetries != 5 {
		t.Fatalf("expected 5 retries, got %d", cfg.Season.MaxRetries)
	}
	if cfg.Leaders.DefaultN != 10 {
		t.Fatalf("expected leaders n 10, got %d", cfg.Leaders.DefaultN)
	}
	if cfg.Log.Format != "json" {
		t.Fatalf("expected json log format, got %s", cfg.Log.Format)
	}
	if cfg.Snapshots.AdminToken != "secret" || cfg.Snapshots.DailyHourUTC != 6 {
		t.Fatalf("unexpected snapshot config %+v", cfg.Snapshots)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envPollInterval, "not-a-duration")

	cfg := Load()

	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval on invalid value, got %s", cfg.PollInterval)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envPollInterval, "0s")

	cfg := Load()

	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval on non-positive value, got %s", cfg.PollInterval)
	}
}

func TestLoadSnapshotHourOutOfRangeFallsBack(t *testing.T) {
	t.Setenv(envSnapshotHour, "30")

	cfg := Load()

	if cfg.Snapshots.DailyHourUTC != defaultSnapshotDailyHour {
		t.Fatalf("expected default hour, got %d", cfg.Snapshots.DailyHourUTC)
	}
}
