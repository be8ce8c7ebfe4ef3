package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/preston-bernstein/league-stats-service/internal/config"
	"github.com/preston-bernstein/league-stats-service/internal/providers/file"
	"github.com/preston-bernstein/league-stats-service/internal/providers/sqlite"
)

func TestRunWritesFileSeason(t *testing.T) {
	out := filepath.Join(t.TempDir(), "season.json")
	if err := run(context.Background(), []string{"-target", "file", "-path", out}, config.Config{}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	season, err := file.New(out).FetchSeason(context.Background())
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if len(season.Teams) != 4 || len(season.Games) == 0 {
		t.Fatalf("unexpected seeded season %+v", season.Counts())
	}
}

func TestRunWritesSQLiteSeasonFromConfig(t *testing.T) {
	cfg := config.Config{Season: config.SeasonConfig{SQLitePath: filepath.Join(t.TempDir(), "league.db")}}
	if err := run(context.Background(), nil, cfg); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	db, err := sqlite.Open(context.Background(), sqlite.Config{Path: cfg.Season.SQLitePath})
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer db.Close()
	season, err := db.FetchSeason(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(season.Players) != 8 || len(season.PlayerStats) == 0 {
		t.Fatalf("unexpected seeded season %+v", season.Counts())
	}
}

func TestRunRejectsUnknownTarget(t *testing.T) {
	if err := run(context.Background(), []string{"-target", "postgres"}, config.Config{}); err == nil {
		t.Fatalf("expected error for unknown target")
	}
}
