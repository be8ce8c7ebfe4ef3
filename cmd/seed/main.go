// Command seed writes the built-in fixture season to a JSON file or a SQLite database so the
// file and sqlite providers have data to serve.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/preston-bernstein/league-stats-service/internal/config"
	"github.com/preston-bernstein/league-stats-service/internal/logging"
	"github.com/preston-bernstein/league-stats-service/internal/providers/file"
	"github.com/preston-bernstein/league-stats-service/internal/providers/fixture"
	"github.com/preston-bernstein/league-stats-service/internal/providers/sqlite"
)

func main() {
	_ = config.LoadDotEnv()
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	if err := run(context.Background(), os.Args[1:], cfg); err != nil {
		logging.Error(logger, "seed failed", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, cfg config.Config) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	target := fs.String("target", sqlite.Name, "where to write the season: file or sqlite")
	path := fs.String("path", "", "output path (defaults to SEASON_FILE or SQLITE_PATH)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	season, err := fixture.New().FetchSeason(ctx)
	if err != nil {
		return err
	}

	switch *target {
	case file.Name:
		out := *path
		if out == "" {
			out = cfg.Season.File
		}
		return file.Write(out, season)
	case sqlite.Name:
		out := *path
		if out == "" {
			out = cfg.Season.SQLitePath
		}
		db, err := sqlite.Open(ctx, sqlite.Config{Path: out, AutoMigrate: true, SeasonName: season.Name})
		if err != nil {
			return err
		}
		defer db.Close()
		return db.SaveSeason(ctx, season)
	default:
		return fmt.Errorf("unknown target %q", *target)
	}
}
