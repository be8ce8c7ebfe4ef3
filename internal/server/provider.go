package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/preston-bernstein/league-stats-service/internal/config"
	"github.com/preston-bernstein/league-stats-service/internal/logging"
	"github.com/preston-bernstein/league-stats-service/internal/providers"
	"github.com/preston-bernstein/league-stats-service/internal/providers/file"
	"github.com/preston-bernstein/league-stats-service/internal/providers/fixture"
	"github.com/preston-bernstein/league-stats-service/internal/providers/sqlite"
)

// selectProvider builds the configured season source. Unknown names fall back to the fixture.
func selectProvider(ctx context.Context, cfg config.Config, logger *slog.Logger) (providers.SeasonProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case fixture.Name, "":
		return fixture.New(), nil
	case file.Name:
		return file.New(cfg.Season.File), nil
	case sqlite.Name:
		p, err := sqlite.Open(ctx, sqlite.Config{
			Path:        cfg.Season.SQLitePath,
			AutoMigrate: cfg.Season.AutoMigrate,
		})
		if err != nil {
			return nil, fmt.Errorf("open sqlite provider: %w", err)
		}
		return p, nil
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		return fixture.New(), nil
	}
}
