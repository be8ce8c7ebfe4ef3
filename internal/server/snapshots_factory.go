package server

import (
	"log/slog"

	"github.com/preston-bernstein/league-stats-service/internal/config"
	"github.com/preston-bernstein/league-stats-service/internal/metrics"
	"github.com/preston-bernstein/league-stats-service/internal/snapshots"
)

type snapshotComponents struct {
	store     snapshots.Store
	writer    *snapshots.Writer
	scheduler *snapshots.Scheduler
}

// buildSnapshots wires the snapshot store, writer and daily scheduler. The writer and store
// are built even when the schedule is disabled so the admin refresh and ?date= reads keep working.
func buildSnapshots(cfg config.Config, source snapshots.StandingsSource, logger *slog.Logger, recorder *metrics.Recorder) snapshotComponents {
	basePath := cfg.Snapshots.Dir
	writer := snapshots.NewWriter(basePath, cfg.Snapshots.RetentionDays)
	scheduler := snapshots.NewScheduler(source, writer, snapshots.SchedulerConfig{
		Enabled:      cfg.Snapshots.Enabled,
		DailyHourUTC: cfg.Snapshots.DailyHourUTC,
	}, logger, recorder)

	return snapshotComponents{
		store:     snapshots.NewFSStore(basePath),
		writer:    writer,
		scheduler: scheduler,
	}
}
