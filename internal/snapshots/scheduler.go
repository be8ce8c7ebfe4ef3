package snapshots

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/preston-bernstein/league-stats-service/internal/logging"
	"github.com/preston-bernstein/league-stats-service/internal/metrics"
	"github.com/preston-bernstein/league-stats-service/internal/timeutil"
)

const defaultDailyHourUTC = 2

// StandingsSource builds the standings snapshot for a date.
type StandingsSource interface {
	StandingsSnapshot(ctx context.Context, date string) (StandingsSnapshot, error)
}

// SnapshotWriter persists standings snapshots.
type SnapshotWriter interface {
	WriteStandingsSnapshot(date string, snapshot StandingsSnapshot) error
	HasSnapshot(date string) bool
}

// SchedulerConfig controls when the daily snapshot runs.
type SchedulerConfig struct {
	Enabled      bool
	DailyHourUTC int
}

// Scheduler writes a standings snapshot once per day on a gocron job.
type Scheduler struct {
	source   StandingsSource
	writer   SnapshotWriter
	cfg      SchedulerConfig
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time

	mu      sync.Mutex
	cron    gocron.Scheduler
	cancel  context.CancelFunc
	started bool
}

// NewScheduler wires a source and writer together. A nil writer or source disables scheduling.
func NewScheduler(source StandingsSource, writer SnapshotWriter, cfg SchedulerConfig, logger *slog.Logger, recorder *metrics.Recorder) *Scheduler {
	if cfg.DailyHourUTC < 0 || cfg.DailyHourUTC > 23 {
		cfg.DailyHourUTC = defaultDailyHourUTC
	}
	return &Scheduler{
		source:   source,
		writer:   writer,
		cfg:      cfg,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

// Start registers the daily job and starts the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	if s == nil || !s.cfg.Enabled || s.source == nil || s.writer == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return nil
	}

	cron, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return fmt.Errorf("create snapshot scheduler: %w", err)
	}

	jobCtx, cancel := context.WithCancel(ctx)
	_, err = cron.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(s.cfg.DailyHourUTC), 0, 0))),
		gocron.NewTask(func() {
			_, _ = s.Refresh(jobCtx)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		cancel()
		_ = cron.Shutdown()
		return fmt.Errorf("schedule daily snapshot: %w", err)
	}

	cron.Start()
	s.cron = cron
	s.cancel = cancel
	s.started = true
	logging.Info(s.logger, "snapshot scheduler started", "hour_utc", s.cfg.DailyHourUTC)
	return nil
}

// Stop shuts the scheduler down and cancels any running job.
func (s *Scheduler) Stop() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return nil
	}
	s.cancel()
	err := s.cron.Shutdown()
	s.started = false
	s.cron = nil
	return err
}

// Refresh builds and writes today's snapshot immediately.
func (s *Scheduler) Refresh(ctx context.Context) (StandingsSnapshot, error) {
	if s == nil || s.source == nil || s.writer == nil {
		return StandingsSnapshot{}, ErrWriterNotConfigured
	}
	start := s.now()
	date := timeutil.UTCDate(start)

	snap, err := s.source.StandingsSnapshot(ctx, date)
	if err == nil {
		err = s.writer.WriteStandingsSnapshot(date, snap)
	}
	s.recorder.RecordSnapshotWrite(err)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logging.Warn(s.logger, "standings snapshot failed", "date", date, "err", err)
		}
		return StandingsSnapshot{}, err
	}
	logging.Info(s.logger, "standings snapshot written",
		"date", date,
		"teams", len(snap.Standings),
		logging.Duration(s.now().Sub(start)),
	)
	if snap.Date == "" {
		snap.Date = date
	}
	return snap, nil
}

// EnsureToday writes today's snapshot when none exists yet.
func (s *Scheduler) EnsureToday(ctx context.Context) error {
	if s == nil || s.writer == nil {
		return nil
	}
	if s.writer.HasSnapshot(timeutil.UTCDate(s.now())) {
		return nil
	}
	_, err := s.Refresh(ctx)
	return err
}
