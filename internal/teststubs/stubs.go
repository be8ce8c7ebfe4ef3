package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/league-stats-service/internal/domain"
	"github.com/preston-bernstein/league-stats-service/internal/snapshots"
)

// StubProvider is a test double for providers.SeasonProvider.
type StubProvider struct {
	Season domain.Season
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}

	notifyOnce sync.Once
}

// FetchSeason returns the configured season and error while tracking calls.
func (s *StubProvider) FetchSeason(ctx context.Context) (domain.Season, error) {
	_ = ctx
	s.Calls.Add(1)
	if s.Notify != nil {
		s.notifyOnce.Do(func() { close(s.Notify) })
	}
	return s.Season, s.Err
}

// StubSeasonSink is a test double for poller.SeasonSink.
type StubSeasonSink struct {
	mu      sync.Mutex
	seasons []domain.Season
}

// SetSeason records the season.
func (s *StubSeasonSink) SetSeason(season domain.Season) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seasons = append(s.seasons, season)
}

// Seasons returns every season received so far.
func (s *StubSeasonSink) Seasons() []domain.Season {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Season(nil), s.seasons...)
}

// StubSnapshotStore is a test double for snapshots.Store.
type StubSnapshotStore struct {
	Standings map[string]snapshots.StandingsSnapshot // keyed by date
	LoadErr   error
}

// LoadStandings returns the snapshot for date if present in the Standings map.
func (s *StubSnapshotStore) LoadStandings(date string) (snapshots.StandingsSnapshot, error) {
	if s.LoadErr != nil {
		return snapshots.StandingsSnapshot{}, s.LoadErr
	}
	snap, ok := s.Standings[date]
	if !ok {
		return snapshots.StandingsSnapshot{}, snapshots.ErrSnapshotNotFound
	}
	return snap, nil
}

// Dates lists the dates held by the stub (unordered).
func (s *StubSnapshotStore) Dates() ([]string, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	dates := make([]string, 0, len(s.Standings))
	for d := range s.Standings {
		dates = append(dates, d)
	}
	return dates, nil
}

// StubSnapshotWriter is a test double for snapshots.SnapshotWriter.
type StubSnapshotWriter struct {
	Written map[string]snapshots.StandingsSnapshot // keyed by date
	Err     error
}

// WriteStandingsSnapshot records the snapshot for verification in tests.
func (w *StubSnapshotWriter) WriteStandingsSnapshot(date string, snapshot snapshots.StandingsSnapshot) error {
	if w.Err != nil {
		return w.Err
	}
	if w.Written == nil {
		w.Written = make(map[string]snapshots.StandingsSnapshot)
	}
	w.Written[date] = snapshot
	return nil
}

// HasSnapshot reports whether date was written.
func (w *StubSnapshotWriter) HasSnapshot(date string) bool {
	_, ok := w.Written[date]
	return ok
}
