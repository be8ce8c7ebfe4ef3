package teststubs

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/league-stats-service/internal/domain"
	"github.com/preston-bernstein/league-stats-service/internal/snapshots"
)

func TestStubProviderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	p := &StubProvider{Season: domain.Season{Name: "s1"}, Err: err, Notify: make(chan struct{})}
	if _, got := p.FetchSeason(context.Background()); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if _, got := p.FetchSeason(context.Background()); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough on second call, got %v", got)
	}
	if p.Calls.Load() != 2 {
		t.Fatalf("expected call count 2, got %d", p.Calls.Load())
	}
	select {
	case <-p.Notify:
	default:
		t.Fatalf("expected notify channel to be closed")
	}
}

func TestStubSeasonSinkRecords(t *testing.T) {
	s := &StubSeasonSink{}
	s.SetSeason(domain.Season{Name: "a"})
	s.SetSeason(domain.Season{Name: "b"})
	got := s.Seasons()
	if len(got) != 2 || got[1].Name != "b" {
		t.Fatalf("unexpected seasons: %+v", got)
	}
}

func TestStubSnapshotStore(t *testing.T) {
	date := "2024-01-01"
	s := &StubSnapshotStore{
		Standings: map[string]snapshots.StandingsSnapshot{
			date: {Date: date, Season: "s1"},
		},
	}

	snap, err := s.LoadStandings(date)
	if err != nil || snap.Date != date {
		t.Fatalf("expected loaded standings, got %v err %v", snap, err)
	}
	if _, err := s.LoadStandings("2024-01-02"); !errors.Is(err, snapshots.ErrSnapshotNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	dates, _ := s.Dates()
	if len(dates) != 1 {
		t.Fatalf("expected one date, got %v", dates)
	}
}

func TestStubSnapshotWriter(t *testing.T) {
	date := "2024-01-01"
	w := &StubSnapshotWriter{}
	if err := w.WriteStandingsSnapshot(date, snapshots.StandingsSnapshot{Date: date}); err != nil {
		t.Fatalf("expected write success, got %v", err)
	}
	if !w.HasSnapshot(date) {
		t.Fatalf("expected snapshot recorded")
	}

	w.Err = errors.New("write error")
	if err := w.WriteStandingsSnapshot("2024-01-02", snapshots.StandingsSnapshot{}); err == nil {
		t.Fatalf("expected write error")
	}
	if w.HasSnapshot("2024-01-02") {
		t.Fatalf("expected failed write not recorded")
	}
}
