package league

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/league-stats-service/internal/metrics"
	"github.com/preston-bernstein/league-stats-service/internal/store"
)

func TestDashboardBundlesStandingsAndBoards(t *testing.T) {
	svc, rec := newLoadedService(t, fixtureSeason(t))

	dash, err := svc.Dashboard(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dash.Season != "2024-2025" || len(dash.Standings) != 4 {
		t.Fatalf("unexpected dashboard header: season=%q standings=%d", dash.Season, len(dash.Standings))
	}
	if len(dash.Leaders) != len(DashboardStats) {
		t.Fatalf("expected %d boards, got %d", len(DashboardStats), len(dash.Leaders))
	}
	for i, board := range dash.Leaders {
		if board.Stat != DashboardStats[i] {
			t.Fatalf("board %d: expected %s, got %s", i, DashboardStats[i], board.Stat)
		}
		if len(board.Leaders) != 3 {
			t.Fatalf("board %d: expected 3 leaders, got %d", i, len(board.Leaders))
		}
	}
	if rec.Computations(metrics.KindDashboard) != 1 {
		t.Fatalf("expected dashboard computation recorded")
	}
}

func TestDashboardDefaultsBoardSize(t *testing.T) {
	svc, _ := newLoadedService(t, fixtureSeason(t))
	dash, err := svc.Dashboard(context.Background(), -4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(dash.Leaders[0].Leaders); got != 5 {
		t.Fatalf("expected default board size 5, got %d", got)
	}
}

func TestDashboardWithoutSeason(t *testing.T) {
	svc := NewService(store.NewMemoryStore(), nil, nil)
	if _, err := svc.Dashboard(context.Background(), 3); !errors.Is(err, ErrNoSeason) {
		t.Fatalf("expected ErrNoSeason, got %v", err)
	}
}
