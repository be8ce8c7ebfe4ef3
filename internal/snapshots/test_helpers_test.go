package snapshots

import (
	"os"
	"testing"
	"time"

	"github.com/preston-bernstein/league-stats-service/internal/stats"
)

func simpleSnapshot(date string) StandingsSnapshot {
	return StandingsSnapshot{
		Date:        date,
		Season:      "2024-25",
		GeneratedAt: time.Date(2025, 1, 2, 3, 0, 0, 0, time.UTC),
		Standings: []stats.TeamStanding{
			{Rank: 1, TeamID: "bos", TeamName: "Boston", Wins: 2, GamesPlayed: 2, WinPercentage: 1},
			{Rank: 2, TeamID: "lal", TeamName: "Los Angeles", Losses: 2, GamesPlayed: 2},
		},
	}
}

func writeSnapshot(t *testing.T, w *Writer, date string, snap StandingsSnapshot) {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil for date %s", date)
	}
	if err := w.WriteStandingsSnapshot(date, snap); err != nil {
		t.Fatalf("failed to write snapshot %s: %v", date, err)
	}
}

func writeSimpleSnapshot(t *testing.T, w *Writer, date string) {
	t.Helper()
	writeSnapshot(t, w, date, simpleSnapshot(date))
}

func requireSnapshotExists(t *testing.T, w *Writer, date string) {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil when asserting snapshot for %s", date)
	}
	if _, err := os.Stat(StandingsSnapshotPath(w.BasePath(), date)); err != nil {
		t.Fatalf("expected snapshot for %s to be written: %v", date, err)
	}
}

func fixedWriter(t *testing.T, retention int, now time.Time) *Writer {
	t.Helper()
	w := NewWriter(t.TempDir(), retention)
	w.now = func() time.Time { return now }
	return w
}

func assertDatesEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("dates length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("dates mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}
