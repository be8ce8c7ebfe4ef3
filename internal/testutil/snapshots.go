package testutil

import (
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/league-stats-service/internal/snapshots"
	"github.com/preston-bernstein/league-stats-service/internal/stats"
)

// NewTempWriter returns a snapshot writer rooted in a temp dir.
func NewTempWriter(t *testing.T, retention int) *snapshots.Writer {
	t.Helper()
	return snapshots.NewWriter(t.TempDir(), retention)
}

// WriteSnapshot writes a one-team standings snapshot for the date.
func WriteSnapshot(t *testing.T, w *snapshots.Writer, date string) {
	t.Helper()
	if err := writeSnapshotPayload(w, date); err != nil {
		t.Fatalf("failed to write snapshot %s: %v", date, err)
	}
}

func writeSnapshotPayload(w *snapshots.Writer, date string) error {
	if w == nil {
		return errors.New("nil snapshot writer")
	}
	return w.WriteStandingsSnapshot(date, snapshots.StandingsSnapshot{
		Date:        date,
		Season:      "sample",
		GeneratedAt: time.Now().UTC(),
		Standings:   []stats.TeamStanding{{Rank: 1, TeamID: "home", TeamName: "Team home"}},
	})
}

// SnapshotPath returns the expected file path for a snapshot date.
func SnapshotPath(w *snapshots.Writer, date string) string {
	return snapshots.StandingsSnapshotPath(w.BasePath(), date)
}
