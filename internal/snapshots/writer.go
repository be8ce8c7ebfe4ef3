package snapshots

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/preston-bernstein/league-stats-service/internal/timeutil"
)

const defaultRetentionDays = 30

var (
	ErrWriterNotConfigured = errors.New("snapshot writer not configured")
	ErrDateRequired        = errors.New("snapshot date required")
)

// Writer persists snapshots and manifest with pruning.
type Writer struct {
	basePath      string
	retentionDays int
	now           func() time.Time
}

// NewWriter constructs a writer rooted at basePath with a rolling window retention.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = defaultRetentionDays
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// HasSnapshot reports whether a standings snapshot exists for date.
func (w *Writer) HasSnapshot(date string) bool {
	if w == nil || w.basePath == "" || date == "" {
		return false
	}
	_, err := os.Stat(StandingsSnapshotPath(w.basePath, date))
	return err == nil
}

// WriteStandingsSnapshot writes the standings snapshot for date (YYYY-MM-DD)
// and prunes snapshots older than the retention window.
func (w *Writer) WriteStandingsSnapshot(date string, snapshot StandingsSnapshot) error {
	if w == nil {
		return ErrWriterNotConfigured
	}
	if date == "" {
		return ErrDateRequired
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		return err
	}
	if snapshot.Date == "" {
		snapshot.Date = date
	}
	if snapshot.GeneratedAt.IsZero() {
		snapshot.GeneratedAt = w.now().UTC()
	}
	return w.writeSnapshot(kindStandings, date, snapshot)
}

func (w *Writer) snapshotPath(kind snapshotKind, date string) string {
	return filepath.Join(w.basePath, string(kind), date+".json")
}

func (w *Writer) writeSnapshot(kind snapshotKind, date string, payload any) error {
	target := w.snapshotPath(kind, date)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return w.updateManifest(kind, date)
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return w.updateManifest(kind, date)
}

func (w *Writer) updateManifest(kind snapshotKind, date string) error {
	m, _ := readManifest(ManifestPath(w.basePath), w.retentionDays)
	now := w.now().UTC()

	dates, err := w.listDates(kind)
	if err != nil {
		return err
	}
	if !slices.Contains(dates, date) {
		dates = append(dates, date)
	}
	pruned := w.pruneOldSnapshots(kind, dates, now)

	switch kind {
	case kindStandings:
		m.Standings.Dates = pruned
		m.Standings.LastRefreshed = now
		m.Retention.StandingsDays = w.retentionDays
	}

	return writeManifest(w.basePath, m, now)
}

func (w *Writer) listDates(kind snapshotKind) ([]string, error) {
	return listDates(filepath.Join(w.basePath, string(kind)))
}

func listDates(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	dates := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		dates = append(dates, strings.TrimSuffix(name, ".json"))
	}
	slices.Sort(dates)
	return slices.Compact(dates), nil
}

func (w *Writer) pruneOldSnapshots(kind snapshotKind, dates []string, now time.Time) []string {
	cutoff := timeutil.StartOfDayUTC(now).AddDate(0, 0, -w.retentionDays)
	keep := make([]string, 0, len(dates))
	for _, d := range dates {
		parsed, err := timeutil.ParseDate(d)
		if err != nil {
			keep = append(keep, d)
			continue
		}
		if parsed.Before(cutoff) {
			_ = os.Remove(w.snapshotPath(kind, d))
			continue
		}
		keep = append(keep, d)
	}
	slices.Sort(keep)
	return keep
}
