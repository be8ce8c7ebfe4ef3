package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	ErrStoreNotConfigured = errors.New("snapshot store not configured")
	ErrSnapshotNotFound   = errors.New("snapshot not found")
)

// Store defines how snapshots are loaded.
type Store interface {
	LoadStandings(date string) (StandingsSnapshot, error)
	Dates() ([]string, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadStandings reads the standings snapshot for date (YYYY-MM-DD).
// Files are expected at {basePath}/standings/{date}.json.
func (s *FSStore) LoadStandings(date string) (StandingsSnapshot, error) {
	var payload StandingsSnapshot
	if err := s.load(kindStandings, date, &payload); err != nil {
		return StandingsSnapshot{}, err
	}
	if payload.Date == "" {
		payload.Date = date
	}
	return payload, nil
}

// Dates lists the standings snapshot dates on disk in ascending order.
func (s *FSStore) Dates() ([]string, error) {
	if s == nil {
		return nil, ErrStoreNotConfigured
	}
	return listDates(filepath.Join(s.basePath, string(kindStandings)))
}

func (s *FSStore) load(kind snapshotKind, date string, payload any) error {
	if s == nil {
		return ErrStoreNotConfigured
	}
	if date == "" {
		return ErrDateRequired
	}
	path := filepath.Join(s.basePath, string(kind), fmt.Sprintf("%s.json", date))
	err := s.decodeFile(path, payload)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s %s", ErrSnapshotNotFound, kind, date)
	}
	return err
}

func (s *FSStore) decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
