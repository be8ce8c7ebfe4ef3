package snapshots

import (
	"fmt"
	"path/filepath"
)

const manifestFile = "manifest.json"

// StandingsSnapshotPath builds the path to a standings snapshot for a given date.
func StandingsSnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, string(kindStandings), fmt.Sprintf("%s.json", date))
}

// ManifestPath builds the manifest location under basePath.
func ManifestPath(basePath string) string {
	return filepath.Join(basePath, manifestFile)
}
