package snapshots

import (
	"time"

	"github.com/preston-bernstein/league-stats-service/internal/stats"
)

type snapshotKind string

const (
	kindStandings snapshotKind = "standings"
)

// StandingsSnapshot is the persisted form of one day's standings table.
type StandingsSnapshot struct {
	Date        string               `json:"date"`
	Season      string               `json:"season,omitempty"`
	GeneratedAt time.Time            `json:"generatedAt"`
	Standings   []stats.TeamStanding `json:"standings"`
}
