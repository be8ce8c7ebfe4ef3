package domain

import (
	"github.com/preston-bernstein/league-stats-service/internal/domain/boxscores"
	"github.com/preston-bernstein/league-stats-service/internal/domain/games"
	"github.com/preston-bernstein/league-stats-service/internal/domain/players"
	"github.com/preston-bernstein/league-stats-service/internal/domain/teams"
)

// Season is the materialized set of records the stats engine works from.
// Providers produce it; the store holds the latest one.
type Season struct {
	Name        string                     `json:"name"`
	Teams       []teams.Team               `json:"teams"`
	Players     []players.Player           `json:"players"`
	Games       []games.Game               `json:"games"`
	PlayerStats []boxscores.PlayerGameStat `json:"playerStats"`
	TeamStats   []boxscores.TeamGameStat   `json:"teamStats"`
}

// Counts summarizes the size of a season, mostly for logging.
type Counts struct {
	Teams       int `json:"teams"`
	Players     int `json:"players"`
	Games       int `json:"games"`
	PlayerStats int `json:"playerStats"`
	TeamStats   int `json:"teamStats"`
}

// Counts returns record counts for the season.
func (s Season) Counts() Counts {
	return Counts{
		Teams:       len(s.Teams),
		Players:     len(s.Players),
		Games:       len(s.Games),
		PlayerStats: len(s.PlayerStats),
		TeamStats:   len(s.TeamStats),
	}
}

// IsEmpty reports whether the season has no teams and no games.
func (s Season) IsEmpty() bool {
	return len(s.Teams) == 0 && len(s.Games) == 0
}
