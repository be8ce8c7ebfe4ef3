package testutil

import (
	"context"
	"time"

	"github.com/preston-bernstein/league-stats-service/internal/domain"
	"github.com/preston-bernstein/league-stats-service/internal/domain/boxscores"
	"github.com/preston-bernstein/league-stats-service/internal/domain/games"
	"github.com/preston-bernstein/league-stats-service/internal/domain/teams"
	"github.com/preston-bernstein/league-stats-service/internal/providers/fixture"
)

// SampleTeam returns a minimal team fixture with the provided id.
func SampleTeam(id string) teams.Team {
	return teams.Team{ID: id, Name: "Team " + id, Abbreviation: id}
}

// SampleGame returns a completed, scored game fixture.
func SampleGame(id, home, away string, homeScore, awayScore int, date time.Time) games.Game {
	return games.Game{
		ID:          id,
		HomeTeamID:  home,
		AwayTeamID:  away,
		HomeScore:   homeScore,
		AwayScore:   awayScore,
		IsCompleted: true,
		GameDate:    date,
	}
}

// SampleTeamLine returns a team box-score line with only points recorded.
func SampleTeamLine(gameID, teamID string, points int) boxscores.TeamGameStat {
	return boxscores.TeamGameStat{
		ID:       gameID + "-" + teamID,
		TeamID:   teamID,
		GameID:   boxscores.GameRef(gameID),
		StatLine: boxscores.StatLine{Points: boxscores.Int(points)},
	}
}

// SampleSeason returns a two-team season where "home" beat "away" once.
func SampleSeason() domain.Season {
	date := time.Date(2024, 11, 5, 0, 0, 0, 0, time.UTC)
	return domain.Season{
		Name:  "sample",
		Teams: []teams.Team{SampleTeam("home"), SampleTeam("away")},
		Games: []games.Game{SampleGame("g1", "home", "away", 101, 95, date)},
		TeamStats: []boxscores.TeamGameStat{
			SampleTeamLine("g1", "home", 101),
			SampleTeamLine("g1", "away", 95),
		},
	}
}

// FixtureSeason returns the fixture provider's season.
func FixtureSeason() domain.Season {
	season, err := fixture.New().FetchSeason(context.Background())
	if err != nil {
		panic(err)
	}
	return season
}
