// Package fixture serves a small deterministic season for local runs and tests.
package fixture

import (
	"context"
	"fmt"
	"time"

	"github.com/preston-bernstein/league-stats-service/internal/domain"
	"github.com/preston-bernstein/league-stats-service/internal/domain/boxscores"
	"github.com/preston-bernstein/league-stats-service/internal/domain/games"
	"github.com/preston-bernstein/league-stats-service/internal/domain/players"
	"github.com/preston-bernstein/league-stats-service/internal/domain/teams"
)

// Name identifies this provider in logs and metrics.
const Name = "fixture"

const daysBetweenGames = 3

// Provider returns a static season useful for local testing and bootstrapping.
type Provider struct {
	start time.Time
}

// New creates a fixture provider whose season opens on November 1st, 2024.
func New() *Provider {
	return &Provider{start: time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC)}
}

// FetchSeason returns a four-team season: a double round robin of completed games, one
// completed game without scores entered, and one scheduled game.
func (p *Provider) FetchSeason(ctx context.Context) (domain.Season, error) {
	if err := ctx.Err(); err != nil {
		return domain.Season{}, err
	}

	season := domain.Season{
		Name:    "2024-2025",
		Teams:   Teams(),
		Players: Players(),
	}

	pairs := [][2]string{
		{"bos", "lal"}, {"gsw", "mia"}, {"bos", "gsw"},
		{"lal", "mia"}, {"bos", "mia"}, {"lal", "gsw"},
	}
	var n int
	for round := 0; round < 2; round++ {
		for _, pair := range pairs {
			home, away := pair[0], pair[1]
			if round == 1 {
				home, away = away, home
			}
			n++
			g := games.Game{
				ID:          fmt.Sprintf("g%02d", n),
				HomeTeamID:  home,
				AwayTeamID:  away,
				HomeScore:   95 + (n*7)%20,
				AwayScore:   90 + (n*11)%25,
				IsCompleted: true,
				GameDate:    p.start.AddDate(0, 0, n*daysBetweenGames),
			}
			if g.HomeScore == g.AwayScore {
				g.HomeScore++
			}
			season.Games = append(season.Games, g)
			season.TeamStats = append(season.TeamStats,
				teamLine(g.ID, home, g.HomeScore, g.AwayScore, n),
				teamLine(g.ID, away, g.AwayScore, g.HomeScore, n+1),
			)
			season.PlayerStats = append(season.PlayerStats, playerLines(g, n)...)
		}
	}

	n++
	season.Games = append(season.Games, games.Game{
		ID: fmt.Sprintf("g%02d", n), HomeTeamID: "mia", AwayTeamID: "bos",
		IsCompleted: true, GameDate: p.start.AddDate(0, 0, n*daysBetweenGames),
	})
	n++
	season.Games = append(season.Games, games.Game{
		ID: fmt.Sprintf("g%02d", n), HomeTeamID: "gsw", AwayTeamID: "lal",
		GameDate: p.start.AddDate(0, 0, n*daysBetweenGames),
	})
	return season, nil
}

// Teams returns the fixture teams.
func Teams() []teams.Team {
	return []teams.Team{
		{ID: "bos", Name: "Celtics", Abbreviation: "BOS", City: "Boston", Division: "Atlantic"},
		{ID: "lal", Name: "Lakers", Abbreviation: "LAL", City: "Los Angeles", Division: "Pacific"},
		{ID: "gsw", Name: "Warriors", Abbreviation: "GSW", City: "San Francisco", Division: "Pacific"},
		{ID: "mia", Name: "Heat", Abbreviation: "MIA", City: "Miami", Division: "Southeast"},
	}
}

// Players returns two players per fixture team.
func Players() []players.Player {
	return []players.Player{
		{ID: "bos-1", FirstName: "Jane", LastName: "Doe", TeamID: "bos", Position: "G", JerseyNumber: "1"},
		{ID: "bos-2", FirstName: "Ray", LastName: "Allen", TeamID: "bos", Position: "F", JerseyNumber: "20"},
		{ID: "lal-1", FirstName: "John", LastName: "Smith", TeamID: "lal", Position: "F", JerseyNumber: "23"},
		{ID: "lal-2", FirstName: "Kim", LastName: "Park", TeamID: "lal", Position: "C", JerseyNumber: "3"},
		{ID: "gsw-1", FirstName: "Sam", LastName: "Reed", TeamID: "gsw", Position: "G", JerseyNumber: "30"},
		{ID: "gsw-2", FirstName: "Lee", LastName: "Grant", TeamID: "gsw", Position: "F", JerseyNumber: "11"},
		{ID: "mia-1", FirstName: "Ana", LastName: "Cruz", TeamID: "mia", Position: "F", JerseyNumber: "22"},
		{ID: "mia-2", FirstName: "Tom", LastName: "Wu", TeamID: "mia", Position: "G", JerseyNumber: "14"},
	}
}

// line splits a point total into made shots with plausible attempts.
func line(points, seed int) boxscores.StatLine {
	threes := points / 12
	free := points / 8
	twos := (points - 3*threes - free) / 2
	free = points - 3*threes - 2*twos

	return boxscores.StatLine{
		Points:                 boxscores.Int(points),
		FieldGoalsMade:         boxscores.Int(twos + threes),
		FieldGoalsAttempted:    boxscores.Int(2*twos + 3*threes - seed%4),
		TwoPointersMade:        boxscores.Int(twos),
		TwoPointersAttempted:   boxscores.Int(2*twos - seed%4),
		ThreePointersMade:      boxscores.Int(threes),
		ThreePointersAttempted: boxscores.Int(3 * threes),
		FreeThrowsMade:         boxscores.Int(free),
		FreeThrowsAttempted:    boxscores.Int(free + seed%3),
		OffensiveRebounds:      boxscores.Int(points/10 + seed%3),
		DefensiveRebounds:      boxscores.Int(points / 4),
		Rebounds:               boxscores.Int(points/10 + seed%3 + points/4),
		Assists:                boxscores.Int(points/5 + seed%5),
		Steals:                 boxscores.Int(2 + seed%6),
		Blocks:                 boxscores.Int(1 + seed%4),
		Turnovers:              boxscores.Int(3 + seed%7),
		Fouls:                  boxscores.Int(4 + seed%5),
	}
}

func teamLine(gameID, teamID string, own, opp, seed int) boxscores.TeamGameStat {
	stats := line(own, seed)
	stats.Minutes = boxscores.Int(240)
	stats.PlusMinus = boxscores.Int(own - opp)
	return boxscores.TeamGameStat{
		ID:       gameID + "-" + teamID,
		TeamID:   teamID,
		GameID:   boxscores.GameRef(gameID),
		StatLine: stats,
	}
}

func playerLines(g games.Game, seed int) []boxscores.PlayerGameStat {
	var out []boxscores.PlayerGameStat
	for _, side := range []string{g.HomeTeamID, g.AwayTeamID} {
		own, _ := g.ScoresFor(side)
		for i, share := range []int{35, 20} {
			id := fmt.Sprintf("%s-%d", side, i+1)
			stats := line(own*share/100, seed+i)
			stats.Minutes = boxscores.Int(36 - 8*i - seed%5)
			// bench players' plus-minus is not tracked
			if i == 0 {
				home := side == g.HomeTeamID
				margin := g.HomeScore - g.AwayScore
				if !home {
					margin = -margin
				}
				stats.PlusMinus = boxscores.Int(margin/2 + seed%3)
			}
			out = append(out, boxscores.PlayerGameStat{
				ID:       g.ID + "-" + id,
				PlayerID: id,
				TeamID:   side,
				GameID:   boxscores.GameRef(g.ID),
				StatLine: stats,
			})
		}
	}
	return out
}
