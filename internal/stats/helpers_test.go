package stats

import (
	"time"

	"github.com/preston-bernstein/league-stats-service/internal/domain/boxscores"
	"github.com/preston-bernstein/league-stats-service/internal/domain/games"
)

var val = boxscores.Int

func day(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 0, 0, 0, 0, time.UTC)
}

func final(id, home, away string, homeScore, awayScore int, date time.Time) games.Game {
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

func playerLine(playerID, gameID string, points int) boxscores.PlayerGameStat {
	return boxscores.PlayerGameStat{
		ID:       playerID + "-" + gameID,
		PlayerID: playerID,
		GameID:   boxscores.GameRef(gameID),
		StatLine: boxscores.StatLine{Points: val(points)},
	}
}

func teamLine(teamID, gameID string, points int) boxscores.TeamGameStat {
	return boxscores.TeamGameStat{
		ID:       teamID + "-" + gameID,
		TeamID:   teamID,
		GameID:   boxscores.GameRef(gameID),
		StatLine: boxscores.StatLine{Points: val(points)},
	}
}
