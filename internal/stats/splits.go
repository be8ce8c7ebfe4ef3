package stats

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/preston-bernstein/league-stats-service/internal/domain/boxscores"
	"github.com/preston-bernstein/league-stats-service/internal/domain/games"
)

// DefaultRecentGames is the window used by ComputeRecent when n <= 0.
const DefaultRecentGames = 5

// Splits partitions one team's games. A nil bucket means no records fell into it.
type Splits struct {
	TeamID  string       `json:"teamId"`
	Overall *RateLine    `json:"overall"`
	Home    *RateLine    `json:"home"`
	Away    *RateLine    `json:"away"`
	Wins    *RateLine    `json:"wins"`
	Losses  *RateLine    `json:"losses"`
	Months  []MonthSplit `json:"months"`
}

// MonthSplit is the bucket for one calendar month. Months are ordered January first.
type MonthSplit struct {
	Month time.Month
	Stats RateLine
}

func (m MonthSplit) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Month string   `json:"month"`
		Stats RateLine `json:"stats"`
	}{Month: m.Month.String(), Stats: m.Stats})
}

// Month returns the bucket for month, if present.
func (s Splits) Month(month time.Month) (RateLine, bool) {
	for _, m := range s.Months {
		if m.Month == month {
			return m.Stats, true
		}
	}
	return RateLine{}, false
}

type joined struct {
	stat boxscores.TeamGameStat
	game games.Game
}

// ComputeSplits breaks teamID's stat records down by venue, result and calendar month.
// Records belonging to other teams are ignored. Records whose game id is missing or does not
// match any game in gameList are excluded from every bucket. Each joined record's plus-minus
// is the game's score margin from the team's side. A drawn game is in neither Wins nor Losses,
// and games without a date are left out of the month buckets.
func ComputeSplits(teamID string, records []boxscores.TeamGameStat, gameList []games.Game) Splits {
	out := Splits{TeamID: teamID}

	var owned int
	byID := games.Index(gameList)
	rows := make([]joined, 0, len(records))
	for _, rec := range records {
		if rec.TeamID != teamID {
			continue
		}
		owned++
		id, ok := rec.Game()
		if !ok {
			continue
		}
		g, ok := byID[id]
		if !ok {
			continue
		}
		own, opp := g.ScoresFor(teamID)
		rec.PlusMinus = boxscores.Int(own - opp)
		rows = append(rows, joined{stat: rec, game: g})
	}
	if owned == 0 {
		return out
	}

	overall := ComputeAverages(statsOf(rows, nil))
	overall.SubjectID = teamID
	out.Overall = &overall

	out.Home = bucket(rows, func(j joined) bool { return j.game.HomeTeamID == teamID })
	out.Away = bucket(rows, func(j joined) bool { return j.game.HomeTeamID != teamID })
	out.Wins = bucket(rows, func(j joined) bool {
		own, opp := j.game.ScoresFor(teamID)
		return own > opp
	})
	out.Losses = bucket(rows, func(j joined) bool {
		own, opp := j.game.ScoresFor(teamID)
		return own < opp
	})

	for month := time.January; month <= time.December; month++ {
		line := bucket(rows, func(j joined) bool {
			return !j.game.GameDate.IsZero() && j.game.GameDate.Month() == month
		})
		if line != nil {
			out.Months = append(out.Months, MonthSplit{Month: month, Stats: *line})
		}
	}
	return out
}

func bucket(rows []joined, keep func(joined) bool) *RateLine {
	subset := statsOf(rows, keep)
	if len(subset) == 0 {
		return nil
	}
	line := ComputeAverages(subset)
	return &line
}

func statsOf(rows []joined, keep func(joined) bool) []boxscores.TeamGameStat {
	out := make([]boxscores.TeamGameStat, 0, len(rows))
	for _, j := range rows {
		if keep == nil || keep(j) {
			out = append(out, j.stat)
		}
	}
	return out
}

type datedRecord[R boxscores.Record] struct {
	rec  R
	date time.Time
}

// ComputeRecent averages the n most recent records of one subject, judged by the date of
// each record's game. Records that do not join to a game are skipped. It returns nil when
// nothing joins. Records from games on the same date count later input as more recent.
func ComputeRecent[R boxscores.Record](records []R, gameList []games.Game, n int) *RateLine {
	if n <= 0 {
		n = DefaultRecentGames
	}
	byID := games.Index(gameList)
	rows := make([]datedRecord[R], 0, len(records))
	for _, rec := range records {
		id, ok := rec.Game()
		if !ok {
			continue
		}
		g, ok := byID[id]
		if !ok {
			continue
		}
		rows = append(rows, datedRecord[R]{rec: rec, date: g.GameDate})
	}
	if len(rows) == 0 {
		return nil
	}
	slices.SortStableFunc(rows, func(a, b datedRecord[R]) int { return a.date.Compare(b.date) })
	if len(rows) > n {
		rows = rows[len(rows)-n:]
	}
	window := make([]R, len(rows))
	for i, row := range rows {
		window[i] = row.rec
	}
	line := ComputeAverages(window)
	return &line
}
