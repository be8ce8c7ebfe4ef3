package stats

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/preston-bernstein/league-stats-service/internal/domain/games"
	"github.com/preston-bernstein/league-stats-service/internal/domain/teams"
)

// last5Window is how many recent games the form string covers.
const last5Window = 5

// Outcome is a single game result from one team's point of view.
type Outcome string

const (
	Win  Outcome = "W"
	Loss Outcome = "L"
)

// Streak is the run of identical outcomes ending at the most recent game.
type Streak struct {
	Type  Outcome `json:"type"`
	Count int     `json:"count"`
}

// String renders the streak as "W3" / "L1".
func (s Streak) String() string {
	return fmt.Sprintf("%s%d", s.Type, s.Count)
}

// TeamStanding is one derived standings row.
type TeamStanding struct {
	Rank              int     `json:"rank"`
	TeamID            string  `json:"teamId"`
	TeamName          string  `json:"teamName"`
	GamesPlayed       int     `json:"gamesPlayed"`
	Wins              int     `json:"wins"`
	Losses            int     `json:"losses"`
	WinPercentage     float64 `json:"winPercentage"`
	GamesBehind       float64 `json:"gamesBehind"`
	HomeWins          int     `json:"homeWins"`
	HomeLosses        int     `json:"homeLosses"`
	AwayWins          int     `json:"awayWins"`
	AwayLosses        int     `json:"awayLosses"`
	PointsScored      int     `json:"pointsScored"`
	PointsAllowed     int     `json:"pointsAllowed"`
	PointDifferential int     `json:"pointDifferential"`
	Streak            Streak  `json:"streak"`
	Last5             string  `json:"last5"`
}

type result struct {
	date    time.Time
	outcome Outcome
}

type standingBuilder struct {
	row TeamStanding
	// in processing order, oldest first
	results []result
}

func (b *standingBuilder) record(date time.Time, outcome Outcome, home bool, scored, allowed int) {
	switch {
	case outcome == Win && home:
		b.row.HomeWins++
	case outcome == Win:
		b.row.AwayWins++
	case home:
		b.row.HomeLosses++
	default:
		b.row.AwayLosses++
	}
	if outcome == Win {
		b.row.Wins++
	} else {
		b.row.Losses++
	}
	b.row.PointsScored += scored
	b.row.PointsAllowed += allowed
	b.results = append(b.results, result{date: date, outcome: outcome})
}

func (b *standingBuilder) build() TeamStanding {
	row := b.row
	row.GamesPlayed = row.Wins + row.Losses
	row.PointDifferential = row.PointsScored - row.PointsAllowed
	row.WinPercentage = winPercentage(row.Wins, row.Losses)
	recent := mostRecentFirst(b.results)
	row.Streak = streak(recent)
	row.Last5 = lastN(recent, last5Window)
	return row
}

// mostRecentFirst re-sorts a team's results by date descending. Results sharing a date keep
// their processing order.
func mostRecentFirst(results []result) []Outcome {
	sorted := slices.Clone(results)
	slices.SortStableFunc(sorted, func(a, b result) int {
		return b.date.Compare(a.date)
	})
	out := make([]Outcome, len(sorted))
	for i, r := range sorted {
		out[i] = r.outcome
	}
	return out
}

// ComputeStandings ranks every team in teams by its record over the qualifying games.
// The output holds exactly one row per distinct team id. Games naming a team that is not
// in teams, or naming the same team on both sides, are ignored. A qualifying game with
// equal scores produces no result for either side, so when the input holds ties the total
// wins and total losses each fall short of the qualifying game count.
func ComputeStandings(teamList []teams.Team, gameList []games.Game) []TeamStanding {
	builders := make(map[string]*standingBuilder, len(teamList))
	order := make([]*standingBuilder, 0, len(teamList))
	for _, t := range teamList {
		if _, dup := builders[t.ID]; dup {
			continue
		}
		b := &standingBuilder{row: TeamStanding{TeamID: t.ID, TeamName: t.Name}}
		builders[t.ID] = b
		order = append(order, b)
	}

	for _, g := range chronological(gameList) {
		home, okHome := builders[g.HomeTeamID]
		away, okAway := builders[g.AwayTeamID]
		if !okHome || !okAway || home == away {
			continue
		}
		switch {
		case g.HomeScore > g.AwayScore:
			home.record(g.GameDate, Win, true, g.HomeScore, g.AwayScore)
			away.record(g.GameDate, Loss, false, g.AwayScore, g.HomeScore)
		case g.AwayScore > g.HomeScore:
			home.record(g.GameDate, Loss, true, g.HomeScore, g.AwayScore)
			away.record(g.GameDate, Win, false, g.AwayScore, g.HomeScore)
		}
	}

	rows := make([]TeamStanding, len(order))
	for i, b := range order {
		rows[i] = b.build()
	}
	slices.SortStableFunc(rows, compareStandings)

	for i := range rows {
		rows[i].Rank = i + 1
		if i > 0 {
			rows[i].GamesBehind = gamesBehind(rows[0], rows[i])
		}
	}
	return rows
}

// chronological returns the qualifying games ordered oldest first. Games on the same date
// keep their input order.
func chronological(gameList []games.Game) []games.Game {
	out := make([]games.Game, 0, len(gameList))
	for _, g := range gameList {
		if games.Qualifies(g) {
			out = append(out, g)
		}
	}
	slices.SortStableFunc(out, func(a, b games.Game) int {
		return a.GameDate.Compare(b.GameDate)
	})
	return out
}

func compareStandings(a, b TeamStanding) int {
	if c := cmp.Compare(b.WinPercentage, a.WinPercentage); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Wins, a.Wins); c != 0 {
		return c
	}
	if c := cmp.Compare(b.PointDifferential, a.PointDifferential); c != 0 {
		return c
	}
	if c := cmp.Compare(a.TeamName, b.TeamName); c != 0 {
		return c
	}
	return cmp.Compare(a.TeamID, b.TeamID)
}

// winPercentage is wins/(wins+losses) rounded half away from zero to three places.
func winPercentage(wins, losses int) float64 {
	played := wins + losses
	if played == 0 {
		return 0
	}
	pct := decimal.NewFromInt(int64(wins)).
		Div(decimal.NewFromInt(int64(played))).
		Round(3)
	return pct.InexactFloat64()
}

func gamesBehind(leader, row TeamStanding) float64 {
	return float64((leader.Wins-row.Wins)+(row.Losses-leader.Losses)) / 2
}

// streak walks outcomes newest first. No games reads as a zero-length losing streak.
func streak(recent []Outcome) Streak {
	if len(recent) == 0 {
		return Streak{Type: Loss}
	}
	s := Streak{Type: recent[0]}
	for _, o := range recent {
		if o != s.Type {
			break
		}
		s.Count++
	}
	return s
}

func lastN(recent []Outcome, n int) string {
	var wins, losses int
	for _, o := range recent[:min(n, len(recent))] {
		if o == Win {
			wins++
		} else {
			losses++
		}
	}
	return fmt.Sprintf("%d-%d", wins, losses)
}
