// Package stats turns raw game and box-score records into standings, splits, rate lines
// and leaderboards. Everything here is a pure function of its inputs: no I/O, no caching,
// no shared state, so callers may invoke it from any number of goroutines.
package stats

import (
	"sort"

	"github.com/preston-bernstein/league-stats-service/internal/domain/boxscores"
)

// TotalLine holds a subject's summed stats over a set of games.
type TotalLine struct {
	SubjectID              string `json:"subjectId"`
	GamesPlayed            int    `json:"gamesPlayed"`
	Minutes                int    `json:"minutes"`
	Points                 int    `json:"points"`
	FieldGoalsMade         int    `json:"fieldGoalsMade"`
	FieldGoalsAttempted    int    `json:"fieldGoalsAttempted"`
	TwoPointersMade        int    `json:"twoPointersMade"`
	TwoPointersAttempted   int    `json:"twoPointersAttempted"`
	ThreePointersMade      int    `json:"threePointersMade"`
	ThreePointersAttempted int    `json:"threePointersAttempted"`
	FreeThrowsMade         int    `json:"freeThrowsMade"`
	FreeThrowsAttempted    int    `json:"freeThrowsAttempted"`
	OffensiveRebounds      int    `json:"offensiveRebounds"`
	DefensiveRebounds      int    `json:"defensiveRebounds"`
	Rebounds               int    `json:"rebounds"`
	Assists                int    `json:"assists"`
	Steals                 int    `json:"steals"`
	Blocks                 int    `json:"blocks"`
	Turnovers              int    `json:"turnovers"`
	Fouls                  int    `json:"fouls"`
	PlusMinus              int    `json:"plusMinus"`

	FieldGoalPercentage  float64 `json:"fieldGoalPercentage"`
	TwoPointPercentage   float64 `json:"twoPointPercentage"`
	ThreePointPercentage float64 `json:"threePointPercentage"`
	FreeThrowPercentage  float64 `json:"freeThrowPercentage"`
}

// RateLine holds a subject's per-game averages and shooting percentages.
// Percentages are fractions (0.5 is 50%).
type RateLine struct {
	SubjectID   string `json:"subjectId"`
	GamesPlayed int    `json:"gamesPlayed"`

	MinutesPerGame                float64 `json:"minutesPerGame"`
	PointsPerGame                 float64 `json:"pointsPerGame"`
	FieldGoalsMadePerGame         float64 `json:"fieldGoalsMadePerGame"`
	FieldGoalsAttemptedPerGame    float64 `json:"fieldGoalsAttemptedPerGame"`
	TwoPointersMadePerGame        float64 `json:"twoPointersMadePerGame"`
	TwoPointersAttemptedPerGame   float64 `json:"twoPointersAttemptedPerGame"`
	ThreePointersMadePerGame      float64 `json:"threePointersMadePerGame"`
	ThreePointersAttemptedPerGame float64 `json:"threePointersAttemptedPerGame"`
	FreeThrowsMadePerGame         float64 `json:"freeThrowsMadePerGame"`
	FreeThrowsAttemptedPerGame    float64 `json:"freeThrowsAttemptedPerGame"`
	OffensiveReboundsPerGame      float64 `json:"offensiveReboundsPerGame"`
	DefensiveReboundsPerGame      float64 `json:"defensiveReboundsPerGame"`
	ReboundsPerGame               float64 `json:"reboundsPerGame"`
	AssistsPerGame                float64 `json:"assistsPerGame"`
	StealsPerGame                 float64 `json:"stealsPerGame"`
	BlocksPerGame                 float64 `json:"blocksPerGame"`
	TurnoversPerGame              float64 `json:"turnoversPerGame"`
	FoulsPerGame                  float64 `json:"foulsPerGame"`
	PlusMinusPerGame              float64 `json:"plusMinusPerGame"`

	FieldGoalPercentage  float64 `json:"fieldGoalPercentage"`
	TwoPointPercentage   float64 `json:"twoPointPercentage"`
	ThreePointPercentage float64 `json:"threePointPercentage"`
	FreeThrowPercentage  float64 `json:"freeThrowPercentage"`
}

// ComputeTotals sums the records of a single subject. Every record counts as a game played,
// whatever its minutes. Missing fields sum as zero.
func ComputeTotals[R boxscores.Record](records []R) TotalLine {
	var t TotalLine
	for i, rec := range records {
		if i == 0 {
			t.SubjectID = rec.Subject()
		}
		t.add(rec.Stats())
	}
	t.GamesPlayed = len(records)
	t.FieldGoalPercentage = percentage(t.FieldGoalsMade, t.FieldGoalsAttempted)
	t.TwoPointPercentage = percentage(t.TwoPointersMade, t.TwoPointersAttempted)
	t.ThreePointPercentage = percentage(t.ThreePointersMade, t.ThreePointersAttempted)
	t.FreeThrowPercentage = percentage(t.FreeThrowsMade, t.FreeThrowsAttempted)
	return t
}

// ComputeAverages returns per-game averages for the records of a single subject.
func ComputeAverages[R boxscores.Record](records []R) RateLine {
	return ComputeTotals(records).Averages()
}

// Averages normalizes the totals by games played.
func (t TotalLine) Averages() RateLine {
	gp := t.GamesPlayed
	return RateLine{
		SubjectID:   t.SubjectID,
		GamesPlayed: gp,

		MinutesPerGame:                perGame(t.Minutes, gp),
		PointsPerGame:                 perGame(t.Points, gp),
		FieldGoalsMadePerGame:         perGame(t.FieldGoalsMade, gp),
		FieldGoalsAttemptedPerGame:    perGame(t.FieldGoalsAttempted, gp),
		TwoPointersMadePerGame:        perGame(t.TwoPointersMade, gp),
		TwoPointersAttemptedPerGame:   perGame(t.TwoPointersAttempted, gp),
		ThreePointersMadePerGame:      perGame(t.ThreePointersMade, gp),
		ThreePointersAttemptedPerGame: perGame(t.ThreePointersAttempted, gp),
		FreeThrowsMadePerGame:         perGame(t.FreeThrowsMade, gp),
		FreeThrowsAttemptedPerGame:    perGame(t.FreeThrowsAttempted, gp),
		OffensiveReboundsPerGame:      perGame(t.OffensiveRebounds, gp),
		DefensiveReboundsPerGame:      perGame(t.DefensiveRebounds, gp),
		ReboundsPerGame:               perGame(t.Rebounds, gp),
		AssistsPerGame:                perGame(t.Assists, gp),
		StealsPerGame:                 perGame(t.Steals, gp),
		BlocksPerGame:                 perGame(t.Blocks, gp),
		TurnoversPerGame:              perGame(t.Turnovers, gp),
		FoulsPerGame:                  perGame(t.Fouls, gp),
		PlusMinusPerGame:              perGame(t.PlusMinus, gp),

		FieldGoalPercentage:  percentage(t.FieldGoalsMade, t.FieldGoalsAttempted),
		TwoPointPercentage:   percentage(t.TwoPointersMade, t.TwoPointersAttempted),
		ThreePointPercentage: percentage(t.ThreePointersMade, t.ThreePointersAttempted),
		FreeThrowPercentage:  percentage(t.FreeThrowsMade, t.FreeThrowsAttempted),
	}
}

// TotalsBySubject groups a mixed record collection by subject and sums each group.
// Output is ordered by subject id.
func TotalsBySubject[R boxscores.Record](records []R) []TotalLine {
	groups := groupBySubject(records)
	out := make([]TotalLine, 0, len(groups))
	for _, subject := range sortedKeys(groups) {
		out = append(out, ComputeTotals(groups[subject]))
	}
	return out
}

// AveragesBySubject groups a mixed record collection by subject and averages each group.
// Output is ordered by subject id.
func AveragesBySubject[R boxscores.Record](records []R) []RateLine {
	totals := TotalsBySubject(records)
	out := make([]RateLine, 0, len(totals))
	for _, t := range totals {
		out = append(out, t.Averages())
	}
	return out
}

func (t *TotalLine) add(s boxscores.StatLine) {
	t.Minutes += boxscores.Value(s.Minutes)
	t.Points += boxscores.Value(s.Points)
	t.FieldGoalsMade += boxscores.Value(s.FieldGoalsMade)
	t.FieldGoalsAttempted += boxscores.Value(s.FieldGoalsAttempted)
	t.TwoPointersMade += boxscores.Value(s.TwoPointersMade)
	t.TwoPointersAttempted += boxscores.Value(s.TwoPointersAttempted)
	t.ThreePointersMade += boxscores.Value(s.ThreePointersMade)
	t.ThreePointersAttempted += boxscores.Value(s.ThreePointersAttempted)
	t.FreeThrowsMade += boxscores.Value(s.FreeThrowsMade)
	t.FreeThrowsAttempted += boxscores.Value(s.FreeThrowsAttempted)
	t.OffensiveRebounds += boxscores.Value(s.OffensiveRebounds)
	t.DefensiveRebounds += boxscores.Value(s.DefensiveRebounds)
	t.Rebounds += boxscores.Value(s.Rebounds)
	t.Assists += boxscores.Value(s.Assists)
	t.Steals += boxscores.Value(s.Steals)
	t.Blocks += boxscores.Value(s.Blocks)
	t.Turnovers += boxscores.Value(s.Turnovers)
	t.Fouls += boxscores.Value(s.Fouls)
	t.PlusMinus += boxscores.Value(s.PlusMinus)
}

func percentage(made, attempted int) float64 {
	if attempted > 0 {
		return float64(made) / float64(attempted)
	}
	return 0
}

func perGame(sum, games int) float64 {
	if games > 0 {
		return float64(sum) / float64(games)
	}
	return 0
}

func groupBySubject[R boxscores.Record](records []R) map[string][]R {
	groups := make(map[string][]R)
	for _, rec := range records {
		groups[rec.Subject()] = append(groups[rec.Subject()], rec)
	}
	return groups
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
