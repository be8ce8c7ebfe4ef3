package games

import "time"

// Game is one scheduled or played matchup between two league teams.
type Game struct {
	ID          string    `json:"id"`
	HomeTeamID  string    `json:"homeTeamId"`
	AwayTeamID  string    `json:"awayTeamId"`
	HomeScore   int       `json:"homeScore"`
	AwayScore   int       `json:"awayScore"`
	IsCompleted bool      `json:"isCompleted"`
	GameDate    time.Time `json:"gameDate"`
}

// IsScored reports whether both scores have been entered.
// A score of 0 means "not yet entered", so a shutout or a 0-0 final cannot be represented.
// That rule is kept here and nowhere else.
func IsScored(g Game) bool {
	return g.HomeScore > 0 && g.AwayScore > 0
}

// Qualifies reports whether the game counts toward standings.
func Qualifies(g Game) bool {
	return g.IsCompleted && IsScored(g)
}

// Involves reports whether the team played in the game.
func (g Game) Involves(teamID string) bool {
	return g.HomeTeamID == teamID || g.AwayTeamID == teamID
}

// ScoresFor returns the team's score and its opponent's score, viewed from teamID.
// Teams other than the home team are treated as the away side.
func (g Game) ScoresFor(teamID string) (own, opponent int) {
	if g.HomeTeamID == teamID {
		return g.HomeScore, g.AwayScore
	}
	return g.AwayScore, g.HomeScore
}

// Index maps games by ID. Later duplicates win.
func Index(items []Game) map[string]Game {
	out := make(map[string]Game, len(items))
	for _, g := range items {
		out[g.ID] = g
	}
	return out
}
