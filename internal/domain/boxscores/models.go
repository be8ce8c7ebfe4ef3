// Package boxscores holds per-game stat lines for players and teams.
//
// Every counting field is nullable. A nil field means the stat was not recorded for that
// game; it sums as zero but is distinct from a recorded zero.
package boxscores

// StatLine is one subject's box-score line for a single game.
type StatLine struct {
	Minutes                *int `json:"minutes,omitempty"`
	Points                 *int `json:"points,omitempty"`
	FieldGoalsMade         *int `json:"fieldGoalsMade,omitempty"`
	FieldGoalsAttempted    *int `json:"fieldGoalsAttempted,omitempty"`
	TwoPointersMade        *int `json:"twoPointersMade,omitempty"`
	TwoPointersAttempted   *int `json:"twoPointersAttempted,omitempty"`
	ThreePointersMade      *int `json:"threePointersMade,omitempty"`
	ThreePointersAttempted *int `json:"threePointersAttempted,omitempty"`
	FreeThrowsMade         *int `json:"freeThrowsMade,omitempty"`
	FreeThrowsAttempted    *int `json:"freeThrowsAttempted,omitempty"`
	OffensiveRebounds      *int `json:"offensiveRebounds,omitempty"`
	DefensiveRebounds      *int `json:"defensiveRebounds,omitempty"`
	Rebounds               *int `json:"rebounds,omitempty"`
	Assists                *int `json:"assists,omitempty"`
	Steals                 *int `json:"steals,omitempty"`
	Blocks                 *int `json:"blocks,omitempty"`
	Turnovers              *int `json:"turnovers,omitempty"`
	// Fouls are personal fouls on a player line and team fouls on a team line.
	Fouls     *int `json:"fouls,omitempty"`
	PlusMinus *int `json:"plusMinus,omitempty"`
}

// Record is a stat line attributed to one subject (player or team) in one game.
type Record interface {
	Subject() string
	Game() (id string, ok bool)
	Stats() StatLine
}

// PlayerGameStat is a player's line for one game.
type PlayerGameStat struct {
	ID       string  `json:"id"`
	PlayerID string  `json:"playerId"`
	TeamID   string  `json:"teamId,omitempty"`
	GameID   *string `json:"gameId"`
	StatLine
}

func (s PlayerGameStat) Subject() string { return s.PlayerID }
func (s PlayerGameStat) Game() (string, bool) {
	return gameRef(s.GameID)
}
func (s PlayerGameStat) Stats() StatLine { return s.StatLine }

// TeamGameStat is a team's line for one game.
type TeamGameStat struct {
	ID     string  `json:"id"`
	TeamID string  `json:"teamId"`
	GameID *string `json:"gameId"`
	StatLine
}

func (s TeamGameStat) Subject() string { return s.TeamID }
func (s TeamGameStat) Game() (string, bool) {
	return gameRef(s.GameID)
}
func (s TeamGameStat) Stats() StatLine { return s.StatLine }

func gameRef(id *string) (string, bool) {
	if id == nil || *id == "" {
		return "", false
	}
	return *id, true
}

// Int returns a pointer to v. Handy for building stat lines in fixtures.
func Int(v int) *int {
	return &v
}

// Value dereferences a nullable stat, treating nil as zero.
func Value(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// GameRef returns a pointer to id, or nil for an empty id.
func GameRef(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
