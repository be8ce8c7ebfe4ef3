package sqlite

import (
	"database/sql"

	"github.com/preston-bernstein/league-stats-service/internal/domain/boxscores"
)

// statColumns lists the nullable stat columns shared by both stat tables, in scan order.
const statColumns = `minutes, points, field_goals_made, field_goals_attempted,
	two_pointers_made, two_pointers_attempted, three_pointers_made, three_pointers_attempted,
	free_throws_made, free_throws_attempted, offensive_rebounds, defensive_rebounds, rebounds,
	assists, steals, blocks, turnovers, fouls, plus_minus`

const statPlaceholders = `?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?`

// statFields returns pointers to every field of s, in statColumns order.
func statFields(s *boxscores.StatLine) []**int {
	return []**int{
		&s.Minutes, &s.Points, &s.FieldGoalsMade, &s.FieldGoalsAttempted,
		&s.TwoPointersMade, &s.TwoPointersAttempted, &s.ThreePointersMade, &s.ThreePointersAttempted,
		&s.FreeThrowsMade, &s.FreeThrowsAttempted, &s.OffensiveRebounds, &s.DefensiveRebounds, &s.Rebounds,
		&s.Assists, &s.Steals, &s.Blocks, &s.Turnovers, &s.Fouls, &s.PlusMinus,
	}
}

type statScanner struct {
	raw []sql.NullInt64
}

func newStatScanner() *statScanner {
	return &statScanner{raw: make([]sql.NullInt64, 19)}
}

func (s *statScanner) dest() []any {
	out := make([]any, len(s.raw))
	for i := range s.raw {
		out[i] = &s.raw[i]
	}
	return out
}

// line converts the last scanned row, keeping NULL distinct from 0.
func (s *statScanner) line() boxscores.StatLine {
	var line boxscores.StatLine
	for i, field := range statFields(&line) {
		if s.raw[i].Valid {
			*field = boxscores.Int(int(s.raw[i].Int64))
		}
	}
	return line
}

func statArgs(line boxscores.StatLine) []any {
	fields := statFields(&line)
	out := make([]any, len(fields))
	for i, field := range fields {
		if *field == nil {
			out[i] = nil
		} else {
			out[i] = int64(**field)
		}
	}
	return out
}

func nullString(v *string) sql.NullString {
	if v == nil || *v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}
