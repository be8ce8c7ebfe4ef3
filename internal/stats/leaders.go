package stats

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// DefaultLeaderCount is the board size used when callers pass n <= 0.
const DefaultLeaderCount = 5

// Line is a per-subject result a leaderboard can rank.
type Line interface {
	Subject() string
	Games() int
	Value(StatKey) float64
}

func (l RateLine) Subject() string  { return l.SubjectID }
func (l RateLine) Games() int       { return l.GamesPlayed }
func (l TotalLine) Subject() string { return l.SubjectID }
func (l TotalLine) Games() int      { return l.GamesPlayed }

// Mode selects whether a board ranks per-game averages or season totals.
type Mode string

const (
	ModeAverage Mode = "average"
	ModeTotal   Mode = "total"
)

// ParseMode accepts "average"/"avg" and "total"/"totals". Empty defaults to average.
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "average", "avg", "averages":
		return ModeAverage, nil
	case "total", "totals":
		return ModeTotal, nil
	default:
		return "", fmt.Errorf("unknown leaderboard mode %q", raw)
	}
}

// DefaultMinGames is the games-played floor for a board of the given mode.
func DefaultMinGames(mode Mode) int {
	if mode == ModeTotal {
		return 0
	}
	return 1
}

// TopN returns the n best lines for key, highest first. Lines with fewer than minGamesPlayed
// games are dropped. Equal values are ordered by subject id. The input slice is not reordered.
func TopN[L Line](lines []L, key StatKey, n, minGamesPlayed int) []L {
	if n <= 0 {
		n = DefaultLeaderCount
	}
	eligible := make([]L, 0, len(lines))
	for _, line := range lines {
		if line.Games() >= minGamesPlayed {
			eligible = append(eligible, line)
		}
	}
	slices.SortStableFunc(eligible, func(a, b L) int {
		if c := cmp.Compare(b.Value(key), a.Value(key)); c != 0 {
			return c
		}
		return cmp.Compare(a.Subject(), b.Subject())
	})
	if len(eligible) > n {
		eligible = eligible[:n]
	}
	return eligible
}

// Leader is one ranked row of a board, flattened for presentation.
type Leader struct {
	Rank        int     `json:"rank"`
	SubjectID   string  `json:"subjectId"`
	GamesPlayed int     `json:"gamesPlayed"`
	Value       float64 `json:"value"`
}

// Rank flattens ranked lines into Leader rows. Rank is positional, starting at 1.
func Rank[L Line](lines []L, key StatKey) []Leader {
	out := make([]Leader, len(lines))
	for i, line := range lines {
		out[i] = Leader{
			Rank:        i + 1,
			SubjectID:   line.Subject(),
			GamesPlayed: line.Games(),
			Value:       line.Value(key),
		}
	}
	return out
}
