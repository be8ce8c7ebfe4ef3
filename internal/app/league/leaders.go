package league

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/preston-bernstein/league-stats-service/internal/domain"
	"github.com/preston-bernstein/league-stats-service/internal/metrics"
	"github.com/preston-bernstein/league-stats-service/internal/stats"
)

var ErrInvalidQuery = errors.New("invalid leaderboard query")

// Subject selects whose lines a board ranks.
type Subject string

const (
	SubjectPlayer Subject = "player"
	SubjectTeam   Subject = "team"
)

// ParseSubject accepts "player(s)" and "team(s)". Empty defaults to player.
func ParseSubject(raw string) (Subject, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "player", "players":
		return SubjectPlayer, nil
	case "team", "teams":
		return SubjectTeam, nil
	default:
		return "", fmt.Errorf("%w: unknown subject %q", ErrInvalidQuery, raw)
	}
}

// Query describes one leaderboard. Zero N means the default board size; nil MinGames means
// the mode's default floor.
type Query struct {
	Stat     stats.StatKey
	Mode     stats.Mode
	Subject  Subject
	N        int
	MinGames *int
}

// Entry is a ranked row with the subject's display name.
type Entry struct {
	stats.Leader
	Name string `json:"name"`
}

// Board is a computed leaderboard.
type Board struct {
	Stat     stats.StatKey `json:"stat"`
	Mode     stats.Mode    `json:"mode"`
	Subject  Subject       `json:"subject"`
	MinGames int           `json:"minGames"`
	Leaders  []Entry       `json:"leaders"`
}

// Leaders ranks players or teams by one stat.
func (s *Service) Leaders(ctx context.Context, q Query) (Board, error) {
	if err := ctx.Err(); err != nil {
		return Board{}, err
	}
	q, err := normalize(q)
	if err != nil {
		return Board{}, err
	}
	season, err := s.season()
	if err != nil {
		return Board{}, err
	}
	defer s.timed(metrics.KindLeaders, s.now())
	return s.board(season, q), nil
}

func normalize(q Query) (Query, error) {
	if !q.Stat.Valid() {
		return q, fmt.Errorf("%w: %w", ErrInvalidQuery, stats.ErrUnknownStat)
	}
	if q.Mode == "" {
		q.Mode = stats.ModeAverage
	}
	if q.Mode != stats.ModeAverage && q.Mode != stats.ModeTotal {
		return q, fmt.Errorf("%w: unknown mode %q", ErrInvalidQuery, q.Mode)
	}
	if q.Subject == "" {
		q.Subject = SubjectPlayer
	}
	if q.Subject != SubjectPlayer && q.Subject != SubjectTeam {
		return q, fmt.Errorf("%w: unknown subject %q", ErrInvalidQuery, q.Subject)
	}
	if q.N < 0 {
		return q, fmt.Errorf("%w: n must not be negative", ErrInvalidQuery)
	}
	if q.N == 0 {
		q.N = stats.DefaultLeaderCount
	}
	if q.MinGames == nil {
		floor := stats.DefaultMinGames(q.Mode)
		q.MinGames = &floor
	}
	return q, nil
}

func (s *Service) board(season domain.Season, q Query) Board {
	var ranked []stats.Leader
	switch {
	case q.Subject == SubjectTeam && q.Mode == stats.ModeTotal:
		ranked = stats.Rank(stats.TopN(stats.TotalsBySubject(season.TeamStats), q.Stat, q.N, *q.MinGames), q.Stat)
	case q.Subject == SubjectTeam:
		ranked = stats.Rank(stats.TopN(stats.AveragesBySubject(season.TeamStats), q.Stat, q.N, *q.MinGames), q.Stat)
	case q.Mode == stats.ModeTotal:
		ranked = stats.Rank(stats.TopN(stats.TotalsBySubject(season.PlayerStats), q.Stat, q.N, *q.MinGames), q.Stat)
	default:
		ranked = stats.Rank(stats.TopN(stats.AveragesBySubject(season.PlayerStats), q.Stat, q.N, *q.MinGames), q.Stat)
	}

	entries := make([]Entry, len(ranked))
	for i, l := range ranked {
		entries[i] = Entry{Leader: l, Name: s.displayName(q.Subject, l.SubjectID)}
	}
	return Board{
		Stat:     q.Stat,
		Mode:     q.Mode,
		Subject:  q.Subject,
		MinGames: *q.MinGames,
		Leaders:  entries,
	}
}

func (s *Service) displayName(subject Subject, id string) string {
	if subject == SubjectTeam {
		if t, ok := s.store.GetTeam(id); ok {
			return t.Name
		}
		return id
	}
	if p, ok := s.store.GetPlayer(id); ok {
		return p.FullName()
	}
	return id
}
