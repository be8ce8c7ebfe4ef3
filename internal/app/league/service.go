// Package league answers stats questions about the currently loaded season.
// It reads the season from a Store and runs the stats engine on every call.
package league

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/preston-bernstein/league-stats-service/internal/domain"
	"github.com/preston-bernstein/league-stats-service/internal/domain/boxscores"
	"github.com/preston-bernstein/league-stats-service/internal/domain/players"
	"github.com/preston-bernstein/league-stats-service/internal/domain/teams"
	"github.com/preston-bernstein/league-stats-service/internal/metrics"
	"github.com/preston-bernstein/league-stats-service/internal/snapshots"
	"github.com/preston-bernstein/league-stats-service/internal/stats"
)

var (
	ErrNoSeason       = errors.New("season not loaded")
	ErrTeamNotFound   = errors.New("team not found")
	ErrPlayerNotFound = errors.New("player not found")
)

// Store defines the read side of the season store.
type Store interface {
	Season() domain.Season
	GetTeam(id string) (teams.Team, bool)
	GetPlayer(id string) (players.Player, bool)
	Loaded() (time.Time, uint64)
}

// Service coordinates stats computations over the stored season.
type Service struct {
	store   Store
	metrics *metrics.Recorder
	logger  *slog.Logger
	now     func() time.Time
}

// NewService constructs a Service with the provided Store.
func NewService(store Store, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	return &Service{
		store:   store,
		metrics: recorder,
		logger:  logger,
		now:     time.Now,
	}
}

// SeasonInfo describes the loaded season.
type SeasonInfo struct {
	Name     string        `json:"name"`
	LoadedAt time.Time     `json:"loadedAt"`
	Version  uint64        `json:"version"`
	Counts   domain.Counts `json:"counts"`
}

// Info reports what is currently loaded.
func (s *Service) Info() (SeasonInfo, error) {
	season, err := s.season()
	if err != nil {
		return SeasonInfo{}, err
	}
	loadedAt, version := s.store.Loaded()
	return SeasonInfo{
		Name:     season.Name,
		LoadedAt: loadedAt,
		Version:  version,
		Counts:   season.Counts(),
	}, nil
}

// Standings ranks every team by its record in qualifying games.
func (s *Service) Standings(ctx context.Context) ([]stats.TeamStanding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	season, err := s.season()
	if err != nil {
		return nil, err
	}
	defer s.timed(metrics.KindStandings, s.now())
	return stats.ComputeStandings(season.Teams, season.Games), nil
}

// StandingsSnapshot builds the persisted form of the current standings for date.
func (s *Service) StandingsSnapshot(ctx context.Context, date string) (snapshots.StandingsSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return snapshots.StandingsSnapshot{}, err
	}
	season, err := s.season()
	if err != nil {
		return snapshots.StandingsSnapshot{}, err
	}
	defer s.timed(metrics.KindStandings, s.now())
	return snapshots.StandingsSnapshot{
		Date:        date,
		Season:      season.Name,
		GeneratedAt: s.now().UTC(),
		Standings:   stats.ComputeStandings(season.Teams, season.Games),
	}, nil
}

// TeamSplits returns home/away, win/loss and monthly averages for a team.
func (s *Service) TeamSplits(ctx context.Context, idOrName string) (stats.Splits, error) {
	if err := ctx.Err(); err != nil {
		return stats.Splits{}, err
	}
	season, team, err := s.teamSeason(idOrName)
	if err != nil {
		return stats.Splits{}, err
	}
	defer s.timed(metrics.KindSplits, s.now())
	return stats.ComputeSplits(team.ID, season.TeamStats, season.Games), nil
}

// TeamAverages returns a team's per-game averages. last > 0 limits the line to the team's
// most recent games.
func (s *Service) TeamAverages(ctx context.Context, idOrName string, last int) (stats.RateLine, error) {
	if err := ctx.Err(); err != nil {
		return stats.RateLine{}, err
	}
	season, team, err := s.teamSeason(idOrName)
	if err != nil {
		return stats.RateLine{}, err
	}
	return averages(s, team.ID, teamRecords(season, team.ID), season, last), nil
}

// TeamTotals returns a team's season totals.
func (s *Service) TeamTotals(ctx context.Context, idOrName string) (stats.TotalLine, error) {
	if err := ctx.Err(); err != nil {
		return stats.TotalLine{}, err
	}
	season, team, err := s.teamSeason(idOrName)
	if err != nil {
		return stats.TotalLine{}, err
	}
	return totals(s, team.ID, teamRecords(season, team.ID)), nil
}

// PlayerAverages returns a player's per-game averages. last > 0 limits the line to the
// player's most recent games.
func (s *Service) PlayerAverages(ctx context.Context, playerID string, last int) (stats.RateLine, error) {
	if err := ctx.Err(); err != nil {
		return stats.RateLine{}, err
	}
	season, records, err := s.playerSeason(playerID)
	if err != nil {
		return stats.RateLine{}, err
	}
	return averages(s, playerID, records, season, last), nil
}

// PlayerTotals returns a player's season totals.
func (s *Service) PlayerTotals(ctx context.Context, playerID string) (stats.TotalLine, error) {
	if err := ctx.Err(); err != nil {
		return stats.TotalLine{}, err
	}
	_, records, err := s.playerSeason(playerID)
	if err != nil {
		return stats.TotalLine{}, err
	}
	return totals(s, playerID, records), nil
}

func (s *Service) season() (domain.Season, error) {
	if s == nil || s.store == nil {
		return domain.Season{}, ErrNoSeason
	}
	if _, version := s.store.Loaded(); version == 0 {
		return domain.Season{}, ErrNoSeason
	}
	return s.store.Season(), nil
}

func (s *Service) teamSeason(idOrName string) (domain.Season, teams.Team, error) {
	season, err := s.season()
	if err != nil {
		return domain.Season{}, teams.Team{}, err
	}
	team, err := s.resolveTeam(season, idOrName)
	return season, team, err
}

func (s *Service) playerSeason(playerID string) (domain.Season, []boxscores.PlayerGameStat, error) {
	season, err := s.season()
	if err != nil {
		return domain.Season{}, nil, err
	}
	var records []boxscores.PlayerGameStat
	for _, rec := range season.PlayerStats {
		if rec.PlayerID == playerID {
			records = append(records, rec)
		}
	}
	if _, ok := s.store.GetPlayer(playerID); !ok && len(records) == 0 {
		return domain.Season{}, nil, ErrPlayerNotFound
	}
	return season, records, nil
}

func teamRecords(season domain.Season, teamID string) []boxscores.TeamGameStat {
	var out []boxscores.TeamGameStat
	for _, rec := range season.TeamStats {
		if rec.TeamID == teamID {
			out = append(out, rec)
		}
	}
	return out
}

// averages runs the rate calculator over one subject's records. Subjects with no records
// still get a zero line carrying their id.
func averages[R boxscores.Record](s *Service, subjectID string, records []R, season domain.Season, last int) stats.RateLine {
	var line stats.RateLine
	if last > 0 {
		defer s.timed(metrics.KindRecent, s.now())
		if recent := stats.ComputeRecent(records, season.Games, last); recent != nil {
			line = *recent
		}
	} else {
		defer s.timed(metrics.KindAverages, s.now())
		line = stats.ComputeAverages(records)
	}
	line.SubjectID = subjectID
	return line
}

func totals[R boxscores.Record](s *Service, subjectID string, records []R) stats.TotalLine {
	defer s.timed(metrics.KindTotals, s.now())
	line := stats.ComputeTotals(records)
	line.SubjectID = subjectID
	return line
}

func (s *Service) timed(kind string, start time.Time) {
	s.metrics.RecordComputation(kind, s.now().Sub(start))
}
