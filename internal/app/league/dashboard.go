package league

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/league-stats-service/internal/metrics"
	"github.com/preston-bernstein/league-stats-service/internal/stats"
)

// DashboardStats are the player boards shown on the dashboard, in display order.
var DashboardStats = []stats.StatKey{stats.StatPoints, stats.StatRebounds, stats.StatAssists}

// Dashboard bundles the standings with the headline player boards.
type Dashboard struct {
	Season      string               `json:"season"`
	GeneratedAt time.Time            `json:"generatedAt"`
	Standings   []stats.TeamStanding `json:"standings"`
	Leaders     []Board              `json:"leaders"`
}

// Dashboard computes the standings and each headline board concurrently over one season
// snapshot.
func (s *Service) Dashboard(ctx context.Context, n int) (Dashboard, error) {
	if err := ctx.Err(); err != nil {
		return Dashboard{}, err
	}
	season, err := s.season()
	if err != nil {
		return Dashboard{}, err
	}
	defer s.timed(metrics.KindDashboard, s.now())
	if n < 0 {
		n = 0
	}

	out := Dashboard{
		Season:      season.Name,
		GeneratedAt: s.now().UTC(),
		Leaders:     make([]Board, len(DashboardStats)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		out.Standings = stats.ComputeStandings(season.Teams, season.Games)
		return nil
	})
	for i, key := range DashboardStats {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			q, err := normalize(Query{Stat: key, Mode: stats.ModeAverage, Subject: SubjectPlayer, N: n})
			if err != nil {
				return err
			}
			out.Leaders[i] = s.board(season, q)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}
	return out, nil
}
