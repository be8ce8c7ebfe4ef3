package league

import (
	"context"
	"testing"

	"github.com/preston-bernstein/league-stats-service/internal/domain"
	"github.com/preston-bernstein/league-stats-service/internal/metrics"
	"github.com/preston-bernstein/league-stats-service/internal/providers/fixture"
	"github.com/preston-bernstein/league-stats-service/internal/store"
)

func fixtureSeason(t *testing.T) domain.Season {
	t.Helper()
	season, err := fixture.New().FetchSeason(context.Background())
	if err != nil {
		t.Fatalf("fixture season: %v", err)
	}
	return season
}

func newLoadedService(t *testing.T, season domain.Season) (*Service, *metrics.Recorder) {
	t.Helper()
	ms := store.NewMemoryStore()
	ms.SetSeason(season)
	rec := metrics.NewRecorder()
	return NewService(ms, rec, nil), rec
}

func intPtr(v int) *int { return &v }
