package testutil

import (
	"github.com/preston-bernstein/league-stats-service/internal/app/league"
	"github.com/preston-bernstein/league-stats-service/internal/domain"
	"github.com/preston-bernstein/league-stats-service/internal/store"
)

// NewServiceWithSeason builds a league service backed by an in-memory store preloaded with
// season. An empty season leaves the store unloaded.
func NewServiceWithSeason(season domain.Season) (*league.Service, *store.MemoryStore) {
	ms := store.NewMemoryStore()
	if !season.IsEmpty() {
		ms.SetSeason(season)
	}
	return league.NewService(ms, nil, nil), ms
}
