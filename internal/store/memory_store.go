package store

import (
	"sync"
	"time"

	"github.com/preston-bernstein/league-stats-service/internal/domain"
	"github.com/preston-bernstein/league-stats-service/internal/domain/players"
	"github.com/preston-bernstein/league-stats-service/internal/domain/teams"
)

// MemoryStore keeps a thread-safe snapshot of the current season in memory.
// Readers get the season by value; callers must not mutate the slices they receive.
type MemoryStore struct {
	mu       sync.RWMutex
	season   domain.Season
	teams    map[string]teams.Team
	players  map[string]players.Player
	loadedAt time.Time
	version  uint64
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		teams:   make(map[string]teams.Team),
		players: make(map[string]players.Player),
	}
}

// Season returns the current season snapshot.
func (s *MemoryStore) Season() domain.Season {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.season
}

// SetSeason replaces the existing season with a new snapshot.
func (s *MemoryStore) SetSeason(season domain.Season) {
	teamIdx := make(map[string]teams.Team, len(season.Teams))
	for _, t := range season.Teams {
		if _, dup := teamIdx[t.ID]; !dup {
			teamIdx[t.ID] = t
		}
	}
	playerIdx := make(map[string]players.Player, len(season.Players))
	for _, p := range season.Players {
		if _, dup := playerIdx[p.ID]; !dup {
			playerIdx[p.ID] = p
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.season = season
	s.teams = teamIdx
	s.players = playerIdx
	s.loadedAt = time.Now().UTC()
	s.version++
}

// GetTeam retrieves a team by ID.
func (s *MemoryStore) GetTeam(id string) (teams.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teams[id]
	return t, ok
}

// GetPlayer retrieves a player by ID.
func (s *MemoryStore) GetPlayer(id string) (players.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[id]
	return p, ok
}

// Loaded reports when the current season was stored and how many times it has been replaced.
// A zero version means nothing has been loaded yet.
func (s *MemoryStore) Loaded() (time.Time, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt, s.version
}
