package providers

import (
	"context"

	"github.com/preston-bernstein/league-stats-service/internal/domain"
)

// SeasonProvider loads a fully materialized season: teams, players, games and box scores.
// Implementations return a fresh value on every call; callers own the result.
type SeasonProvider interface {
	FetchSeason(ctx context.Context) (domain.Season, error)
}

// Closer is implemented by providers that hold resources (database handles, files).
type Closer interface {
	Close() error
}

// Close releases provider resources when the provider supports it.
func Close(p SeasonProvider) error {
	if c, ok := p.(Closer); ok {
		return c.Close()
	}
	return nil
}
