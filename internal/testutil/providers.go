package testutil

import (
	"context"

	"github.com/preston-bernstein/league-stats-service/internal/domain"
	"github.com/preston-bernstein/league-stats-service/internal/providers"
)

// GoodProvider returns the provided season with no error.
type GoodProvider struct {
	Season domain.Season
}

func (p GoodProvider) FetchSeason(ctx context.Context) (domain.Season, error) {
	_ = ctx
	return p.Season, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchSeason(ctx context.Context) (domain.Season, error) {
	return domain.Season{}, p.Err
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchSeason(ctx context.Context) (domain.Season, error) {
	return domain.Season{}, providers.ErrProviderUnavailable
}
