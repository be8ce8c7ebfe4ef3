package providers

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/league-stats-service/internal/domain"
)

type testProvider struct{}

func (t *testProvider) FetchSeason(ctx context.Context) (domain.Season, error) {
	_ = ctx
	return domain.Season{}, nil
}

type closingProvider struct {
	testProvider
	closed bool
}

func (c *closingProvider) Close() error {
	c.closed = true
	return errors.New("closed")
}

func TestSeasonProviderInterfaceImplemented(t *testing.T) {
	var _ SeasonProvider = (*testProvider)(nil)
}

func TestCloseUsesCloserWhenAvailable(t *testing.T) {
	if err := Close(&testProvider{}); err != nil {
		t.Fatalf("expected nil for non-closer, got %v", err)
	}
	cp := &closingProvider{}
	if err := Close(cp); err == nil || !cp.closed {
		t.Fatalf("expected Close to be forwarded")
	}
}
