package server

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/league-stats-service/internal/config"
	"github.com/preston-bernstein/league-stats-service/internal/metrics"
	"github.com/preston-bernstein/league-stats-service/internal/providers"
)

// providerFactory assembles the provider with the shared retry wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(ctx context.Context, cfg config.Config) (providers.SeasonProvider, error) {
	base, err := selectProvider(ctx, cfg, f.logger)
	if err != nil {
		return nil, err
	}
	return f.wrap(cfg, base), nil
}

func (f providerFactory) wrap(cfg config.Config, base providers.SeasonProvider) providers.SeasonProvider {
	return providers.NewRetryingProvider(base, f.logger, f.metrics,
		normalizeProviderName(cfg.Provider, base),
		cfg.Season.MaxRetries, cfg.Season.RetryBackoff)
}
