package server

import (
	"context"
	"io"
	"log/slog"

	"github.com/preston-bernstein/nba-ratings-service/internal/cache"
	"github.com/preston-bernstein/nba-ratings-service/internal/config"
	"github.com/preston-bernstein/nba-ratings-service/internal/logging"
	"github.com/preston-bernstein/nba-ratings-service/internal/metrics"
	"github.com/preston-bernstein/nba-ratings-service/internal/providers"
)

var newRedisCache = func(ctx context.Context, url string) (*cache.RedisCache, error) {
	return cache.NewRedisCache(ctx, url)
}

// providerFactory assembles the provider with shared wrappers (cache, retry, breaker, rate limit).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

// build selects the configured upstream and wraps it. The closer releases the cache backend and may be nil.
func (f providerFactory) build(cfg config.Config) (providers.OnCourtProvider, io.Closer) {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

// wrap layers, outermost first: cache, retry, circuit breaker, rate limit.
func (f providerFactory) wrap(cfg config.Config, base providers.OnCourtProvider) (providers.OnCourtProvider, io.Closer) {
	name := normalizeProviderName(cfg.Provider, base)
	limited := providers.NewRateLimitedProvider(base, cfg.OnCourt.RateInterval, f.logger)
	guarded := providers.NewCircuitBreakerProvider(limited, name, 0, f.logger)
	retrying := providers.NewRetryingProvider(guarded, f.logger, f.metrics, name, 0, 0)

	store, closer := f.buildCache(cfg.Cache)
	return providers.NewCachingProvider(retrying, store, cfg.Cache.TTL, f.logger, f.metrics), closer
}

// buildCache returns the configured backend, falling back to memory when Redis is unreachable.
func (f providerFactory) buildCache(cfg config.CacheConfig) (cache.Cache, io.Closer) {
	if cfg.Backend != config.CacheBackendRedis {
		return cache.NewMemoryCache(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()
	rc, err := newRedisCache(ctx, cfg.RedisURL)
	if err != nil {
		logging.Warn(ctx, f.logger, "redis cache unavailable, falling back to memory", err)
		return cache.NewMemoryCache(), nil
	}
	logging.Info(ctx, f.logger, "redis cache connected")
	return rc, rc
}
