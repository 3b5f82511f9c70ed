package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/preston-bernstein/nba-ratings-service/internal/cache"
	"github.com/preston-bernstein/nba-ratings-service/internal/domain/oncourt"
	"github.com/preston-bernstein/nba-ratings-service/internal/logging"
	"github.com/preston-bernstein/nba-ratings-service/internal/metrics"
)

const cachingName = "cache"

// cachingProvider serves datasets from a Cache and fills it from the inner provider.
type cachingProvider struct {
	inner    OnCourtProvider
	cache    cache.Cache
	ttl      time.Duration
	logger   *slog.Logger
	recorder *metrics.Recorder
	group    singleflight.Group
}

// NewCachingProvider wraps inner with a read-through cache. Cache failures degrade to a direct fetch.
func NewCachingProvider(inner OnCourtProvider, c cache.Cache, ttl time.Duration, logger *slog.Logger, recorder *metrics.Recorder) OnCourtProvider {
	if c == nil {
		return inner
	}
	return &cachingProvider{
		inner:    inner,
		cache:    c,
		ttl:      ttl,
		logger:   logger,
		recorder: recorder,
	}
}

// CacheKey is the cache key for a season/team dataset. Team codes are case-insensitive.
func CacheKey(season, teamCode string) string {
	return fmt.Sprintf("oncourt:%s:%s", strings.TrimSpace(season), strings.ToUpper(strings.TrimSpace(teamCode)))
}

func (p *cachingProvider) FetchOnCourt(ctx context.Context, season, teamCode string) (oncourt.Dataset, error) {
	key := CacheKey(season, teamCode)

	if ds, ok := p.lookup(ctx, key); ok {
		p.recorder.RecordCacheLookup(true)
		return ds, nil
	}
	p.recorder.RecordCacheLookup(false)

	if p.inner == nil {
		return oncourt.Dataset{}, ErrProviderUnavailable
	}

	// Concurrent misses on one key share a single upstream fetch. The fetch outlives
	// any one caller's cancellation; each caller still stops waiting on its own ctx.
	ch := p.group.DoChan(key, func() (any, error) {
		return p.fill(context.WithoutCancel(ctx), key, season, teamCode)
	})
	select {
	case <-ctx.Done():
		return oncourt.Dataset{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return oncourt.Dataset{}, res.Err
		}
		return res.Val.(oncourt.Dataset), nil
	}
}

func (p *cachingProvider) fill(ctx context.Context, key, season, teamCode string) (oncourt.Dataset, error) {
	ds, err := p.inner.FetchOnCourt(ctx, season, teamCode)
	if err != nil {
		return oncourt.Dataset{}, err
	}

	payload, err := json.Marshal(ds)
	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, cachingName, "cache encode failed",
			slog.String(logging.FieldCacheKey, key), "err", err)
		return ds, nil
	}
	if err := p.cache.Set(ctx, key, payload, p.ttl); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, cachingName, "cache write failed",
			slog.String(logging.FieldCacheKey, key), "err", err)
	}
	return ds, nil
}

func (p *cachingProvider) lookup(ctx context.Context, key string) (oncourt.Dataset, bool) {
	payload, err := p.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			logWithProvider(ctx, p.logger, slog.LevelWarn, cachingName, "cache read failed",
				slog.String(logging.FieldCacheKey, key), "err", err)
		}
		return oncourt.Dataset{}, false
	}

	var ds oncourt.Dataset
	if err := json.Unmarshal(payload, &ds); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, cachingName, "cache entry corrupt",
			slog.String(logging.FieldCacheKey, key), "err", err)
		_ = p.cache.Delete(ctx, key)
		return oncourt.Dataset{}, false
	}
	return ds, true
}
