package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/nba-ratings-service/internal/domain/oncourt"
	"github.com/preston-bernstein/nba-ratings-service/internal/logging"
)

const rateLimitedName = "rate-limited"

// rateLimitedProvider wraps an OnCourtProvider with a token bucket that allows one call per interval.
type rateLimitedProvider struct {
	next    OnCourtProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns an OnCourtProvider that limits calls to one per interval with a burst of one.
// Calls block until a token is available to avoid exceeding upstream quotas.
func NewRateLimitedProvider(next OnCourtProvider, interval time.Duration, logger *slog.Logger) OnCourtProvider {
	if interval <= 0 {
		interval = time.Second
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) FetchOnCourt(ctx context.Context, season, teamCode string) (oncourt.Dataset, error) {
	if p == nil || p.next == nil {
		if p != nil {
			logWithProvider(ctx, p.logger, slog.LevelWarn, rateLimitedName, "provider unavailable")
		}
		return oncourt.Dataset{}, ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, rateLimitedName, "rate-limited fetch canceled", "err", err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return oncourt.Dataset{}, ctxErr
		}
		return oncourt.Dataset{}, err
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, rateLimitedName, "rate-limited provider fetch",
		slog.String(logging.FieldSeason, season),
		slog.String(logging.FieldTeam, teamCode),
	)
	return p.next.FetchOnCourt(ctx, season, teamCode)
}
