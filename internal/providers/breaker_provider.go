package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/preston-bernstein/nba-ratings-service/internal/domain/oncourt"
)

const (
	breakerMinRequests  = 3
	breakerFailureRatio = 0.6
	defaultBreakerOpen  = 30 * time.Second
)

// breakerProvider short-circuits calls while the upstream keeps failing.
type breakerProvider struct {
	next    OnCourtProvider
	breaker *gobreaker.CircuitBreaker
}

// NewCircuitBreakerProvider trips after at least three requests with a 60% failure ratio
// and stays open for openTimeout before probing again.
func NewCircuitBreakerProvider(next OnCourtProvider, name string, openTimeout time.Duration, logger *slog.Logger) OnCourtProvider {
	if openTimeout <= 0 {
		openTimeout = defaultBreakerOpen
	}
	if name == "" {
		name = "provider"
	}
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < breakerMinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= breakerFailureRatio
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logWithProvider(context.Background(), logger, slog.LevelWarn, name, "circuit breaker state changed",
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}
	return &breakerProvider{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func (p *breakerProvider) FetchOnCourt(ctx context.Context, season, teamCode string) (oncourt.Dataset, error) {
	if p.next == nil {
		return oncourt.Dataset{}, ErrProviderUnavailable
	}
	out, err := p.breaker.Execute(func() (interface{}, error) {
		return p.next.FetchOnCourt(ctx, season, teamCode)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return oncourt.Dataset{}, errors.Join(ErrProviderUnavailable, err)
	}
	if err != nil {
		return oncourt.Dataset{}, err
	}
	ds, _ := out.(oncourt.Dataset)
	return ds, nil
}

// State reports the current breaker state.
func (p *breakerProvider) State() gobreaker.State {
	return p.breaker.State()
}
