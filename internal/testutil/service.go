package testutil

import (
	"time"

	appratings "github.com/preston-bernstein/nba-ratings-service/internal/app/ratings"
	"github.com/preston-bernstein/nba-ratings-service/internal/providers"
	engine "github.com/preston-bernstein/nba-ratings-service/internal/ratings"
)

// NewRatingsService builds a ratings service that blends against provider with default weights.
// A nil provider yields a service whose blended ratings always fall back to the base rating.
func NewRatingsService(provider providers.OnCourtProvider) *appratings.Service {
	if provider == nil {
		return appratings.NewService(nil, nil, nil, 0)
	}
	blender := engine.NewBlender(provider, engine.DefaultBlendWeights(), nil, nil)
	return appratings.NewService(blender, nil, nil, 0)
}

// NewRatingsServiceAt is NewRatingsService with a fixed clock for season resolution.
func NewRatingsServiceAt(provider providers.OnCourtProvider, now func() time.Time) *appratings.Service {
	return NewRatingsService(provider).WithClock(now)
}
