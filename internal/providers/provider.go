package providers

import (
	"context"

	"github.com/preston-bernstein/nba-ratings-service/internal/domain/oncourt"
)

// OnCourtProvider fetches team efficiency accumulated while each player was on court.
// The season is an upstream season code (e.g. E2024); teamCode is the upstream team code.
type OnCourtProvider interface {
	FetchOnCourt(ctx context.Context, season, teamCode string) (oncourt.Dataset, error)
}

// ProviderFunc adapts a function to OnCourtProvider.
type ProviderFunc func(ctx context.Context, season, teamCode string) (oncourt.Dataset, error)

// FetchOnCourt calls f.
func (f ProviderFunc) FetchOnCourt(ctx context.Context, season, teamCode string) (oncourt.Dataset, error) {
	return f(ctx, season, teamCode)
}
