package testutil

import (
	"context"

	"github.com/preston-bernstein/nba-ratings-service/internal/domain/oncourt"
	"github.com/preston-bernstein/nba-ratings-service/internal/providers"
)

// GoodProvider returns the provided dataset with no error.
type GoodProvider struct {
	Dataset oncourt.Dataset
}

func (p GoodProvider) FetchOnCourt(ctx context.Context, season, teamCode string) (oncourt.Dataset, error) {
	_ = ctx
	_ = season
	_ = teamCode
	return p.Dataset, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchOnCourt(ctx context.Context, season, teamCode string) (oncourt.Dataset, error) {
	return oncourt.Dataset{}, p.Err
}

// EmptyProvider returns a dataset with no entries, no error.
type EmptyProvider struct{}

func (EmptyProvider) FetchOnCourt(ctx context.Context, season, teamCode string) (oncourt.Dataset, error) {
	return oncourt.Dataset{Season: season, TeamCode: teamCode}, nil
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchOnCourt(ctx context.Context, season, teamCode string) (oncourt.Dataset, error) {
	return oncourt.Dataset{}, providers.ErrProviderUnavailable
}

// NotifyingProvider returns the dataset and closes the notify channel on first fetch.
type NotifyingProvider struct {
	Dataset oncourt.Dataset
	Notify  chan struct{}
}

func (p *NotifyingProvider) FetchOnCourt(ctx context.Context, season, teamCode string) (oncourt.Dataset, error) {
	_ = ctx
	if p.Notify != nil {
		select {
		case <-p.Notify:
		default:
			close(p.Notify)
		}
	}
	return p.Dataset, nil
}
