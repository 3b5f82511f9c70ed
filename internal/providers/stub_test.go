package providers

import (
	"context"
	"errors"
	"sync"

	"github.com/preston-bernstein/nba-ratings-service/internal/domain/oncourt"
)

// scriptedProvider returns errs in order and then succeeds.
type scriptedProvider struct {
	mu    sync.Mutex
	errs  []error
	calls int
}

func (p *scriptedProvider) FetchOnCourt(_ context.Context, season, teamCode string) (oncourt.Dataset, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.calls <= len(p.errs) {
		return oncourt.Dataset{}, p.errs[p.calls-1]
	}
	return oncourt.Dataset{
		Season:   season,
		TeamCode: teamCode,
		Entries:  []oncourt.Entry{{PlayerID: "P1", PlayerName: "JAMES, MIKE", GamesPlayed: 10}},
	}, nil
}

func (p *scriptedProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func failing(n int) *scriptedProvider {
	errs := make([]error, n)
	for i := range errs {
		errs[i] = errors.New("boom")
	}
	return &scriptedProvider{errs: errs}
}
