package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nba-ratings-service/internal/domain/oncourt"
)

// StubProvider is a test double for providers.OnCourtProvider.
type StubProvider struct {
	Dataset oncourt.Dataset
	Calls   atomic.Int32
	Notify  chan struct{}

	mu      sync.Mutex
	err     error
	seasons []string
	teams   []string
}

// FetchOnCourt returns the configured dataset and error while tracking calls.
func (s *StubProvider) FetchOnCourt(ctx context.Context, season, teamCode string) (oncourt.Dataset, error) {
	_ = ctx
	s.mu.Lock()
	s.seasons = append(s.seasons, season)
	s.teams = append(s.teams, teamCode)
	err := s.err
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.mu.Unlock()
	s.Calls.Add(1)

	ds := s.Dataset
	if ds.Season == "" {
		ds.Season = season
	}
	if ds.TeamCode == "" {
		ds.TeamCode = teamCode
	}
	return ds, err
}

// SetErr changes the error returned by subsequent fetches.
func (s *StubProvider) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Seasons returns the season codes requested so far.
func (s *StubProvider) Seasons() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.seasons...)
}

// Teams returns the team codes requested so far.
func (s *StubProvider) Teams() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.teams...)
}

// StubRecorder captures blend fallback reasons.
type StubRecorder struct {
	mu      sync.Mutex
	Reasons []string
}

// RecordBlendFallback records the reason.
func (r *StubRecorder) RecordBlendFallback(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Reasons = append(r.Reasons, reason)
}
