package testutil

import (
	"context"
	"net/http"
	"sync"

	"github.com/preston-bernstein/nba-ratings-service/internal/metrics"
)

// TelemetrySetup stands in for metrics.Setup, handing out an in-memory recorder and recording what it was asked for.
type TelemetrySetup struct {
	Recorder *metrics.Recorder
	Err      error

	mu        sync.Mutex
	config    metrics.TelemetryConfig
	shutdowns int
}

// Setup matches the metrics.Setup signature.
func (s *TelemetrySetup) Setup(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
	if s.Err != nil {
		return nil, nil, nil, s.Err
	}
	if s.Recorder == nil {
		s.Recorder = metrics.NewRecorder()
	}
	shutdown := func(context.Context) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.shutdowns++
		return nil
	}
	return s.Recorder, http.NewServeMux(), shutdown, nil
}

// Config returns the telemetry config passed to the last Setup call.
func (s *TelemetrySetup) Config() metrics.TelemetryConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

// Shutdowns counts calls to the returned shutdown func.
func (s *TelemetrySetup) Shutdowns() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdowns
}
