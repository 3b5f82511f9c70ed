package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"

	appratings "github.com/preston-bernstein/nba-ratings-service/internal/app/ratings"
	"github.com/preston-bernstein/nba-ratings-service/internal/domain/boxscore"
	"github.com/preston-bernstein/nba-ratings-service/internal/poller"
	engine "github.com/preston-bernstein/nba-ratings-service/internal/ratings"
)

// RatingsService is the rating surface the handlers depend on.
type RatingsService interface {
	Rate(player boxscore.PlayerLine, team boxscore.TeamLine) engine.RatingResult
	RateBlended(ctx context.Context, player boxscore.PlayerLine, team boxscore.TeamLine, season string) engine.BlendedRatingResult
	RateRoster(ctx context.Context, team boxscore.TeamLine, players []boxscore.PlayerLine, season string, blend bool) appratings.RosterResult
}

// Handler wires HTTP routes to the ratings service.
type Handler struct {
	svc      RatingsService
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc RatingsService, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
	}
}

// ServeHTTP dispatches by path so the handler can be mounted without a mux.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.URL.Path {
	case "/health":
		h.Health(w, r)
	case "/ready":
		h.Ready(w, r)
	case "/ratings":
		h.Rate(w, r)
	case "/ratings/blended":
		h.RateBlended(w, r)
	case "/ratings/roster":
		h.RateRoster(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}
