package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/nba-ratings-service/internal/domain/boxscore"
	"github.com/preston-bernstein/nba-ratings-service/internal/logging"
)

// maxBodyBytes caps request bodies at 1 MiB.
const maxBodyBytes = 1 << 20

type rateRequest struct {
	Player boxscore.Bag `json:"player"`
	Team   boxscore.Bag `json:"team"`
	Season string       `json:"season"`
}

type rosterRequest struct {
	Team    boxscore.Bag   `json:"team"`
	Players []boxscore.Bag `json:"players"`
	Season  string         `json:"season"`
	Blend   bool           `json:"blend"`
}

// Rate returns the base ORtg/DRtg for one player.
func (h *Handler) Rate(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req rateRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Player == nil || req.Team == nil {
		writeError(w, r, nethttp.StatusBadRequest, "player and team are required", h.logger)
		return
	}

	player := boxscore.PlayerLineFromBag(req.Player)
	res := h.svc.Rate(player, boxscore.TeamLineFromBag(req.Team))
	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Info("rated player",
			slog.String(logging.FieldPlayer, player.Name),
			slog.Bool("rated", res.Rated()),
		)
	}
	writeJSON(w, nethttp.StatusOK, res, h.logger)
}

// RateBlended returns the base rating blended with on-court data for the player's team.
func (h *Handler) RateBlended(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req rateRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Player == nil || req.Team == nil {
		writeError(w, r, nethttp.StatusBadRequest, "player and team are required", h.logger)
		return
	}

	player := boxscore.PlayerLineFromBag(req.Player)
	team := boxscore.TeamLineFromBag(req.Team)
	res := h.svc.RateBlended(r.Context(), player, team, req.Season)
	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Info("rated player with on-court blend",
			slog.String(logging.FieldPlayer, player.Name),
			slog.String(logging.FieldTeam, team.Code),
			slog.String(logging.FieldSeason, res.Season),
			slog.String(logging.FieldReason, res.Fallback),
		)
	}
	writeJSON(w, nethttp.StatusOK, res, h.logger)
}

// RateRoster rates every player in the request against the same team.
func (h *Handler) RateRoster(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req rosterRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Team == nil {
		writeError(w, r, nethttp.StatusBadRequest, "team is required", h.logger)
		return
	}

	players := make([]boxscore.PlayerLine, 0, len(req.Players))
	for _, p := range req.Players {
		players = append(players, boxscore.PlayerLineFromBag(p))
	}
	res := h.svc.RateRoster(r.Context(), boxscore.TeamLineFromBag(req.Team), players, req.Season, req.Blend)
	writeJSON(w, nethttp.StatusOK, res, h.logger)
}

// decode enforces POST, the body cap and JSON syntax, writing the error response itself on failure.
func (h *Handler) decode(w nethttp.ResponseWriter, r *nethttp.Request, dest any) bool {
	if r.Method != nethttp.MethodPost {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return false
	}
	dec := json.NewDecoder(nethttp.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(dest); err != nil {
		var tooLarge *nethttp.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, nethttp.StatusRequestEntityTooLarge, "request body too large", h.logger)
			return false
		}
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return false
	}
	return true
}
