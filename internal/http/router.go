package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/nba-ratings-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) *nethttp.ServeMux {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/ratings", handler.Rate)
	mux.HandleFunc("/ratings/blended", handler.RateBlended)
	mux.HandleFunc("/ratings/roster", handler.RateRoster)
	return mux
}
