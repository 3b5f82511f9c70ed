package server

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/nba-ratings-service/internal/config"
	"github.com/preston-bernstein/nba-ratings-service/internal/providers"
	"github.com/preston-bernstein/nba-ratings-service/internal/providers/fixture"
	"github.com/preston-bernstein/nba-ratings-service/internal/providers/oncourt"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.OnCourtProvider {
	switch strings.ToLower(cfg.Provider) {
	case "fixture", "":
		return fixture.New()
	case "oncourt":
		return oncourt.NewClient(oncourt.Config{
			BaseURL: cfg.OnCourt.BaseURL,
			APIKey:  cfg.OnCourt.APIKey,
			Timeout: cfg.OnCourt.Timeout,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
