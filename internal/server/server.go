package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	appratings "github.com/preston-bernstein/nba-ratings-service/internal/app/ratings"
	"github.com/preston-bernstein/nba-ratings-service/internal/config"
	httpserver "github.com/preston-bernstein/nba-ratings-service/internal/http"
	"github.com/preston-bernstein/nba-ratings-service/internal/http/handlers"
	"github.com/preston-bernstein/nba-ratings-service/internal/http/middleware"
	"github.com/preston-bernstein/nba-ratings-service/internal/logging"
	"github.com/preston-bernstein/nba-ratings-service/internal/metrics"
	"github.com/preston-bernstein/nba-ratings-service/internal/poller"
	"github.com/preston-bernstein/nba-ratings-service/internal/providers"
	engine "github.com/preston-bernstein/nba-ratings-service/internal/ratings"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	ratings       *appratings.Service
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
	cacheCloser   io.Closer
}

// New constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.OnCourtProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

// newServerWithMetrics wires the server. A nil provider selects one from cfg; either way the
// provider is wrapped with the cache, retry, breaker and rate-limit decorators.
func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.OnCourtProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	var closer io.Closer
	if provider == nil {
		provider, closer = factory.build(cfg)
	} else {
		provider, closer = factory.wrap(cfg, provider)
	}

	svc := buildRatingsService(cfg, provider, logger, recorder)
	plr := poller.New(provider, warmTargets(cfg), logger, recorder, cfg.PollInterval)
	httpSrv := buildHTTPServer(cfg, svc, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		ratings:       svc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
		cacheCloser:   closer,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, svc *appratings.Service, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		ratings:    svc,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildRatingsService(cfg config.Config, provider providers.OnCourtProvider, logger *slog.Logger, recorder *metrics.Recorder) *appratings.Service {
	weights := cfg.Blend.Weights()
	if weights == (engine.BlendWeights{}) {
		weights = engine.DefaultBlendWeights()
	}
	blender := engine.NewBlender(provider, weights, logger, recorder)
	return appratings.NewService(blender, recorder, logger, cfg.RosterWorkers)
}

func warmTargets(cfg config.Config) []poller.Target {
	targets := make([]poller.Target, 0, len(cfg.WarmTargets))
	for _, t := range cfg.WarmTargets {
		targets = append(targets, poller.Target{Season: t.Season, Team: t.Team})
	}
	return targets
}

func buildHTTPServer(cfg config.Config, svc *appratings.Service, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := handlers.NewHandler(svc, logger, statusFn)
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           wrapped,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		MaxHeaderBytes:    maxHeaderBytes,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(shutdownCtx, s.logger, "metrics shutdown failed", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(shutdownCtx, s.logger, "metrics server shutdown failed", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(shutdownCtx, s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(shutdownCtx, s.logger, "graceful shutdown failed", err)
	}

	if s.cacheCloser != nil {
		if err := s.cacheCloser.Close(); err != nil {
			logging.Warn(shutdownCtx, s.logger, "cache close failed", err)
		}
	}

	logging.Info(shutdownCtx, s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(context.Background(), logger, "metrics setup failed, continuing without telemetry", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
