package config

import "time"

const (
	envPort          = "PORT"
	envPollInterval  = "POLL_INTERVAL"
	envProvider      = "PROVIDER"
	envRosterWorkers = "ROSTER_WORKERS"
	envWarmTargets   = "WARM_TARGETS"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel      = "LOG_LEVEL"
	envLogFormat     = "LOG_FORMAT"

	defaultPort = "4000"
	// The warm-up poller only refreshes cached on-court datasets; they change once per game day.
	defaultPollInterval  = 10 * Duration(time.Minute)
	defaultProvider      = "fixture"
	defaultRosterWorkers = 8
	defaultWarmTargets   = "E2024:BAR,E2024:RMB"
	defaultMetricsPort   = "9090"
	defaultServiceName   = "nba-ratings-service"
	defaultLogLevel      = "info"
	defaultLogFormat     = "text"
)
