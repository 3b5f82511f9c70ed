package config

// Config holds runtime configuration for the server.
type Config struct {
	Port          string
	PollInterval  Duration
	Provider      string
	RosterWorkers int
	WarmTargets   []WarmTarget
	OnCourt       OnCourtConfig
	Cache         CacheConfig
	Blend         BlendConfig
	Logging       LoggingConfig
	Metrics       MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:          envOrDefault(envPort, defaultPort),
		PollInterval:  durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:      envOrDefault(envProvider, defaultProvider),
		RosterWorkers: intEnvOrDefault(envRosterWorkers, defaultRosterWorkers),
		WarmTargets:   ParseWarmTargets(envOrDefault(envWarmTargets, defaultWarmTargets)),
		OnCourt:       loadOnCourt(),
		Cache:         loadCache(),
		Blend:         loadBlend(),
		Logging:       loadLogging(),
		Metrics:       loadMetrics(),
	}
}
