package config

import "time"

const (
	envOnCourtBaseURL  = "ONCOURT_BASE_URL"
	envOnCourtAPIKey   = "ONCOURT_API_KEY"
	envOnCourtTimeout  = "ONCOURT_TIMEOUT"
	envOnCourtInterval = "ONCOURT_RATE_INTERVAL"

	defaultOnCourtBaseURL = "https://api.oncourt.example/v1"
	defaultOnCourtTimeout = 10 * time.Second
	// One upstream call per second keeps bursts from a cold roster blend inside typical quotas.
	defaultOnCourtInterval = time.Second
)

// OnCourtConfig controls how we talk to the on-court stats API.
type OnCourtConfig struct {
	BaseURL      string
	APIKey       string
	Timeout      time.Duration
	RateInterval time.Duration
}

func loadOnCourt() OnCourtConfig {
	return OnCourtConfig{
		BaseURL:      envOrDefault(envOnCourtBaseURL, defaultOnCourtBaseURL),
		APIKey:       envOrDefault(envOnCourtAPIKey, ""),
		Timeout:      durationEnvOrDefault(envOnCourtTimeout, defaultOnCourtTimeout),
		RateInterval: durationEnvOrDefault(envOnCourtInterval, defaultOnCourtInterval),
	}
}
