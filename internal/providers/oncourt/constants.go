package oncourt

import "time"

const (
	providerName       = "oncourt"
	defaultBaseURL     = "https://api.oncourt.example/v1"
	defaultHTTPTimeout = 10 * time.Second
	errorBodyLimit     = 512
)
