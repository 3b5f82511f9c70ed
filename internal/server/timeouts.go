package server

import "time"

// HTTP limits for the ratings API. Request bodies are capped by the handlers.
const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	writeTimeout      = 15 * time.Second
	idleTimeout       = 60 * time.Second
	maxHeaderBytes    = 64 << 10
)

// redisConnectTimeout bounds the start-up ping before falling back to the memory cache.
const redisConnectTimeout = 5 * time.Second

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
