package config

import (
	"strings"
	"time"
)

const (
	envCacheBackend = "CACHE_BACKEND"
	envRedisURL     = "REDIS_URL"
	envCacheTTL     = "CACHE_TTL"

	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"

	defaultCacheBackend = CacheBackendMemory
	defaultRedisURL     = "redis://localhost:6379/0"
	defaultCacheTTL     = 15 * time.Minute
)

// CacheConfig selects and tunes the on-court dataset cache.
type CacheConfig struct {
	Backend  string
	RedisURL string
	TTL      time.Duration
}

func loadCache() CacheConfig {
	backend := strings.ToLower(strings.TrimSpace(envOrDefault(envCacheBackend, defaultCacheBackend)))
	if backend != CacheBackendRedis {
		backend = CacheBackendMemory
	}
	return CacheConfig{
		Backend:  backend,
		RedisURL: envOrDefault(envRedisURL, defaultRedisURL),
		TTL:      durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
	}
}
