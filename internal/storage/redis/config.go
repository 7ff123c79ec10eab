package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379/0)
	URL string

	// KeyPrefix namespaces every key this store writes
	KeyPrefix string

	// OpTimeout bounds each command
	OpTimeout time.Duration

	// Pool settings
	PoolSize     int
	MinIdleConns int
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379/0",
		KeyPrefix:    "t2048",
		OpTimeout:    2 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	}
}
