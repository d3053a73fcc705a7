package config

import (
	"fmt"
	"time"

	"github.com/Yesho700/url-shortner/internal/shortener"
)

// Config holds the application configuration
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
	Shortener shortener.Config
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port      string
	ServerURL string
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Path string
}

// RedisConfig holds key-value store configuration. An empty Addr runs
// the server against the in-process store instead.
type RedisConfig struct {
	Addr string
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL           time.Duration
	PurgeInterval time.Duration
}

// RateLimitConfig holds rate limiter configuration
type RateLimitConfig struct {
	Window time.Duration
	Limit  int64
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Verbose bool
}

// New creates a new config with the given parameters
func New(server ServerConfig, database DatabaseConfig, redis RedisConfig, cache CacheConfig, rateLimit RateLimitConfig, logging LoggingConfig, shortenerConfig shortener.Config) (*Config, error) {
	cfg := &Config{
		Server:    server,
		Database:  database,
		Redis:     redis,
		Cache:     cache,
		RateLimit: rateLimit,
		Logging:   logging,
		Shortener: shortenerConfig,
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// validate validates the configuration values
func (c *Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	if c.Server.ServerURL == "" {
		return fmt.Errorf("server URL cannot be empty")
	}

	if c.Database.Path == "" {
		return fmt.Errorf("database path cannot be empty")
	}

	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got: %v", c.Cache.TTL)
	}

	if c.Cache.PurgeInterval <= 0 {
		return fmt.Errorf("expiry purge interval must be positive, got: %v", c.Cache.PurgeInterval)
	}

	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate limit window must be positive, got: %v", c.RateLimit.Window)
	}

	if c.RateLimit.Limit <= 0 {
		return fmt.Errorf("rate limit must be positive, got: %d", c.RateLimit.Limit)
	}

	if c.Shortener.CodeLength <= 0 {
		return fmt.Errorf("short code length must be positive, got: %d", c.Shortener.CodeLength)
	}

	return nil
}
