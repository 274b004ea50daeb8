package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds all configuration for the feature catalog
type Config struct {
	Redis  RedisConfig
	DND5E  DND5EConfig
	Spells SpellsConfig
	Log    LogConfig
}

// RedisConfig holds Redis-specific configuration. An empty Addr means the
// spell cache is kept in memory.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// DND5EConfig holds D&D 5e API configuration
type DND5EConfig struct {
	Timeout time.Duration `env:"DND5E_HTTP_TIMEOUT" envDefault:"10s"`
}

// SpellsConfig controls spell catalog syncing
type SpellsConfig struct {
	CacheTTL    time.Duration `env:"SPELL_CACHE_TTL" envDefault:"24h"`
	Concurrency int           `env:"SPELL_SYNC_CONCURRENCY" envDefault:"4"`
}

// LogConfig controls the global logger
type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values env parsing cannot
func (c *Config) Validate() error {
	if c.DND5E.Timeout <= 0 {
		return fmt.Errorf("DND5E_HTTP_TIMEOUT must be positive")
	}
	if c.Spells.CacheTTL < 0 {
		return fmt.Errorf("SPELL_CACHE_TTL cannot be negative")
	}
	if c.Spells.Concurrency < 1 {
		return fmt.Errorf("SPELL_SYNC_CONCURRENCY must be at least 1")
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("REDIS_DB cannot be negative")
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return nil
}

// UseRedis reports whether a Redis cache is configured
func (c *Config) UseRedis() bool {
	return c.Redis.Addr != ""
}
