package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// chart cache
	ChartCacheBackend    string `toml:"chart_cache_backend"`
	ChartCacheSizeMB     int    `toml:"chart_cache_size_mb"`
	ChartCacheTTLSeconds int    `toml:"chart_cache_ttl_seconds"`
	// ChartCacheClearOnStart drops every cached chart when the server starts.
	ChartCacheClearOnStart bool `toml:"chart_cache_clear_on_start"`
	// rate limiting
	RateLimitEnabled   bool `toml:"rate_limit_enabled"`
	RateLimitPerMinute int  `toml:"rate_limit_per_minute"`
	// cors
	AllowedOrigins []string `toml:"allowed_origins"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file and returns the section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no [%s] section in %s", env, path)
	}

	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	switch c.ChartCacheBackend {
	case "":
		c.ChartCacheBackend = CacheBackendMemory
	case CacheBackendMemory, CacheBackendRedis:
	default:
		return fmt.Errorf("unknown chart cache backend: %s", c.ChartCacheBackend)
	}
	if c.ChartCacheSizeMB <= 0 {
		c.ChartCacheSizeMB = 16
	}
	if c.RateLimitEnabled && c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("rate limiting enabled with a non-positive limit: %d", c.RateLimitPerMinute)
	}
	return nil
}

// NeedsRedis reports whether any configured feature talks to Redis.
func (c *Config) NeedsRedis() bool {
	return c.RateLimitEnabled || c.ChartCacheBackend == CacheBackendRedis
}

// Secrets are taken from the environment, never from the config file.
type Secrets struct {
	SentryDSN        string
	RedisPassword    string
	HoneycombEnabled bool
}

func SecretsFromEnv() Secrets {
	return Secrets{
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		RedisPassword:    os.Getenv("FITSTATS_REDIS_PASS"),
		HoneycombEnabled: os.Getenv("HONEYCOMB_ENABLED") == "true",
	}
}
