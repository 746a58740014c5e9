// Package config loads console configuration from an optional TOML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all console settings.
type Config struct {
	// ListenAddr is the address the console binds to.
	ListenAddr string `toml:"listen_addr"`

	// APIBaseURL is the base path of the ByteBasket platform API.
	APIBaseURL string `toml:"api_base_url"`

	// HealthURL is the backend health/inventory probe root.
	HealthURL string `toml:"health_url"`

	// RedisAddr enables the Redis session backend when set.
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`

	// SessionTTL is how long an idle browsing session is kept.
	SessionTTL time.Duration `toml:"-"`
	// SessionTTLRaw is the TOML/env form of SessionTTL ("24h").
	SessionTTLRaw string `toml:"session_ttl"`

	LogLevel string `toml:"log_level"`
	DevMode  bool   `toml:"dev_mode"`

	// AllowedOrigins configures CORS for the console's JSON endpoints.
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		ListenAddr: ":8080",
		APIBaseURL: "http://localhost:3001/api",
		HealthURL:  "http://localhost:5000",
		SessionTTL: 24 * time.Hour,
		LogLevel:   "info",
	}
}

// Load reads the TOML file at path (when it exists) and applies environment
// overrides on top. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return cfg, fmt.Errorf("decode config %s: %w", path, err)
			}
		}
	}

	cfg.ListenAddr = getEnv("APP_ADDR", cfg.ListenAddr)
	cfg.APIBaseURL = getEnv("API_BASE_URL", cfg.APIBaseURL)
	cfg.HealthURL = getEnv("HEALTH_URL", cfg.HealthURL)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", cfg.RedisPassword)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	if getEnv("APP_ENV", "") == "development" {
		cfg.DevMode = true
	}

	if raw := getEnv("SESSION_TTL", cfg.SessionTTLRaw); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return cfg, fmt.Errorf("parse session_ttl %q: %w", raw, err)
		}
		cfg.SessionTTL = d
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
