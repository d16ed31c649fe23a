package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	// Upstream is the career-fair REST backend every client call targets.
	// One base URL here replaces per-call-site endpoint strings.
	Upstream struct {
		BaseURL string `yaml:"base_url" env:"UPSTREAM_BASE_URL"`
		Timeout string `yaml:"timeout" env:"UPSTREAM_TIMEOUT"`
	} `yaml:"upstream"`

	Session struct {
		StorePath  string `yaml:"store_path" env:"SESSION_STORE_PATH"`
		CookieName string `yaml:"cookie_name" env:"SESSION_COOKIE_NAME"`
		TTL        string `yaml:"ttl" env:"SESSION_TTL"`
		// SealKey is a hex-encoded 32-byte key used to encrypt stored
		// admin tokens. A development key is derived when unset.
		SealKey string `yaml:"seal_key" env:"SESSION_SEAL_KEY"`
	} `yaml:"session"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Environment variables override file values
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "3000"
	config.Server.Mode = "development"

	config.Upstream.BaseURL = "http://127.0.0.1:8000"
	config.Upstream.Timeout = "0s"

	config.Session.StorePath = "careergate.db"
	config.Session.CookieName = "careergate_sid"
	config.Session.TTL = "720h"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream base URL is required")
	}
	if _, err := url.ParseRequestURI(config.Upstream.BaseURL); err != nil {
		return fmt.Errorf("invalid upstream base URL: %w", err)
	}

	if config.Session.StorePath == "" {
		return fmt.Errorf("session store path is required")
	}

	if _, err := time.ParseDuration(config.Upstream.Timeout); err != nil {
		return fmt.Errorf("invalid upstream timeout format: %w", err)
	}
	if _, err := time.ParseDuration(config.Session.TTL); err != nil {
		return fmt.Errorf("invalid session TTL format: %w", err)
	}

	if config.Session.SealKey != "" {
		key, err := hex.DecodeString(config.Session.SealKey)
		if err != nil || len(key) != 32 {
			return fmt.Errorf("session seal key must be 32 hex-encoded bytes")
		}
	}

	return nil
}

// UpstreamTimeout returns the upstream request timeout, zero meaning none.
func (c *Config) UpstreamTimeout() time.Duration {
	return ParseDuration(c.Upstream.Timeout, 0)
}

// SessionTTL returns how long persisted sessions stay valid.
func (c *Config) SessionTTL() time.Duration {
	return ParseDuration(c.Session.TTL, 720*time.Hour)
}

// SealKeyBytes returns the session seal key. When no key is configured a
// deterministic development key is derived so local setups work out of the
// box; production deployments set SESSION_SEAL_KEY.
func (c *Config) SealKeyBytes() []byte {
	if c.Session.SealKey != "" {
		key, err := hex.DecodeString(c.Session.SealKey)
		if err == nil && len(key) == 32 {
			return key
		}
	}
	sum := sha256.Sum256([]byte("careergate-dev-seal-key"))
	return sum[:]
}

// ParseDuration parses a duration string or returns the default value
func ParseDuration(value string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	return defaultValue
}
