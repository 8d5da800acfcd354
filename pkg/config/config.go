// Package config provides configuration file support for uuidgen.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jvs-project/uuidgen/pkg/logging"
)

// Config represents the uuidgen configuration.
type Config struct {
	OutputFormat string        `yaml:"output_format,omitempty" json:"output_format,omitempty"` // text, json
	Logging      LoggingConfig `yaml:"logging" json:"logging"`
	NATS         NATSConfig    `yaml:"nats" json:"nats"`
	HTTP         HTTPConfig    `yaml:"http" json:"http"`
	Metrics      MetricsConfig `yaml:"metrics" json:"metrics"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"` // json, text
}

// NATSConfig configures the NATS ID service.
type NATSConfig struct {
	URL     string `yaml:"url" json:"url"`
	Subject string `yaml:"subject" json:"subject"`
}

// HTTPConfig configures the HTTP API.
type HTTPConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

// MetricsConfig toggles Prometheus collection.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		OutputFormat: "text",
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "json",
		},
		NATS: NATSConfig{
			URL:     "nats://127.0.0.1:4222",
			Subject: "uuidgen",
		},
		HTTP: HTTPConfig{
			Addr: ":8080",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// DefaultPath returns <user config dir>/uuidgen/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "uuidgen", "config.yaml"), nil
}

// Load loads configuration from path.
// Returns default config if the file doesn't exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to path, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid output_format %q (want text or json)", c.OutputFormat)
	}
	if c.Logging.Level != "" {
		if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
			return fmt.Errorf("invalid logging.level: %w", err)
		}
	}
	if c.Logging.Format != "" {
		if _, err := logging.ParseFormat(c.Logging.Format); err != nil {
			return fmt.Errorf("invalid logging.format: %w", err)
		}
	}
	if c.NATS.Subject != "" && strings.ContainsAny(c.NATS.Subject, " \t*>") {
		return fmt.Errorf("invalid nats.subject %q (no spaces or wildcards)", c.NATS.Subject)
	}
	return nil
}

// Keys returns all settable keys.
func Keys() []string {
	return []string{
		"output_format",
		"logging.level",
		"logging.format",
		"nats.url",
		"nats.subject",
		"http.addr",
		"metrics.enabled",
	}
}

// Get returns the string form of key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "output_format":
		return c.OutputFormat, nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.format":
		return c.Logging.Format, nil
	case "nats.url":
		return c.NATS.URL, nil
	case "nats.subject":
		return c.NATS.Subject, nil
	case "http.addr":
		return c.HTTP.Addr, nil
	case "metrics.enabled":
		return strconv.FormatBool(c.Metrics.Enabled), nil
	}
	return "", fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(Keys(), ", "))
}

// Set assigns value to key and validates the result.
// On error the config is left unchanged.
func (c *Config) Set(key, value string) error {
	next := *c
	switch key {
	case "output_format":
		next.OutputFormat = value
	case "logging.level":
		next.Logging.Level = value
	case "logging.format":
		next.Logging.Format = value
	case "nats.url":
		next.NATS.URL = value
	case "nats.subject":
		next.NATS.Subject = value
	case "http.addr":
		next.HTTP.Addr = value
	case "metrics.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid metrics.enabled %q: must be true or false", value)
		}
		next.Metrics.Enabled = b
	default:
		return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(Keys(), ", "))
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}
