// Package config loads the storefront settings from an optional YAML file
// with environment overrides on top.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// BaseURL is where the backend API lives, including the /api prefix
	// the dev proxy used to add.
	BaseURL         string
	RequestTimeout  time.Duration
	NotificationTTL time.Duration
	// TokenPath is the bbolt file holding the persisted bearer token.
	TokenPath string
	LogLevel  string
}

// fileConfig is the YAML shape; durations are strings ("30s") so the file
// stays readable.
type fileConfig struct {
	BaseURL         string `yaml:"base_url"`
	RequestTimeout  string `yaml:"request_timeout"`
	NotificationTTL string `yaml:"notification_ttl"`
	TokenPath       string `yaml:"token_path"`
	LogLevel        string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		BaseURL:         "http://localhost:8080/api",
		RequestTimeout:  30 * time.Second,
		NotificationTTL: 3 * time.Second,
		TokenPath:       "storefront.db",
		LogLevel:        "info",
	}
}

// Load reads path when it exists, then applies STOREFRONT_* environment
// overrides. A missing file is not an error; defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env overrides
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			var fc fileConfig
			if err := yaml.Unmarshal(data, &fc); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
			if err := merge(&cfg, fc); err != nil {
				return Config{}, fmt.Errorf("config %s: %w", path, err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func merge(cfg *Config, fc fileConfig) error {
	if fc.BaseURL != "" {
		cfg.BaseURL = fc.BaseURL
	}
	if fc.TokenPath != "" {
		cfg.TokenPath = fc.TokenPath
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.RequestTimeout != "" {
		d, err := cast.ToDurationE(fc.RequestTimeout)
		if err != nil {
			return fmt.Errorf("request_timeout: %w", err)
		}
		cfg.RequestTimeout = d
	}
	if fc.NotificationTTL != "" {
		d, err := cast.ToDurationE(fc.NotificationTTL)
		if err != nil {
			return fmt.Errorf("notification_ttl: %w", err)
		}
		cfg.NotificationTTL = d
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("STOREFRONT_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("STOREFRONT_TOKEN_PATH"); v != "" {
		cfg.TokenPath = v
	}
	if v := os.Getenv("STOREFRONT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("STOREFRONT_REQUEST_TIMEOUT"); v != "" {
		d, err := cast.ToDurationE(v)
		if err != nil {
			return fmt.Errorf("STOREFRONT_REQUEST_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}
	if v := os.Getenv("STOREFRONT_NOTIFICATION_TTL"); v != "" {
		d, err := cast.ToDurationE(v)
		if err != nil {
			return fmt.Errorf("STOREFRONT_NOTIFICATION_TTL: %w", err)
		}
		cfg.NotificationTTL = d
	}
	return nil
}
