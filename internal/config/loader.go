// Copyright (c) 2026 Dream Labs Inc. All Rights Reserved.
// This is licensed software from Dream Labs Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Load reads configuration from environment variables. It attempts to load
// from a .env file first (for local development), then parses the environment
// into the Config struct.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Warnf("no .env file found or error loading it: %v (this is normal in production)", err)
	} else {
		logrus.Infof("loaded environment variables from .env file")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from environment: %w", err)
	}

	return cfg, nil
}

// Validate performs custom validation on the configuration.
func (c *Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT: %d (must be 1-65535)", c.HTTPPort)
	}
	if c.MetricsPort < 1 || c.MetricsPort > 65535 {
		return fmt.Errorf("invalid METRICS_PORT: %d (must be 1-65535)", c.MetricsPort)
	}

	switch c.CatalogSource {
	case "redis", "file":
	default:
		return fmt.Errorf("invalid CATALOG_SOURCE: %q (must be redis or file)", c.CatalogSource)
	}
	if c.CatalogSource == "file" && c.CatalogPath == "" {
		return fmt.Errorf("CATALOG_PATH is required when CATALOG_SOURCE is file")
	}

	if c.SeasonCacheFreshness < 0 {
		return fmt.Errorf("SEASON_CACHE_FRESHNESS must not be negative")
	}

	return nil
}
