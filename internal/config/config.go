// Copyright (c) 2026 Dream Labs Inc. All Rights Reserved.
// This is licensed software from Dream Labs Inc, for limitations
// and restrictions contact your company contract manager.

package config

import "time"

// Config holds all application configuration loaded from environment
// variables, parsed with github.com/caarlos0/env.
type Config struct {
	// Server configuration
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"8000"`
	MetricsPort int    `env:"METRICS_PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"SeasonProgressionService"`

	// Redis configuration
	RedisHost         string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort         string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisMaxRetries   int    `env:"REDIS_MAX_RETRIES" envDefault:"5"`
	RedisRetryDelayMs int    `env:"REDIS_RETRY_DELAY_MS" envDefault:"1000"`

	// Season catalog configuration.
	// CatalogSource selects where season definitions are read from:
	// "redis" (default, operator-managed) or "file" (local runs).
	CatalogSource string `env:"CATALOG_SOURCE" envDefault:"redis"`
	CatalogPath   string `env:"CATALOG_PATH" envDefault:"config/seasons.yaml"`
	// CatalogSeed, when true with a redis catalog, loads CatalogPath into
	// Redis at startup if the catalog is empty.
	CatalogSeed bool `env:"CATALOG_SEED" envDefault:"false"`

	// SeasonCacheFreshness bounds the active-season resolver cache age.
	SeasonCacheFreshness time.Duration `env:"SEASON_CACHE_FRESHNESS" envDefault:"1h"`

	// Telemetry configuration
	OtelEnabled     bool   `env:"OTEL_ENABLED" envDefault:"true"`
	ZipkinEndpoint  string `env:"ZIPKIN_ENDPOINT"`
	OtelServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"season-progression"`
}
