// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package config

import (
	"time"

	"github.com/tomtom215/fleetwatch/internal/layout"
)

// Config is the complete application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Logging  LoggingConfig  `koanf:"logging"`
	Security SecurityConfig `koanf:"security"`
	Report   ReportConfig   `koanf:"report"`
	Capture  CaptureConfig  `koanf:"capture"`
	Cache    CacheConfig    `koanf:"cache"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout         time.Duration `koanf:"timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	Environment     string        `koanf:"environment" validate:"oneof=development production"`
}

// LoggingConfig is handed to logging.Init.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// SecurityConfig holds request limits.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"gte=0"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`

	// MaxBodyBytes caps uploaded report JSON.
	MaxBodyBytes int64 `koanf:"max_body_bytes" validate:"gt=0"`
}

// ReportConfig controls export documents.
type ReportConfig struct {
	Timezone    string `koanf:"timezone" validate:"timezone"`
	Brand       string `koanf:"brand"`
	GeneratedBy string `koanf:"generated_by"`
	LogoPath    string `koanf:"logo_path"`

	RankingZoom float64 `koanf:"ranking_zoom" validate:"gte=1"`
	ChartZoom   float64 `koanf:"chart_zoom" validate:"gte=1"`
	TableRowMM  float64 `koanf:"table_row_mm" validate:"gt=0"`

	CaptureConcurrency  int   `koanf:"capture_concurrency" validate:"min=1"`
	MaxInflightCaptures int64 `koanf:"max_inflight_captures" validate:"gte=0"`

	EventsPage   layout.PageArea `koanf:"events_page"`
	RankingsPage layout.PageArea `koanf:"rankings_page"`

	// Companies maps short company names to legal names. Nil means the
	// built-in map.
	Companies map[string]string `koanf:"companies"`
}

// CaptureConfig controls rasterization and the capture circuit breaker.
type CaptureConfig struct {
	ChartWidthPx  int           `koanf:"chart_width_px" validate:"min=50"`
	ChartHeightPx int           `koanf:"chart_height_px" validate:"min=50"`
	TableWidthPx  int           `koanf:"table_width_px" validate:"min=50"`
	Scale         int           `koanf:"scale" validate:"min=1,max=4"`
	Timeout       time.Duration `koanf:"timeout" validate:"gt=0"`

	BreakerMaxRequests      uint32        `koanf:"breaker_max_requests" validate:"min=1"`
	BreakerInterval         time.Duration `koanf:"breaker_interval"`
	BreakerTimeout          time.Duration `koanf:"breaker_timeout" validate:"gt=0"`
	BreakerFailureThreshold uint32        `koanf:"breaker_failure_threshold" validate:"min=1"`
}

// CacheConfig controls the ranking result cache.
type CacheConfig struct {
	Enabled    bool          `koanf:"enabled"`
	TTL        time.Duration `koanf:"ttl"`
	MaxEntries int           `koanf:"max_entries" validate:"gte=0"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
