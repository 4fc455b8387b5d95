// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// ========================================
// Helpers
// ========================================

// isolate runs the test from an empty directory with no config env vars.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(ConfigPathEnvVar, "")
	for env := range envMappings {
		t.Setenv(strings.ToUpper(env), "")
		os.Unsetenv(strings.ToUpper(env))
	}
	return dir
}

// ========================================
// Defaults
// ========================================

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaultConfig().Validate() = %v", err)
	}
	if cfg.Report.EventsPage.PageWidthMM != 210 || cfg.Report.RankingsPage.PageWidthMM != 297 {
		t.Errorf("pages = %+v / %+v", cfg.Report.EventsPage, cfg.Report.RankingsPage)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8080 || cfg.Server.Timeout != 60*time.Second {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Report.Timezone != "America/Santiago" || cfg.Report.CaptureConcurrency != 3 {
		t.Errorf("report = %+v", cfg.Report)
	}
	if cfg.Capture.BreakerFailureThreshold != 5 {
		t.Errorf("breaker threshold = %d", cfg.Capture.BreakerFailureThreshold)
	}
}

// ========================================
// Layering
// ========================================

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("CAPTURE_TIMEOUT", "3s")
	t.Setenv("CHART_ZOOM", "2.5")
	t.Setenv("UNRELATED_VARIABLE", "ignored")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d", cfg.Server.Port)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Format = %q", cfg.Logging.Format)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("CORSOrigins = %q", cfg.Security.CORSOrigins)
	}
	if cfg.Capture.Timeout != 3*time.Second {
		t.Errorf("Capture.Timeout = %v", cfg.Capture.Timeout)
	}
	if cfg.Report.ChartZoom != 2.5 {
		t.Errorf("ChartZoom = %v", cfg.Report.ChartZoom)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	yaml := `
server:
  port: 7000
report:
  brand: Flota Sur
  companies:
    ACME: ACME TRANSPORTES LTDA.
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "7100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 7100 {
		t.Errorf("env should win over file, Port = %d", cfg.Server.Port)
	}
	if cfg.Report.Brand != "Flota Sur" {
		t.Errorf("Brand = %q", cfg.Report.Brand)
	}
	if got := cfg.CompanyNames().Resolve("ACME"); got != "ACME TRANSPORTES LTDA." {
		t.Errorf("Resolve(ACME) = %q", got)
	}
	if cfg.Report.RankingZoom != 1 {
		t.Errorf("defaults should survive the file layer, RankingZoom = %v", cfg.Report.RankingZoom)
	}
}

// ========================================
// Validation
// ========================================

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"port", func(c *Config) { c.Server.Port = 0 }, "Port"},
		{"environment", func(c *Config) { c.Server.Environment = "staging" }, "Environment"},
		{"zoom below one", func(c *Config) { c.Report.RankingZoom = 0.5 }, "RankingZoom"},
		{"timezone", func(c *Config) { c.Report.Timezone = "Nowhere/City" }, "Timezone"},
		{"concurrency", func(c *Config) { c.Report.CaptureConcurrency = 0 }, "CaptureConcurrency"},
		{"rate window", func(c *Config) { c.Security.RateLimitWindow = 0 }, "RATE_LIMIT_WINDOW"},
		{"wildcard cors in production", func(c *Config) { c.Server.Environment = "production" }, "CORS_ORIGINS"},
		{"cache ttl", func(c *Config) { c.Cache.TTL = 0 }, "CACHE_TTL"},
		{"page without usable area", func(c *Config) { c.Report.EventsPage.MarginMM = 120 }, "events_page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

// ========================================
// Conversions
// ========================================

func TestExportSettings(t *testing.T) {
	cfg := defaultConfig()
	cfg.Report.ChartZoom = 2

	s, err := cfg.ExportSettings()
	if err != nil {
		t.Fatalf("ExportSettings() error = %v", err)
	}
	if s.Location.String() != "America/Santiago" {
		t.Errorf("Location = %v", s.Location)
	}
	if s.ChartZoom != 2 || s.CaptureConcurrency != 3 || s.MaxInflightCaptures != 16 {
		t.Errorf("settings = %+v", s)
	}
	if s.Companies.Resolve("TPF") != "TRANS PACIFIC FIBRE SA" {
		t.Error("default company map not applied")
	}
}

func TestCaptureConfigs(t *testing.T) {
	cfg := defaultConfig()

	r := cfg.RenderConfig()
	if r.ChartWidthPx != 800 || r.Scale != 2 {
		t.Errorf("RenderConfig() = %+v", r)
	}
	b := cfg.BreakerConfig()
	if b.Name != "capture" || b.FailureThreshold != 5 || b.Timeout != 30*time.Second {
		t.Errorf("BreakerConfig() = %+v", b)
	}
}

func TestLogo(t *testing.T) {
	cfg := defaultConfig()
	if logo, err := cfg.Logo(); err != nil || logo != nil {
		t.Errorf("Logo() without path = %v, %v", logo, err)
	}

	path := filepath.Join(t.TempDir(), "logo.png")
	if err := os.WriteFile(path, []byte{0x89, 'P', 'N', 'G'}, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg.Report.LogoPath = path
	if logo, err := cfg.Logo(); err != nil || len(logo) != 4 {
		t.Errorf("Logo() = %v, %v", logo, err)
	}

	cfg.Report.LogoPath = filepath.Join(t.TempDir(), "missing.png")
	if _, err := cfg.Logo(); err == nil {
		t.Error("Logo() with a missing file should fail")
	}
}
