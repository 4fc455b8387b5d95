// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/tomtom215/fleetwatch/internal/config"
)

func loadTestConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Chdir(t.TempDir())
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	return cfg
}

func TestNewApp(t *testing.T) {
	cfg := loadTestConfig(t)

	a, err := newApp(cfg)
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	if a.breaker == nil || a.handler == nil {
		t.Fatal("app not fully wired")
	}
	if (a.cache != nil) != cfg.Cache.Enabled {
		t.Errorf("cache wired = %v, enabled = %v", a.cache != nil, cfg.Cache.Enabled)
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("health = %d", rec.Code)
	}
}

func TestNewApp_MissingLogo(t *testing.T) {
	cfg := loadTestConfig(t)
	cfg.Report.LogoPath = filepath.Join(t.TempDir(), "missing.png")

	if _, err := newApp(cfg); err == nil {
		t.Error("expected error for missing logo")
	}
}

func TestLoadEnvFiles(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.WriteFile(".env", []byte("FLEETWATCH_TEST_VAR=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FLEETWATCH_TEST_VAR", "")
	os.Unsetenv("FLEETWATCH_TEST_VAR")

	loadEnvFiles()

	if got := os.Getenv("FLEETWATCH_TEST_VAR"); got != "from-file" {
		t.Errorf("FLEETWATCH_TEST_VAR = %q", got)
	}
}
