// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/fleetwatch/internal/config"
	"github.com/tomtom215/fleetwatch/internal/metrics"
	"github.com/tomtom215/fleetwatch/internal/middleware"
)

func newTestRouter(t *testing.T, mwCfg *ChiMiddlewareConfig) http.Handler {
	t.Helper()
	return NewRouter(newTestHandler(t, HandlerOptions{}), NewChiMiddleware(mwCfg)).SetupChi()
}

func TestRouter_Routes(t *testing.T) {
	srv := newTestRouter(t, nil)

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"health", http.MethodGet, "/api/v1/health", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"rankings", http.MethodPost, "/api/v1/rankings", http.StatusOK},
		{"rankings wrong method", http.MethodGet, "/api/v1/rankings", http.StatusMethodNotAllowed},
		{"export report", http.MethodPost, "/api/v1/exports/report", http.StatusOK},
		{"export rankings", http.MethodPost, "/api/v1/exports/rankings", http.StatusOK},
		{"unknown", http.MethodGet, "/api/v1/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.method == http.MethodPost {
				req = httptest.NewRequest(tt.method, tt.path, sampleBody(t, nil))
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Errorf("%s %s = %d, want %d", tt.method, tt.path, rec.Code, tt.status)
			}
			if rec.Header().Get(middleware.RequestIDHeader) == "" {
				t.Error("missing request ID header")
			}
		})
	}
}

func TestRouter_RateLimit(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	srv := newTestRouter(t, cfg)

	hits := testutil.ToFloat64(metrics.APIRateLimitHits.WithLabelValues("rankings"))

	codes := make([]int, 3)
	for i := range codes {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/rankings", strings.NewReader("{}"))
		req.RemoteAddr = "192.0.2.10:5000"
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		codes[i] = rec.Code
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("codes = %v, want [200 200 429]", codes)
	}
	if got := testutil.ToFloat64(metrics.APIRateLimitHits.WithLabelValues("rankings")) - hits; got != 1 {
		t.Errorf("rate limit hits delta = %v, want 1", got)
	}
}

func TestRouter_RateLimitDisabled(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 1
	cfg.RateLimitDisabled = true
	srv := newTestRouter(t, cfg)

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/rankings", strings.NewReader("{}")))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d = %d", i, rec.Code)
		}
	}
}

func TestRouter_CORS(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://fleet.example.com"}
	srv := newTestRouter(t, cfg)

	tests := []struct {
		origin  string
		allowed bool
	}{
		{"https://fleet.example.com", true},
		{"https://evil.example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/api/v1/rankings", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			got := rec.Header().Get("Access-Control-Allow-Origin") == tt.origin
			if got != tt.allowed {
				t.Errorf("allowed = %v, want %v", got, tt.allowed)
			}
		})
	}
}

func TestChiMiddlewareConfigFromSecurity(t *testing.T) {
	cfg := ChiMiddlewareConfigFromSecurity(config.SecurityConfig{
		CORSOrigins:       []string{"https://a.example"},
		RateLimitReqs:     10,
		RateLimitWindow:   30 * time.Second,
		RateLimitDisabled: true,
	})

	if len(cfg.CORSAllowedOrigins) != 1 || cfg.RateLimitRequests != 10 ||
		cfg.RateLimitWindow != 30*time.Second || !cfg.RateLimitDisabled {
		t.Errorf("config = %+v", cfg)
	}
	if len(cfg.CORSAllowedMethods) == 0 {
		t.Error("methods lost from defaults")
	}
}
