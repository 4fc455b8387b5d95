// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tomtom215/fleetwatch/internal/api"
	"github.com/tomtom215/fleetwatch/internal/cache"
	"github.com/tomtom215/fleetwatch/internal/capture"
	"github.com/tomtom215/fleetwatch/internal/config"
	"github.com/tomtom215/fleetwatch/internal/export"
	"github.com/tomtom215/fleetwatch/internal/logging"
	"github.com/tomtom215/fleetwatch/internal/pdf"
	"github.com/tomtom215/fleetwatch/internal/supervisor"
	"github.com/tomtom215/fleetwatch/internal/supervisor/services"
)

// envFiles are loaded in order; variables already set are never overridden.
var envFiles = []string{".env.local", ".env"}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(cfg.LoggingConfig())

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("timezone", cfg.Report.Timezone).
		Int("port", cfg.Server.Port).
		Msg("Starting Fleetwatch")

	app, err := newApp(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize application")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.run(ctx); err != nil {
		logging.Error().Err(err).Msg("Supervisor tree error")
		os.Exit(1)
	}
	logging.Info().Msg("Application stopped gracefully")
}

func loadEnvFiles() {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			logging.Warn().Err(err).Str("file", f).Msg("Failed to load env file")
		}
	}
}

// app is the wired server.
type app struct {
	cfg     *config.Config
	handler http.Handler
	breaker *capture.BreakerAdapter
	cache   *cache.Cache[api.RankingsResponse]
}

// newApp wires the capture stack, exporter and HTTP router from cfg.
func newApp(cfg *config.Config) (*app, error) {
	settings, err := cfg.ExportSettings()
	if err != nil {
		return nil, err
	}
	logo, err := cfg.Logo()
	if err != nil {
		return nil, err
	}

	// Rasterizers, then a per-capture deadline, then the breaker.
	adapter := capture.WithTimeout(capture.NewDefaultRouter(cfg.RenderConfig()), cfg.Capture.Timeout)
	breaker := capture.NewBreakerAdapter(adapter, cfg.BreakerConfig())

	orchestrator := export.NewOrchestrator(breaker, settings)
	writer := pdf.NewWriter(cfg.Report.Brand, logo)

	var rankings *cache.Cache[api.RankingsResponse]
	if cfg.Cache.Enabled {
		rankings = cache.New[api.RankingsResponse](cfg.Cache.TTL, cfg.Cache.MaxEntries)
	}

	handler := api.NewHandler(orchestrator, writer, api.HandlerOptions{
		Cache:        rankings,
		Breaker:      breaker,
		MaxBodyBytes: cfg.Security.MaxBodyBytes,
	})
	mw := api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg.Security))

	return &app{
		cfg:     cfg,
		handler: api.NewRouter(handler, mw).SetupChi(),
		breaker: breaker,
		cache:   rankings,
	}, nil
}

// run serves until ctx is cancelled.
func (a *app) run(ctx context.Context) error {
	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: a.cfg.Server.ShutdownTimeout + 5*time.Second,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port),
		Handler:           a.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       a.cfg.Server.Timeout,
		WriteTimeout:      a.cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, a.cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	if a.cache != nil {
		tree.AddMaintenanceService(services.NewCacheCleanupService("rankings", a.cache, a.cfg.Cache.TTL))
	}

	err := tree.Serve(ctx)

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
