// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package api

import (
	"time"

	"github.com/tomtom215/fleetwatch/internal/cache"
	"github.com/tomtom215/fleetwatch/internal/export"
	"github.com/tomtom215/fleetwatch/internal/filter"
	"github.com/tomtom215/fleetwatch/internal/pdf"
)

// BreakerStater reports a circuit breaker state for health checks.
type BreakerStater interface {
	State() string
}

// Handler serves the API endpoints.
//
// Handler methods are split across files:
//   - handlers_health.go: health endpoint
//   - handlers_rankings.go: rankings JSON
//   - handlers_export.go: PDF exports
type Handler struct {
	orchestrator *export.Orchestrator
	writer       *pdf.Writer
	rankings     *cache.Cache[RankingsResponse]
	breaker      BreakerStater
	filter       filter.Filter
	maxBodyBytes int64
	startTime    time.Time
}

// HandlerOptions holds the optional handler dependencies.
type HandlerOptions struct {
	// Cache memoizes rankings responses. Nil disables caching.
	Cache *cache.Cache[RankingsResponse]

	// Breaker is reported by the health endpoint when set.
	Breaker BreakerStater

	// MaxBodyBytes caps request bodies. 0 disables the cap.
	MaxBodyBytes int64
}

// NewHandler creates a handler. The filter used by the rankings endpoint
// shares the orchestrator's time zone and company map.
func NewHandler(orch *export.Orchestrator, writer *pdf.Writer, opts HandlerOptions) *Handler {
	s := orch.Settings()
	return &Handler{
		orchestrator: orch,
		writer:       writer,
		rankings:     opts.Cache,
		breaker:      opts.Breaker,
		filter:       filter.Filter{Location: s.Location, Companies: s.Companies},
		maxBodyBytes: opts.MaxBodyBytes,
		startTime:    time.Now(),
	}
}
