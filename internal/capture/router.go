// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package capture

import (
	"context"
	"fmt"
	"sync"

	"github.com/tomtom215/fleetwatch/internal/models"
)

// Router dispatches regions to the adapter registered for their kind.
// It is safe for concurrent use.
type Router struct {
	mu     sync.RWMutex
	routes map[RegionKind]Adapter
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{routes: make(map[RegionKind]Adapter)}
}

// NewDefaultRouter registers the chart and table adapters for every kind.
func NewDefaultRouter(cfg RenderConfig) *Router {
	r := NewRouter()
	charts := NewChartAdapter(cfg)
	r.Register(KindRankingTable, NewTableAdapter(cfg))
	r.Register(KindBarChart, charts)
	r.Register(KindPieChart, charts)
	r.Register(KindLineChart, charts)
	return r
}

// Register sets the adapter for a kind, replacing any previous one.
func (r *Router) Register(kind RegionKind, a Adapter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes[kind] = a
}

// Capture implements Adapter.
func (r *Router) Capture(ctx context.Context, region Region) (models.CaptureResult, error) {
	r.mu.RLock()
	a, ok := r.routes[region.Kind]
	r.mu.RUnlock()

	if !ok {
		return models.FailedCapture(), fmt.Errorf("%w: kind %q (region %s)", ErrRegionNotFound, region.Kind, region.ID)
	}
	return a.Capture(ctx, region)
}
