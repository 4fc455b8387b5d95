// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

/*
Package capture turns visual regions of a report into raster images.

The Adapter interface is the boundary between report assembly and whatever
produces pixels. Export code only sees Adapter; it never knows whether a
region was drawn by go-chart, painted with a bitmap font, or fetched from an
external renderer.

Provided adapters:

  - ChartAdapter: bar, pie and line charts rendered with go-chart
  - TableAdapter: ranking tables painted with the x/image basic font
  - Router: dispatches a region to the adapter registered for its kind
  - BreakerAdapter: sony/gobreaker circuit breaker around any adapter
  - WithTimeout: bounds the time any adapter may take

Every adapter returns either a non-empty PNG with positive dimensions, or an
error wrapping ErrCaptureFailed. Callers treat errors as a failed capture and
substitute a placeholder; a single failing region never aborts a report.

Typical stack:

	router := capture.NewRouter()
	router.Register(capture.KindRankingTable, capture.NewTableAdapter(cfg))
	router.Register(capture.KindBarChart, capture.NewChartAdapter(cfg))
	adapter := capture.WithTimeout(capture.NewBreakerAdapter(router, breakerCfg), 15*time.Second)
*/
package capture
