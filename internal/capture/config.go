// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package capture

import "time"

// RenderConfig controls raster output size.
type RenderConfig struct {
	// ChartWidthPx and ChartHeightPx are the logical chart size before scaling.
	ChartWidthPx  int
	ChartHeightPx int

	// TableWidthPx is the logical width of ranking tables.
	TableWidthPx int

	// Scale multiplies every logical size for sharper output.
	Scale int
}

// DefaultRenderConfig returns the sizes used by the report UI.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		ChartWidthPx:  800,
		ChartHeightPx: 400,
		TableWidthPx:  720,
		Scale:         2,
	}
}

func (c RenderConfig) scale() int {
	if c.Scale < 1 {
		return 1
	}
	return c.Scale
}

// BreakerConfig configures BreakerAdapter.
type BreakerConfig struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

// DefaultBreakerConfig returns conservative breaker settings.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:             "capture",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}
