// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/tomtom215/fleetwatch/internal/capture"
	"github.com/tomtom215/fleetwatch/internal/export"
	"github.com/tomtom215/fleetwatch/internal/filter"
	"github.com/tomtom215/fleetwatch/internal/logging"
)

// LoggingConfig returns the logging.Init configuration.
func (c *Config) LoggingConfig() logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = c.Logging.Level
	lc.Format = c.Logging.Format
	lc.Caller = c.Logging.Caller
	return lc
}

// Location loads the report time zone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Report.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", c.Report.Timezone, err)
	}
	return loc, nil
}

// CompanyNames returns the configured company map, or the built-in one.
func (c *Config) CompanyNames() filter.CompanyNames {
	if len(c.Report.Companies) == 0 {
		return filter.DefaultCompanyNames()
	}
	names := make(filter.CompanyNames, len(c.Report.Companies))
	for short, full := range c.Report.Companies {
		names[short] = full
	}
	return names
}

// ExportSettings builds the orchestrator settings.
func (c *Config) ExportSettings() (export.Settings, error) {
	loc, err := c.Location()
	if err != nil {
		return export.Settings{}, err
	}
	r := c.Report
	return export.Settings{
		EventsPage:          r.EventsPage,
		RankingsPage:        r.RankingsPage,
		RankingZoom:         r.RankingZoom,
		ChartZoom:           r.ChartZoom,
		Location:            loc,
		Companies:           c.CompanyNames(),
		Brand:               r.Brand,
		GeneratedBy:         r.GeneratedBy,
		CaptureConcurrency:  r.CaptureConcurrency,
		MaxInflightCaptures: r.MaxInflightCaptures,
		TableRowMM:          r.TableRowMM,
	}, nil
}

// RenderConfig returns the raster sizes for capture adapters.
func (c *Config) RenderConfig() capture.RenderConfig {
	return capture.RenderConfig{
		ChartWidthPx:  c.Capture.ChartWidthPx,
		ChartHeightPx: c.Capture.ChartHeightPx,
		TableWidthPx:  c.Capture.TableWidthPx,
		Scale:         c.Capture.Scale,
	}
}

// BreakerConfig returns the capture circuit breaker settings.
func (c *Config) BreakerConfig() capture.BreakerConfig {
	return capture.BreakerConfig{
		Name:             "capture",
		MaxRequests:      c.Capture.BreakerMaxRequests,
		Interval:         c.Capture.BreakerInterval,
		Timeout:          c.Capture.BreakerTimeout,
		FailureThreshold: c.Capture.BreakerFailureThreshold,
	}
}

// Logo reads the optional watermark image. No path means no logo.
func (c *Config) Logo() ([]byte, error) {
	if c.Report.LogoPath == "" {
		return nil, nil
	}
	data, err := os.ReadFile(c.Report.LogoPath)
	if err != nil {
		return nil, fmt.Errorf("read logo: %w", err)
	}
	return data, nil
}
