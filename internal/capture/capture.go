// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png" // register PNG decoder for Measure

	"github.com/tomtom215/fleetwatch/internal/models"
)

var (
	// ErrCaptureFailed is wrapped by every capture error.
	ErrCaptureFailed = errors.New("capture failed")

	// ErrRegionNotFound is returned when no adapter handles a region's kind.
	ErrRegionNotFound = fmt.Errorf("%w: region not found", ErrCaptureFailed)

	// ErrEmptyRegion is returned when a region has nothing to draw.
	ErrEmptyRegion = fmt.Errorf("%w: region is empty", ErrCaptureFailed)
)

// RegionKind identifies how a region is drawn.
type RegionKind string

const (
	KindRankingTable RegionKind = "ranking_table"
	KindBarChart     RegionKind = "bar_chart"
	KindPieChart     RegionKind = "pie_chart"
	KindLineChart    RegionKind = "line_chart"
)

// Point is one labelled value of a chart.
type Point struct {
	Label string
	Value float64
}

// Region references a visual block of a report.
type Region struct {
	ID    string
	Kind  RegionKind
	Title string

	// Items and Headers feed ranking tables.
	Items   []models.RankingItem
	Headers []string

	// Points feed charts.
	Points []Point
}

// Adapter captures a region as an image.
// Implementations must honor ctx cancellation.
type Adapter interface {
	Capture(ctx context.Context, region Region) (models.CaptureResult, error)
}

// AdapterFunc lets ordinary functions act as adapters.
type AdapterFunc func(ctx context.Context, region Region) (models.CaptureResult, error)

// Capture calls f(ctx, region).
func (f AdapterFunc) Capture(ctx context.Context, region Region) (models.CaptureResult, error) {
	return f(ctx, region)
}

// Measure builds a CaptureResult from encoded image bytes.
func Measure(data []byte) (models.CaptureResult, error) {
	if len(data) == 0 {
		return models.FailedCapture(), fmt.Errorf("%w: empty image", ErrCaptureFailed)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return models.FailedCapture(), fmt.Errorf("%w: decode image: %v", ErrCaptureFailed, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return models.FailedCapture(), fmt.Errorf("%w: zero sized image", ErrCaptureFailed)
	}
	return models.CaptureResult{ImageBytes: data, PixelWidth: cfg.Width, PixelHeight: cfg.Height}, nil
}
