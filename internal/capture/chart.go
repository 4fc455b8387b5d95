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
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/tomtom215/fleetwatch/internal/models"
)

// Report color scheme.
var (
	colorPrimary = drawing.ColorFromHex("1e3a5f")
	chartPalette = []drawing.Color{
		drawing.ColorFromHex("1e3a5f"),
		drawing.ColorFromHex("3498db"),
		drawing.ColorFromHex("2ecc71"),
		drawing.ColorFromHex("f1c40f"),
		drawing.ColorFromHex("e74c3c"),
		drawing.ColorFromHex("9b59b6"),
		drawing.ColorFromHex("e67e22"),
		drawing.ColorFromHex("1abc9c"),
		drawing.ColorFromHex("7f8c8d"),
		drawing.ColorFromHex("34495e"),
	}
)

// maxLineTicks caps the labelled x positions of line charts.
const maxLineTicks = 12

// ChartAdapter renders bar, pie and line chart regions with go-chart.
type ChartAdapter struct {
	cfg RenderConfig
}

// NewChartAdapter creates a chart adapter.
func NewChartAdapter(cfg RenderConfig) *ChartAdapter {
	return &ChartAdapter{cfg: cfg}
}

// Capture implements Adapter.
func (a *ChartAdapter) Capture(ctx context.Context, region Region) (models.CaptureResult, error) {
	if err := ctx.Err(); err != nil {
		return models.FailedCapture(), err
	}
	if len(region.Points) == 0 {
		return models.FailedCapture(), fmt.Errorf("%w: %s", ErrEmptyRegion, region.ID)
	}

	var (
		buf bytes.Buffer
		err error
	)
	switch region.Kind {
	case KindBarChart:
		err = a.renderBar(&buf, region)
	case KindPieChart:
		err = a.renderPie(&buf, region)
	case KindLineChart:
		err = a.renderLine(&buf, region)
	default:
		return models.FailedCapture(), fmt.Errorf("%w: chart adapter cannot draw %q", ErrRegionNotFound, region.Kind)
	}
	if err != nil {
		return models.FailedCapture(), fmt.Errorf("%w: render %s: %v", ErrCaptureFailed, region.ID, err)
	}

	if err := ctx.Err(); err != nil {
		return models.FailedCapture(), err
	}
	return Measure(buf.Bytes())
}

func (a *ChartAdapter) size() (w, h int, dpi float64) {
	s := a.cfg.scale()
	return a.cfg.ChartWidthPx * s, a.cfg.ChartHeightPx * s, chart.DefaultDPI * float64(s)
}

func (a *ChartAdapter) renderBar(buf *bytes.Buffer, region Region) error {
	w, h, dpi := a.size()

	bars := make([]chart.Value, len(region.Points))
	for i, p := range region.Points {
		col := chartPalette[i%len(chartPalette)]
		bars[i] = chart.Value{
			Label: p.Label,
			Value: p.Value,
			Style: chart.Style{FillColor: col, StrokeColor: col},
		}
	}

	barWidth := int(float64(w) * 0.6 / float64(len(bars)))
	if barWidth < 4 {
		barWidth = 4
	}

	graph := chart.BarChart{
		Title:      region.Title,
		Width:      w,
		Height:     h,
		DPI:        dpi,
		BarWidth:   barWidth,
		Background: chart.Style{Padding: chart.Box{Top: 40 * a.cfg.scale()}},
		YAxis:      chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: axisMax(region.Points)}},
		Bars:       bars,
	}
	return graph.Render(chart.PNG, buf)
}

func (a *ChartAdapter) renderPie(buf *bytes.Buffer, region Region) error {
	w, h, dpi := a.size()

	values := make([]chart.Value, 0, len(region.Points))
	for i, p := range region.Points {
		if p.Value <= 0 {
			continue
		}
		col := chartPalette[i%len(chartPalette)]
		values = append(values, chart.Value{
			Label: p.Label,
			Value: p.Value,
			Style: chart.Style{FillColor: col},
		})
	}
	if len(values) == 0 {
		return errors.New("no positive values")
	}

	graph := chart.PieChart{
		Title:  region.Title,
		Width:  w,
		Height: h,
		DPI:    dpi,
		Values: values,
	}
	return graph.Render(chart.PNG, buf)
}

func (a *ChartAdapter) renderLine(buf *bytes.Buffer, region Region) error {
	w, h, dpi := a.size()
	s := float64(a.cfg.scale())

	n := len(region.Points)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, p := range region.Points {
		xs[i] = float64(i)
		ys[i] = p.Value
	}
	// go-chart needs at least two x values.
	if n == 1 {
		xs = []float64{0, 1}
		ys = []float64{ys[0], ys[0]}
	}

	step := int(math.Ceil(float64(n) / maxLineTicks))
	if step < 1 {
		step = 1
	}
	ticks := make([]chart.Tick, 0, maxLineTicks+1)
	for i := 0; i < n; i += step {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: region.Points[i].Label})
	}

	graph := chart.Chart{
		Title:      region.Title,
		Width:      w,
		Height:     h,
		DPI:        dpi,
		Background: chart.Style{Padding: chart.Box{Top: int(40 * s), Left: int(16 * s), Right: int(16 * s), Bottom: int(16 * s)}},
		XAxis:      chart.XAxis{Ticks: ticks},
		YAxis:      chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: axisMax(region.Points)}},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    region.Title,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: colorPrimary,
					StrokeWidth: 2 * s,
					DotColor:    colorPrimary,
					DotWidth:    3 * s,
				},
			},
		},
	}
	return graph.Render(chart.PNG, buf)
}

// axisMax leaves headroom above the largest value and never returns 0.
func axisMax(points []Point) float64 {
	maxV := 0.0
	for _, p := range points {
		if p.Value > maxV {
			maxV = p.Value
		}
	}
	if maxV <= 0 {
		return 1
	}
	return math.Ceil(maxV * 1.1)
}
