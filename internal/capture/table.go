// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package capture

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"unicode"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tomtom215/fleetwatch/internal/models"
)

// Table geometry in logical pixels (basicfont glyphs are 7x13).
const (
	tableRowPx     = 22
	tableTitlePx   = 30
	tablePadPx     = 8
	tableGlyphPx   = 7
	tableBaseline  = 15
	minTableWidth  = 320
	defaultHeaders = 5
)

var (
	tableHeaderFill = color.RGBA{R: 30, G: 58, B: 95, A: 255}
	tableAltFill    = color.RGBA{R: 241, G: 245, B: 249, A: 255}
	tableText       = color.RGBA{R: 44, G: 62, B: 80, A: 255}
)

// column shares of the table width: rank, name, count, percentage, secondary.
var tableColumns = []float64{0.08, 0.34, 0.14, 0.14, 0.30}

// TableAdapter paints ranking table regions with a fixed bitmap font.
type TableAdapter struct {
	cfg RenderConfig
}

// NewTableAdapter creates a table adapter.
func NewTableAdapter(cfg RenderConfig) *TableAdapter {
	return &TableAdapter{cfg: cfg}
}

// Capture implements Adapter.
func (a *TableAdapter) Capture(ctx context.Context, region Region) (models.CaptureResult, error) {
	if err := ctx.Err(); err != nil {
		return models.FailedCapture(), err
	}
	if region.Kind != KindRankingTable {
		return models.FailedCapture(), fmt.Errorf("%w: table adapter cannot draw %q", ErrRegionNotFound, region.Kind)
	}
	if len(region.Items) == 0 {
		return models.FailedCapture(), fmt.Errorf("%w: %s", ErrEmptyRegion, region.ID)
	}

	img := a.paint(region)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return models.FailedCapture(), fmt.Errorf("%w: encode %s: %v", ErrCaptureFailed, region.ID, err)
	}
	return Measure(buf.Bytes())
}

func (a *TableAdapter) paint(region Region) image.Image {
	width := a.cfg.TableWidthPx
	if width < minTableWidth {
		width = minTableWidth
	}
	height := tableTitlePx + tableRowPx*(len(region.Items)+1) + tablePadPx

	src := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(src, src.Bounds(), image.White, image.Point{}, draw.Src)

	drawText(src, tablePadPx, tableBaseline+4, region.Title, tableText)

	headers := region.Headers
	if len(headers) != defaultHeaders {
		headers = []string{"#", "Nombre", "Alarmas", "%", "Mas recurrente"}
	}

	y := tableTitlePx
	fillRow(src, y, width, tableHeaderFill)
	a.drawRow(src, y, width, headers, color.White)

	for i, item := range region.Items {
		y += tableRowPx
		if i%2 == 1 {
			fillRow(src, y, width, tableAltFill)
		}
		cells := []string{
			strconv.Itoa(i + 1),
			item.Name,
			strconv.Itoa(item.Count),
			strconv.FormatFloat(item.Percentage, 'f', 1, 64) + "%",
			models.AlarmTypeName(item.MostRecurrentSecondary),
		}
		a.drawRow(src, y, width, cells, tableText)
	}

	s := a.cfg.scale()
	if s == 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, width*s, height*s))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

func (a *TableAdapter) drawRow(img *image.RGBA, y, width int, cells []string, col color.Color) {
	x := tablePadPx
	usable := width - 2*tablePadPx
	for i, cell := range cells {
		colWidth := int(float64(usable) * tableColumns[i])
		drawText(img, x+2, y+tableBaseline, truncate(cell, colWidth/tableGlyphPx-1), col)
		x += colWidth
	}
}

func fillRow(img *image.RGBA, y, width int, col color.Color) {
	r := image.Rect(0, y, width, y+tableRowPx)
	draw.Draw(img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

func drawText(img *image.RGBA, x, y int, text string, col color.Color) {
	if text == "" {
		return
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(asciiFold(text))
}

// asciiFold strips diacritics; the bitmap font only covers ASCII.
func asciiFold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// truncate shortens s to max runes, marking the cut with "...".
func truncate(s string, max int) string {
	r := []rune(s)
	switch {
	case max <= 0:
		return ""
	case len(r) <= max:
		return s
	case max <= 3:
		return string(r[:max])
	default:
		return string(r[:max-3]) + "..."
	}
}
