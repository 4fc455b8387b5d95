// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package layout

import (
	"math"

	"github.com/tomtom215/fleetwatch/internal/models"
)

// Block is a captured visual block waiting to be placed.
type Block struct {
	Capture    models.CaptureResult
	ZoomFactor float64
	Label      string
}

// Placement is the outcome for one block, in input order.
// Placeholder placements carry the position where the fallback text goes.
type Placement struct {
	Label       string   `json:"label"`
	Rect        DrawRect `json:"rect"`
	Placeholder bool     `json:"placeholder"`
}

// Result holds the placements plus the cursor after the last block,
// so callers can continue flowing content below it.
type Result struct {
	Placements []Placement `json:"placements"`
	PageCount  int         `json:"page_count"`
	EndPage    int         `json:"end_page"`
	EndYMM     float64     `json:"end_y_mm"`
}

// Layout places blocks top to bottom starting at startYMM on page 0.
// A startYMM above the content area is clamped to it.
func Layout(blocks []Block, page PageArea, startYMM float64) Result {
	c := newCursor(page, 0, startYMM)

	res := Result{Placements: make([]Placement, 0, len(blocks))}
	for _, b := range blocks {
		var p Placement
		if w, h, ok := Fit(b, page); ok {
			p = Placement{Label: b.Label, Rect: c.place(w, h)}
		} else {
			p = Placement{Label: b.Label, Placeholder: true, Rect: c.place(page.UsableWidth(), placeholderHeight(page))}
		}
		res.Placements = append(res.Placements, p)
	}

	res.EndPage, res.EndYMM = c.page, c.y
	res.PageCount = c.page + 1
	return res
}

// Fit returns the drawn size of a block using plan-for-zoom sizing against
// a fresh page. ok is false when the capture cannot be placed.
func Fit(b Block, page PageArea) (width, height float64, ok bool) {
	if b.Capture.Failed() || !page.Valid() {
		return 0, 0, false
	}

	usableW := page.UsableWidth()
	usableH := page.UsableHeight()
	zoom := normalizeZoom(b.ZoomFactor)
	aspect := float64(b.Capture.PixelHeight) / float64(b.Capture.PixelWidth)

	baseW := math.Min(usableW/zoom, float64(b.Capture.PixelWidth)*PxToMM)
	baseH := baseW * aspect
	if baseH > usableH/zoom {
		baseH = usableH / zoom
		baseW = baseH / aspect
	}

	width = baseW * zoom
	height = width * aspect

	// Clamp floating point residue so the rectangle never leaves the usable area.
	width = math.Min(width, usableW)
	height = math.Min(height, usableH)

	if !finite(width, height) || width <= 0 || height <= 0 {
		return 0, 0, false
	}
	return width, height, true
}

func normalizeZoom(z float64) float64 {
	if math.IsNaN(z) || math.IsInf(z, 0) || z < 1 {
		return 1
	}
	return z
}

func placeholderHeight(page PageArea) float64 {
	return math.Min(PlaceholderHeightMM, page.UsableHeight())
}

// cursor tracks the flow position while blocks are placed.
type cursor struct {
	area  PageArea
	page  int
	y     float64
	fresh bool
}

func newCursor(area PageArea, page int, startY float64) *cursor {
	top := area.ContentTop()
	if math.IsNaN(startY) || startY < top {
		startY = top
	}
	return &cursor{area: area, page: page, y: startY, fresh: startY == top}
}

// place reserves a w x h slot, breaking to a new page when it does not fit
// in the remaining space, and returns its rectangle centred horizontally.
func (c *cursor) place(w, h float64) DrawRect {
	if !c.fresh && c.y+h > c.area.ContentBottom() {
		c.breakPage()
	}

	r := DrawRect{
		XMM:       c.area.MarginMM + (c.area.UsableWidth()-w)/2,
		YMM:       c.y,
		WidthMM:   w,
		HeightMM:  h,
		PageIndex: c.page,
	}

	c.y = r.Bottom() + c.area.BlockSpacingMM
	c.fresh = false
	return r
}

func (c *cursor) breakPage() {
	c.page++
	c.y = c.area.ContentTop()
	c.fresh = true
}
