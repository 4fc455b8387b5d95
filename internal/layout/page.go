// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package layout

import "math"

// PxToMM converts screen pixels (96 dpi) to millimetres.
const PxToMM = 0.264583

// Defaults for an A4 portrait report.
const (
	A4WidthMM               = 210.0
	A4HeightMM              = 297.0
	DefaultMarginMM         = 20.0
	DefaultReservedTopMM    = 20.0
	DefaultReservedBottomMM = 15.0
	DefaultBlockSpacingMM   = 8.0
	PlaceholderHeightMM     = 10.0
)

// PageArea describes page geometry in millimetres.
type PageArea struct {
	PageWidthMM      float64 `json:"page_width_mm" koanf:"page_width_mm" validate:"gt=0"`
	PageHeightMM     float64 `json:"page_height_mm" koanf:"page_height_mm" validate:"gt=0"`
	MarginMM         float64 `json:"margin_mm" koanf:"margin_mm" validate:"gte=0"`
	ReservedTopMM    float64 `json:"reserved_top_mm" koanf:"reserved_top_mm" validate:"gte=0"`
	ReservedBottomMM float64 `json:"reserved_bottom_mm" koanf:"reserved_bottom_mm" validate:"gte=0"`
	BlockSpacingMM   float64 `json:"block_spacing_mm" koanf:"block_spacing_mm" validate:"gte=0"`
}

// A4 returns the default A4 portrait page.
func A4() PageArea {
	return PageArea{
		PageWidthMM:      A4WidthMM,
		PageHeightMM:     A4HeightMM,
		MarginMM:         DefaultMarginMM,
		ReservedTopMM:    DefaultReservedTopMM,
		ReservedBottomMM: DefaultReservedBottomMM,
		BlockSpacingMM:   DefaultBlockSpacingMM,
	}
}

// Landscape returns the page rotated by 90 degrees.
func (p PageArea) Landscape() PageArea {
	if p.PageWidthMM < p.PageHeightMM {
		p.PageWidthMM, p.PageHeightMM = p.PageHeightMM, p.PageWidthMM
	}
	return p
}

// UsableWidth is the horizontal space between the side margins.
func (p PageArea) UsableWidth() float64 {
	return math.Max(0, p.PageWidthMM-2*p.MarginMM)
}

// UsableHeight is the vertical space available to the first block of a page.
func (p PageArea) UsableHeight() float64 {
	return math.Max(0, p.PageHeightMM-p.ReservedTopMM-p.ReservedBottomMM-p.MarginMM)
}

// ContentTop is where content starts on a fresh page.
func (p PageArea) ContentTop() float64 {
	return p.ReservedTopMM + p.MarginMM
}

// ContentBottom is the lowest y content may reach.
func (p PageArea) ContentBottom() float64 {
	return p.ContentTop() + p.UsableHeight()
}

// Valid reports whether the page leaves any usable area.
func (p PageArea) Valid() bool {
	return finite(p.PageWidthMM, p.PageHeightMM, p.MarginMM, p.ReservedTopMM, p.ReservedBottomMM, p.BlockSpacingMM) &&
		p.UsableWidth() > 0 && p.UsableHeight() > 0
}

// DrawRect is where a block is drawn.
type DrawRect struct {
	XMM       float64 `json:"x_mm"`
	YMM       float64 `json:"y_mm"`
	WidthMM   float64 `json:"width_mm"`
	HeightMM  float64 `json:"height_mm"`
	PageIndex int     `json:"page_index"`
}

// Bottom returns the y coordinate of the rectangle's lower edge.
func (r DrawRect) Bottom() float64 {
	return r.YMM + r.HeightMM
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
