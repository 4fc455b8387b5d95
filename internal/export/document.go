// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package export

import (
	"github.com/tomtom215/fleetwatch/internal/layout"
)

// OpKind identifies a drawing operation.
type OpKind string

const (
	OpDrawImage     OpKind = "draw_image"
	OpDrawText      OpKind = "draw_text"
	OpDrawWatermark OpKind = "draw_watermark"
	OpDrawLine      OpKind = "draw_line"
	OpFillRect      OpKind = "fill_rect"
)

// Align is the horizontal anchor of text.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Color is an RGB color.
type Color struct {
	R, G, B uint8
}

// Report palette.
var (
	ColorPrimary   = Color{30, 58, 95}
	ColorText      = Color{0, 0, 0}
	ColorMuted     = Color{100, 100, 100}
	ColorSubtle    = Color{90, 90, 90}
	ColorWhite     = Color{255, 255, 255}
	ColorRowAlt    = Color{245, 245, 245}
	ColorHighlight = Color{240, 248, 255}
)

// TextStyle describes how text is drawn.
type TextStyle struct {
	SizePt float64 `json:"size_pt"`
	Bold   bool    `json:"bold,omitempty"`
	Color  Color   `json:"color"`
	Align  Align   `json:"align"`
}

// Operation is a single drawing instruction.
//
//   - OpDrawImage: Image drawn into Rect
//   - OpDrawText: Text anchored at (XMM, YMM) baseline
//   - OpDrawWatermark: watermark logo drawn into Rect
//   - OpDrawLine: line from (Rect.XMM, Rect.YMM) to (Rect.XMM+Rect.WidthMM, Rect.YMM+Rect.HeightMM)
//   - OpFillRect: Rect filled with Fill
type Operation struct {
	Kind        OpKind          `json:"kind"`
	Rect        layout.DrawRect `json:"rect"`
	Image       []byte          `json:"-"`
	Text        string          `json:"text,omitempty"`
	XMM         float64         `json:"x_mm,omitempty"`
	YMM         float64         `json:"y_mm,omitempty"`
	Style       TextStyle       `json:"style"`
	Fill        Color           `json:"fill"`
	LineWidthMM float64         `json:"line_width_mm,omitempty"`
}

// Page is one page of a document.
type Page struct {
	Index      int         `json:"index"`
	Operations []Operation `json:"operations"`
}

// Document is a writer-agnostic paginated report.
type Document struct {
	JobID        string  `json:"job_id"`
	Kind         Kind    `json:"kind"`
	FileName     string  `json:"file_name"`
	Title        string  `json:"title"`
	PageWidthMM  float64 `json:"page_width_mm"`
	PageHeightMM float64 `json:"page_height_mm"`
	Pages        []Page  `json:"pages"`
	Placeholders int     `json:"placeholders"`
}

// Landscape reports whether pages are wider than tall.
func (d *Document) Landscape() bool {
	return d.PageWidthMM > d.PageHeightMM
}

// pageSet collects operations by page index, creating pages on demand.
type pageSet struct {
	pages []Page
}

func (s *pageSet) ensure(index int) {
	for len(s.pages) <= index {
		s.pages = append(s.pages, Page{Index: len(s.pages)})
	}
}

func (s *pageSet) add(index int, op Operation) {
	s.ensure(index)
	s.pages[index].Operations = append(s.pages[index].Operations, op)
}

func (s *pageSet) text(index int, x, y float64, text string, style TextStyle) {
	s.add(index, Operation{Kind: OpDrawText, XMM: x, YMM: y, Text: text, Style: style})
}

func (s *pageSet) image(rect layout.DrawRect, img []byte) {
	s.add(rect.PageIndex, Operation{Kind: OpDrawImage, Rect: rect, Image: img})
}

func (s *pageSet) fill(index int, x, y, w, h float64, col Color) {
	s.add(index, Operation{
		Kind: OpFillRect,
		Rect: layout.DrawRect{XMM: x, YMM: y, WidthMM: w, HeightMM: h, PageIndex: index},
		Fill: col,
	})
}

func (s *pageSet) line(index int, x1, y1, x2, y2, width float64, col Color) {
	s.add(index, Operation{
		Kind:        OpDrawLine,
		Rect:        layout.DrawRect{XMM: x1, YMM: y1, WidthMM: x2 - x1, HeightMM: y2 - y1, PageIndex: index},
		Fill:        col,
		LineWidthMM: width,
	})
}
