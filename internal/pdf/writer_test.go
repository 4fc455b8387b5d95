// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package pdf

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"regexp"
	"testing"

	"github.com/tomtom215/fleetwatch/internal/export"
	"github.com/tomtom215/fleetwatch/internal/layout"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, h/2, color.RGBA{30, 58, 95, 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func sampleDocument(t *testing.T) *export.Document {
	area := layout.A4()
	style := export.TextStyle{SizePt: 12, Color: export.ColorText, Align: export.AlignLeft}
	return &export.Document{
		JobID:        "job-1",
		Kind:         export.KindEvents,
		Title:        export.EventsTitle,
		FileName:     "reporte.pdf",
		PageWidthMM:  area.PageWidthMM,
		PageHeightMM: area.PageHeightMM,
		Pages: []export.Page{
			{Index: 0, Operations: []export.Operation{
				{Kind: export.OpDrawWatermark, Rect: layout.DrawRect{XMM: 6, YMM: 6, WidthMM: 31, HeightMM: 10}},
				{Kind: export.OpDrawText, XMM: 105, YMM: 25, Text: "Reporte de Conducción", Style: export.TextStyle{SizePt: 22, Bold: true, Align: export.AlignCenter}},
				{Kind: export.OpFillRect, Rect: layout.DrawRect{XMM: 20, YMM: 40, WidthMM: 170, HeightMM: 8}, Fill: export.ColorRowAlt},
				{Kind: export.OpDrawLine, Rect: layout.DrawRect{XMM: 15, YMM: 277, WidthMM: 180}, Fill: export.ColorMuted, LineWidthMM: 0.2},
				{Kind: export.OpDrawImage, Rect: layout.DrawRect{XMM: 20, YMM: 60, WidthMM: 170, HeightMM: 85}, Image: testPNG(t, 80, 40)},
			}},
			{Index: 1, Operations: []export.Operation{
				{Kind: export.OpDrawText, XMM: 195, YMM: 282, Text: "Página 2 de 2", Style: export.TextStyle{SizePt: 8, Align: export.AlignRight}},
				{Kind: export.OpDrawText, XMM: 20, YMM: 50, Text: "• Camión ñandú", Style: style},
			}},
		},
	}
}

func TestWriter_Render(t *testing.T) {
	tests := []struct {
		name string
		logo func(t *testing.T) []byte
	}{
		{"text watermark", func(*testing.T) []byte { return nil }},
		{"logo watermark", func(t *testing.T) []byte { return testPNG(t, 62, 20) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter("West Ingeniería", tt.logo(t))
			out, err := w.Render(sampleDocument(t))
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if !bytes.HasPrefix(out, []byte("%PDF-")) {
				t.Errorf("output does not start with a PDF header: %q", out[:8])
			}
			if got := bytes.Count(out, []byte("/Type /Page\n")); got != 2 {
				t.Errorf("page objects = %d, want 2", got)
			}
		})
	}
}

var mediaBoxRe = regexp.MustCompile(`/MediaBox \[0 0 ([\d.]+) ([\d.]+)\]`)

func TestWriter_PageSize(t *testing.T) {
	tests := []struct {
		name   string
		area   layout.PageArea
		wantWd string
		wantHt string
	}{
		{"portrait", layout.A4(), "595.28", "841.89"},
		{"landscape", layout.A4().Landscape(), "841.89", "595.28"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := sampleDocument(t)
			doc.PageWidthMM, doc.PageHeightMM = tt.area.PageWidthMM, tt.area.PageHeightMM

			out, err := NewWriter("", nil).Render(doc)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			boxes := mediaBoxRe.FindAllSubmatch(out, -1)
			if len(boxes) == 0 {
				t.Fatal("no MediaBox in output")
			}
			for _, m := range boxes {
				if string(m[1]) != tt.wantWd || string(m[2]) != tt.wantHt {
					t.Errorf("MediaBox = %s x %s pt, want %s x %s", m[1], m[2], tt.wantWd, tt.wantHt)
				}
			}
		})
	}
}

func TestWriter_EmptyDocument(t *testing.T) {
	w := NewWriter("x", nil)
	for _, doc := range []*export.Document{nil, {Title: "empty"}} {
		if _, err := w.Render(doc); !errors.Is(err, ErrEmptyDocument) {
			t.Errorf("Render() error = %v, want ErrEmptyDocument", err)
		}
	}
}

func TestWriter_BadImage(t *testing.T) {
	doc := sampleDocument(t)
	doc.Pages[0].Operations[4].Image = []byte("not an image")

	if _, err := NewWriter("x", nil).Render(doc); err == nil {
		t.Error("Render() with a corrupt image should fail")
	}
}

func TestImageType(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"png", []byte{0x89, 'P', 'N', 'G'}, "PNG"},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0}, "JPG"},
		{"gif", []byte("GIF89a"), "GIF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := imageType(tt.data); got != tt.want {
				t.Errorf("imageType() = %q, want %q", got, tt.want)
			}
		})
	}
}
