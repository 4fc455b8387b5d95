// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/tomtom215/fleetwatch/internal/export"
)

// ErrEmptyDocument is returned for documents without pages.
var ErrEmptyDocument = errors.New("document has no pages")

const (
	fontFamily = "Helvetica"

	// ptToMM converts font points to millimeters.
	ptToMM = 25.4 / 72

	watermarkAlpha = 0.15
)

// Writer renders documents. It is safe for concurrent use.
type Writer struct {
	// Logo is an optional PNG or JPEG drawn as the page watermark. Without
	// it the watermark is the brand name in light gray.
	Logo  []byte
	Brand string

	// Author is written to the PDF metadata.
	Author string
}

// NewWriter returns a Writer with the given watermark logo (may be nil).
func NewWriter(brand string, logo []byte) *Writer {
	return &Writer{Logo: logo, Brand: brand, Author: brand}
}

// Render returns the PDF bytes of doc.
func (w *Writer) Render(doc *export.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := w.Write(doc, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write renders doc to out.
func (w *Writer) Write(doc *export.Document, out io.Writer) error {
	if doc == nil || len(doc.Pages) == 0 {
		return ErrEmptyDocument
	}

	// fpdf swaps the size for landscape, so it takes the portrait form.
	orientation := "P"
	if doc.Landscape() {
		orientation = "L"
	}
	f := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "mm",
		Size: fpdf.SizeType{
			Wd: math.Min(doc.PageWidthMM, doc.PageHeightMM),
			Ht: math.Max(doc.PageWidthMM, doc.PageHeightMM),
		},
	})
	f.SetAutoPageBreak(false, 0)
	f.SetMargins(0, 0, 0)
	f.SetTitle(doc.Title, true)
	f.SetAuthor(w.Author, true)
	f.SetCreator("fleetwatch", false)
	f.SetCreationDate(time.Now())

	r := &renderer{
		f:     f,
		tr:    f.UnicodeTranslatorFromDescriptor(""),
		brand: w.Brand,
	}
	if len(w.Logo) > 0 {
		r.logo = r.register("logo", w.Logo)
	}

	for _, page := range doc.Pages {
		f.AddPage()
		for i, op := range page.Operations {
			r.draw(page.Index, i, op)
			if f.Err() {
				return fmt.Errorf("page %d operation %d (%s): %w", page.Index, i, op.Kind, f.Error())
			}
		}
	}

	if err := f.Output(out); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

type renderer struct {
	f     *fpdf.Fpdf
	tr    func(string) string
	brand string
	logo  string
}

// register adds an image to the document and returns its name.
func (r *renderer) register(name string, data []byte) string {
	r.f.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: imageType(data)}, bytes.NewReader(data))
	return name
}

func (r *renderer) draw(page, index int, op export.Operation) {
	switch op.Kind {
	case export.OpDrawImage:
		name := r.register(fmt.Sprintf("p%d-op%d", page, index), op.Image)
		r.f.ImageOptions(name, op.Rect.XMM, op.Rect.YMM, op.Rect.WidthMM, op.Rect.HeightMM,
			false, fpdf.ImageOptions{}, 0, "")

	case export.OpDrawText:
		r.text(op.XMM, op.YMM, op.Text, op.Style)

	case export.OpFillRect:
		r.f.SetFillColor(int(op.Fill.R), int(op.Fill.G), int(op.Fill.B))
		r.f.Rect(op.Rect.XMM, op.Rect.YMM, op.Rect.WidthMM, op.Rect.HeightMM, "F")

	case export.OpDrawLine:
		r.f.SetDrawColor(int(op.Fill.R), int(op.Fill.G), int(op.Fill.B))
		r.f.SetLineWidth(op.LineWidthMM)
		r.f.Line(op.Rect.XMM, op.Rect.YMM, op.Rect.XMM+op.Rect.WidthMM, op.Rect.YMM+op.Rect.HeightMM)

	case export.OpDrawWatermark:
		r.watermark(op)
	}
}

func (r *renderer) text(x, y float64, s string, style export.TextStyle) {
	weight := ""
	if style.Bold {
		weight = "B"
	}
	r.f.SetFont(fontFamily, weight, style.SizePt)
	r.f.SetTextColor(int(style.Color.R), int(style.Color.G), int(style.Color.B))

	s = r.tr(s)
	switch style.Align {
	case export.AlignCenter:
		x -= r.f.GetStringWidth(s) / 2
	case export.AlignRight:
		x -= r.f.GetStringWidth(s)
	}
	r.f.Text(x, y, s)
}

func (r *renderer) watermark(op export.Operation) {
	rect := op.Rect
	r.f.SetAlpha(watermarkAlpha, "Normal")
	defer r.f.SetAlpha(1, "Normal")

	if r.logo != "" {
		r.f.ImageOptions(r.logo, rect.XMM, rect.YMM, rect.WidthMM, rect.HeightMM, false, fpdf.ImageOptions{}, 0, "")
		return
	}
	if r.brand == "" {
		return
	}
	size := rect.HeightMM / ptToMM * 0.6
	r.text(rect.XMM, rect.YMM+rect.HeightMM*0.75, r.brand, export.TextStyle{
		SizePt: size,
		Bold:   true,
		Color:  export.ColorPrimary,
		Align:  export.AlignLeft,
	})
}

// imageType sniffs the fpdf image type from magic bytes.
func imageType(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return "JPG"
	case bytes.HasPrefix(data, []byte("GIF8")):
		return "GIF"
	default:
		return "PNG"
	}
}
