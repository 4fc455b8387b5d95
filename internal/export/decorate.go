// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package export

import (
	"fmt"
	"time"

	"github.com/tomtom215/fleetwatch/internal/layout"
)

// Watermark position in millimeters from the top-left corner.
var watermarkRect = layout.DrawRect{XMM: 6, YMM: 6, WidthMM: 31, HeightMM: 10}

type footerInfo struct {
	Brand    string
	Company  string
	Source   string
	Created  time.Time
	Subtitle string
}

// Footer offsets below the content bottom, in millimeters.
const (
	footerRuleMM     = 2.0
	footerLineMM     = 6.5
	footerSubtitleMM = 10.5
)

// decorate adds the watermark, footer and page numbers to every page, and a
// running header to continuation pages. Page totals are only known once the
// body is complete, so this runs last. The footer lives in the reserved
// bottom band and never overlaps body content.
func (o *Orchestrator) decorate(doc *Document, page layout.PageArea, info footerInfo) {
	w := doc.PageWidthMM
	total := len(doc.Pages)
	bottom := page.ContentBottom()

	small := TextStyle{SizePt: 8, Color: ColorMuted, Align: AlignLeft}
	pageNo := TextStyle{SizePt: 8, Color: ColorMuted, Align: AlignRight}
	header := TextStyle{SizePt: 9, Bold: true, Color: ColorPrimary, Align: AlignRight}
	headerInfo := TextStyle{SizePt: 7, Color: ColorSubtle, Align: AlignRight}

	for i := range doc.Pages {
		p := &doc.Pages[i]

		wm := watermarkRect
		wm.PageIndex = i
		ops := []Operation{{Kind: OpDrawWatermark, Rect: wm}}

		if i > 0 {
			ops = append(ops,
				Operation{Kind: OpDrawText, XMM: w - 15, YMM: 10, Text: doc.Title, Style: header},
				Operation{Kind: OpDrawText, XMM: w - 15, YMM: 15, Style: headerInfo,
					Text: fmt.Sprintf("%s | %s | %s", orNA(info.Company), orNA(info.Source), info.Created.Format("02/01/2006 15:04"))},
			)
		}

		ops = append(ops,
			Operation{
				Kind:        OpDrawLine,
				Rect:        layout.DrawRect{XMM: 15, YMM: bottom + footerRuleMM, WidthMM: w - 30, PageIndex: i},
				Fill:        ColorMuted,
				LineWidthMM: 0.2,
			},
			Operation{Kind: OpDrawText, XMM: 15, YMM: bottom + footerLineMM, Text: info.Brand, Style: small},
			Operation{Kind: OpDrawText, XMM: w - 15, YMM: bottom + footerLineMM, Text: fmt.Sprintf("Página %d de %d", i+1, total), Style: pageNo},
		)
		if info.Subtitle != "" {
			ops = append(ops, Operation{Kind: OpDrawText, XMM: 15, YMM: bottom + footerSubtitleMM, Text: info.Subtitle, Style: small})
		}

		// The watermark goes under the body; the rest on top.
		p.Operations = append(append(ops[:1:1], p.Operations...), ops[1:]...)
	}
}
