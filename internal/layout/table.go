// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package layout

// TableSlot is the position of one table line.
// Row is -1 for a header line.
type TableSlot struct {
	Row       int     `json:"row"`
	PageIndex int     `json:"page_index"`
	YMM       float64 `json:"y_mm"`
}

// Header reports whether the slot holds the table header.
func (s TableSlot) Header() bool {
	return s.Row < 0
}

// TablePlan is the result of paginating a table.
type TablePlan struct {
	Slots   []TableSlot
	EndPage int
	EndYMM  float64
}

// PlanTable paginates rows of a fixed height, starting at (startPage, startYMM).
// A header line opens the table and is repeated at the top of every page the
// table continues on. A header is never left alone at the bottom of a page.
func PlanTable(rows int, rowHeightMM float64, page PageArea, startPage int, startYMM float64) TablePlan {
	c := newCursor(page, startPage, startYMM)
	// Rows are contiguous; spacing only applies between blocks.
	c.area.BlockSpacingMM = 0

	if rowHeightMM <= 0 || 2*rowHeightMM > page.UsableHeight() || !finite(rowHeightMM) {
		return TablePlan{EndPage: c.page, EndYMM: c.y}
	}

	slots := make([]TableSlot, 0, rows+1)

	// Header plus first row must fit together.
	if !c.fresh && c.y+2*rowHeightMM > c.area.ContentBottom() {
		c.breakPage()
	}
	header := c.place(0, rowHeightMM)
	slots = append(slots, TableSlot{Row: -1, PageIndex: header.PageIndex, YMM: header.YMM})

	for i := 0; i < rows; i++ {
		if c.y+rowHeightMM > c.area.ContentBottom() {
			c.breakPage()
			h := c.place(0, rowHeightMM)
			slots = append(slots, TableSlot{Row: -1, PageIndex: h.PageIndex, YMM: h.YMM})
		}
		r := c.place(0, rowHeightMM)
		slots = append(slots, TableSlot{Row: i, PageIndex: r.PageIndex, YMM: r.YMM})
	}

	return TablePlan{Slots: slots, EndPage: c.page, EndYMM: c.y}
}
