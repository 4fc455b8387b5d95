// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package export

import (
	"context"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/tomtom215/fleetwatch/internal/capture"
	"github.com/tomtom215/fleetwatch/internal/filter"
	"github.com/tomtom215/fleetwatch/internal/layout"
	"github.com/tomtom215/fleetwatch/internal/models"
)

const (
	metricsRowMM     = 8.0
	sectionHeadingMM = 10.0
	showingLineMM    = 6.0

	maxDriverRunes  = 15
	maxCommentRunes = 25
)

// eventColumns are the events table columns as fractions of the usable width.
var eventColumns = []struct {
	title string
	share float64
}{
	{"Fecha", 0.22},
	{"Patente", 0.14},
	{"Tipo", 0.22},
	{"Conductor", 0.18},
	{"Comentarios", 0.24},
}

// ChartRegions describes the charts of an events report.
func ChartRegions(res filter.Result) []capture.Region {
	var byType, byDay, byHour []capture.Point
	for _, tc := range res.AlarmTypeCounts() {
		byType = append(byType, capture.Point{Label: tc.Name, Value: float64(tc.Count)})
	}
	for _, d := range res.DailyEvolution() {
		byDay = append(byDay, capture.Point{Label: d.Date, Value: float64(d.Count)})
	}
	for _, h := range res.AlarmsByHour() {
		byHour = append(byHour, capture.Point{Label: h.Hour, Value: float64(h.Count)})
	}

	return []capture.Region{
		{ID: "alarms-by-type", Kind: capture.KindPieChart, Title: "Distribución por tipo de alarma", Points: byType},
		{ID: "daily-evolution", Kind: capture.KindBarChart, Title: "Evolución diaria de alarmas", Points: byDay},
		{ID: "alarms-by-hour", Kind: capture.KindLineChart, Title: "Alarmas por hora del día", Points: byHour},
	}
}

func (o *Orchestrator) events(ctx context.Context, job *Job) (*Document, error) {
	page := o.settings.EventsPage
	if !page.Valid() {
		return nil, fmt.Errorf("invalid events page geometry %+v", page)
	}

	filtered := o.settings.filter().Apply(job.Report.Events, job.Criteria)
	regions := ChartRegions(filtered)
	captures, err := o.captureAll(ctx, job.ID, regions)
	if err != nil {
		return nil, err
	}

	company := o.companyName(job, filtered.Events)
	created := o.timestamp(job)

	var pages pageSet
	y := o.eventsHeader(&pages, page, job, company, created)
	y = o.metricsSummary(&pages, page, job, filtered, y)

	pages.text(0, page.MarginMM, y+6, "Análisis Gráfico", headingStyle())
	y += sectionHeadingMM

	blocks := make([]layout.Block, len(regions))
	for i, region := range regions {
		blocks[i] = layout.Block{Capture: captures[i], ZoomFactor: o.settings.ChartZoom, Label: region.Title}
	}
	// Labels sit in the spacing band above each block.
	charts := layout.Layout(blocks, page, y+page.BlockSpacingMM)
	placeholders := 0
	for i, p := range charts.Placements {
		if drawPlacement(&pages, p, captures[i]) {
			placeholders++
		}
	}

	endPage, endY := o.eventsTable(&pages, page, filtered, charts.EndPage, charts.EndYMM)

	total := job.Report.Summary.TotalAlarms
	if total == 0 {
		total = len(job.Report.Events)
	}
	if endY+showingLineMM > page.ContentBottom() {
		endPage, endY = endPage+1, page.ContentTop()
	}
	pages.text(endPage, page.MarginMM, endY+showingLineMM,
		fmt.Sprintf("Mostrando %d de %d eventos", len(filtered.Events), total),
		TextStyle{SizePt: 9, Color: ColorMuted, Align: AlignLeft})

	doc := &Document{
		JobID:        job.ID,
		Kind:         KindEvents,
		Title:        EventsTitle,
		FileName:     FileName(EventsFilePrefix, created, "pdf", job.Report.VehiclePlate, company),
		PageWidthMM:  page.PageWidthMM,
		PageHeightMM: page.PageHeightMM,
		Pages:        pages.pages,
		Placeholders: placeholders,
	}
	o.decorate(doc, page, footerInfo{
		Brand:    o.settings.Brand + " - Reporte de Conducción",
		Company:  company,
		Source:   job.Report.FileName,
		Created:  created,
		Subtitle: o.settings.GeneratedBy,
	})
	return doc, nil
}

func headingStyle() TextStyle {
	return TextStyle{SizePt: 14, Bold: true, Color: ColorPrimary, Align: AlignLeft}
}

// eventsHeader draws the first page header and returns the y below it.
func (o *Orchestrator) eventsHeader(pages *pageSet, page layout.PageArea, job *Job, company string, created time.Time) float64 {
	pages.text(0, page.PageWidthMM/2, 25, EventsTitle,
		TextStyle{SizePt: 22, Bold: true, Color: ColorPrimary, Align: AlignCenter})

	info := TextStyle{SizePt: 11, Color: ColorMuted, Align: AlignLeft}
	y := 40.0
	for _, line := range []string{
		"Empresa: " + orNA(company),
		"Vehículo: " + orNA(job.Report.VehiclePlate),
		"Archivo: " + orNA(job.Report.FileName),
		"Fecha: " + created.Format("02/01/2006 15:04"),
	} {
		pages.text(0, page.MarginMM, y, line, info)
		y += 7
	}
	return y
}

// metricsSummary draws the two-column summary table and returns the y below it.
func (o *Orchestrator) metricsSummary(pages *pageSet, page layout.PageArea, job *Job, res filter.Result, y float64) float64 {
	pages.text(0, page.MarginMM, y+6, "Resumen de Métricas", headingStyle())
	y += sectionHeadingMM

	summary := job.Report.Summary
	types := len(summary.AlarmTypes)
	if types == 0 {
		types = len(res.AlarmTypeCounts())
	}
	total := summary.TotalAlarms
	if total == 0 {
		total = res.Total
	}

	rows := [][2]string{
		{"Total de Alarmas", strconv.Itoa(total)},
		{"Tipos de Alarma", strconv.Itoa(types)},
	}
	if summary.VideosRequested > 0 {
		rows = append(rows, [2]string{"Vídeos Solicitados", strconv.Itoa(summary.VideosRequested)})
	}
	rows = append(rows, [2]string{"Eventos Filtrados", strconv.Itoa(len(res.Events))})
	if res.Excluded > 0 {
		rows = append(rows, [2]string{"Eventos con fecha inválida", strconv.Itoa(res.Excluded)})
	}

	x := page.MarginMM
	w := page.UsableWidth()
	label := TextStyle{SizePt: 10, Bold: true, Color: ColorText, Align: AlignLeft}
	value := TextStyle{SizePt: 10, Color: ColorText, Align: AlignRight}
	for i, row := range rows {
		if i%2 == 1 {
			pages.fill(0, x, y, w, metricsRowMM, ColorRowAlt)
		}
		pages.text(0, x+3, y+metricsRowMM-2.5, row[0], label)
		pages.text(0, x+w-3, y+metricsRowMM-2.5, row[1], value)
		y += metricsRowMM
	}
	pages.line(0, x, y, x+w, y, 0.2, ColorMuted)
	return y + page.BlockSpacingMM
}

// eventsTable paginates the filtered events and returns where it ended.
func (o *Orchestrator) eventsTable(pages *pageSet, page layout.PageArea, res filter.Result, startPage int, startY float64) (int, float64) {
	rowH := o.settings.TableRowMM
	if rowH <= 0 {
		rowH = 6
	}

	// The heading travels with the table when it cannot start on this page.
	if startY+sectionHeadingMM+2*rowH > page.ContentBottom() {
		startPage, startY = startPage+1, page.ContentTop()
	}
	pages.text(startPage, page.MarginMM, startY+6, "Eventos Filtrados", headingStyle())
	startY += sectionHeadingMM

	plan := layout.PlanTable(len(res.Events), rowH, page, startPage, startY)

	x0 := page.MarginMM
	w := page.UsableWidth()
	header := TextStyle{SizePt: 9, Bold: true, Color: ColorWhite, Align: AlignLeft}
	cell := TextStyle{SizePt: 8, Color: ColorText, Align: AlignLeft}
	loc := o.settings.location()

	for _, slot := range plan.Slots {
		baseline := slot.YMM + rowH - 1.8
		if slot.Header() {
			pages.fill(slot.PageIndex, x0, slot.YMM, w, rowH, ColorPrimary)
			x := x0
			for _, col := range eventColumns {
				pages.text(slot.PageIndex, x+1.5, baseline, col.title, header)
				x += col.share * w
			}
			continue
		}

		if slot.Row%2 == 1 {
			pages.fill(slot.PageIndex, x0, slot.YMM, w, rowH, ColorRowAlt)
		}
		x := x0
		for i, value := range eventCells(res.Events[slot.Row], res.Times[slot.Row], loc) {
			pages.text(slot.PageIndex, x+1.5, baseline, value, cell)
			x += eventColumns[i].share * w
		}
	}
	return plan.EndPage, plan.EndYMM
}

func eventCells(e models.Event, ts time.Time, loc *time.Location) []string {
	driver := e.DriverID
	if driver == "" {
		driver = "Sin conductor"
	}
	comment := e.CommentText()
	if comment == "" {
		comment = "Sin comentarios"
	}
	return []string{
		ts.In(loc).Format("02/01/2006 15:04"),
		e.VehicleID,
		models.AlarmTypeName(e.AlarmType),
		ellipsize(driver, maxDriverRunes),
		ellipsize(comment, maxCommentRunes),
	}
}

// ellipsize cuts s to n runes followed by "...".
func ellipsize(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
