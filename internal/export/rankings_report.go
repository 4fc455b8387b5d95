// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package export

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/fleetwatch/internal/capture"
	"github.com/tomtom215/fleetwatch/internal/layout"
	"github.com/tomtom215/fleetwatch/internal/models"
	"github.com/tomtom215/fleetwatch/internal/ranking"
)

// RankingRegions describes the three ranking tables of a rankings report.
func RankingRegions(byIdentifier, byType models.RankingsData, groupBy models.GroupBy) []capture.Region {
	plural := groupBy.Plural()
	entity := "Camión"
	if groupBy == models.GroupByDriver {
		entity = "Conductor"
	}

	return []capture.Region{
		{
			ID:      "top-alarms",
			Kind:    capture.KindRankingTable,
			Title:   fmt.Sprintf("Top %d %s con más alarmas", ranking.MaxRankedItems, plural),
			Items:   byIdentifier.Top,
			Headers: []string{"#", groupBy.Singular(), "Alarmas", "%", "Evento más recurrente"},
		},
		{
			ID:      "alarms-by-type",
			Kind:    capture.KindRankingTable,
			Title:   "Todos los eventos por tipo",
			Items:   byType.All,
			Headers: []string{"#", "Tipo de alarma", "Alarmas", "%", entity + " más recurrente"},
		},
		{
			ID:      "best-performers",
			Kind:    capture.KindRankingTable,
			Title:   fmt.Sprintf("Top %d %s con menos alarmas", ranking.MaxRankedItems, plural),
			Items:   byIdentifier.Best,
			Headers: []string{"#", groupBy.Singular(), "Alarmas", "%", "Evento más recurrente"},
		},
	}
}

func (o *Orchestrator) rankings(ctx context.Context, job *Job) (*Document, error) {
	page := o.settings.RankingsPage
	if !page.Valid() {
		return nil, fmt.Errorf("invalid rankings page geometry %+v", page)
	}

	filtered := o.settings.filter().Apply(job.Report.Events, job.Criteria)
	byIdentifier := ranking.Aggregate(filtered.Events, job.GroupBy)
	byType := ranking.AggregateByAlarmType(filtered.Events, job.GroupBy)

	regions := RankingRegions(byIdentifier, byType, job.GroupBy)
	captures, err := o.captureAll(ctx, job.ID, regions)
	if err != nil {
		return nil, err
	}

	company := o.companyName(job, filtered.Events)
	created := o.timestamp(job)

	var pages pageSet
	o.rankingsIntro(&pages, page, job, company, len(byIdentifier.All), created)

	placeholders := 0
	for i, region := range regions {
		block := layout.Block{Capture: captures[i], ZoomFactor: o.settings.RankingZoom, Label: region.Title}
		res := layout.Layout([]layout.Block{block}, page, page.ContentTop())
		for _, p := range res.Placements {
			p.Rect.PageIndex += 1 + i
			if drawPlacement(&pages, p, captures[i]) {
				placeholders++
			}
		}
	}

	doc := &Document{
		JobID:        job.ID,
		Kind:         KindRankings,
		Title:        RankingsTitle,
		FileName:     FileName(RankingsFilePrefix, created, "pdf", job.GroupBy.Plural(), company),
		PageWidthMM:  page.PageWidthMM,
		PageHeightMM: page.PageHeightMM,
		Pages:        pages.pages,
		Placeholders: placeholders,
	}
	o.decorate(doc, page, footerInfo{
		Brand:    o.settings.Brand + " - Reporte de Rankings",
		Company:  company,
		Source:   job.Report.FileName,
		Created:  created,
		Subtitle: o.settings.GeneratedBy,
	})
	return doc, nil
}

func (o *Orchestrator) rankingsIntro(pages *pageSet, page layout.PageArea, job *Job, company string, entities int, created time.Time) {
	title := TextStyle{SizePt: 24, Color: ColorPrimary, Align: AlignCenter}
	info := TextStyle{SizePt: 14, Color: ColorMuted, Align: AlignLeft}
	heading := TextStyle{SizePt: 16, Color: ColorPrimary, Align: AlignLeft}
	bullet := TextStyle{SizePt: 14, Color: Color{50, 50, 50}, Align: AlignLeft}

	entityLabel := "Vehículos"
	if job.GroupBy == models.GroupByDriver {
		entityLabel = "Conductores"
	}

	pages.text(0, page.PageWidthMM/2, 30, RankingsTitle, title)

	x, y := 15.0, 50.0
	for _, line := range []string{
		"Empresa: " + orNA(company),
		fmt.Sprintf("Cantidad de %s: %d", entityLabel, entities),
		"Archivo fuente: " + orNA(job.Report.FileName),
		"Fecha: " + created.Format("02/01/2006 15:04"),
	} {
		pages.text(0, x, y, line, info)
		y += 10
	}

	y += 10
	pages.text(0, x, y, "Los rankings se mostrarán en las siguientes hojas:", heading)
	y += 15
	for _, line := range []string{
		"• Camiones o Conductores con más eventos",
		"• Todos los Eventos por Tipo",
		"• Camiones o Conductores con menos eventos",
	} {
		pages.text(0, x+8, y, line, bullet)
		y += 12
	}
}

// drawPlacement emits the label and image (or placeholder text) of a placed
// block and reports whether a placeholder was drawn.
func drawPlacement(pages *pageSet, p layout.Placement, c models.CaptureResult) bool {
	r := p.Rect
	label := TextStyle{SizePt: 13, Bold: true, Color: ColorPrimary, Align: AlignLeft}

	if p.Label != "" {
		pages.text(r.PageIndex, r.XMM, r.YMM-2.5, p.Label, label)
	}

	if p.Placeholder {
		pages.fill(r.PageIndex, r.XMM, r.YMM, r.WidthMM, r.HeightMM, ColorHighlight)
		pages.text(r.PageIndex, r.XMM+r.WidthMM/2, r.YMM+r.HeightMM/2+1.5,
			"No se pudo capturar: "+orNA(p.Label),
			TextStyle{SizePt: 10, Color: ColorSubtle, Align: AlignCenter})
		return true
	}

	pages.image(r, c.ImageBytes)
	return false
}

// companyName picks the explicit company, else the single company found in events.
func (o *Orchestrator) companyName(job *Job, events []models.Event) string {
	if job.Company != "" {
		return o.settings.Companies.Resolve(job.Company)
	}
	if job.Criteria.Company != "" {
		return o.settings.Companies.Resolve(job.Criteria.Company)
	}
	if found := o.settings.Companies.Distinct(events); len(found) == 1 {
		return found[0]
	}
	return ""
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
