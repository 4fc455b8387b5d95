// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package export

import (
	"time"

	"github.com/tomtom215/fleetwatch/internal/filter"
	"github.com/tomtom215/fleetwatch/internal/layout"
)

// Report titles.
const (
	RankingsTitle = "Rankings de Eventos de Conducción"
	EventsTitle   = "Reporte de Alarmas de Conducción"
)

// Settings holds report-wide presentation settings.
type Settings struct {
	// EventsPage and RankingsPage are the page geometries per document kind.
	EventsPage   layout.PageArea
	RankingsPage layout.PageArea

	// RankingZoom and ChartZoom magnify captured blocks (>= 1).
	RankingZoom float64
	ChartZoom   float64

	// Location is used for timestamps printed on reports.
	Location *time.Location

	Companies   filter.CompanyNames
	Brand       string
	GeneratedBy string

	// CaptureConcurrency bounds concurrent captures per job.
	CaptureConcurrency int

	// MaxInflightCaptures bounds concurrent captures across all jobs. 0 disables the cap.
	MaxInflightCaptures int64

	// TableRowMM is the events table row height.
	TableRowMM float64
}

// DefaultSettings returns the settings used by the report UI.
func DefaultSettings() Settings {
	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		loc = time.UTC
	}
	return Settings{
		EventsPage:          layout.A4(),
		RankingsPage:        layout.A4().Landscape(),
		RankingZoom:         1,
		ChartZoom:           1,
		Location:            loc,
		Companies:           filter.DefaultCompanyNames(),
		Brand:               "West Ingeniería",
		GeneratedBy:         "Generado por Sistema de Análisis de Alarmas",
		CaptureConcurrency:  3,
		MaxInflightCaptures: 16,
		TableRowMM:          6,
	}
}

func (s Settings) location() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

func (s Settings) filter() filter.Filter {
	return filter.Filter{Location: s.location(), Companies: s.Companies}
}
