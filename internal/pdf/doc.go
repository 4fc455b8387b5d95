// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

// Package pdf turns an export.Document into PDF bytes with go-pdf/fpdf.
//
// The document already carries absolute millimeter coordinates for every
// operation, so the writer only replays them: no flow layout and no automatic
// page breaks. Text is drawn with the core Helvetica font through the cp1252
// translator, which covers the Spanish characters used in report labels.
package pdf
