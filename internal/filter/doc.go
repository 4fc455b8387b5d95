// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

/*
Package filter narrows a report's events to the user's selection and derives
the per-day, per-hour and per-type views shown in reports.

Filtering is a pure function: the input slice is never modified and the
relative order of retained events is preserved. Each event's timestamp is
parsed exactly once; the parsed instants travel alongside the retained events
in Result so the derived views do not parse again.

Timestamp formats:

  - Purely numeric strings are Unix epoch seconds ("1709648530")
  - Everything else must be "dd/mm/yy, HH:MM:SS" ("05/03/24, 14:22:10");
    two-digit years are prefixed with "20"

Events whose timestamp cannot be parsed are excluded. The exclusion is never
silent: Result.Excluded counts them and the filter logs a warning.

Usage:

	f := filter.Filter{Location: loc, Companies: filter.DefaultCompanyNames()}
	res := f.Apply(report.Events, criteria)
	daily := res.DailyEvolution()
*/
package filter
