// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package filter

import (
	"strings"
	"time"

	"github.com/tomtom215/fleetwatch/internal/logging"
	"github.com/tomtom215/fleetwatch/internal/metrics"
	"github.com/tomtom215/fleetwatch/internal/models"
)

// maxLoggedMalformed caps the per-call warnings for unparseable timestamps.
const maxLoggedMalformed = 5

// Filter applies FilterCriteria to events.
// The zero value filters in UTC with no company resolution.
type Filter struct {
	// Location is used to parse "dd/mm/yy, HH:MM:SS" timestamps and to
	// widen date bounds to whole days. Nil means UTC.
	Location *time.Location

	// Companies resolves the company criterion. Nil means short names only.
	Companies CompanyNames
}

// Result is the outcome of a filter pass.
// Times[i] is the parsed instant of Events[i].
type Result struct {
	Events   []models.Event
	Times    []time.Time
	Total    int
	Excluded int
}

// Apply filters events with the zero Filter.
func Apply(events []models.Event, c models.FilterCriteria) Result {
	return Filter{}.Apply(events, c)
}

// Apply returns the events matching every criterion, in input order.
func (f Filter) Apply(events []models.Event, c models.FilterCriteria) Result {
	loc := f.location()

	res := Result{
		Events: make([]models.Event, 0, len(events)),
		Times:  make([]time.Time, 0, len(events)),
		Total:  len(events),
	}

	var start, end time.Time
	if c.DateStart != nil {
		start = startOfDay(*c.DateStart, loc)
	}
	if c.DateEnd != nil {
		end = endOfDay(*c.DateEnd, loc)
	}

	allTypes := c.MatchesAllAlarmTypes()
	var types map[string]struct{}
	if !allTypes {
		types = make(map[string]struct{}, len(c.AlarmTypes))
		for _, t := range c.AlarmTypes {
			types[t] = struct{}{}
		}
	}

	vehicle := strings.ToLower(c.VehicleSubstring)
	comment := strings.ToLower(c.CommentSubstring)
	company := strings.TrimSpace(c.Company)

	for _, e := range events {
		ts, err := ParseTimestamp(e.Timestamp, loc)
		if err != nil {
			res.Excluded++
			if res.Excluded <= maxLoggedMalformed {
				logging.Warn().
					Str("timestamp", e.Timestamp).
					Str("vehicle", e.VehicleID).
					Err(err).
					Msg("Excluding event with unparseable timestamp")
			}
			continue
		}

		if !start.IsZero() && ts.Before(start) {
			continue
		}
		if !end.IsZero() && ts.After(end) {
			continue
		}
		if !allTypes {
			if _, ok := types[e.AlarmType]; !ok {
				continue
			}
		}
		if vehicle != "" && !strings.Contains(strings.ToLower(e.VehicleID), vehicle) {
			continue
		}
		if comment != "" && !strings.Contains(strings.ToLower(e.CommentText()), comment) {
			continue
		}
		if company != "" && !f.matchesCompany(e.DriverID, company) {
			continue
		}

		res.Events = append(res.Events, e)
		res.Times = append(res.Times, ts)
	}

	if res.Excluded > 0 {
		metrics.FilterExcludedEvents.Add(float64(res.Excluded))
		logging.Warn().
			Int("excluded", res.Excluded).
			Int("total", res.Total).
			Msg("Events excluded due to malformed timestamps")
	}

	return res
}

func (f Filter) location() *time.Location {
	if f.Location == nil {
		return time.UTC
	}
	return f.Location
}

func (f Filter) matchesCompany(driver, company string) bool {
	short, ok := ShortOf(driver)
	if !ok {
		return strings.EqualFold(company, NoCompany)
	}
	return strings.EqualFold(short, company) || strings.EqualFold(f.Companies.Resolve(short), company)
}
