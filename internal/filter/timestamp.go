// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package filter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedTimestamp is returned when a timestamp matches neither supported format.
var ErrMalformedTimestamp = errors.New("malformed timestamp")

// ParseTimestamp parses an event timestamp in the given location.
// A nil location means UTC.
func ParseTimestamp(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrMalformedTimestamp)
	}

	if isDigits(s) {
		secs, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %v", ErrMalformedTimestamp, raw, err)
		}
		return time.Unix(secs, 0).In(loc), nil
	}

	datePart, timePart, ok := strings.Cut(s, ", ")
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q: missing \", \" separator", ErrMalformedTimestamp, raw)
	}

	dateFields := strings.Split(datePart, "/")
	timeFields := strings.Split(timePart, ":")
	if len(dateFields) != 3 || len(timeFields) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q: expected dd/mm/yy, HH:MM:SS", ErrMalformedTimestamp, raw)
	}

	yearField := dateFields[2]
	if len(yearField) == 2 {
		yearField = "20" + yearField
	}

	nums := make([]int, 6)
	for i, field := range []string{dateFields[0], dateFields[1], yearField, timeFields[0], timeFields[1], timeFields[2]} {
		if !isDigits(field) {
			return time.Time{}, fmt.Errorf("%w: %q: non-numeric field %q", ErrMalformedTimestamp, raw, field)
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %v", ErrMalformedTimestamp, raw, err)
		}
		nums[i] = n
	}

	day, month, year, hour, minute, second := nums[0], nums[1], nums[2], nums[3], nums[4], nums[5]
	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, loc)

	// time.Date normalizes out-of-range values (31/02 becomes 03/03); reject those.
	if t.Day() != day || int(t.Month()) != month || t.Year() != year ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != second {
		return time.Time{}, fmt.Errorf("%w: %q: field out of range", ErrMalformedTimestamp, raw)
	}

	return t, nil
}

// ParseDateBound parses a user supplied date bound.
// Accepted layouts are "dd-mm-yyyy" (report UI), "dd/mm/yyyy" and "yyyy-mm-dd".
func ParseDateBound(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range []string{"02-01-2006", "02/01/2006", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, strings.TrimSpace(raw), loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected dd-mm-yyyy or yyyy-mm-dd", raw)
}

// startOfDay and endOfDay widen a bound to whole-day granularity.
// The bound's calendar date is kept as written; only the clock is replaced.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func endOfDay(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
