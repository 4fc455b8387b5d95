// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package filter

import (
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/fleetwatch/internal/models"
)

func strPtr(s string) *string { return &s }

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func sampleEvents() []models.Event {
	return []models.Event{
		{Timestamp: "01/03/24, 10:00:00", AlarmType: "fatiga", VehicleID: "ABCD12", DriverID: "Ana Soto (TPF)", Comment: strPtr("Revisado por supervisor")},
		{Timestamp: "01/03/24, 15:00:00", AlarmType: "cinturon", VehicleID: "WXYZ99", DriverID: "Luis Rojas (Llico)"},
		{Timestamp: "02/03/24, 09:00:00", AlarmType: "fatiga", VehicleID: "abcd12", DriverID: "Ana Soto (TPF)", Comment: strPtr("pendiente")},
		{Timestamp: "garbage", AlarmType: "telefono", VehicleID: "ABCD12", DriverID: "Pedro"},
	}
}

// ========================================
// ParseTimestamp
// ========================================

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"day month year clock", "05/03/24, 14:22:10", time.Date(2024, 3, 5, 14, 22, 10, 0, time.UTC), false},
		{"single digit fields", "5/3/24, 4:02:09", time.Date(2024, 3, 5, 4, 2, 9, 0, time.UTC), false},
		{"four digit year", "05/03/2024, 14:22:10", time.Date(2024, 3, 5, 14, 22, 10, 0, time.UTC), false},
		{"unix seconds", "1709648530", time.Unix(1709648530, 0).UTC(), false},
		{"surrounding whitespace", "  1709648530 ", time.Unix(1709648530, 0).UTC(), false},
		{"empty", "", time.Time{}, true},
		{"garbage", "garbage", time.Time{}, true},
		{"missing separator", "05/03/24 14:22:10", time.Time{}, true},
		{"iso format", "2024-03-05T14:22:10Z", time.Time{}, true},
		{"non numeric day", "aa/03/24, 14:22:10", time.Time{}, true},
		{"impossible date", "31/02/24, 10:00:00", time.Time{}, true},
		{"hour out of range", "05/03/24, 25:00:00", time.Time{}, true},
		{"negative number", "-100", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input, nil)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTimestamp(%q) expected error, got %v", tt.input, got)
				}
				if !errors.Is(err, ErrMalformedTimestamp) {
					t.Errorf("error should wrap ErrMalformedTimestamp, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTimestamp_Location(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("CLT", -3*3600)
	got, err := ParseTimestamp("05/03/24, 14:22:10", loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hour() != 14 || got.Location() != loc {
		t.Errorf("expected wall clock 14h in %v, got %v", loc, got)
	}
	if want := time.Date(2024, 3, 5, 17, 22, 10, 0, time.UTC); !got.Equal(want) {
		t.Errorf("instant = %v, want %v", got.UTC(), want)
	}
}

func TestParseDateBound(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"01-03-2024", "01/03/2024", "2024-03-01"} {
		got, err := ParseDateBound(input, nil)
		if err != nil {
			t.Fatalf("ParseDateBound(%q) error: %v", input, err)
		}
		if got.Year() != 2024 || got.Month() != time.March || got.Day() != 1 {
			t.Errorf("ParseDateBound(%q) = %v", input, got)
		}
	}

	if _, err := ParseDateBound("March 1st", nil); err == nil {
		t.Error("expected error for unsupported layout")
	}
}

// ========================================
// Apply
// ========================================

func TestApply_WholeDayBounds(t *testing.T) {
	t.Parallel()

	events := sampleEvents()[:3]
	res := Apply(events, models.FilterCriteria{
		DateStart: date(2024, 3, 1),
		DateEnd:   date(2024, 3, 1),
	})

	if len(res.Events) != 2 {
		t.Fatalf("expected 2 events on 2024-03-01, got %d", len(res.Events))
	}
	if res.Events[0].Timestamp != "01/03/24, 10:00:00" || res.Events[1].Timestamp != "01/03/24, 15:00:00" {
		t.Errorf("unexpected events or order: %+v", res.Events)
	}
	if len(res.Times) != len(res.Events) {
		t.Errorf("Times has %d entries, Events has %d", len(res.Times), len(res.Events))
	}
}

func TestApply_BoundIsInclusiveAtEndOfDay(t *testing.T) {
	t.Parallel()

	events := []models.Event{
		{Timestamp: "01/03/24, 23:59:59", AlarmType: "fatiga", VehicleID: "A"},
		{Timestamp: "02/03/24, 00:00:00", AlarmType: "fatiga", VehicleID: "B"},
		{Timestamp: "29/02/24, 23:59:59", AlarmType: "fatiga", VehicleID: "C"},
	}

	// Bounds carry a clock time; only the calendar day counts.
	start := time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC)
	res := Apply(events, models.FilterCriteria{DateStart: &start, DateEnd: &end})

	if len(res.Events) != 1 || res.Events[0].VehicleID != "A" {
		t.Errorf("expected only vehicle A, got %+v", res.Events)
	}
}

func TestApply_MalformedTimestampsAreCounted(t *testing.T) {
	t.Parallel()

	res := Apply(sampleEvents(), models.FilterCriteria{})

	if res.Total != 4 {
		t.Errorf("Total = %d, want 4", res.Total)
	}
	if res.Excluded != 1 {
		t.Errorf("Excluded = %d, want 1", res.Excluded)
	}
	if len(res.Events) != 3 {
		t.Errorf("expected 3 retained events, got %d", len(res.Events))
	}
}

func TestApply_Criteria(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		criteria models.FilterCriteria
		want     []string // timestamps in order
	}{
		{
			name:     "no criteria keeps parseable events",
			criteria: models.FilterCriteria{},
			want:     []string{"01/03/24, 10:00:00", "01/03/24, 15:00:00", "02/03/24, 09:00:00"},
		},
		{
			name:     "sentinel alarm type",
			criteria: models.FilterCriteria{AlarmTypes: []string{"todos"}},
			want:     []string{"01/03/24, 10:00:00", "01/03/24, 15:00:00", "02/03/24, 09:00:00"},
		},
		{
			name:     "explicit alarm types",
			criteria: models.FilterCriteria{AlarmTypes: []string{"cinturon"}},
			want:     []string{"01/03/24, 15:00:00"},
		},
		{
			name:     "vehicle substring is case insensitive",
			criteria: models.FilterCriteria{VehicleSubstring: "AbCd"},
			want:     []string{"01/03/24, 10:00:00", "02/03/24, 09:00:00"},
		},
		{
			name:     "comment substring skips events without comment",
			criteria: models.FilterCriteria{CommentSubstring: "REVISADO"},
			want:     []string{"01/03/24, 10:00:00"},
		},
		{
			name:     "company by short name",
			criteria: models.FilterCriteria{Company: "llico"},
			want:     []string{"01/03/24, 15:00:00"},
		},
		{
			name:     "company by legal name",
			criteria: models.FilterCriteria{Company: "TRANS PACIFIC FIBRE SA"},
			want:     []string{"01/03/24, 10:00:00", "02/03/24, 09:00:00"},
		},
		{
			name: "criteria combine",
			criteria: models.FilterCriteria{
				AlarmTypes:       []string{"fatiga"},
				VehicleSubstring: "abcd",
				DateStart:        date(2024, 3, 2),
			},
			want: []string{"02/03/24, 09:00:00"},
		},
	}

	f := Filter{Companies: DefaultCompanyNames()}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := f.Apply(sampleEvents(), tt.criteria)
			if len(res.Events) != len(tt.want) {
				t.Fatalf("got %d events, want %d: %+v", len(res.Events), len(tt.want), res.Events)
			}
			for i, ts := range tt.want {
				if res.Events[i].Timestamp != ts {
					t.Errorf("event %d timestamp = %q, want %q", i, res.Events[i].Timestamp, ts)
				}
			}
		})
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	events := sampleEvents()
	before := make([]models.Event, len(events))
	copy(before, events)

	_ = Apply(events, models.FilterCriteria{AlarmTypes: []string{"fatiga"}})

	for i := range events {
		if events[i].Timestamp != before[i].Timestamp || events[i].AlarmType != before[i].AlarmType {
			t.Fatalf("input event %d was modified", i)
		}
	}
}

func TestApply_Empty(t *testing.T) {
	t.Parallel()

	res := Apply(nil, models.FilterCriteria{})
	if res.Total != 0 || res.Excluded != 0 || len(res.Events) != 0 {
		t.Errorf("unexpected result for nil input: %+v", res)
	}
}
