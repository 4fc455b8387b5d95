// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package filter

import (
	"testing"

	"github.com/tomtom215/fleetwatch/internal/models"
)

func TestResult_AlarmTypeCounts(t *testing.T) {
	t.Parallel()

	res := Apply(sampleEvents(), models.FilterCriteria{})
	counts := res.AlarmTypeCounts()

	if len(counts) != 2 {
		t.Fatalf("expected 2 alarm types, got %+v", counts)
	}
	if counts[0].AlarmType != "fatiga" || counts[0].Count != 2 || counts[0].Name != "Fatiga" {
		t.Errorf("unexpected first entry: %+v", counts[0])
	}
	if counts[1].AlarmType != "cinturon" || counts[1].Count != 1 {
		t.Errorf("unexpected second entry: %+v", counts[1])
	}
}

func TestResult_DailyEvolution(t *testing.T) {
	t.Parallel()

	events := []models.Event{
		{Timestamp: "02/03/24, 09:00:00"},
		{Timestamp: "01/03/24, 10:00:00"},
		{Timestamp: "02/03/24, 11:00:00"},
	}
	got := Apply(events, models.FilterCriteria{}).DailyEvolution()

	want := []DailyPoint{{Date: "2024-03-01", Count: 1}, {Date: "2024-03-02", Count: 2}}
	if len(got) != len(want) {
		t.Fatalf("DailyEvolution() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestResult_AlarmsByHour(t *testing.T) {
	t.Parallel()

	t.Run("empty result has no buckets", func(t *testing.T) {
		if got := (Result{}).AlarmsByHour(); got != nil {
			t.Errorf("expected nil buckets, got %v", got)
		}
	})

	t.Run("fixed 24 buckets", func(t *testing.T) {
		res := Apply(sampleEvents(), models.FilterCriteria{})
		got := res.AlarmsByHour()
		if len(got) != 24 {
			t.Fatalf("expected 24 buckets, got %d", len(got))
		}
		if got[0].Hour != "00:00" || got[23].Hour != "23:00" {
			t.Errorf("unexpected labels %q..%q", got[0].Hour, got[23].Hour)
		}
		if got[9].Count != 1 || got[10].Count != 1 || got[15].Count != 1 {
			t.Errorf("unexpected counts: %+v", got)
		}
		total := 0
		for _, b := range got {
			total += b.Count
		}
		if total != len(res.Events) {
			t.Errorf("bucket total %d != retained events %d", total, len(res.Events))
		}
	})
}
