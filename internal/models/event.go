// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Event represents a single alarm occurrence in a vehicle report.
// Timestamp is kept in its raw form; internal/filter owns parsing.
type Event struct {
	Timestamp string  `json:"timestamp"`
	AlarmType string  `json:"alarmType"`
	VehicleID string  `json:"vehiclePlate"`
	DriverID  string  `json:"driver"`
	Comment   *string `json:"comments,omitempty"`
}

// CommentText returns the comment or an empty string when absent.
func (e Event) CommentText() string {
	if e.Comment == nil {
		return ""
	}
	return *e.Comment
}

// ReportSummary holds the totals computed by the report parser
type ReportSummary struct {
	TotalAlarms     int            `json:"totalAlarms"`
	AlarmTypes      map[string]int `json:"alarmTypes"`
	VideosRequested int            `json:"videosRequested"`
}

// ProcessedReport is the parsed form of one uploaded report file.
type ProcessedReport struct {
	VehiclePlate string        `json:"vehiclePlate" validate:"max=64"`
	FileName     string        `json:"fileName" validate:"max=255"`
	Summary      ReportSummary `json:"summary"`
	Events       []Event       `json:"events" validate:"max=200000"`
}

// UnmarshalJSON accepts the report identifier under either "vehiclePlate"
// or "vehiclePlateOrId". The former wins when both are set.
func (r *ProcessedReport) UnmarshalJSON(data []byte) error {
	type plain ProcessedReport
	var aux struct {
		plain
		VehiclePlateOrID string `json:"vehiclePlateOrId"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = ProcessedReport(aux.plain)
	if r.VehiclePlate == "" {
		r.VehiclePlate = aux.VehiclePlateOrID
	}
	return nil
}

// AllAlarmTypes is the sentinel alarm type selection meaning "no alarm type filtering".
// The English alias AllAlarmTypesAlias is accepted as well.
const (
	AllAlarmTypes      = "todos"
	AllAlarmTypesAlias = "all"
)

// FilterCriteria holds the user-selected constraints applied to events.
// DateStart and DateEnd are inclusive at whole-day granularity; a nil bound is open.
type FilterCriteria struct {
	AlarmTypes       []string   `json:"alarm_types,omitempty"`
	VehicleSubstring string     `json:"vehicle,omitempty" validate:"max=64"`
	DateStart        *time.Time `json:"date_start,omitempty"`
	DateEnd          *time.Time `json:"date_end,omitempty"`
	CommentSubstring string     `json:"comment,omitempty" validate:"max=256"`

	// Company keeps events whose driver belongs to the named company
	// (short or full name, case-insensitive). Empty disables the criterion.
	Company string `json:"company,omitempty" validate:"max=128"`
}

// MatchesAllAlarmTypes reports whether the alarm type selection disables filtering.
func (c FilterCriteria) MatchesAllAlarmTypes() bool {
	if len(c.AlarmTypes) == 0 {
		return true
	}
	for _, t := range c.AlarmTypes {
		if t == AllAlarmTypes || t == AllAlarmTypesAlias {
			return true
		}
	}
	return false
}

// GroupBy selects the identifier events are ranked by.
type GroupBy string

const (
	GroupByVehicle GroupBy = "vehicle"
	GroupByDriver  GroupBy = "driver"
)

// ParseGroupBy converts a request value to a GroupBy.
// The values used by the report UI ("truck", "camiones", "conductores") are accepted as aliases.
func ParseGroupBy(s string) (GroupBy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vehicle", "truck", "trucks", "camiones":
		return GroupByVehicle, nil
	case "driver", "drivers", "conductores":
		return GroupByDriver, nil
	default:
		return "", fmt.Errorf("unknown group_by %q: must be vehicle or driver", s)
	}
}

// Key returns the grouping identifier of an event.
func (g GroupBy) Key(e Event) string {
	if g == GroupByDriver {
		return e.DriverID
	}
	return e.VehicleID
}

// Plural returns the Spanish plural used in report titles and filenames.
func (g GroupBy) Plural() string {
	if g == GroupByDriver {
		return "conductores"
	}
	return "camiones"
}

// Singular returns the Spanish singular used in table headers.
func (g GroupBy) Singular() string {
	if g == GroupByDriver {
		return "Conductor"
	}
	return "Camión"
}
