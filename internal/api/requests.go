// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/fleetwatch/internal/filter"
	"github.com/tomtom215/fleetwatch/internal/models"
)

// errBodyTooLarge is returned by decodeBody when the body exceeds the limit.
var errBodyTooLarge = errors.New("request body too large")

// FilterRequest is the wire form of the filter criteria. Dates are
// calendar days ("dd-mm-yyyy", "dd/mm/yyyy" or "yyyy-mm-dd").
type FilterRequest struct {
	AlarmTypes []string `json:"alarm_types" validate:"omitempty,max=32,dive,alarmtype"`
	Vehicle    string   `json:"vehicle" validate:"max=64"`
	DateStart  string   `json:"date_start" validate:"max=10"`
	DateEnd    string   `json:"date_end" validate:"max=10"`
	Comment    string   `json:"comment" validate:"max=256"`
	Company    string   `json:"company" validate:"max=128"`
}

// RankingsRequest is the body of POST /api/v1/rankings.
type RankingsRequest struct {
	Report  models.ProcessedReport `json:"report"`
	Filter  FilterRequest          `json:"filter"`
	GroupBy string                 `json:"group_by" validate:"omitempty,groupby"`
}

// ExportRequest is the body of both export endpoints.
type ExportRequest struct {
	Report  models.ProcessedReport `json:"report"`
	Filter  FilterRequest          `json:"filter"`
	GroupBy string                 `json:"group_by" validate:"omitempty,groupby"`

	// Company overrides the company printed on the report.
	Company string `json:"company" validate:"max=128"`
}

// criteria converts the wire filter, parsing dates in loc.
func (f FilterRequest) criteria(loc *time.Location) (models.FilterCriteria, error) {
	c := models.FilterCriteria{
		AlarmTypes:       f.AlarmTypes,
		VehicleSubstring: f.Vehicle,
		CommentSubstring: f.Comment,
		Company:          f.Company,
	}
	if f.DateStart != "" {
		t, err := filter.ParseDateBound(f.DateStart, loc)
		if err != nil {
			return c, fmt.Errorf("date_start: %w", err)
		}
		c.DateStart = &t
	}
	if f.DateEnd != "" {
		t, err := filter.ParseDateBound(f.DateEnd, loc)
		if err != nil {
			return c, fmt.Errorf("date_end: %w", err)
		}
		c.DateEnd = &t
	}
	if c.DateStart != nil && c.DateEnd != nil && c.DateEnd.Before(*c.DateStart) {
		return c, errors.New("date_end must not be before date_start")
	}
	return c, nil
}

// decodeBody decodes a JSON body of at most maxBytes into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, maxBytes int64, dst interface{}) error {
	if maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return errBodyTooLarge
		}
		return fmt.Errorf("read body: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}
