// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package validation

import (
	"strings"
	"testing"
)

type exportRequest struct {
	GroupBy    string   `json:"group_by" validate:"omitempty,groupby"`
	AlarmTypes []string `json:"alarm_types" validate:"omitempty,max=20,dive,alarmtype"`
	Timezone   string   `json:"timezone" validate:"omitempty,timezone"`
	Company    string   `json:"company" validate:"max=10"`
	Zoom       float64  `json:"zoom" validate:"gte=1,lte=4"`
	Internal   string   `json:"-" validate:"omitempty,min=2"`
}

func TestValidateStruct(t *testing.T) {
	valid := exportRequest{GroupBy: "conductores", AlarmTypes: []string{"fatiga", "todos"}, Timezone: "America/Santiago", Zoom: 2}

	tests := []struct {
		name      string
		mutate    func(r *exportRequest)
		wantField string
		wantTag   string
	}{
		{"valid", func(*exportRequest) {}, "", ""},
		{"bad group", func(r *exportRequest) { r.GroupBy = "fleet" }, "group_by", "groupby"},
		{"bad alarm type", func(r *exportRequest) { r.AlarmTypes = []string{"fatiga", "sleeping"} }, "alarm_types[1]", "alarmtype"},
		{"alias sentinel", func(r *exportRequest) { r.AlarmTypes = []string{"all"} }, "", ""},
		{"bad timezone", func(r *exportRequest) { r.Timezone = "Mars/Olympus" }, "timezone", "timezone"},
		{"long company", func(r *exportRequest) { r.Company = strings.Repeat("x", 11) }, "company", "max"},
		{"zoom too small", func(r *exportRequest) { r.Zoom = 0.5 }, "zoom", "gte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := ValidateStruct(&req)

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			got := err.Errors()[0]
			if got.Field() != tt.wantField || got.Tag() != tt.wantTag {
				t.Errorf("error on %s/%s, want %s/%s", got.Field(), got.Tag(), tt.wantField, tt.wantTag)
			}
		})
	}
}

func TestTranslateError(t *testing.T) {
	err := ValidateStruct(&exportRequest{Company: strings.Repeat("x", 11), Zoom: 9})
	if err == nil {
		t.Fatal("expected errors")
	}
	msg := err.Error()
	for _, want := range []string{"company must be at most 10 characters", "zoom must be less than or equal to 4"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestToAPIError(t *testing.T) {
	single := ValidateStruct(&exportRequest{Zoom: 0}).ToAPIError()
	if single.Code != "VALIDATION_ERROR" || single.Details["field"] != "zoom" {
		t.Errorf("single = %+v", single)
	}

	multi := ValidateStruct(&exportRequest{GroupBy: "x", Zoom: 0}).ToAPIError()
	fields, ok := multi.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Errorf("multi details = %+v", multi.Details)
	}

	empty := (&RequestValidationError{}).ToAPIError()
	if empty.Message != "Validation failed" {
		t.Errorf("empty = %+v", empty)
	}
}

func TestGetValidator_Singleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same instance")
	}
}
