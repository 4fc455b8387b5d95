// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandler_Levels(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  zerolog.Level
	}{
		{slog.LevelDebug - 4, zerolog.TraceLevel},
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
		{slog.LevelError + 4, zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := zerologLevel(tt.level); got != tt.want {
				t.Errorf("zerologLevel(%v) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	var buf bytes.Buffer
	h := NewSlogHandlerWithLogger(NewTestLogger(&buf).Level(zerolog.WarnLevel))

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled on a warn logger")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled on a warn logger")
	}
}

func TestSlogHandler_AttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewSlogHandlerWithLogger(NewTestLogger(&buf))).
		With("service", "http").
		WithGroup("supervisor")

	logger.Warn("service restarted",
		"attempt", 3,
		"backoff", 2*time.Second,
		slog.Group("last", slog.Bool("panicked", true)),
	)

	m := decodeLine(t, &buf)
	checks := map[string]interface{}{
		"level":                    "warn",
		"message":                  "service restarted",
		"service":                  "http",
		"supervisor.attempt":       float64(3),
		"supervisor.last.panicked": true,
	}
	for k, want := range checks {
		if m[k] != want {
			t.Errorf("%s = %v, want %v", k, m[k], want)
		}
	}
	if _, ok := m["supervisor.backoff"]; !ok {
		t.Error("duration attr missing")
	}
}

func TestSlogHandler_EmptyGroupIsNoop(t *testing.T) {
	h := NewSlogHandler()
	if h.WithGroup("") != h {
		t.Error("WithGroup(\"\") should return the same handler")
	}
}
