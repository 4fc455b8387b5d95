// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// captureGlobal points the global logger at a buffer for the test's duration.
func captureGlobal(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := Logger()
	prevLevel := zerolog.GlobalLevel()
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() {
		SetLogger(prev)
		zerolog.SetGlobalLevel(prevLevel)
	})
	return &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	line := strings.TrimSpace(buf.String())
	if i := strings.LastIndex(line, "\n"); i >= 0 {
		line = line[i+1:]
	}
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(line), &m); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, line)
	}
	return m
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Level != "info" || cfg.Format != "json" || !cfg.Timestamp || cfg.Output == nil {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseLevel(tt.in); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInit_JSONAndConsole(t *testing.T) {
	prev := Logger()
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		SetLogger(prev)
		zerolog.SetGlobalLevel(prevLevel)
	})

	var jsonBuf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &jsonBuf})
	Debug().Str("k", "v").Msg("json entry")
	if m := decodeLine(t, &jsonBuf); m["message"] != "json entry" || m["k"] != "v" {
		t.Errorf("json entry = %v", m)
	}

	var consoleBuf bytes.Buffer
	Init(Config{Level: "info", Format: "console", Output: &consoleBuf})
	Debug().Msg("hidden")
	Info().Msg("console entry")
	out := consoleBuf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug entry written at info level")
	}
	if !strings.Contains(out, "console entry") || strings.HasPrefix(out, "{") {
		t.Errorf("console output = %q", out)
	}
}

func TestGlobalShortcuts(t *testing.T) {
	buf := captureGlobal(t)

	tests := []struct {
		name  string
		event *zerolog.Event
		level string
	}{
		{"debug", Debug(), "debug"},
		{"info", Info(), "info"},
		{"warn", Warn(), "warn"},
		{"error", Error(), "error"},
		{"err", Err(errTest), "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.event.Msg(tt.name)
			if m := decodeLine(t, buf); m["level"] != tt.level {
				t.Errorf("level = %v, want %s", m["level"], tt.level)
			}
		})
	}
}

func TestSetLevelString(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	SetLevelString("error")
	if GetLevel() != zerolog.ErrorLevel {
		t.Errorf("GetLevel() = %v, want error", GetLevel())
	}
}

type testError struct{}

func (testError) Error() string { return "boom" }

var errTest error = testError{}
