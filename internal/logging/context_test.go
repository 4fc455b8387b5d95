// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package logging

import (
	"bytes"
	"context"
	"testing"
)

func TestContextIDs(t *testing.T) {
	ctx := context.Background()
	if CorrelationIDFromContext(ctx) != "" || RequestIDFromContext(ctx) != "" {
		t.Fatal("empty context should carry no IDs")
	}

	ctx = ContextWithCorrelationID(ctx, "job-1")
	ctx = ContextWithRequestID(ctx, "req-1")
	if got := CorrelationIDFromContext(ctx); got != "job-1" {
		t.Errorf("CorrelationIDFromContext() = %q", got)
	}
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext() = %q", got)
	}
}

func TestGenerateRequestID(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()
	if len(a) != 36 || a == b {
		t.Errorf("GenerateRequestID() = %q, %q", a, b)
	}
}

func TestCtx_AddsIDs(t *testing.T) {
	buf := captureGlobal(t)

	ctx := ContextWithRequestID(ContextWithCorrelationID(context.Background(), "job-9"), "req-9")
	CtxInfo(ctx).Msg("with ids")

	m := decodeLine(t, buf)
	if m["correlation_id"] != "job-9" || m["request_id"] != "req-9" {
		t.Errorf("entry = %v", m)
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))

	CtxWarn(ctx).Msg("stored logger")
	if m := decodeLine(t, &buf); m["message"] != "stored logger" {
		t.Errorf("entry = %v", m)
	}
}

func TestWithComponent(t *testing.T) {
	buf := captureGlobal(t)

	l := WithComponent("capture")
	l.Info().Msg("x")
	if m := decodeLine(t, buf); m["component"] != "capture" {
		t.Errorf("component = %v", m["component"])
	}
}
