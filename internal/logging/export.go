// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ExportLogger logs the lifecycle of export jobs under component=export.
type ExportLogger struct {
	logger zerolog.Logger
}

// NewExportLogger uses the global logger.
func NewExportLogger() *ExportLogger {
	return &ExportLogger{logger: WithComponent("export")}
}

// NewExportLoggerWithLogger uses logger instead of the global one.
//
//nolint:gocritic // zerolog.Logger is passed by value
func NewExportLoggerWithLogger(logger zerolog.Logger) *ExportLogger {
	return &ExportLogger{logger: logger.With().Str("component", "export").Logger()}
}

// with adds the request and correlation IDs of ctx.
func (e *ExportLogger) with(ctx context.Context) *zerolog.Logger {
	lc := e.logger.With()
	if id := RequestIDFromContext(ctx); id != "" {
		lc = lc.Str("request_id", id)
	}
	if id := CorrelationIDFromContext(ctx); id != "" {
		lc = lc.Str("correlation_id", id)
	}
	l := lc.Logger()
	return &l
}

func (e *ExportLogger) LogJobStarted(ctx context.Context, jobID, kind string, events int) {
	e.with(ctx).Info().
		Str("job_id", jobID).
		Str("kind", kind).
		Int("events", events).
		Msg("Export job started")
}

// LogCaptureFailed records a capture that will be replaced by a placeholder.
func (e *ExportLogger) LogCaptureFailed(ctx context.Context, jobID, regionID, kind string, err error) {
	e.with(ctx).Warn().
		Str("job_id", jobID).
		Str("region", regionID).
		Str("region_kind", kind).
		Err(err).
		Msg("Capture failed, drawing placeholder")
}

func (e *ExportLogger) LogJobCompleted(ctx context.Context, jobID, fileName string, pages, placeholders int, durationMs int64) {
	l := e.with(ctx)
	ev := l.Info()
	if placeholders > 0 {
		ev = l.Warn().Int("placeholders", placeholders)
	}
	ev.Str("job_id", jobID).
		Str("file", SanitizeFileName(fileName)).
		Int("pages", pages).
		Int64("duration_ms", durationMs).
		Msg("Export job completed")
}

// LogJobAborted records a job that ended without a document.
func (e *ExportLogger) LogJobAborted(ctx context.Context, jobID string, err error) {
	e.with(ctx).Error().
		Str("job_id", jobID).
		Err(err).
		Msg("Export job aborted")
}
