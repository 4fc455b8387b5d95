// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

// Package logging is the zerolog-based structured logger shared by every
// Fleetwatch package.
//
// A single global logger is configured once at startup:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("addr", addr).Msg("HTTP server listening")
//
// Request and export code logs through the context helpers so the request ID
// and the export job ID (stored as the correlation ID) travel with every line:
//
//	logging.CtxInfo(ctx).Int("pages", n).Msg("Export finished")
//
// # Configuration
//
//	LOG_LEVEL   trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  json, console (default: json)
//	LOG_CALLER  include caller file:line (default: false)
//
// The values are read by the config package and handed to Init.
//
// # Adapters
//
// NewSlogLogger bridges log/slog consumers (the suture supervisor's
// sutureslog handler) onto the same zerolog output. ExportLogger carries the
// fixed vocabulary of export job events. The Sanitize helpers trim
// user-supplied values such as upload file names before they reach a log line.
package logging
