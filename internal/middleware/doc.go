// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

// Package middleware holds the HTTP middleware that wraps every API route:
// request IDs, Prometheus instrumentation, access logging and gzip.
//
// All middleware use the func(http.Handler) http.Handler shape so they can be
// passed directly to chi's Use.
package middleware
