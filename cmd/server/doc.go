// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

// Package main is the Fleetwatch server.
//
// Fleetwatch turns parsed fleet alarm reports into rankings and printable PDF
// documents. Clients post the parsed report as JSON and receive either a
// rankings payload or a PDF download.
//
// # Startup
//
//  1. .env files are loaded into the environment (godotenv), when present
//  2. Configuration: defaults, then config.yaml, then environment (koanf v2)
//  3. Logging: zerolog initialized from the logging section
//  4. Capture stack: chart and table rasterizers, per-capture timeout, circuit breaker
//  5. Export orchestrator and PDF writer
//  6. Rankings cache and HTTP router
//  7. Supervisor tree: HTTP server and cache cleanup
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the supervisor context. The HTTP server stops
// accepting connections and drains in-flight requests within
// server.shutdown_timeout; in-flight exports are cancelled with their requests.
//
// # Example Usage
//
//	export REPORT_TIMEZONE=America/Santiago
//	export REPORT_LOGO_PATH=/etc/fleetwatch/logo.png
//	./fleetwatch
//
//	curl -X POST localhost:8080/api/v1/exports/report \
//	  -H 'Content-Type: application/json' -d @report.json -OJ
package main
