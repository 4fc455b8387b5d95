// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

// Package config loads Fleetwatch configuration with koanf.
//
// Sources are layered, later ones winning:
//
//  1. Built-in defaults (defaultConfig)
//  2. An optional YAML file: CONFIG_PATH, then config.yaml / config.yml in the
//     working directory, then /etc/fleetwatch/config.yaml
//  3. Environment variables, through an explicit name mapping
//
// Environment variables:
//
//	HTTP_HOST, HTTP_PORT                 listen address
//	HTTP_TIMEOUT, SHUTDOWN_TIMEOUT       request and shutdown deadlines
//	ENVIRONMENT                          development or production
//	LOG_LEVEL, LOG_FORMAT, LOG_CALLER    logging
//	RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
//	CORS_ORIGINS                         comma-separated origins
//	MAX_BODY_BYTES                       upload limit for report JSON
//	REPORT_TIMEZONE                      IANA zone for timestamps (America/Santiago)
//	REPORT_BRAND, REPORT_GENERATED_BY    footer texts
//	REPORT_LOGO_PATH                     optional watermark image
//	RANKING_ZOOM, CHART_ZOOM             block magnification (>= 1)
//	CAPTURE_CONCURRENCY                  captures in flight per job
//	MAX_INFLIGHT_CAPTURES                captures in flight across jobs
//	CAPTURE_TIMEOUT                      per-capture deadline
//	CAPTURE_SCALE                        raster scale factor
//	BREAKER_FAILURE_THRESHOLD, BREAKER_TIMEOUT
//	CACHE_ENABLED, CACHE_TTL, CACHE_MAX_ENTRIES
//
// The company name map (short name to legal name) can only be set from the
// YAML file, under report.companies.
package config
