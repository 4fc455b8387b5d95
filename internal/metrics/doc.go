// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

// Package metrics defines the Prometheus collectors exported on /metrics.
//
// Collectors are registered on the default registry through promauto when the
// package is loaded, so importing it is enough to expose them.
//
// # Families
//
// Filtering and ranking:
//
//	fleetwatch_filter_excluded_events_total     events dropped for unparseable timestamps
//	fleetwatch_rankings_computed_total          aggregations by group_by and dimension
//
// Capture:
//
//	fleetwatch_captures_total                   captures by region kind and outcome
//	fleetwatch_capture_duration_seconds         capture latency by region kind
//	fleetwatch_capture_breaker_state            0 closed, 1 half-open, 2 open
//
// Export:
//
//	fleetwatch_exports_total                    jobs by kind and status
//	fleetwatch_export_duration_seconds          job latency by kind
//	fleetwatch_export_pages                     pages per produced document
//
// HTTP and cache:
//
//	fleetwatch_api_requests_total               requests by method, route and status
//	fleetwatch_api_request_duration_seconds     request latency by method and route
//	fleetwatch_api_active_requests              requests in flight
//	fleetwatch_api_rate_limit_hits_total        rejected requests by route
//	fleetwatch_cache_requests_total             ranking cache lookups by result
//	fleetwatch_cache_entries                    ranking cache size
//
// The recording helpers (RecordAPIRequest, RecordCacheLookup and friends) keep
// label values consistent across callers.
package metrics
