// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

/*
Package api exposes rankings and report exports over HTTP.

Routes (chi):

	GET  /api/v1/health            liveness, uptime, capture breaker state
	POST /api/v1/rankings          rankings JSON for a parsed report
	POST /api/v1/exports/rankings  rankings PDF download
	POST /api/v1/exports/report    events report PDF download
	GET  /metrics                  Prometheus exposition

Request bodies carry the parsed report (vehicle plate, file name, summary,
events) together with the filter criteria and ranking dimension. JSON
responses use the APIResponse envelope; exports stream application/pdf with
a Content-Disposition filename.
*/
package api
