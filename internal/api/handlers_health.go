// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the body of GET /api/v1/health.
type HealthStatus struct {
	Status        string  `json:"status"`
	Uptime        float64 `json:"uptime_seconds"`
	CaptureStatus string  `json:"capture_breaker,omitempty"`
	CachedEntries int     `json:"cached_rankings"`
}

// Health reports liveness. The status is "degraded" while the capture
// breaker is open, since exports then only contain placeholders.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status: "healthy",
		Uptime: time.Since(h.startTime).Seconds(),
	}
	if h.breaker != nil {
		status.CaptureStatus = h.breaker.State()
		if status.CaptureStatus == "open" {
			status.Status = "degraded"
		}
	}
	if h.rankings != nil {
		status.CachedEntries = h.rankings.Len()
	}
	NewResponseWriter(w, r).Success(status)
}
