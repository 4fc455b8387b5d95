// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/fleetwatch/internal/logging"
)

// AccessLog writes one structured line per request. Requests slower than
// slow are logged at warn level.
func AccessLog(slow time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			elapsed := time.Since(start)

			ev := logging.CtxDebug(r.Context())
			switch {
			case rec.status >= http.StatusInternalServerError:
				ev = logging.CtxError(r.Context())
			case slow > 0 && elapsed > slow:
				ev = logging.CtxWarn(r.Context()).Bool("slow", true)
			}
			ev.Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rec.status).
				Int("bytes", rec.bytes).
				Dur("duration", elapsed).
				Msg("HTTP request")
		})
	}
}
