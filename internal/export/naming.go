// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package export

import (
	"strings"
	"time"
)

// Filename prefixes.
const (
	RankingsFilePrefix = "rankings"
	EventsFilePrefix   = "reporte_conducción"
)

// FileName builds "{prefix}_{part}_..._{YYYYMMDD_HHmm}.{ext}".
// Empty parts are skipped and spaces become underscores.
func FileName(prefix string, t time.Time, ext string, parts ...string) string {
	segments := make([]string, 0, len(parts)+2)
	segments = append(segments, prefix)
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			segments = append(segments, p)
		}
	}
	segments = append(segments, t.Format("20060102_1504"))

	name := strings.Join(segments, "_") + "." + strings.TrimPrefix(ext, ".")
	return strings.ReplaceAll(name, " ", "_")
}
