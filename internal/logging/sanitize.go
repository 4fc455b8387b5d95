// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package logging

import (
	"path/filepath"
	"strings"
	"unicode"
)

const (
	maxFileNameLen = 120
	maxValueLen    = 200
)

// SanitizeFileName reduces a client-supplied file name to its base name
// without control characters, truncated for logging.
func SanitizeFileName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == "/" {
		return ""
	}
	return truncateString(stripControl(name), maxFileNameLen)
}

// SanitizeValue prepares a free-text value (comments, search terms) for a
// log field.
func SanitizeValue(value string) string {
	return truncateString(stripControl(value), maxValueLen)
}

func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// truncateString cuts s to maxLen runes and appends "...".
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
