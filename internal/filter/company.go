// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package filter

import (
	"regexp"
	"strings"

	"github.com/tomtom215/fleetwatch/internal/models"
)

// NoCompany is reported for drivers without a "(Company)" suffix.
const NoCompany = "Sin empresa"

var companyPattern = regexp.MustCompile(`\(([^)]+)\)`)

// CompanyNames maps the short company names found in driver strings to their
// legal names.
type CompanyNames map[string]string

// DefaultCompanyNames returns the built-in company map
func DefaultCompanyNames() CompanyNames {
	return CompanyNames{
		"TPF":              "TRANS PACIFIC FIBRE SA",
		"Bosque Los Lagos": "BOSQUES LOS LAGOS SPA",
		"Llico":            "SOC. DE TRANSP. LLICO LTDA.",
	}
}

// Resolve returns the legal name for a short name, or the short name itself.
func (n CompanyNames) Resolve(short string) string {
	if full, ok := n[short]; ok {
		return full
	}
	return short
}

// ShortOf extracts the parenthesized company from a driver string.
func ShortOf(driver string) (string, bool) {
	m := companyPattern.FindStringSubmatch(driver)
	if m == nil {
		return "", false
	}
	short := strings.TrimSpace(m[1])
	return short, short != ""
}

// Of returns the resolved company of a driver string, or NoCompany.
func (n CompanyNames) Of(driver string) string {
	short, ok := ShortOf(driver)
	if !ok {
		return NoCompany
	}
	return n.Resolve(short)
}

// Distinct returns the resolved companies present in events, in first-seen order.
// Drivers without a company are skipped.
func (n CompanyNames) Distinct(events []models.Event) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, e := range events {
		short, ok := ShortOf(e.DriverID)
		if !ok {
			continue
		}
		full := n.Resolve(short)
		if _, dup := seen[full]; dup {
			continue
		}
		seen[full] = struct{}{}
		out = append(out, full)
	}
	return out
}
