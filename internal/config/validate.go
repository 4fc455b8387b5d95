// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package config

import (
	"fmt"

	"github.com/tomtom215/fleetwatch/internal/validation"
)

// Validate checks field rules and the cross-field constraints between them.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}

	if !c.Security.RateLimitDisabled && c.Security.RateLimitReqs > 0 && c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive when rate limiting is enabled")
	}
	if c.IsProduction() && len(c.Security.CORSOrigins) == 1 && c.Security.CORSOrigins[0] == "*" {
		return fmt.Errorf("CORS_ORIGINS must not be \"*\" in production")
	}
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive when the cache is enabled")
	}

	for name, page := range map[string]interface{ Valid() bool }{
		"report.events_page":   c.Report.EventsPage,
		"report.rankings_page": c.Report.RankingsPage,
	} {
		if !page.Valid() {
			return fmt.Errorf("%s leaves no usable area", name)
		}
	}
	return nil
}
