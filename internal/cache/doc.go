// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

// Package cache holds computed ranking results between requests.
//
// Ranking a large report is cheap but not free, and dashboards tend to ask for
// the same report, grouping and criteria repeatedly while a user flips between
// views. Cache is a bounded TTL map with least-recently-used eviction. Keys
// come from GenerateKey, which hashes the JSON form of the request.
//
//	c := cache.New[models.RankingsData](10*time.Minute, 256)
//	key := cache.GenerateKey("rankings", req)
//	if v, ok := c.Get(key); ok {
//	    return v
//	}
//
// Expired entries are dropped lazily on Get and in bulk by Cleanup, which the
// supervisor runs periodically through CleanupService.
package cache
