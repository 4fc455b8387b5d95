// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package services

import (
	"context"
	"time"

	"github.com/tomtom215/fleetwatch/internal/cache"
)

// CacheCleanupService periodically evicts expired cache entries.
type CacheCleanupService struct {
	cache    cache.Cleaner
	interval time.Duration
	name     string
}

// NewCacheCleanupService creates the service. name identifies the cache in
// supervisor logs.
func NewCacheCleanupService(name string, c cache.Cleaner, interval time.Duration) *CacheCleanupService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheCleanupService{cache: c, interval: interval, name: name}
}

// Serve implements suture.Service.
func (s *CacheCleanupService) Serve(ctx context.Context) error {
	return cache.RunCleanup(ctx, s.cache, s.interval)
}

func (s *CacheCleanupService) String() string {
	return "cache-cleanup:" + s.name
}
