// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package capture

import (
	"context"
	"errors"
	"fmt"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/fleetwatch/internal/logging"
	"github.com/tomtom215/fleetwatch/internal/metrics"
	"github.com/tomtom215/fleetwatch/internal/models"
)

// BreakerAdapter stops calling a misbehaving adapter after repeated failures.
// While open, captures fail fast and reports fall back to placeholders.
type BreakerAdapter struct {
	next Adapter
	cb   *gobreaker.CircuitBreaker[models.CaptureResult]
}

// NewBreakerAdapter wraps next with a circuit breaker.
// Uses gobreaker v2 generic API typed on CaptureResult.
func NewBreakerAdapter(next Adapter, cfg BreakerConfig) *BreakerAdapter {
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = DefaultBreakerConfig().FailureThreshold
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Capture circuit breaker state changed")
			metrics.CaptureBreakerState.WithLabelValues(name).Set(float64(to))
		},
		// A cancelled job or an empty region is not the adapter's fault.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, context.Canceled) ||
				errors.Is(err, ErrEmptyRegion)
		},
	}

	metrics.CaptureBreakerState.WithLabelValues(cfg.Name).Set(float64(gobreaker.StateClosed))

	return &BreakerAdapter{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[models.CaptureResult](settings),
	}
}

// Capture implements Adapter.
func (b *BreakerAdapter) Capture(ctx context.Context, region Region) (models.CaptureResult, error) {
	res, err := b.cb.Execute(func() (models.CaptureResult, error) {
		return b.next.Capture(ctx, region)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return models.FailedCapture(), fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}
	return res, err
}

// State returns the breaker state for health reporting.
func (b *BreakerAdapter) State() string {
	return b.cb.State().String()
}
