// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package capture

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/fleetwatch/internal/models"
)

type timeoutAdapter struct {
	next    Adapter
	timeout time.Duration
}

// WithTimeout bounds every capture to d, even when next ignores its context.
// A non-positive d returns next unchanged.
func WithTimeout(next Adapter, d time.Duration) Adapter {
	if d <= 0 {
		return next
	}
	return &timeoutAdapter{next: next, timeout: d}
}

type captureOutcome struct {
	res models.CaptureResult
	err error
}

func (t *timeoutAdapter) Capture(ctx context.Context, region Region) (models.CaptureResult, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	done := make(chan captureOutcome, 1)
	go func() {
		res, err := t.next.Capture(ctx, region)
		done <- captureOutcome{res: res, err: err}
	}()

	select {
	case out := <-done:
		return out.res, out.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return models.FailedCapture(), fmt.Errorf("%w: region %s timed out after %s", ErrCaptureFailed, region.ID, t.timeout)
		}
		return models.FailedCapture(), ctx.Err()
	}
}
