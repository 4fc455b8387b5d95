// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package export

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/fleetwatch/internal/capture"
	"github.com/tomtom215/fleetwatch/internal/metrics"
	"github.com/tomtom215/fleetwatch/internal/models"
)

// captureAll captures every region concurrently and returns results in
// region order. Failed captures yield the failed sentinel. The only error
// is cancellation of ctx, in which case in-flight captures are abandoned.
func (o *Orchestrator) captureAll(ctx context.Context, jobID string, regions []capture.Region) ([]models.CaptureResult, error) {
	results := make([]models.CaptureResult, len(regions))

	g, gctx := errgroup.WithContext(ctx)
	if n := o.settings.CaptureConcurrency; n > 0 {
		g.SetLimit(n)
	}

	for i, region := range regions {
		g.Go(func() error {
			res, err := o.captureOne(gctx, region)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				o.log.LogCaptureFailed(ctx, jobID, region.ID, string(region.Kind), err)
				metrics.CapturesTotal.WithLabelValues(string(region.Kind), "failed").Inc()
				results[i] = models.FailedCapture()
				return nil
			}
			if res.Failed() {
				o.log.LogCaptureFailed(ctx, jobID, region.ID, string(region.Kind), capture.ErrCaptureFailed)
				metrics.CapturesTotal.WithLabelValues(string(region.Kind), "failed").Inc()
				results[i] = models.FailedCapture()
				return nil
			}
			metrics.CapturesTotal.WithLabelValues(string(region.Kind), "success").Inc()
			results[i] = res
			return nil
		})
	}

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	select {
	case err := <-done:
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return results, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (o *Orchestrator) captureOne(ctx context.Context, region capture.Region) (models.CaptureResult, error) {
	if o.inflight != nil {
		if err := o.inflight.Acquire(ctx, 1); err != nil {
			return models.FailedCapture(), err
		}
		defer o.inflight.Release(1)
	}

	start := time.Now()
	defer func() {
		metrics.CaptureDuration.WithLabelValues(string(region.Kind)).Observe(time.Since(start).Seconds())
	}()

	return o.adapter.Capture(ctx, region)
}
