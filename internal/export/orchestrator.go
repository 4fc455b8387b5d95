// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/tomtom215/fleetwatch/internal/capture"
	"github.com/tomtom215/fleetwatch/internal/logging"
	"github.com/tomtom215/fleetwatch/internal/metrics"
)

var (
	// ErrNoDocument is returned when an export aborts without a document.
	ErrNoDocument = errors.New("no document produced")

	// ErrUnknownKind is returned for jobs of an unsupported kind.
	ErrUnknownKind = errors.New("unknown export kind")
)

// Orchestrator runs export jobs against a capture adapter.
// It is safe for concurrent use; jobs never share state.
type Orchestrator struct {
	adapter  capture.Adapter
	settings Settings
	inflight *semaphore.Weighted
	now      func() time.Time
	log      *logging.ExportLogger
}

// NewOrchestrator creates an orchestrator.
func NewOrchestrator(adapter capture.Adapter, settings Settings) *Orchestrator {
	o := &Orchestrator{
		adapter:  adapter,
		settings: settings,
		now:      time.Now,
		log:      logging.NewExportLogger(),
	}
	if settings.MaxInflightCaptures > 0 {
		o.inflight = semaphore.NewWeighted(settings.MaxInflightCaptures)
	}
	return o
}

// Settings returns the orchestrator's report settings.
func (o *Orchestrator) Settings() Settings {
	return o.settings
}

// Run executes a job and returns its document.
// On error no document is returned; the error wraps ErrNoDocument.
func (o *Orchestrator) Run(ctx context.Context, job *Job) (*Document, error) {
	ctx = logging.ContextWithCorrelationID(ctx, job.ID)
	start := o.now()
	o.log.LogJobStarted(ctx, job.ID, string(job.Kind), len(job.Report.Events))

	var (
		doc *Document
		err error
	)
	switch job.Kind {
	case KindRankings:
		doc, err = o.rankings(ctx, job)
	case KindEvents:
		doc, err = o.events(ctx, job)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownKind, job.Kind)
	}

	elapsed := o.now().Sub(start)
	metrics.ExportDuration.WithLabelValues(string(job.Kind)).Observe(elapsed.Seconds())

	if err != nil {
		metrics.ExportsTotal.WithLabelValues(string(job.Kind), "error").Inc()
		o.log.LogJobAborted(ctx, job.ID, err)
		return nil, fmt.Errorf("%w: job %s: %w", ErrNoDocument, job.ID, err)
	}

	metrics.ExportsTotal.WithLabelValues(string(job.Kind), "success").Inc()
	metrics.ExportPages.WithLabelValues(string(job.Kind)).Observe(float64(len(doc.Pages)))
	o.log.LogJobCompleted(ctx, job.ID, doc.FileName, len(doc.Pages), doc.Placeholders, elapsed.Milliseconds())
	return doc, nil
}

// timestamp returns the job creation time in the report time zone.
func (o *Orchestrator) timestamp(job *Job) time.Time {
	t := job.CreatedAt
	if t.IsZero() {
		t = o.now()
	}
	return t.In(o.settings.location())
}
