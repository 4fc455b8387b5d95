// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package export

import (
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/fleetwatch/internal/models"
)

// Kind identifies the document an export produces.
type Kind string

const (
	KindRankings Kind = "rankings"
	KindEvents   Kind = "events"
)

// Job is one export request. Jobs are independent values; nothing in a Job
// is shared with other jobs.
type Job struct {
	ID        string
	Kind      Kind
	Report    models.ProcessedReport
	Criteria  models.FilterCriteria
	GroupBy   models.GroupBy
	Company   string
	CreatedAt time.Time
}

// NewJob creates a job with a fresh ID.
func NewJob(kind Kind, report models.ProcessedReport, criteria models.FilterCriteria, groupBy models.GroupBy, company string) *Job {
	if groupBy == "" {
		groupBy = models.GroupByVehicle
	}
	return &Job{
		ID:        uuid.NewString(),
		Kind:      kind,
		Report:    report,
		Criteria:  criteria,
		GroupBy:   groupBy,
		Company:   company,
		CreatedAt: time.Now(),
	}
}
