// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

/*
Package export assembles paginated report documents.

An export runs as a pipeline over one Job:

	filter -> aggregate -> capture (concurrent) -> layout -> page operations -> header/footer pass

The output is a Document: an ordered list of pages, each holding drawing
operations (images, text, watermark, rules and filled boxes) in millimetre
coordinates. Documents are writer-agnostic; internal/pdf turns them into PDF
bytes.

Two document kinds exist:

  - Rankings report: an introduction page, then one page per ranking table
    (most alarms, alarms by type, fewest alarms)
  - Events report: header, metrics summary, chart blocks and the full events
    table with its header repeated on every page

Concurrency:

Every Job owns its page geometry and blocks; the Orchestrator keeps no
per-job state, so any number of jobs may run at once. Within a job, all
regions are captured concurrently and layout starts only after every capture
has resolved. A failed capture becomes a placeholder; cancelling the job's
context aborts it and no partial document is returned.

Page numbering ("Página X de Y") is added in a second pass once the total
page count is known.
*/
package export
