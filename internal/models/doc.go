// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

/*
Package models defines data structures shared across Fleetwatch.

This package contains the value types that flow between the filter, ranking,
capture, layout and export packages, plus the alarm type catalog used to turn
raw alarm codes into display names. It has no dependencies on other internal
packages and serves as the single source of truth for data structure
definitions.

Key Components:

  - Event: One parsed alarm occurrence from a vehicle telematics report
  - ProcessedReport: A parsed report file (plate, source file, summary, events)
  - FilterCriteria: User-selected constraints applied before aggregation
  - RankingItem / RankingsData: Aggregated leaderboards (top, all, best)
  - RankingStats: Summary statistics over a ranking
  - CaptureResult: Rasterized image of a visual block, or the failed sentinel

Immutability:

Events are treated as immutable once parsed. Every package that transforms
events (filter, ranking) returns new slices and never mutates its input.

JSON Serialization:

Input types (Event, ProcessedReport) keep the field names produced by the
report parser so uploaded payloads decode without a translation layer.
Output types (RankingItem, RankingsData, RankingStats) use snake_case like
every other API response.
*/
package models
