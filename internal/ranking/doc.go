// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

/*
Package ranking builds leaderboards from alarm events.

A single parameterized aggregation serves every ranking kind. It counts
events per primary key and, for each primary key, remembers which secondary
value occurred most often:

	Aggregate(events, GroupByVehicle)            primary = vehicle, secondary = alarm type
	Aggregate(events, GroupByDriver)             primary = driver,  secondary = alarm type
	AggregateByAlarmType(events, GroupByDriver)  primary = alarm type, secondary = driver

Ordering is deterministic. Items keep the order in which their key was first
seen, and every sort is stable, so equal counts never reorder between runs.
Secondary ties go to the value encountered first.

Percentages are computed over the aggregation's grand total (events with a
non-empty primary key) and are 0 when that total is 0.
*/
package ranking
