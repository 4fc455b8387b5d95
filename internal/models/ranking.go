// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package models

// RankingItem is one row of a leaderboard.
// Percentage is the share of the aggregation's grand total, in [0, 100].
type RankingItem struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	Count                  int     `json:"count"`
	Percentage             float64 `json:"percentage"`
	MostRecurrentSecondary string  `json:"most_recurrent_secondary"`
}

// RankingsData holds the three views of one aggregation.
//
//   - Top: at most 10 items, descending by count
//   - All: every item, descending by count
//   - Best: at most 10 items with count > 0, ascending by count
//
// Ties are broken by the order in which grouping keys were first seen.
type RankingsData struct {
	Top  []RankingItem `json:"top"`
	All  []RankingItem `json:"all"`
	Best []RankingItem `json:"best"`
}

// Empty reports whether the aggregation produced no items.
func (r RankingsData) Empty() bool {
	return len(r.All) == 0
}

// RankingStats summarizes a ranking
type RankingStats struct {
	TotalItems  int     `json:"total_items"`
	TotalAlarms int     `json:"total_alarms"`
	Average     float64 `json:"average"`
	Max         int     `json:"max"`
	Min         int     `json:"min"`
}
