// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package ranking

import "github.com/tomtom215/fleetwatch/internal/models"

// Stats summarizes a list of ranking items.
func Stats(items []models.RankingItem) models.RankingStats {
	if len(items) == 0 {
		return models.RankingStats{}
	}

	s := models.RankingStats{
		TotalItems: len(items),
		Max:        items[0].Count,
		Min:        items[0].Count,
	}
	for _, item := range items {
		s.TotalAlarms += item.Count
		if item.Count > s.Max {
			s.Max = item.Count
		}
		if item.Count < s.Min {
			s.Min = item.Count
		}
	}
	s.Average = float64(s.TotalAlarms) / float64(s.TotalItems)
	return s
}
