// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package filter

import (
	"fmt"
	"sort"

	"github.com/tomtom215/fleetwatch/internal/models"
)

// TypeCount is the number of events of one alarm type.
type TypeCount struct {
	AlarmType string `json:"alarm_type"`
	Name      string `json:"name"`
	Count     int    `json:"count"`
}

// DailyPoint is the number of events on one calendar day.
type DailyPoint struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// HourBucket is the number of events within one hour of the day.
type HourBucket struct {
	Hour  string `json:"hour"` // "HH:00"
	Count int    `json:"count"`
}

// AlarmTypeCounts counts retained events per alarm type, most frequent first.
// Equal counts keep first-seen order.
func (r Result) AlarmTypeCounts() []TypeCount {
	index := make(map[string]int)
	var out []TypeCount
	for _, e := range r.Events {
		i, ok := index[e.AlarmType]
		if !ok {
			i = len(out)
			index[e.AlarmType] = i
			out = append(out, TypeCount{AlarmType: e.AlarmType, Name: models.AlarmTypeName(e.AlarmType)})
		}
		out[i].Count++
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Count > out[b].Count })
	return out
}

// DailyEvolution counts retained events per day, oldest day first.
func (r Result) DailyEvolution() []DailyPoint {
	counts := make(map[string]int)
	for _, t := range r.Times {
		counts[t.Format("2006-01-02")]++
	}
	days := make([]string, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	sort.Strings(days)

	out := make([]DailyPoint, len(days))
	for i, d := range days {
		out[i] = DailyPoint{Date: d, Count: counts[d]}
	}
	return out
}

// AlarmsByHour returns 24 fixed buckets, "00:00" through "23:00".
// An empty result yields no buckets.
func (r Result) AlarmsByHour() []HourBucket {
	if len(r.Times) == 0 {
		return nil
	}
	var counts [24]int
	for _, t := range r.Times {
		counts[t.Hour()]++
	}
	out := make([]HourBucket, 24)
	for h := range out {
		out[h] = HourBucket{Hour: fmt.Sprintf("%02d:00", h), Count: counts[h]}
	}
	return out
}
