// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package ranking

import (
	"sort"

	"github.com/tomtom215/fleetwatch/internal/metrics"
	"github.com/tomtom215/fleetwatch/internal/models"
)

// MaxRankedItems is the size of the Top and Best views.
const MaxRankedItems = 10

// keyFunc extracts a grouping key from an event. Empty keys are skipped.
type keyFunc func(models.Event) string

func alarmTypeKey(e models.Event) string { return e.AlarmType }

// Aggregate ranks vehicles or drivers by alarm count.
// MostRecurrentSecondary holds each item's most frequent alarm type.
func Aggregate(events []models.Event, groupBy models.GroupBy) models.RankingsData {
	metrics.RankingsComputed.WithLabelValues(string(groupBy), "identifier").Inc()
	return aggregate(events, groupBy.Key, alarmTypeKey, identity)
}

// AggregateByAlarmType ranks alarm types by count.
// MostRecurrentSecondary holds the vehicle or driver that triggered each type most often.
func AggregateByAlarmType(events []models.Event, groupBy models.GroupBy) models.RankingsData {
	metrics.RankingsComputed.WithLabelValues(string(groupBy), "alarm_type").Inc()
	return aggregate(events, alarmTypeKey, groupBy.Key, models.AlarmTypeName)
}

// ForAlarmType ranks vehicles or drivers using only events of one alarm type.
func ForAlarmType(events []models.Event, alarmType string, groupBy models.GroupBy) models.RankingsData {
	selected := make([]models.Event, 0, len(events))
	for _, e := range events {
		if e.AlarmType == alarmType {
			selected = append(selected, e)
		}
	}
	return Aggregate(selected, groupBy)
}

// Combine ranks vehicles or drivers across several reports as one population.
func Combine(reports []models.ProcessedReport, groupBy models.GroupBy) models.RankingsData {
	total := 0
	for _, r := range reports {
		total += len(r.Events)
	}
	all := make([]models.Event, 0, total)
	for _, r := range reports {
		all = append(all, r.Events...)
	}
	return Aggregate(all, groupBy)
}

func identity(s string) string { return s }

// tally counts values in first-seen order.
type tally struct {
	order  []string
	counts map[string]int
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) add(key string) {
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

// top returns the most frequent value; ties go to the first seen.
func (t *tally) top() string {
	best, bestCount := "", 0
	for _, k := range t.order {
		if c := t.counts[k]; c > bestCount {
			best, bestCount = k, c
		}
	}
	return best
}

func aggregate(events []models.Event, primary, secondary keyFunc, name func(string) string) models.RankingsData {
	counts := newTally()
	secondaries := make(map[string]*tally)
	total := 0

	for _, e := range events {
		key := primary(e)
		if key == "" {
			continue
		}
		counts.add(key)
		total++

		if sec := secondary(e); sec != "" {
			t, ok := secondaries[key]
			if !ok {
				t = newTally()
				secondaries[key] = t
			}
			t.add(sec)
		}
	}

	items := make([]models.RankingItem, 0, len(counts.order))
	for _, key := range counts.order {
		count := counts.counts[key]
		item := models.RankingItem{
			ID:         key,
			Name:       name(key),
			Count:      count,
			Percentage: percentage(count, total),
		}
		if t, ok := secondaries[key]; ok {
			item.MostRecurrentSecondary = t.top()
		}
		items = append(items, item)
	}

	all := make([]models.RankingItem, len(items))
	copy(all, items)
	sort.SliceStable(all, func(i, j int) bool { return all[i].Count > all[j].Count })

	best := make([]models.RankingItem, 0, len(items))
	for _, item := range items {
		if item.Count > 0 {
			best = append(best, item)
		}
	}
	sort.SliceStable(best, func(i, j int) bool { return best[i].Count < best[j].Count })

	return models.RankingsData{
		Top:  head(all, MaxRankedItems),
		All:  all,
		Best: head(best, MaxRankedItems),
	}
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// head returns a copy of the first n items.
func head(items []models.RankingItem, n int) []models.RankingItem {
	if len(items) < n {
		n = len(items)
	}
	out := make([]models.RankingItem, n)
	copy(out, items[:n])
	return out
}
