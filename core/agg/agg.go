// Package agg has the series extraction, windowing and bucketing logic for day entries.
package agg

import (
	"sort"

	"github.com/huangsam/tracktides/schema"
)

// DefaultStartingWeight is the weight change baseline when no weight was ever logged.
const DefaultStartingWeight = 180.0

// WeightSeries returns one point per entry that has a weight, ascending by date.
func WeightSeries(entries []schema.DayEntry) []schema.ChartDataPoint {
	points := make([]schema.ChartDataPoint, 0, len(entries))
	for _, e := range entries {
		if e.Weight == nil {
			continue
		}
		points = append(points, schema.ChartDataPoint{Date: e.Date, Value: *e.Weight})
	}
	sortByDate(points)
	return points
}

// PainSeries returns one point per shot with a positive pain level, ascending by date.
// Zero pain means the level was never recorded, so it is skipped.
func PainSeries(entries []schema.DayEntry) []schema.ChartDataPoint {
	points := make([]schema.ChartDataPoint, 0, len(entries))
	for _, e := range entries {
		if e.Shot == nil || e.Shot.PainLevel <= 0 {
			continue
		}
		points = append(points, schema.ChartDataPoint{Date: e.Date, Value: float64(e.Shot.PainLevel)})
	}
	sortByDate(points)
	return points
}

// StartingWeight returns the first chronological weight, or DefaultStartingWeight.
func StartingWeight(entries []schema.DayEntry) float64 {
	return baseline(WeightSeries(entries))
}

// WeightChangeSeries re-bases the weight series on its first point.
func WeightChangeSeries(entries []schema.DayEntry) []schema.ChartDataPoint {
	weights := WeightSeries(entries)
	base := baseline(weights)
	points := make([]schema.ChartDataPoint, len(weights))
	for i, p := range weights {
		points[i] = schema.ChartDataPoint{Date: p.Date, Value: p.Value - base, IsAggregate: p.IsAggregate}
	}
	return points
}

// Series dispatches to the extractor for the given kind.
func Series(kind schema.SeriesKind, entries []schema.DayEntry) []schema.ChartDataPoint {
	switch kind {
	case schema.PainSeries:
		return PainSeries(entries)
	case schema.WeightChangeSeries:
		return WeightChangeSeries(entries)
	default:
		return WeightSeries(entries)
	}
}

// baseline expects a series that is already sorted.
func baseline(weights []schema.ChartDataPoint) float64 {
	if len(weights) == 0 {
		return DefaultStartingWeight
	}
	return weights[0].Value
}

// sortByDate keeps entries that share a date in their input order.
func sortByDate(points []schema.ChartDataPoint) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
}
