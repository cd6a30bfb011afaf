package agg

import (
	"math"
	"sort"
	"time"

	"github.com/huangsam/tracktides/schema"
)

// Midpoint offsets for aggregate points, in days from the bucket start.
const (
	weekMidpointDays  = 3
	monthMidpointDays = 14
)

// bucketFunc returns the start of the bucket holding t, or false when there is none.
type bucketFunc func(t time.Time, loc *time.Location) (time.Time, bool)

// DisplaySeries returns the series at the granularity used for the range.
// Six months are averaged per ISO week and a year is averaged per calendar month,
// everything else passes through. Buckets are computed in loc, or time.Local if nil.
func DisplaySeries(series []schema.ChartDataPoint, rng schema.TimeRange, loc *time.Location) []schema.ChartDataPoint {
	if loc == nil {
		loc = time.Local
	}
	switch rng {
	case schema.SixMonthsRange:
		return aggregate(series, loc, WeekStart, weekMidpointDays)
	case schema.YearRange:
		return aggregate(series, loc, MonthStart, monthMidpointDays)
	default:
		out := make([]schema.ChartDataPoint, len(series))
		copy(out, series)
		sortByDate(out)
		return out
	}
}

// AggregateByWeek averages the series per ISO week, Monday first.
func AggregateByWeek(series []schema.ChartDataPoint, loc *time.Location) []schema.ChartDataPoint {
	return DisplaySeries(series, schema.SixMonthsRange, loc)
}

// AggregateByMonth averages the series per calendar month.
func AggregateByMonth(series []schema.ChartDataPoint, loc *time.Location) []schema.ChartDataPoint {
	return DisplaySeries(series, schema.YearRange, loc)
}

// WeekStart returns Monday 00:00 of the ISO week holding t.
func WeekStart(t time.Time, loc *time.Location) (time.Time, bool) {
	if t.IsZero() {
		return time.Time{}, false
	}
	local := t.In(loc)
	offset := (int(local.Weekday()) + 6) % 7 // Monday = 0
	return time.Date(local.Year(), local.Month(), local.Day()-offset, 0, 0, 0, 0, loc), true
}

// MonthStart returns the 1st at 00:00 of the month holding t.
func MonthStart(t time.Time, loc *time.Location) (time.Time, bool) {
	if t.IsZero() {
		return time.Time{}, false
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc), true
}

type bucket struct {
	start time.Time
	sum   float64
	count int
}

func aggregate(series []schema.ChartDataPoint, loc *time.Location, startOf bucketFunc, midpointDays int) []schema.ChartDataPoint {
	buckets := make(map[int64]*bucket)
	for _, p := range series {
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
			continue
		}
		start, ok := startOf(p.Date, loc)
		if !ok {
			continue
		}
		key := start.Unix()
		b, found := buckets[key]
		if !found {
			b = &bucket{start: start}
			buckets[key] = b
		}
		b.sum += p.Value
		b.count++
	}

	points := make([]schema.ChartDataPoint, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, schema.ChartDataPoint{
			Date:        b.start.AddDate(0, 0, midpointDays),
			Value:       b.sum / float64(b.count),
			IsAggregate: true,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}
