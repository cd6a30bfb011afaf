package agg

import (
	"time"

	"github.com/huangsam/tracktides/schema"
)

// VisibleSeries returns the points that fall in [now - duration, now].
// Both edges are inclusive.
func VisibleSeries(series []schema.ChartDataPoint, rng schema.TimeRange, now time.Time) []schema.ChartDataPoint {
	return VisibleSeriesAt(series, rng, now)
}

// VisibleSeriesAt is VisibleSeries for a window that ends at a scroll anchor.
func VisibleSeriesAt(series []schema.ChartDataPoint, rng schema.TimeRange, anchor time.Time) []schema.ChartDataPoint {
	start, end := Window(rng, anchor)
	visible := make([]schema.ChartDataPoint, 0, len(series))
	for _, p := range series {
		if p.Date.Before(start) || p.Date.After(end) {
			continue
		}
		visible = append(visible, p)
	}
	return visible
}

// Window returns the start and end of the visible window ending at end.
func Window(rng schema.TimeRange, end time.Time) (time.Time, time.Time) {
	return end.Add(-rng.VisibleDuration()), end
}
