package core

import (
	"time"

	"github.com/huangsam/tracktides/core/agg"
	"github.com/huangsam/tracktides/core/algo"
	"github.com/huangsam/tracktides/schema"
)

// BuildChartView runs the chart pipeline for one raw series.
// now is read once by the caller; anchor ends the visible window and selected pins a point.
func BuildChartView(spec schema.SeriesSpec, series []schema.ChartDataPoint, rng schema.TimeRange,
	now, anchor time.Time, selected *time.Time, loc *time.Location,
) schema.ChartView {
	display := agg.DisplaySeries(series, rng, loc)
	return buildViewFromDisplay(spec, series, display, rng, now, anchor, selected)
}

// buildViewFromDisplay is the pipeline after aggregation, shared with the cached path.
// The overall average is taken over raw readings up to now, never over bucket means.
func buildViewFromDisplay(spec schema.SeriesSpec, raw, display []schema.ChartDataPoint, rng schema.TimeRange,
	now, anchor time.Time, selected *time.Time,
) schema.ChartView {
	start, end := agg.Window(rng, anchor)
	visible := agg.VisibleSeriesAt(display, rng, anchor)

	overall := algo.Average(agg.VisibleSeries(raw, rng, now), 0)
	average := algo.Average(visible, overall)

	return schema.ChartView{
		Kind:           spec.Kind,
		Title:          spec.Title,
		Unit:           spec.Unit,
		Range:          rng,
		WindowStart:    start,
		WindowEnd:      end,
		YRange:         algo.SeriesYRange(visible, spec),
		Average:        average,
		OverallAverage: overall,
		Readout:        algo.Readout(visible, display, selected, overall),
		Display:        display,
		Visible:        visible,
	}
}

// BuildChartBoard renders every requested series from the cache.
func BuildChartBoard(cache *SeriesCache, kinds []schema.SeriesKind, rng schema.TimeRange,
	now, anchor time.Time, selected *time.Time, loc *time.Location,
) schema.ChartBoard {
	board := schema.ChartBoard{GeneratedAt: now, Range: rng, Charts: make([]schema.ChartView, 0, len(kinds))}
	for _, kind := range kinds {
		display := cache.DisplaySeries(kind, rng, loc)
		view := buildViewFromDisplay(schema.GetSeriesSpec(kind), cache.Series(kind), display, rng, now, anchor, selected)
		board.Charts = append(board.Charts, view)
	}
	return board
}
