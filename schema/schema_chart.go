package schema

import "time"

// Range is a closed numeric interval used for the chart Y axis.
type Range struct {
	Lo float64 `json:"lo" yaml:"lo"`
	Hi float64 `json:"hi" yaml:"hi"`
}

// DefaultFloorPad is the minimum Y axis padding unless a series overrides it.
const DefaultFloorPad = 5.0

// SeriesSpec describes how one series is presented.
type SeriesSpec struct {
	Kind     SeriesKind
	Title    string
	Unit     string
	Fallback Range    // Y range used when nothing is visible
	FloorPad float64  // Minimum padding around the visible values
	HardMin  *float64 // Lower bound the Y range may never cross
}

// seriesSpecs is the fixed catalogue of chart series.
var seriesSpecs = map[SeriesKind]SeriesSpec{
	WeightSeries: {
		Kind:     WeightSeries,
		Title:    "Weight",
		Unit:     "lbs",
		Fallback: Range{Lo: 150, Hi: 200},
		FloorPad: DefaultFloorPad,
	},
	WeightChangeSeries: {
		Kind:     WeightChangeSeries,
		Title:    "Weight Change",
		Unit:     "lbs",
		Fallback: Range{Lo: -30, Hi: 5},
		FloorPad: 2,
	},
	PainSeries: {
		Kind:     PainSeries,
		Title:    "Injection Pain",
		Unit:     "/10",
		Fallback: Range{Lo: 0, Hi: 10},
		FloorPad: DefaultFloorPad,
		HardMin:  Float(0),
	},
}

// GetSeriesSpec returns the presentation spec for a series kind.
func GetSeriesSpec(kind SeriesKind) SeriesSpec {
	if spec, ok := seriesSpecs[kind]; ok {
		return spec
	}
	return seriesSpecs[WeightSeries]
}

// Readout is the summary shown above a chart.
type Readout struct {
	Value            float64    `json:"value" yaml:"value"`
	ShowAverageLabel bool       `json:"show_average_label" yaml:"show_average_label"`
	Selected         *time.Time `json:"selected,omitempty" yaml:"selected,omitempty"`
}

// ChartView is everything a presentation layer needs to draw one chart.
type ChartView struct {
	Kind           SeriesKind       `json:"kind" yaml:"kind"`
	Title          string           `json:"title" yaml:"title"`
	Unit           string           `json:"unit" yaml:"unit"`
	Range          TimeRange        `json:"range" yaml:"range"`
	WindowStart    time.Time        `json:"window_start" yaml:"window_start"`
	WindowEnd      time.Time        `json:"window_end" yaml:"window_end"`
	YRange         Range            `json:"y_range" yaml:"y_range"`
	Average        float64          `json:"average" yaml:"average"`                 // Mean of the visible slice
	OverallAverage float64          `json:"overall_average" yaml:"overall_average"` // Mean of the window ending now
	Readout        Readout          `json:"readout" yaml:"readout"`
	Display        []ChartDataPoint `json:"display" yaml:"display"` // Full series at display granularity
	Visible        []ChartDataPoint `json:"visible" yaml:"visible"` // Display points inside the window
}

// ChartBoard groups the chart views rendered in one pass.
type ChartBoard struct {
	GeneratedAt time.Time   `json:"generated_at" yaml:"generated_at"`
	Range       TimeRange   `json:"range" yaml:"range"`
	Charts      []ChartView `json:"charts" yaml:"charts"`
}
