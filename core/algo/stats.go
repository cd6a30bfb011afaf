// Package algo has the numeric helpers behind chart ranges, readouts and health figures.
package algo

import (
	"math"

	"github.com/huangsam/tracktides/schema"
)

// yPadRatio is the share of the value spread added above and below a series.
const yPadRatio = 0.10

// YRange returns [min - pad, max + pad] over the points, where pad is the larger
// of 10% of the spread and floorPad. The lower bound never crosses hardMin.
// Empty input returns the fallback.
func YRange(points []schema.ChartDataPoint, fallback schema.Range, floorPad float64, hardMin *float64) schema.Range {
	if len(points) == 0 {
		return fallback
	}
	lo, hi := points[0].Value, points[0].Value
	for _, p := range points[1:] {
		lo = math.Min(lo, p.Value)
		hi = math.Max(hi, p.Value)
	}
	pad := math.Max((hi-lo)*yPadRatio, floorPad)
	lower := lo - pad
	if hardMin != nil {
		lower = math.Max(lower, *hardMin)
	}
	return schema.Range{Lo: lower, Hi: hi + pad}
}

// SeriesYRange is YRange with the settings of a catalogued series.
func SeriesYRange(points []schema.ChartDataPoint, spec schema.SeriesSpec) schema.Range {
	return YRange(points, spec.Fallback, spec.FloorPad, spec.HardMin)
}

// Average returns the arithmetic mean of the points, or fallback when empty.
func Average(points []schema.ChartDataPoint, fallback float64) float64 {
	if len(points) == 0 {
		return fallback
	}
	var sum float64
	for _, p := range points {
		sum += p.Value
	}
	return sum / float64(len(points))
}
