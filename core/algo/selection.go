package algo

import (
	"time"

	"github.com/huangsam/tracktides/schema"
)

// NearestPoint returns the point closest in time to at. The first point wins ties.
func NearestPoint(points []schema.ChartDataPoint, at time.Time) (schema.ChartDataPoint, bool) {
	if len(points) == 0 {
		return schema.ChartDataPoint{}, false
	}
	best := points[0]
	bestDist := absDuration(best.Date.Sub(at))
	for _, p := range points[1:] {
		if d := absDuration(p.Date.Sub(at)); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best, true
}

// Readout picks the value shown above a chart.
// A pinned point shows its own value and keeps the average label only when it is
// an aggregate. Otherwise the visible mean is shown, falling back to fallbackAverage.
func Readout(visible, display []schema.ChartDataPoint, selected *time.Time, fallbackAverage float64) schema.Readout {
	if selected != nil {
		if p, ok := NearestPoint(display, *selected); ok {
			date := p.Date
			return schema.Readout{Value: p.Value, ShowAverageLabel: p.IsAggregate, Selected: &date}
		}
	}
	return schema.Readout{Value: Average(visible, fallbackAverage), ShowAverageLabel: true}
}

// SelectionState is the pinned point state of a chart.
type SelectionState int

const (
	// Idle means no point is pinned.
	Idle SelectionState = iota
	// PointSelected means a date is pinned.
	PointSelected
)

// String implements fmt.Stringer.
func (s SelectionState) String() string {
	if s == PointSelected {
		return "point-selected"
	}
	return "idle"
}

// ChartState holds the interactive state of one chart: range, scroll anchor and pinned date.
type ChartState struct {
	rng      schema.TimeRange
	anchor   time.Time
	selected *time.Time
}

// NewChartState starts idle with the anchor at now.
func NewChartState(rng schema.TimeRange, now time.Time) *ChartState {
	return &ChartState{rng: rng, anchor: now}
}

// Range returns the selected time range.
func (s *ChartState) Range() schema.TimeRange { return s.rng }

// Anchor returns the end of the visible window.
func (s *ChartState) Anchor() time.Time { return s.anchor }

// State returns Idle or PointSelected.
func (s *ChartState) State() SelectionState {
	if s.selected != nil {
		return PointSelected
	}
	return Idle
}

// Selected returns the pinned date, or nil when idle.
func (s *ChartState) Selected() *time.Time {
	if s.selected == nil {
		return nil
	}
	at := *s.selected
	return &at
}

// Select pins a date.
func (s *ChartState) Select(at time.Time) {
	s.selected = &at
}

// Clear drops the pinned date.
func (s *ChartState) Clear() {
	s.selected = nil
}

// SetRange switches range, dropping any selection and moving the anchor back to now.
func (s *ChartState) SetRange(rng schema.TimeRange, now time.Time) {
	s.rng = rng
	s.anchor = now
	s.selected = nil
}

// ScrollTo moves the end of the visible window.
func (s *ChartState) ScrollTo(anchor time.Time) {
	s.anchor = anchor
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
