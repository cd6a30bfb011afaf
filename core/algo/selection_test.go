package algo

import (
	"testing"
	"time"

	"github.com/huangsam/tracktides/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestPoint(t *testing.T) {
	pts := points(1, 2, 3, 4)
	base := pts[0].Date

	_, ok := NearestPoint(nil, base)
	assert.False(t, ok)

	got, ok := NearestPoint(pts, base.Add(49*time.Hour))
	require.True(t, ok)
	assert.Equal(t, 3.0, got.Value)

	got, _ = NearestPoint(pts, base.AddDate(-1, 0, 0))
	assert.Equal(t, 1.0, got.Value)

	got, _ = NearestPoint(pts, base.AddDate(1, 0, 0))
	assert.Equal(t, 4.0, got.Value)

	// Exactly between day 1 and day 2: the earlier point wins.
	got, _ = NearestPoint(pts, base.Add(36*time.Hour))
	assert.Equal(t, 2.0, got.Value)
}

func TestReadoutUnpinned(t *testing.T) {
	visible := points(200, 195)

	r := Readout(visible, visible, nil, 0)
	assert.InDelta(t, 197.5, r.Value, 1e-9)
	assert.True(t, r.ShowAverageLabel)
	assert.Nil(t, r.Selected)

	r = Readout(nil, visible, nil, 188)
	assert.Equal(t, 188.0, r.Value)
	assert.True(t, r.ShowAverageLabel)
}

func TestReadoutPinnedRaw(t *testing.T) {
	display := points(200, 195, 190)
	at := display[1].Date.Add(2 * time.Hour)

	r := Readout(display, display, &at, 0)
	assert.Equal(t, 195.0, r.Value)
	assert.False(t, r.ShowAverageLabel)
	require.NotNil(t, r.Selected)
	assert.Equal(t, display[1].Date, *r.Selected)
}

func TestReadoutPinnedAggregate(t *testing.T) {
	display := []schema.ChartDataPoint{
		{Date: time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC), Value: 4, IsAggregate: true},
		{Date: time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC), Value: 11, IsAggregate: true},
	}
	at := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	r := Readout(display, display, &at, 0)
	assert.Equal(t, 11.0, r.Value)
	assert.True(t, r.ShowAverageLabel)
}

func TestReadoutPinnedEmptyDisplay(t *testing.T) {
	at := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	r := Readout(nil, nil, &at, 7)
	assert.Equal(t, 7.0, r.Value)
	assert.True(t, r.ShowAverageLabel)
	assert.Nil(t, r.Selected)
}

func TestChartStateTransitions(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	s := NewChartState(schema.MonthRange, now)
	assert.Equal(t, Idle, s.State())
	assert.Equal(t, now, s.Anchor())
	assert.Nil(t, s.Selected())

	pin := now.AddDate(0, 0, -3)
	s.Select(pin)
	assert.Equal(t, PointSelected, s.State())
	require.NotNil(t, s.Selected())
	assert.Equal(t, pin, *s.Selected())

	s.ScrollTo(now.AddDate(0, 0, -10))
	assert.Equal(t, PointSelected, s.State())
	assert.Equal(t, now.AddDate(0, 0, -10), s.Anchor())

	s.Clear()
	assert.Equal(t, Idle, s.State())

	s.Select(pin)
	later := now.Add(time.Hour)
	s.SetRange(schema.YearRange, later)
	assert.Equal(t, Idle, s.State())
	assert.Equal(t, schema.YearRange, s.Range())
	assert.Equal(t, later, s.Anchor())
}

func TestSelectionStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "point-selected", PointSelected.String())
}
