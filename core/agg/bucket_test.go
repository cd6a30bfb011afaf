package agg

import (
	"math"
	"testing"
	"time"

	"github.com/huangsam/tracktides/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fourteenDays starts on Monday 2025-01-06 and spans two ISO weeks.
func fourteenDays() []schema.ChartDataPoint {
	start := time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)
	points := make([]schema.ChartDataPoint, 14)
	for i := range points {
		points[i] = schema.ChartDataPoint{Date: start.AddDate(0, 0, i), Value: float64(i + 1)}
	}
	return points
}

func TestDisplaySeriesWeekly(t *testing.T) {
	got := DisplaySeries(fourteenDays(), schema.SixMonthsRange, time.UTC)

	require.Len(t, got, 2)
	assert.Equal(t, time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC), got[0].Date)
	assert.InDelta(t, 4.0, got[0].Value, 1e-9)
	assert.True(t, got[0].IsAggregate)
	assert.Equal(t, time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC), got[1].Date)
	assert.InDelta(t, 11.0, got[1].Value, 1e-9)
	assert.True(t, got[1].IsAggregate)
}

func TestDisplaySeriesMonthly(t *testing.T) {
	series := []schema.ChartDataPoint{
		{Date: time.Date(2025, 2, 5, 8, 0, 0, 0, time.UTC), Value: 190},
		{Date: time.Date(2025, 1, 20, 8, 0, 0, 0, time.UTC), Value: 196},
		{Date: time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC), Value: 200},
		{Date: time.Date(2025, 4, 30, 8, 0, 0, 0, time.UTC), Value: 180},
	}

	got := DisplaySeries(series, schema.YearRange, time.UTC)
	assert.Equal(t, []schema.ChartDataPoint{
		{Date: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), Value: 198, IsAggregate: true},
		{Date: time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), Value: 190, IsAggregate: true},
		{Date: time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), Value: 180, IsAggregate: true},
	}, got)
}

func TestDisplaySeriesPassThrough(t *testing.T) {
	series := fourteenDays()
	for _, rng := range []schema.TimeRange{schema.DayRange, schema.WeekRange, schema.MonthRange} {
		got := DisplaySeries(series, rng, time.UTC)
		assert.Equal(t, series, got)
		got[0].Value = -1
		assert.Equal(t, 1.0, series[0].Value, "pass-through must copy")
	}
}

func TestDisplaySeriesIdempotent(t *testing.T) {
	series := fourteenDays()
	series = append(series, schema.ChartDataPoint{Date: time.Date(2025, 3, 2, 23, 0, 0, 0, time.UTC), Value: 7})

	for _, rng := range schema.AllTimeRanges {
		t.Run(string(rng), func(t *testing.T) {
			once := DisplaySeries(series, rng, time.UTC)
			twice := DisplaySeries(once, rng, time.UTC)
			assert.Equal(t, once, twice)
		})
	}
}

func TestDisplaySeriesDropsBadPoints(t *testing.T) {
	series := []schema.ChartDataPoint{
		{Date: time.Time{}, Value: 100},
		{Date: time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC), Value: math.NaN()},
		{Date: time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC), Value: math.Inf(1)},
		{Date: time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC), Value: 10},
	}

	got := DisplaySeries(series, schema.SixMonthsRange, time.UTC)
	require.Len(t, got, 1)
	assert.Equal(t, 10.0, got[0].Value)

	got = DisplaySeries(series, schema.YearRange, time.UTC)
	require.Len(t, got, 1)
	assert.Equal(t, 10.0, got[0].Value)
}

func TestDisplaySeriesEmpty(t *testing.T) {
	assert.Empty(t, DisplaySeries(nil, schema.SixMonthsRange, time.UTC))
	assert.Empty(t, DisplaySeries(nil, schema.YearRange, nil))
}

func TestWeekStartUsesLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	// Sunday 20:00 UTC is already Monday in Tokyo.
	sundayUTC := time.Date(2025, 1, 12, 20, 0, 0, 0, time.UTC)

	utcStart, ok := WeekStart(sundayUTC, time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), utcStart)

	tokyoStart, ok := WeekStart(sundayUTC, tokyo)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 13, 0, 0, 0, 0, tokyo), tokyoStart)

	_, ok = WeekStart(time.Time{}, time.UTC)
	assert.False(t, ok)
}

func TestMonthStart(t *testing.T) {
	got, ok := MonthStart(time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC), time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), got)

	_, ok = MonthStart(time.Time{}, time.UTC)
	assert.False(t, ok)
}

func TestAggregateHelpers(t *testing.T) {
	series := fourteenDays()
	assert.Equal(t, DisplaySeries(series, schema.SixMonthsRange, time.UTC), AggregateByWeek(series, time.UTC))
	assert.Equal(t, DisplaySeries(series, schema.YearRange, time.UTC), AggregateByMonth(series, time.UTC))
}
