package agg

import (
	"testing"
	"time"

	"github.com/huangsam/tracktides/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day0 = time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)

func dayN(n int) time.Time {
	return day0.AddDate(0, 0, n)
}

func weightEntry(n int, w float64) schema.DayEntry {
	return schema.DayEntry{Date: dayN(n), Weight: schema.Float(w)}
}

func shotEntry(n, pain int) schema.DayEntry {
	return schema.DayEntry{
		Date: dayN(n),
		Shot: &schema.Shot{Date: dayN(n), Medication: "Tirzepatide", Dosage: "2.5mg", PainLevel: pain},
	}
}

func TestWeightSeries(t *testing.T) {
	entries := []schema.DayEntry{
		weightEntry(7, 195),
		shotEntry(3, 2),
		weightEntry(0, 200),
	}

	got := WeightSeries(entries)
	want := []schema.ChartDataPoint{
		{Date: dayN(0), Value: 200},
		{Date: dayN(7), Value: 195},
	}
	assert.Equal(t, want, got)
}

func TestWeightSeriesEmpty(t *testing.T) {
	assert.Empty(t, WeightSeries(nil))
	assert.Empty(t, WeightSeries([]schema.DayEntry{shotEntry(0, 3)}))
}

func TestPainSeries(t *testing.T) {
	entries := []schema.DayEntry{
		shotEntry(14, 4),
		shotEntry(7, 0), // not recorded
		weightEntry(1, 190),
		shotEntry(0, 2),
		{Date: dayN(2), Weight: schema.Float(189), Shot: &schema.Shot{PainLevel: 5}},
	}

	got := PainSeries(entries)
	require.Len(t, got, 3)
	assert.Equal(t, dayN(0), got[0].Date)
	assert.Equal(t, 2.0, got[0].Value)
	assert.Equal(t, dayN(2), got[1].Date)
	assert.Equal(t, 5.0, got[1].Value)
	assert.Equal(t, dayN(14), got[2].Date)
	assert.Equal(t, 4.0, got[2].Value)
	for _, p := range got {
		assert.False(t, p.IsAggregate)
	}
}

func TestWeightChangeSeries(t *testing.T) {
	entries := []schema.DayEntry{weightEntry(7, 195), weightEntry(0, 200), weightEntry(3, 198.5)}

	got := WeightChangeSeries(entries)
	require.Len(t, got, 3)
	assert.Equal(t, 0.0, got[0].Value)
	assert.Equal(t, -1.5, got[1].Value)
	assert.Equal(t, -5.0, got[2].Value)
	assert.Equal(t, 200.0, StartingWeight(entries))
}

func TestWeightChangeSeriesNoWeights(t *testing.T) {
	assert.Empty(t, WeightChangeSeries([]schema.DayEntry{shotEntry(0, 3)}))
	assert.Equal(t, DefaultStartingWeight, StartingWeight(nil))
}

func TestSeriesDispatch(t *testing.T) {
	entries := []schema.DayEntry{weightEntry(0, 200), weightEntry(1, 199), shotEntry(1, 3)}

	assert.Equal(t, WeightSeries(entries), Series(schema.WeightSeries, entries))
	assert.Equal(t, WeightChangeSeries(entries), Series(schema.WeightChangeSeries, entries))
	assert.Equal(t, PainSeries(entries), Series(schema.PainSeries, entries))
	assert.Equal(t, WeightSeries(entries), Series("bogus", entries))
}

func TestScenarioTwoWeighIns(t *testing.T) {
	entries := []schema.DayEntry{weightEntry(0, 200), weightEntry(7, 195)}
	now := dayN(7)

	weights := WeightSeries(entries)
	assert.Equal(t, []schema.ChartDataPoint{{Date: dayN(0), Value: 200}, {Date: dayN(7), Value: 195}}, weights)

	changes := WeightChangeSeries(entries)
	assert.Equal(t, []schema.ChartDataPoint{{Date: dayN(0), Value: 0}, {Date: dayN(7), Value: -5}}, changes)

	// A week is exactly seven days, so day0 sits on the inclusive lower edge.
	visible := VisibleSeries(weights, schema.WeekRange, now)
	assert.Equal(t, weights, visible)
}
