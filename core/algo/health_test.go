package algo

import (
	"testing"
	"time"

	"github.com/huangsam/tracktides/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMI(t *testing.T) {
	assert.InDelta(t, 33.0, BMI(230, 70), 0.01)
	assert.InDelta(t, 25.82, BMI(180, 70), 0.01)
	assert.Equal(t, 0.0, BMI(180, 0))
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{17.0, schema.UnderweightCategory},
		{18.5, schema.NormalCategory},
		{24.99, schema.NormalCategory},
		{25, schema.OverweightCategory},
		{29.9, schema.OverweightCategory},
		{30, schema.ObeseCategory},
		{45, schema.ObeseCategory},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BMICategory(tt.bmi), "bmi %.2f", tt.bmi)
	}
}

func TestGoalProgress(t *testing.T) {
	gp := GoalProgress(250, 230, 180)
	assert.InDelta(t, 20.0/70.0, gp.Progress, 1e-9)
	assert.Equal(t, 50.0, gp.Remaining)
	assert.Equal(t, -20.0, gp.TotalChange)

	assert.Equal(t, 0.0, GoalProgress(200, 210, 180).Progress)
	assert.Equal(t, 1.0, GoalProgress(200, 170, 180).Progress)
	assert.Equal(t, 0.0, GoalProgress(180, 180, 180).Progress)
}

func TestNextShot(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	none := NextShot(nil, 7, now)
	assert.False(t, none.Scheduled)
	assert.Nil(t, none.NextDue)

	last := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)
	ns := NextShot(&last, 7, now)
	require.NotNil(t, ns.NextDue)
	assert.Equal(t, time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC), *ns.NextDue)
	assert.False(t, ns.Overdue)
	assert.True(t, ns.Scheduled)

	late := time.Date(2025, 2, 20, 9, 0, 0, 0, time.UTC)
	ns = NextShot(&late, 0, now)
	assert.Equal(t, time.Date(2025, 2, 27, 9, 0, 0, 0, time.UTC), *ns.NextDue)
	assert.True(t, ns.Overdue)
}

func TestLastShotDate(t *testing.T) {
	assert.Nil(t, LastShotDate(nil))

	d1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)
	entries := []schema.DayEntry{
		{Date: d2, Shot: &schema.Shot{}},
		{Date: d1, Shot: &schema.Shot{Date: d1}},
		{Date: d2.AddDate(0, 0, 3), Weight: schema.Float(180)},
	}
	got := LastShotDate(entries)
	require.NotNil(t, got)
	assert.Equal(t, d2, *got)
}

func TestWholeDays(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, WholeDays(start, start.Add(23*time.Hour)))
	assert.Equal(t, 1, WholeDays(start, start.Add(24*time.Hour)))
	assert.Equal(t, 0, WholeDays(start, start.Add(-48*time.Hour)))
}

func historyEntries() []schema.DayEntry {
	mk := func(y int, m time.Month, d, pain int) schema.DayEntry {
		date := time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
		return schema.DayEntry{Date: date, Shot: &schema.Shot{Date: date, Medication: "Tirzepatide", Dosage: "2.5mg", PainLevel: pain}}
	}
	return []schema.DayEntry{
		mk(2025, 2, 3, 2),
		mk(2025, 1, 20, 1),
		mk(2025, 1, 27, 3),
		{Date: time.Date(2025, 1, 21, 0, 0, 0, 0, time.UTC), Weight: schema.Float(199)},
		mk(2025, 1, 13, 4),
	}
}

func TestShotRecords(t *testing.T) {
	records := ShotRecords(historyEntries())
	require.Len(t, records, 4)
	for i, r := range records {
		assert.Equal(t, i+1, r.Number)
	}
	assert.Equal(t, 13, records[0].Shot.Date.Day())
	assert.Equal(t, time.February, records[3].Shot.Date.Month())
}

func TestShotHistory(t *testing.T) {
	now := time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC)
	h := ShotHistory(historyEntries(), now, time.UTC)

	assert.Equal(t, 4, h.TotalShots)
	require.NotNil(t, h.DaysSinceFirstShot)
	assert.Equal(t, 28, *h.DaysSinceFirstShot)
	require.NotNil(t, h.AverageIntervalDays)
	assert.Equal(t, 7, *h.AverageIntervalDays)

	require.Len(t, h.Groups, 2)
	assert.Equal(t, "February 2025", h.Groups[0].Month)
	require.Len(t, h.Groups[0].Shots, 1)
	assert.Equal(t, 4, h.Groups[0].Shots[0].Number)

	assert.Equal(t, "January 2025", h.Groups[1].Month)
	require.Len(t, h.Groups[1].Shots, 3)
	assert.Equal(t, 3, h.Groups[1].Shots[0].Number)
	assert.Equal(t, 1, h.Groups[1].Shots[2].Number)
}

func TestShotHistoryEmptyAndSingle(t *testing.T) {
	now := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)

	h := ShotHistory(nil, now, nil)
	assert.Equal(t, 0, h.TotalShots)
	assert.Nil(t, h.DaysSinceFirstShot)
	assert.Nil(t, h.AverageIntervalDays)
	assert.Empty(t, h.Groups)

	h = ShotHistory(historyEntries()[:1], now, time.UTC)
	assert.Equal(t, 1, h.TotalShots)
	assert.NotNil(t, h.DaysSinceFirstShot)
	assert.Nil(t, h.AverageIntervalDays)
}
