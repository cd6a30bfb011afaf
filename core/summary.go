package core

import (
	"time"

	"github.com/huangsam/tracktides/core/agg"
	"github.com/huangsam/tracktides/core/algo"
	"github.com/huangsam/tracktides/schema"
)

// BuildHealthSummary rolls the entry log up into BMI, goal progress and the next shot.
func BuildHealthSummary(entries []schema.DayEntry, now time.Time, heightInches, goalWeight float64, intervalDays int) schema.HealthSummary {
	summary := schema.HealthSummary{
		GeneratedAt:  now,
		EntryCount:   len(entries),
		HeightInches: heightInches,
	}
	for _, e := range entries {
		if e.HasShot() {
			summary.ShotCount++
		}
	}

	weights := agg.WeightSeries(entries)
	if len(weights) > 0 {
		start := weights[0].Value
		current := weights[len(weights)-1].Value
		summary.HasWeight = true
		summary.BMI = algo.BMI(current, heightInches)
		summary.BMICategory = algo.BMICategory(summary.BMI)
		summary.Goal = algo.GoalProgress(start, current, goalWeight)
	} else {
		summary.Goal = schema.GoalProgress{GoalWeight: goalWeight}
	}

	summary.NextShot = algo.NextShot(algo.LastShotDate(entries), intervalDays, now)
	return summary
}
