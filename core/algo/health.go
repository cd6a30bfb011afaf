package algo

import (
	"sort"
	"time"

	"github.com/huangsam/tracktides/schema"
)

// DefaultShotIntervalDays is the dosing cadence when none is configured.
const DefaultShotIntervalDays = 7

const day = 24 * time.Hour

// BMI computes body mass index from pounds and inches.
func BMI(weightLbs, heightInches float64) float64 {
	if heightInches <= 0 {
		return 0
	}
	return weightLbs * 703 / (heightInches * heightInches)
}

// BMICategory buckets a BMI value.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return schema.UnderweightCategory
	case bmi < 25:
		return schema.NormalCategory
	case bmi < 30:
		return schema.OverweightCategory
	default:
		return schema.ObeseCategory
	}
}

// GoalProgress measures how far current has moved from start towards goal.
func GoalProgress(start, current, goal float64) schema.GoalProgress {
	gp := schema.GoalProgress{
		StartWeight:   start,
		CurrentWeight: current,
		GoalWeight:    goal,
		Remaining:     current - goal,
		TotalChange:   current - start,
	}
	if start != goal {
		gp.Progress = clamp01((start - current) / (start - goal))
	}
	return gp
}

// NextShot schedules the next injection intervalDays after the last one.
func NextShot(lastShot *time.Time, intervalDays int, now time.Time) schema.NextShot {
	if lastShot == nil {
		return schema.NextShot{}
	}
	if intervalDays <= 0 {
		intervalDays = DefaultShotIntervalDays
	}
	last := *lastShot
	next := last.AddDate(0, 0, intervalDays)
	return schema.NextShot{
		LastShot:  &last,
		NextDue:   &next,
		Overdue:   now.After(next),
		Scheduled: true,
	}
}

// LastShotDate returns the most recent shot date in the entries.
func LastShotDate(entries []schema.DayEntry) *time.Time {
	var last *time.Time
	for _, e := range entries {
		if e.Shot == nil {
			continue
		}
		d := shotDate(e)
		if last == nil || d.After(*last) {
			last = &d
		}
	}
	return last
}

// WholeDays counts the complete days from start to end, never negative.
func WholeDays(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start) / day)
}

// ShotHistory lists shots newest first, grouped per calendar month in loc.
func ShotHistory(entries []schema.DayEntry, now time.Time, loc *time.Location) schema.ShotHistory {
	if loc == nil {
		loc = time.Local
	}
	records := ShotRecords(entries)
	history := schema.ShotHistory{GeneratedAt: now, TotalShots: len(records), Groups: []schema.ShotGroup{}}
	if len(records) == 0 {
		return history
	}

	days := WholeDays(records[0].Shot.Date, now)
	history.DaysSinceFirstShot = &days
	if avg, ok := AverageIntervalDays(records); ok {
		history.AverageIntervalDays = &avg
	}

	for i := len(records) - 1; i >= 0; i-- {
		label := records[i].Shot.Date.In(loc).Format("January 2006")
		n := len(history.Groups)
		if n == 0 || history.Groups[n-1].Month != label {
			history.Groups = append(history.Groups, schema.ShotGroup{Month: label})
			n++
		}
		history.Groups[n-1].Shots = append(history.Groups[n-1].Shots, records[i])
	}
	return history
}

// ShotRecords returns shots oldest first, numbered from 1.
func ShotRecords(entries []schema.DayEntry) []schema.ShotRecord {
	var records []schema.ShotRecord
	for _, e := range entries {
		if e.Shot == nil {
			continue
		}
		shot := *e.Shot
		shot.Date = shotDate(e)
		records = append(records, schema.ShotRecord{Shot: shot, SideEffects: e.SideEffects})
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Shot.Date.Before(records[j].Shot.Date)
	})
	for i := range records {
		records[i].Number = i + 1
	}
	return records
}

// AverageIntervalDays is the mean gap in whole days between consecutive shots.
// It needs at least two shots sorted oldest first.
func AverageIntervalDays(records []schema.ShotRecord) (int, bool) {
	if len(records) < 2 {
		return 0, false
	}
	var total time.Duration
	for i := 1; i < len(records); i++ {
		total += records[i].Shot.Date.Sub(records[i-1].Shot.Date)
	}
	return int(total / time.Duration(len(records)-1) / day), true
}

// shotDate falls back to the entry date when the shot has none.
func shotDate(e schema.DayEntry) time.Time {
	if e.Shot.Date.IsZero() {
		return e.Date
	}
	return e.Shot.Date
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
