package schema

import "time"

// BMI categories.
const (
	UnderweightCategory = "Underweight"
	NormalCategory      = "Normal"
	OverweightCategory  = "Overweight"
	ObeseCategory       = "Obese"
)

// NotScheduled is shown in place of a next shot date when no shot was ever logged.
const NotScheduled = "Not scheduled"

// GoalProgress tracks movement from a starting weight towards a goal weight.
type GoalProgress struct {
	StartWeight   float64 `json:"start_weight" yaml:"start_weight"`
	CurrentWeight float64 `json:"current_weight" yaml:"current_weight"`
	GoalWeight    float64 `json:"goal_weight" yaml:"goal_weight"`
	Progress      float64 `json:"progress" yaml:"progress"`   // 0-1
	Remaining     float64 `json:"remaining" yaml:"remaining"` // current - goal
	TotalChange   float64 `json:"total_change" yaml:"total_change"`
}

// NextShot describes when the next injection is due.
type NextShot struct {
	LastShot  *time.Time `json:"last_shot,omitempty" yaml:"last_shot,omitempty"`
	NextDue   *time.Time `json:"next_due,omitempty" yaml:"next_due,omitempty"`
	Overdue   bool       `json:"overdue" yaml:"overdue"`
	Scheduled bool       `json:"scheduled" yaml:"scheduled"`
}

// HealthSummary is the home screen roll-up of the entry log.
type HealthSummary struct {
	GeneratedAt  time.Time    `json:"generated_at" yaml:"generated_at"`
	EntryCount   int          `json:"entry_count" yaml:"entry_count"`
	ShotCount    int          `json:"shot_count" yaml:"shot_count"`
	BMI          float64      `json:"bmi" yaml:"bmi"`
	BMICategory  string       `json:"bmi_category" yaml:"bmi_category"`
	HeightInches float64      `json:"height_inches" yaml:"height_inches"`
	Goal         GoalProgress `json:"goal" yaml:"goal"`
	NextShot     NextShot     `json:"next_shot" yaml:"next_shot"`
	HasWeight    bool         `json:"has_weight" yaml:"has_weight"`
}

// ShotRecord is a shot annotated with its chronological number.
type ShotRecord struct {
	Number      int      `json:"number" yaml:"number"`
	Shot        Shot     `json:"shot" yaml:"shot"`
	SideEffects []string `json:"side_effects,omitempty" yaml:"side_effects,omitempty"`
}

// ShotGroup is one calendar month of shots, newest first.
type ShotGroup struct {
	Month string       `json:"month" yaml:"month"` // e.g. "January 2025"
	Shots []ShotRecord `json:"shots" yaml:"shots"`
}

// ShotHistory is the grouped shot log plus interval statistics.
type ShotHistory struct {
	GeneratedAt         time.Time   `json:"generated_at" yaml:"generated_at"`
	TotalShots          int         `json:"total_shots" yaml:"total_shots"`
	DaysSinceFirstShot  *int        `json:"days_since_first_shot,omitempty" yaml:"days_since_first_shot,omitempty"`
	AverageIntervalDays *int        `json:"average_interval_days,omitempty" yaml:"average_interval_days,omitempty"`
	Groups              []ShotGroup `json:"groups" yaml:"groups"`
}
