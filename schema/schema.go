// Package schema has the data types shared across tracktides.
package schema

import (
	"slices"
	"time"
)

// Shot is a single logged medication injection.
type Shot struct {
	Date          time.Time `json:"date" yaml:"date"`
	Medication    string    `json:"medication" yaml:"medication"`
	Dosage        string    `json:"dosage" yaml:"dosage"`
	InjectionSite string    `json:"injection_site,omitempty" yaml:"injection_site,omitempty"`
	PainLevel     int       `json:"pain_level" yaml:"pain_level"` // 0-10
	Notes         string    `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// DayEntry is one day of logged health data.
// Uniqueness per calendar day is a convention, not enforced here.
type DayEntry struct {
	ID          int64     `json:"id,omitempty" yaml:"id,omitempty"`
	Date        time.Time `json:"date" yaml:"date"`
	Shot        *Shot     `json:"shot,omitempty" yaml:"shot,omitempty"`
	Weight      *float64  `json:"weight,omitempty" yaml:"weight,omitempty"` // pounds
	Calories    *int      `json:"calories,omitempty" yaml:"calories,omitempty"`
	Protein     *int      `json:"protein,omitempty" yaml:"protein,omitempty"`
	SideEffects []string  `json:"side_effects,omitempty" yaml:"side_effects,omitempty"`
	Notes       string    `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Clone returns a copy of e that shares no pointers or slices with it.
func (e DayEntry) Clone() DayEntry {
	if e.Shot != nil {
		shot := *e.Shot
		e.Shot = &shot
	}
	if e.Weight != nil {
		e.Weight = Float(*e.Weight)
	}
	if e.Calories != nil {
		e.Calories = Int(*e.Calories)
	}
	if e.Protein != nil {
		e.Protein = Int(*e.Protein)
	}
	e.SideEffects = slices.Clone(e.SideEffects)
	return e
}

// CloneEntries deep-copies every entry, keeping nil as nil.
func CloneEntries(entries []DayEntry) []DayEntry {
	if entries == nil {
		return nil
	}
	out := make([]DayEntry, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}

// HasShot reports whether the entry carries an injection.
func (e DayEntry) HasShot() bool {
	return e.Shot != nil
}

// ChartDataPoint is a derived (date, value) pair.
// IsAggregate marks points that stand for an averaged week or month bucket.
type ChartDataPoint struct {
	Date        time.Time `json:"date" yaml:"date"`
	Value       float64   `json:"value" yaml:"value"`
	IsAggregate bool      `json:"is_aggregate" yaml:"is_aggregate"`
}

// Float returns a pointer to v, for optional fields.
func Float(v float64) *float64 {
	return &v
}

// Int returns a pointer to v, for optional fields.
func Int(v int) *int {
	return &v
}

// StoredTime is t at the resolution every entry store keeps: whole seconds in UTC.
func StoredTime(t time.Time) time.Time {
	return time.Unix(t.Unix(), 0).UTC()
}
