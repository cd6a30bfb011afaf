package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/tracktides/schema"
)

// EntryRawInput holds the flag values for one new day entry.
type EntryRawInput struct {
	Date          string
	Weight        float64
	Calories      int
	Protein       int
	Medication    string
	Dosage        string
	InjectionSite string
	Pain          int
	SideEffects   string // comma-separated
	Notes         string
}

// BuildEntry validates raw input and turns it into a DayEntry.
// Zero numeric values mean "not logged". A shot is attached when a medication is given.
func BuildEntry(input *EntryRawInput, now time.Time, loc *time.Location) (schema.DayEntry, error) {
	var entry schema.DayEntry

	date := now
	if strings.TrimSpace(input.Date) != "" {
		parsed, err := ParseTimeArg(input.Date, now, loc)
		if err != nil {
			return entry, fmt.Errorf("invalid --date value: %w", err)
		}
		date = parsed
	}
	date = schema.StoredTime(date)
	entry.Date = date
	entry.Notes = strings.TrimSpace(input.Notes)

	if input.Weight < 0 {
		return entry, fmt.Errorf("weight cannot be negative (received %.1f)", input.Weight)
	}
	if input.Weight > 0 {
		entry.Weight = schema.Float(input.Weight)
	}
	if input.Calories < 0 || input.Protein < 0 {
		return entry, fmt.Errorf("calories and protein cannot be negative")
	}
	if input.Calories > 0 {
		entry.Calories = schema.Int(input.Calories)
	}
	if input.Protein > 0 {
		entry.Protein = schema.Int(input.Protein)
	}

	for effect := range strings.SplitSeq(input.SideEffects, ",") {
		if effect = strings.TrimSpace(effect); effect != "" {
			entry.SideEffects = append(entry.SideEffects, effect)
		}
	}

	medication := strings.TrimSpace(input.Medication)
	if medication == "" {
		if input.Pain != 0 || input.Dosage != "" || input.InjectionSite != "" {
			return entry, fmt.Errorf("shot details require --medication")
		}
		if entry.Weight == nil && entry.Calories == nil && entry.Protein == nil && len(entry.SideEffects) == 0 && entry.Notes == "" {
			return entry, fmt.Errorf("entry is empty: log a weight, a shot, nutrition, side effects or notes")
		}
		return entry, nil
	}

	if input.Pain < 0 || input.Pain > 10 {
		return entry, fmt.Errorf("pain must be between 0 and 10 (received %d)", input.Pain)
	}
	if med, ok := schema.FindMedication(medication); ok {
		medication = med.Name
	}
	entry.Shot = &schema.Shot{
		Date:          date,
		Medication:    medication,
		Dosage:        strings.TrimSpace(input.Dosage),
		InjectionSite: strings.TrimSpace(input.InjectionSite),
		PainLevel:     input.Pain,
	}
	return entry, nil
}
