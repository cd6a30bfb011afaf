package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayEntryClone(t *testing.T) {
	orig := DayEntry{
		Date:        time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		Weight:      Float(190),
		Calories:    Int(1800),
		SideEffects: []string{"Nausea"},
		Shot:        &Shot{Medication: "Semaglutide", PainLevel: 2},
	}
	clone := orig.Clone()
	assert.Equal(t, orig, clone)

	*clone.Weight = 180
	*clone.Calories = 0
	clone.SideEffects[0] = "Fatigue"
	clone.Shot.PainLevel = 9

	assert.InDelta(t, 190.0, *orig.Weight, 1e-9)
	assert.Equal(t, 1800, *orig.Calories)
	assert.Equal(t, "Nausea", orig.SideEffects[0])
	assert.Equal(t, 2, orig.Shot.PainLevel)
	assert.Nil(t, CloneEntries(nil))
}

func TestStoredTime(t *testing.T) {
	zone := time.FixedZone("EST", -5*60*60)
	got := StoredTime(time.Date(2025, 1, 6, 19, 45, 10, 999999999, zone))
	assert.Equal(t, time.Date(2025, 1, 7, 0, 45, 10, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}
