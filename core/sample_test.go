package core

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSampleEntries(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	entries := GenerateSampleEntries(now, 400, 42)

	assert.Greater(t, len(entries), 240)
	assert.LessOrEqual(t, len(entries), 400)
	assert.True(t, sort.SliceIsSorted(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	}))

	for _, e := range entries {
		require.NotNil(t, e.Weight)
		assert.False(t, e.Date.After(now))

		offset := int(now.Sub(e.Date).Hours() / 24)
		expected := 180.0 - float64(offset)*0.03
		assert.InDelta(t, expected, *e.Weight, 1.5+1e-9)

		if e.Shot != nil {
			assert.Zero(t, offset%7, "shots land every 7th day")
			assert.GreaterOrEqual(t, e.Shot.PainLevel, 1)
			assert.LessOrEqual(t, e.Shot.PainLevel, 5)
			assert.Equal(t, "Tirzepatide", e.Shot.Medication)
			assert.Equal(t, "2.5mg", e.Shot.Dosage)
			assert.Equal(t, "Abdomen", e.Shot.InjectionSite)
		}
	}
}

func TestGenerateSampleEntries_Deterministic(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, GenerateSampleEntries(now, 60, 7), GenerateSampleEntries(now, 60, 7))
	assert.NotEqual(t, GenerateSampleEntries(now, 60, 7), GenerateSampleEntries(now, 60, 8))
}

func TestGenerateSampleEntries_Empty(t *testing.T) {
	assert.Empty(t, GenerateSampleEntries(time.Now(), 0, 1))
}
