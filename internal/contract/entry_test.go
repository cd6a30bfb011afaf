package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEntryShot(t *testing.T) {
	input := &EntryRawInput{
		Date:          "2025-01-06",
		Weight:        201.4,
		Medication:    "mounjaro",
		Dosage:        "5mg",
		InjectionSite: "Abdomen",
		Pain:          3,
		SideEffects:   "Nausea, Fatigue,,",
		Notes:         "  felt fine ",
	}

	entry, err := BuildEntry(input, fixedNow, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), entry.Date)
	require.NotNil(t, entry.Weight)
	assert.Equal(t, 201.4, *entry.Weight)
	assert.Nil(t, entry.Calories)
	assert.Equal(t, []string{"Nausea", "Fatigue"}, entry.SideEffects)
	assert.Equal(t, "felt fine", entry.Notes)
	require.NotNil(t, entry.Shot)
	assert.Equal(t, "Tirzepatide", entry.Shot.Medication)
	assert.Equal(t, 3, entry.Shot.PainLevel)
	assert.Equal(t, entry.Date, entry.Shot.Date)
}

func TestBuildEntryWeightOnlyDefaultsToNow(t *testing.T) {
	entry, err := BuildEntry(&EntryRawInput{Weight: 199, Calories: 1800, Protein: 120}, fixedNow, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, fixedNow, entry.Date)
	assert.Nil(t, entry.Shot)
	require.NotNil(t, entry.Calories)
	assert.Equal(t, 1800, *entry.Calories)
	require.NotNil(t, entry.Protein)
	assert.Equal(t, 120, *entry.Protein)
}

func TestBuildEntryStoresWholeSecondsInUTC(t *testing.T) {
	pacific := time.FixedZone("PST", -8*60*60)
	now := time.Date(2025, 1, 6, 7, 30, 15, 987654321, pacific)

	entry, err := BuildEntry(&EntryRawInput{Weight: 190, Medication: "Semaglutide"}, now, pacific)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 6, 15, 30, 15, 0, time.UTC), entry.Date)
	assert.Equal(t, time.UTC, entry.Date.Location())
	require.NotNil(t, entry.Shot)
	assert.Equal(t, entry.Date, entry.Shot.Date)
}

func TestBuildEntryUnknownMedicationKept(t *testing.T) {
	entry, err := BuildEntry(&EntryRawInput{Medication: "Custom Blend"}, fixedNow, time.UTC)
	require.NoError(t, err)
	require.NotNil(t, entry.Shot)
	assert.Equal(t, "Custom Blend", entry.Shot.Medication)
}

func TestBuildEntryErrors(t *testing.T) {
	tests := []struct {
		name  string
		input EntryRawInput
	}{
		{"empty", EntryRawInput{}},
		{"bad date", EntryRawInput{Date: "someday", Weight: 180}},
		{"negative weight", EntryRawInput{Weight: -1}},
		{"negative calories", EntryRawInput{Weight: 180, Calories: -5}},
		{"pain without medication", EntryRawInput{Pain: 3}},
		{"pain out of range", EntryRawInput{Medication: "Semaglutide", Pain: 11}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildEntry(&tt.input, fixedNow, time.UTC)
			assert.Error(t, err)
		})
	}
}
