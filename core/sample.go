package core

import (
	"math/rand/v2"
	"sort"
	"time"

	"github.com/huangsam/tracktides/schema"
)

// Sample data shape.
const (
	sampleSkipPercent   = 20
	sampleShotEvery     = 7
	sampleBaseWeight    = 180.0
	sampleDailyDrift    = 0.03
	sampleWeightJitter  = 1.5
	sampleMaxPainLevel  = 5
	sampleMedication    = "Tirzepatide"
	sampleDosage        = "2.5mg"
	sampleInjectionSite = "Abdomen"
)

// GenerateSampleEntries builds a deterministic demo log covering days back from now.
// Roughly one day in five is skipped and every 7th day carries a shot.
func GenerateSampleEntries(now time.Time, days int, seed uint64) []schema.DayEntry {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	entries := make([]schema.DayEntry, 0, days)
	for offset := range days {
		date := now.AddDate(0, 0, -offset)

		if rng.IntN(100) < sampleSkipPercent {
			continue
		}

		entry := schema.DayEntry{Date: date}
		if offset%sampleShotEvery == 0 {
			entry.Shot = &schema.Shot{
				Date:          date,
				Medication:    sampleMedication,
				Dosage:        sampleDosage,
				InjectionSite: sampleInjectionSite,
				PainLevel:     1 + rng.IntN(sampleMaxPainLevel),
			}
		}

		base := sampleBaseWeight - float64(offset)*sampleDailyDrift
		jitter := (rng.Float64()*2 - 1) * sampleWeightJitter
		entry.Weight = schema.Float(base + jitter)

		entries = append(entries, entry)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries
}
