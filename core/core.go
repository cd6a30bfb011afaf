// Package core has the orchestration that turns the entry log into charts,
// summaries and shot history.
package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/huangsam/tracktides/core/algo"
	"github.com/huangsam/tracktides/internal/contract"
	"github.com/huangsam/tracktides/schema"
)

// ExecutorFunc defines the function signature for executing the read-only commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, w contract.OutputWriter) error

// seriesCache is shared by every command in the process, including concurrent MCP handlers.
var seriesCache = NewSeriesCache()

// ExecuteChart builds chart views for the configured series and writes them out.
func ExecuteChart(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, w contract.OutputWriter) error {
	start := time.Now()
	board, err := GetChartResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return w.WriteChart(board, cfg, time.Since(start))
}

// ExecuteSummary writes the health summary.
func ExecuteSummary(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, w contract.OutputWriter) error {
	summary, err := GetSummaryResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return w.WriteSummary(summary, cfg)
}

// ExecuteShots writes the shot history.
func ExecuteShots(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, w contract.OutputWriter) error {
	history, err := GetShotHistoryResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return w.WriteShotHistory(history, cfg)
}

// ExecuteEntriesList writes the logged entries, newest last, honoring the limit.
func ExecuteEntriesList(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, w contract.OutputWriter) error {
	entries, err := GetEntriesResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return w.WriteEntries(entries, cfg)
}

// ExecuteEntryAdd validates and stores one new entry.
func ExecuteEntryAdd(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, input *contract.EntryRawInput) (schema.DayEntry, error) {
	store, err := entryStore(mgr)
	if err != nil {
		return schema.DayEntry{}, err
	}
	entry, err := contract.BuildEntry(input, cfg.Clock(), cfg.Loc())
	if err != nil {
		return schema.DayEntry{}, err
	}
	id, err := store.Add(ctx, entry)
	if err != nil {
		return schema.DayEntry{}, fmt.Errorf("failed to add entry: %w", err)
	}
	entry.ID = id
	seriesCache.Invalidate()
	return entry, nil
}

// ExecuteEntriesSeed appends generated sample entries and returns how many were written.
func ExecuteEntriesSeed(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (int, error) {
	store, err := entryStore(mgr)
	if err != nil {
		return 0, err
	}
	entries := GenerateSampleEntries(cfg.Clock(), cfg.SampleDays, cfg.SampleSeed)
	if err := store.AddMany(ctx, entries); err != nil {
		return 0, fmt.Errorf("failed to seed entries: %w", err)
	}
	seriesCache.Invalidate()
	return len(entries), nil
}

// MedicationFilter narrows the catalogue. The zero value lists everything.
type MedicationFilter struct {
	Category     string
	ApprovedOnly bool
}

// ExecuteMedications writes the medication catalogue, optionally filtered.
func ExecuteMedications(_ context.Context, cfg *contract.Config, filter MedicationFilter, w contract.OutputWriter) error {
	meds, err := GetMedicationResults(filter)
	if err != nil {
		return err
	}
	return w.WriteMedications(meds, cfg)
}

// GetChartResults builds the chart board without writing it.
func GetChartResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (schema.ChartBoard, error) {
	entries, err := loadEntries(ctx, cfg, mgr)
	if err != nil {
		return schema.ChartBoard{}, err
	}
	seriesCache.Sync(entries)

	now := cfg.Clock()
	state := chartState(cfg, now)
	kinds := cfg.Series
	if len(kinds) == 0 {
		kinds = schema.AllSeriesKinds
	}
	return BuildChartBoard(seriesCache, kinds, state.Range(), now, state.Anchor(), state.Selected(), cfg.Loc()), nil
}

// chartState replays the configured range, scroll and pin onto a fresh state.
func chartState(cfg *contract.Config, now time.Time) *algo.ChartState {
	state := algo.NewChartState(cfg.Range, now)
	if cfg.Anchor != nil {
		state.ScrollTo(*cfg.Anchor)
	}
	if cfg.Selected != nil {
		state.Select(*cfg.Selected)
	}
	return state
}

// GetSummaryResults builds the health summary without writing it.
func GetSummaryResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (schema.HealthSummary, error) {
	entries, err := loadEntries(ctx, cfg, mgr)
	if err != nil {
		return schema.HealthSummary{}, err
	}
	return BuildHealthSummary(entries, cfg.Clock(), cfg.HeightInches, cfg.GoalWeight, cfg.ShotIntervalDays), nil
}

// GetShotHistoryResults builds the grouped shot history without writing it.
func GetShotHistoryResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (schema.ShotHistory, error) {
	entries, err := loadEntries(ctx, cfg, mgr)
	if err != nil {
		return schema.ShotHistory{}, err
	}
	return algo.ShotHistory(entries, cfg.Clock(), cfg.Loc()), nil
}

// GetEntriesResults returns the most recent entries, oldest first, capped by cfg.Limit.
func GetEntriesResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) ([]schema.DayEntry, error) {
	entries, err := loadEntries(ctx, cfg, mgr)
	if err != nil {
		return nil, err
	}
	if cfg.Limit > 0 && len(entries) > cfg.Limit {
		entries = entries[len(entries)-cfg.Limit:]
	}
	return entries, nil
}

// GetMedicationResults returns the catalogue, in catalogue order, after applying filter.
func GetMedicationResults(filter MedicationFilter) ([]schema.Medication, error) {
	if filter.Category == "" {
		if filter.ApprovedOnly {
			return schema.DefaultEnabledMedications(), nil
		}
		return slices.Clone(schema.MedicationCatalog), nil
	}
	cat, ok := schema.ParseMedicationCategory(filter.Category)
	if !ok {
		return nil, fmt.Errorf("invalid medication category '%s'", filter.Category)
	}
	meds := schema.MedicationsByCategory(cat)
	if filter.ApprovedOnly {
		meds = slices.DeleteFunc(meds, func(m schema.Medication) bool { return !m.IsFDAApproved })
	}
	return meds, nil
}

// loadEntries reads the full entry log from the store.
func loadEntries(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) ([]schema.DayEntry, error) {
	store, err := entryStore(mgr)
	if err != nil {
		return nil, err
	}
	entries, err := store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	if !shouldSuppressHeader(ctx) {
		fmt.Fprintf(os.Stderr, "📒 Loaded %d entries from %s store\n", len(entries), cfg.StoreBackend)
	}
	return entries, nil
}

func entryStore(mgr contract.StoreManager) (contract.EntryStore, error) {
	if mgr == nil {
		return nil, errors.New("entry store is not initialized")
	}
	store := mgr.GetEntryStore()
	if store == nil {
		return nil, errors.New("entry store is not initialized")
	}
	return store, nil
}
