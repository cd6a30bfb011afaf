package cmd

import (
	"fmt"
	"os"

	"github.com/huangsam/tracktides/core"
	"github.com/huangsam/tracktides/internal/contract"
	"github.com/spf13/cobra"
)

// entryInput collects the flags of entries add.
var entryInput = &contract.EntryRawInput{}

// entriesCmd groups the entry log commands.
var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List, add and seed day entries",
	Long: `Manage the day entry log.

Subcommands:
  list - Show logged entries, oldest first
  add  - Log weight, nutrition, a shot or notes for a day
  seed - Append generated sample data`,
}

// entriesListCmd lists logged entries.
var entriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show logged entries, oldest first",
	Long: `Show logged entries, oldest first.

Examples:
  tracktides entries list --limit 14
  tracktides entries list --output parquet --output-file entries.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteEntriesList(rootCtx, cfg, storeManager, writer); err != nil {
			contract.LogFatal("Cannot list entries", err)
		}
	},
}

// entriesAddCmd appends one entry.
var entriesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log weight, nutrition, a shot or notes for a day",
	Long: `Append one day entry to the store.

Numeric values of 0 mean "not logged". A shot is recorded when --medication
is set; the name is matched against the built-in catalogue.

Examples:
  # Morning weigh-in
  tracktides entries add --weight 182.4

  # Weekly injection with side effects
  tracktides entries add --medication mounjaro --dosage 5mg --site "Left thigh" --pain 3 --side-effects "Nausea,Fatigue"

  # Backfill a day
  tracktides entries add --date 2025-01-10 --weight 183 --calories 1900 --protein 120`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		entry, err := core.ExecuteEntryAdd(rootCtx, cfg, storeManager, entryInput)
		if err != nil {
			contract.LogFatal("Cannot add entry", err)
		}
		fmt.Fprintf(os.Stderr, "✅ Added entry #%d for %s\n", entry.ID, entry.Date.In(cfg.Loc()).Format(contract.DateFormat))
	},
}

// entriesSeedCmd appends generated sample data.
var entriesSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Append generated sample data",
	Long: `Append --sample-days of generated entries ending today.

The generator is deterministic for a given --sample-seed: roughly one day in
five is skipped, every seventh day carries a shot and weight drifts down.

Examples:
  tracktides entries seed --sample-days 90
  tracktides entries seed --store-backend none --sample-seed 7`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		n, err := core.ExecuteEntriesSeed(rootCtx, cfg, storeManager)
		if err != nil {
			contract.LogFatal("Cannot seed entries", err)
		}
		fmt.Fprintf(os.Stderr, "🌱 Seeded %d sample entries into %s store\n", n, cfg.StoreBackend)
	},
}
