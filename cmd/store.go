package cmd

import (
	"fmt"
	"os"

	"github.com/huangsam/tracktides/internal/contract"
	"github.com/huangsam/tracktides/internal/iocache"
	"github.com/huangsam/tracktides/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeConfig loads the backend settings without the full shared setup.
func storeConfig() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("store-backend"))
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", backend)
	}
	connStr := viper.GetString("store-db-connect")
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")
	return nil
}

// storeSetup loads minimal configuration and opens the entry store.
// This is used by commands that need store access without full config validation.
func storeSetup() error {
	if err := storeConfig(); err != nil {
		return err
	}
	if err := iocache.InitStores(cfg.StoreBackend, cfg.StoreDBConnect, sampleSeed(cfg.StoreBackend)); err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	return nil
}

// storeSetupWrapper wraps storeSetup to provide PreRunE for store commands.
func storeSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeSetup()
}

// storeConfigWrapper loads backend settings but leaves the store closed, so
// migrations can run on a fresh database and clear can drop tables.
func storeConfigWrapper(_ *cobra.Command, _ []string) error {
	return storeConfig()
}

// storeCmd focused on entry store management.
//
// Note: Store subcommands use minimal initialization instead of the full
// sharedSetup, so a bad chart or summary setting never blocks maintenance.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the entry store (status, export, clear, migrate)",
	Long: `Manage the database that keeps the day entry log.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (in-memory sample data)

Subcommands:
  status  - Show store statistics and connection info
  export  - Export every entry to Parquet
  clear   - Remove all entries
  migrate - Run database schema migrations

Examples:
  # Check store status
  tracktides store status

  # Back up the log before clearing it
  tracktides store export --output-file backup.parquet
  tracktides store clear`,
}

// storeStatusCmd shows store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display store statistics and connection details",
	Long: `Show the backend, connection state, entry count, the oldest and newest
entry and the table size where the database reports one.

Examples:
  tracktides store status
  TRACKTIDES_STORE_BACKEND=postgresql TRACKTIDES_STORE_DB_CONNECT="host=localhost dbname=tracktides" tracktides store status`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := storeManager.GetEntryStore().GetStatus(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
		iocache.PrintStoreStatus(os.Stdout, status)
	},
}

// storeExportCmd exports entries to Parquet.
var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every entry to Parquet for analytics",
	Long: `Export the full entry log to a Parquet file.

Requires: --output-file parameter

Examples:
  tracktides store export --output-file entries.parquet
  duckdb -c "SELECT date, weight FROM read_parquet('entries.parquet') ORDER BY date"`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExecuteEntriesExport(rootCtx, storeManager.GetEntryStore(), cfg.OutputFile, os.Stdout); err != nil {
			contract.LogFatal("Failed to export entries", err)
		}
	},
}

// storeClearCmd clears the store.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all logged entries",
	Long: `Delete every entry from the configured backend.

WARNING: This action cannot be undone. Consider exporting data first.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the entry and migration tables

Examples:
  tracktides store clear`,
	PreRunE: storeConfigWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		dbPath := cfg.StoreDBConnect
		if dbPath == "" {
			dbPath = contract.GetDBFilePath()
		}
		if err := iocache.ClearStore(cfg.StoreBackend, dbPath, cfg.StoreDBConnect); err != nil {
			contract.LogFatal("Failed to clear store", err)
		}
		fmt.Println("Store cleared successfully.")
	},
}

// storeMigrateCmd runs database migrations for the entry store.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the entry store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  tracktides store migrate

  # Rollback to the initial state
  tracktides store migrate --target-version 0`,
	PreRunE: storeConfigWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateEntries(cfg.StoreBackend, cfg.StoreDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
