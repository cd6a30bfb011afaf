// Package cmd defines the command-line interface for tracktides.
package cmd

import (
	"github.com/huangsam/tracktides/internal/contract"
	"github.com/huangsam/tracktides/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(shotsCmd)
	rootCmd.AddCommand(entriesCmd)
	rootCmd.AddCommand(medicationsCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the entries subcommands to the parent entries command
	entriesCmd.AddCommand(entriesListCmd)
	entriesCmd.AddCommand(entriesAddCmd)
	entriesCmd.AddCommand(entriesSeedCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeExportCmd)
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or yaml or parquet or html")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns (1 or 2)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("timezone", "local", "IANA timezone for calendar days, weeks and months")
	rootCmd.PersistentFlags().String("now", "", "Clock override in ISO8601 or time ago, for reproducible output")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql, or a file path for sqlite")
	rootCmd.PersistentFlags().Float64("height-inches", contract.DefaultHeightInches, "Height in inches used for BMI")
	rootCmd.PersistentFlags().Float64("goal-weight", contract.DefaultGoalWeight, "Goal weight in pounds")
	rootCmd.PersistentFlags().Int("shot-interval-days", contract.DefaultShotIntervalDays, "Days between scheduled shots")
	rootCmd.PersistentFlags().Int("sample-days", contract.DefaultSampleDays, "Days of sample data for the none backend and entries seed")
	rootCmd.PersistentFlags().Uint64("sample-seed", contract.DefaultSampleSeed, "Seed for generated sample data")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	bindFlags("root", rootCmd.PersistentFlags())

	// Bind all flags of chartCmd to Viper
	chartCmd.Flags().StringP("range", "r", string(schema.MonthRange), "Time range: D or W or M or 6M or Y")
	chartCmd.Flags().String("anchor", "", "End of the visible window in ISO8601 or time ago (default now)")
	chartCmd.Flags().String("select", "", "Pin the readout to the point nearest this date")
	bindFlags("chart", chartCmd.Flags())

	// Bind all persistent flags of entriesCmd to Viper
	entriesCmd.PersistentFlags().IntP("limit", "l", 0, "Only show the most recent N entries (0 = all)")
	bindFlags("entries", entriesCmd.PersistentFlags())

	// entries add flags describe one entry, not configuration, so they skip Viper
	addFlags := entriesAddCmd.Flags()
	addFlags.StringVar(&entryInput.Date, "date", "", "Day of the entry in ISO8601 or time ago (default now)")
	addFlags.Float64Var(&entryInput.Weight, "weight", 0, "Weight in pounds")
	addFlags.IntVar(&entryInput.Calories, "calories", 0, "Calories eaten")
	addFlags.IntVar(&entryInput.Protein, "protein", 0, "Protein in grams")
	addFlags.StringVar(&entryInput.Medication, "medication", "", "Medication injected (name, brand or generic name)")
	addFlags.StringVar(&entryInput.Dosage, "dosage", "", "Dosage, e.g. 2.5mg")
	addFlags.StringVar(&entryInput.InjectionSite, "site", "", "Injection site, e.g. Abdomen")
	addFlags.IntVar(&entryInput.Pain, "pain", 0, "Injection pain from 0 to 10")
	addFlags.StringVar(&entryInput.SideEffects, "side-effects", "", "Comma-separated side effects")
	addFlags.StringVar(&entryInput.Notes, "notes", "", "Free text notes")

	// Bind all flags of medicationsCmd to Viper
	medicationsCmd.Flags().String("category", "", "Only list one category (Metabolic, Hormone, Healing & Recovery, Immune, Stacks, Research)")
	medicationsCmd.Flags().Bool("approved", false, "Only list FDA-approved medications")
	bindFlags("medications", medicationsCmd.Flags())

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	bindFlags("store migrate", storeMigrateCmd.Flags())
}

// bindFlags binds a flag set to Viper or exits.
func bindFlags(name string, flags *pflag.FlagSet) {
	if err := viper.BindPFlags(flags); err != nil {
		contract.LogFatal("Error binding "+name+" flags", err)
	}
}
