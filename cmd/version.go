package cmd

import (
	"runtime"
	"strings"

	"github.com/huangsam/tracktides/internal/iocache"
	"github.com/huangsam/tracktides/schema"
	"github.com/spf13/cobra"
)

// versionCmd prints build details plus what this binary can read and write.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tracktides.",
	Long: `Display build information for tracktides.

Shows the release, commit, build time and Go runtime, plus the store schema
version each database backend migrates to and the supported output modes.
Include it when reporting a bug.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("tracktides CLI\n")
		cmd.Printf("  Version: %s\n", version)
		cmd.Printf("  Commit:  %s\n", commit)
		cmd.Printf("  Built:   %s\n", date)
		cmd.Printf("  Runtime: %s\n", runtime.Version())

		for _, backend := range []schema.DatabaseBackend{schema.SQLiteBackend, schema.MySQLBackend, schema.PostgreSQLBackend} {
			if v, err := iocache.LatestMigrationVersion(backend); err == nil {
				cmd.Printf("  Schema:  %s v%d\n", backend, v)
			}
		}

		modes := make([]string, 0, len(schema.ValidOutputModes))
		for _, m := range []schema.OutputMode{schema.TextOut, schema.CSVOut, schema.JSONOut, schema.YAMLOut, schema.ParquetOut, schema.HTMLOut} {
			modes = append(modes, string(m))
		}
		cmd.Printf("  Outputs: %s\n", strings.Join(modes, ", "))
	},
}
