package cmd

import (
	"github.com/huangsam/tracktides/core"
	"github.com/huangsam/tracktides/internal/contract"
	"github.com/spf13/cobra"
)

// summaryCmd shows BMI, goal progress and the next shot.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show BMI, goal progress and when the next shot is due.",
	Long: `Roll the entry log up into a health summary.

Shows:
- BMI from the latest weight and --height-inches
- Progress from the first logged weight towards --goal-weight
- The last shot and the next one, due --shot-interval-days later

Examples:
  tracktides summary --goal-weight 165
  tracktides summary --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSummary(rootCtx, cfg, storeManager, writer); err != nil {
			contract.LogFatal("Cannot build summary", err)
		}
	},
}

// shotsCmd shows the shot log grouped by month.
var shotsCmd = &cobra.Command{
	Use:   "shots",
	Short: "List injections grouped by month, newest first.",
	Long: `List every logged injection grouped by calendar month.

Each shot is numbered in chronological order. The footer reports days since
the first shot and the average interval between shots.

Examples:
  tracktides shots
  tracktides shots --output csv --output-file shots.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteShots(rootCtx, cfg, storeManager, writer); err != nil {
			contract.LogFatal("Cannot build shot history", err)
		}
	},
}
