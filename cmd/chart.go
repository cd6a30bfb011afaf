package cmd

import (
	"github.com/huangsam/tracktides/core"
	"github.com/huangsam/tracktides/internal/contract"
	"github.com/spf13/cobra"
)

// chartCmd builds chart views for one or more series.
var chartCmd = &cobra.Command{
	Use:   "chart [weight|change|pain|all]",
	Short: "Chart weight, weight change and injection pain over a time range.",
	Long: `Build the chart for each selected series over a trailing time range.

Every chart shows:
- The visible window for the range (day, week, month, 6 months, year)
- A Y axis range fitted to the visible values
- The average of the window, or the value of a pinned point

Longer ranges are smoothed: 6 months plots weekly averages and a year plots
monthly averages.

Examples:
  # Weight over the last month (default range)
  tracktides chart weight

  # Every series over six months
  tracktides chart all --range 6M

  # Scroll back two weeks and pin a date
  tracktides chart weight --range W --anchor "2 weeks ago" --select 2025-01-10

  # Interactive HTML charts
  tracktides chart --output html --output-file charts.html`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteChart(rootCtx, cfg, storeManager, writer); err != nil {
			contract.LogFatal("Cannot build chart", err)
		}
	},
}
