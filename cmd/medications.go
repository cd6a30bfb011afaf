package cmd

import (
	"github.com/huangsam/tracktides/core"
	"github.com/huangsam/tracktides/internal/contract"
	"github.com/huangsam/tracktides/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// medicationsCmd lists the built-in catalogue. It needs no store.
var medicationsCmd = &cobra.Command{
	Use:   "medications",
	Short: "List the built-in medication catalogue.",
	Long: `List the medications that entries add recognizes by name, brand or generic name.

Examples:
  tracktides medications
  tracktides medications --category metabolic --output json
  tracktides medications --approved`,
	Args: cobra.NoArgs,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		if err := loadConfigFile(); err != nil {
			return err
		}
		if err := viper.Unmarshal(input); err != nil {
			return err
		}
		input.StoreBackend = string(schema.NoneBackend)
		return contract.ProcessAndValidate(cfg, input)
	},
	Run: func(_ *cobra.Command, _ []string) {
		filter := core.MedicationFilter{
			Category:     viper.GetString("category"),
			ApprovedOnly: viper.GetBool("approved"),
		}
		if err := core.ExecuteMedications(rootCtx, cfg, filter, writer); err != nil {
			contract.LogFatal("Cannot list medications", err)
		}
	},
}
