package cmd

import (
	"github.com/spf13/cobra"
)

// metricsCmd displays how metrics are normalized.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display normalization formulas and the label overlap schedule.",
	Long: `Show how each metric is turned into a chart score and how far benchmark
labels move when they get close to the startup's label.

No chart is built - this is purely informational.

Examples:
  napkin metrics
  napkin metrics --threshold 8 --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor(executor.ExecuteMetrics, "Cannot display metrics"),
}
