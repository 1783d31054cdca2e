package cmd

import (
	"github.com/spf13/cobra"
)

// stagesCmd lists the benchmark table.
var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List the benchmark ranges of every stage.",
	Long: `Show the low and high benchmark of every metric for each stage.

Uses the built-in table unless --benchmarks points at a custom one, which makes
this a quick way to check a custom table before charting against it.

Examples:
  napkin stages
  napkin stages --benchmarks stages.yaml --output csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor(executor.ExecuteStages, "Cannot list stages"),
}
