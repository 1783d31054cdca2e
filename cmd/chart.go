package cmd

import (
	"github.com/spf13/cobra"
)

// chartCmd builds the radar chart of one startup.
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Chart startup metrics against the benchmark range of its stage.",
	Long: `Normalize six startup metrics against the low and high benchmark of a stage
and lay them out on a radar chart.

Every metric is scored on a shared 0-100 radius where the benchmark midpoint
scores 70. Benchmark labels that would collide with the startup's label are
pushed toward or away from the centre.

Output formats:
- text: one row per metric with its score, range and band
- json: the complete chart geometry (angles, radii, label offsets, layers)
- csv / parquet: one row per metric and series
- png: the rendered chart, napkin_radar_<name>.png unless --output-file is set

Examples:
  # Table for the default Seed stage
  napkin chart --name Acme --arr 1.1 --growth 389 --round-size 3.5 \
    --cap-table 72 --valuation 13 --gross-margin 82

  # Render a PNG against Series A
  napkin chart --name Acme --stage series-a --output png

  # Print geometry for a custom benchmark table
  napkin chart --benchmarks stages.toml --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor(executor.ExecuteChart, "Cannot build chart"),
}
