// Package cmd defines the command-line interface for napkin.
package cmd

import (
	"github.com/astella/napkin/internal/contract"
	"github.com/astella/napkin/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(stagesCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or json or csv or parquet or png")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns (1 or 2)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("benchmarks", "", "Path to a custom stage benchmark table (yaml, toml or json)")
	rootCmd.PersistentFlags().Float64("threshold", schema.DefaultOverlapThreshold, "Score distance below which benchmark labels are moved off the subject label")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Subject flags are shared by chart and mcp, where they set the defaults of every tool call.
	for _, c := range []*cobra.Command{chartCmd, mcpCmd} {
		addSubjectFlags(c)
	}

	// Command flags are bound to Viper in sharedSetup, once the running command is known.
	chartCmd.Flags().Int("size", contract.DefaultImageSize, "PNG width and height in pixels")
	chartCmd.Flags().Float64("dpi", contract.DefaultDPI, "PNG resolution used to scale fonts and strokes")
}

// addSubjectFlags declares the startup name, stage and metric flags on c.
func addSubjectFlags(c *cobra.Command) {
	c.Flags().String("name", schema.DefaultStartupName, "Startup name shown in the legend")
	c.Flags().String("stage", string(schema.SeedStage), "Benchmark stage: Pre-Seed or Seed or Series A or Series B")
	c.Flags().Float64("arr", schema.DefaultSubject[schema.ARR], "Annual recurring revenue in $M")
	c.Flags().Float64("growth", schema.DefaultSubject[schema.Growth], "Year over year growth in %")
	c.Flags().Float64("round-size", schema.DefaultSubject[schema.RoundSize], "Current round size in $M")
	c.Flags().Float64("cap-table", schema.DefaultSubject[schema.CapTable], "Founder ownership in % (0-100)")
	c.Flags().Float64("valuation", schema.DefaultSubject[schema.Valuation], "Valuation in $M")
	c.Flags().Float64("gross-margin", schema.DefaultSubject[schema.GrossMargin], "Gross margin in % (0-100)")
}
