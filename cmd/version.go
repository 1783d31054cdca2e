package cmd

import (
	"runtime"
	"strings"

	"github.com/astella/napkin/internal/benchmark"
	"github.com/spf13/cobra"
)

// versionCmd shows the verbose version for diagnostic purposes.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of napkin.",
	Long: `Display version information including build details.

Shows:
- Release version
- Git commit hash
- Build timestamp
- Go runtime version
- Stages of the built-in benchmark table`,
	Run: func(cmd *cobra.Command, _ []string) {
		var stages []string
		for _, s := range benchmark.Default().Stages() {
			stages = append(stages, string(s))
		}
		cmd.Printf("napkin CLI\n")
		cmd.Printf("  Version: %s\n", version)
		cmd.Printf("  Commit:  %s\n", commit)
		cmd.Printf("  Built:   %s\n", date)
		cmd.Printf("  Runtime: %s\n", runtime.Version())
		cmd.Printf("  Stages:  %s\n", strings.Join(stages, ", "))
	},
}
