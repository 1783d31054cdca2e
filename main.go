// Command napkin charts startup metrics against stage benchmarks.
package main

import (
	"github.com/astella/napkin/cmd"
	"github.com/astella/napkin/internal/contract"
)

func main() {
	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Cannot stop profiling", stopErr)
	}
	if err != nil {
		contract.LogFatal("Cannot run napkin", err)
	}
}
