// Package contract provides interfaces and shared utilities for napkin's internal architecture.
package contract

import "github.com/astella/napkin/schema"

// BenchmarkSource defines the operations needed to resolve a stage benchmark.
// This allows the chart pipeline to be tested without the embedded table.
type BenchmarkSource interface {
	// Stages returns the known stage names in presentation order.
	Stages() []schema.Stage

	// Lookup returns a copy of the benchmark for a stage.
	Lookup(stage schema.Stage) (schema.StageBenchmark, error)

	// ResolveStage maps loose user input such as "series-a" onto a stage name.
	ResolveStage(input string) (schema.Stage, error)
}

// OutputWriter defines the operations that present results to the user.
// This allows the chart pipeline to be tested without touching stdout or files.
type OutputWriter interface {
	// WriteChart prints a chart using the configured output format.
	WriteChart(g schema.ChartGeometry, cfg *Config) error

	// WriteStages prints the benchmark stages using the configured output format.
	WriteStages(benches []schema.StageBenchmark, defs []schema.MetricDef, cfg *Config) error

	// WriteMetrics prints the normalization rules using the configured output format.
	WriteMetrics(renderModel *schema.MetricsRenderModel, cfg *Config) error
}
