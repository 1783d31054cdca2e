package outwriter

import (
	"github.com/astella/napkin/internal/contract"
	"github.com/astella/napkin/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteChart prints a chart using the configured output format.
func (ow *OutWriter) WriteChart(g schema.ChartGeometry, cfg *contract.Config) error {
	return PrintChart(g, cfg)
}

// WriteStages prints the benchmark stages using the configured output format.
func (ow *OutWriter) WriteStages(benches []schema.StageBenchmark, defs []schema.MetricDef, cfg *contract.Config) error {
	return PrintStages(benches, defs, cfg)
}

// WriteMetrics prints the normalization rules using the configured output format.
func (ow *OutWriter) WriteMetrics(renderModel *schema.MetricsRenderModel, cfg *contract.Config) error {
	return PrintMetricsDefinitions(renderModel, cfg)
}

var _ contract.OutputWriter = &OutWriter{} // Compile-time check
