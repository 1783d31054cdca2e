// Package core has core logic for normalization, label layout and chart assembly.
package core

import (
	"context"
	"fmt"
	"os"

	"github.com/astella/napkin/internal/contract"
	"github.com/astella/napkin/schema"
)

// ExecutorFunc defines the function signature for executing the different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// Executor binds an output writer to the command entry points.
type Executor struct {
	out contract.OutputWriter
}

// NewExecutor creates an executor that presents results through out.
func NewExecutor(out contract.OutputWriter) *Executor {
	return &Executor{out: out}
}

// ExecuteChart looks up the stage benchmark, lays out the chart and writes it.
// It serves as the main entry point for the 'chart' command.
func (e *Executor) ExecuteChart(ctx context.Context, cfg *contract.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	bench, err := cfg.Benchmarks.Lookup(cfg.Stage)
	if err != nil {
		return fmt.Errorf("failed to load benchmark: %w", err)
	}
	g := BuildChart(cfg.ChartInput(), bench)

	if cfg.Output == schema.TextOut {
		contract.LogChartHeader(os.Stdout, cfg)
	}
	return e.out.WriteChart(g, cfg)
}

// ExecuteStages writes every stage of the active benchmark table.
func (e *Executor) ExecuteStages(ctx context.Context, cfg *contract.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	benches, err := CollectStages(cfg.Benchmarks)
	if err != nil {
		return err
	}
	return e.out.WriteStages(benches, cfg.Metrics, cfg)
}

// ExecuteMetrics displays the normalization rules and the label overlap schedule.
// This is a static display that does not depend on the subject values.
func (e *Executor) ExecuteMetrics(_ context.Context, cfg *contract.Config) error {
	return e.out.WriteMetrics(BuildMetricsModel(cfg.Metrics, cfg.Threshold), cfg)
}

// CollectStages returns a copy of every stage of src in presentation order.
func CollectStages(src contract.BenchmarkSource) ([]schema.StageBenchmark, error) {
	stages := src.Stages()
	benches := make([]schema.StageBenchmark, 0, len(stages))
	for _, s := range stages {
		b, err := src.Lookup(s)
		if err != nil {
			return nil, fmt.Errorf("failed to load stage %s: %w", s, err)
		}
		benches = append(benches, b)
	}
	return benches, nil
}
