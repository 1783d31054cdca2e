// Package main provides a performance benchmarking tool for the napkin chart pipeline.
// It measures layout and PNG rendering times for every built-in stage at several image sizes,
// running each case multiple times, treating the first run as cold and averaging the rest as warm,
// and generating CSV output for performance analysis and documentation.
//
// Usage: go run benchmark/main.go [runs]
//
//	runs: Number of runs per case (default 5, minimum 2)
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/astella/napkin/core"
	"github.com/astella/napkin/internal/benchmark"
	"github.com/astella/napkin/internal/render"
	"github.com/astella/napkin/schema"
)

// BenchmarkResult holds the timings of one stage and image size.
type BenchmarkResult struct {
	Stage      string
	Size       int
	LayoutTime string
	ColdTime   string
	WarmTime   string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	Runs  int
	Sizes []int
	DPI   map[int]float64
}

func main() {
	runs := 5
	if len(os.Args) == 2 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n < 2 {
			fmt.Printf("Usage: %s [runs >= 2]\n", os.Args[0])
			os.Exit(1)
		}
		runs = n
	}

	config := BenchmarkConfig{
		Runs:  runs,
		Sizes: []int{700, 1400, 4200},
		DPI:   map[int]float64{700: 50, 1400: 100, 4200: 300},
	}

	results, err := runBenchmarks(config)
	if err != nil {
		fmt.Printf("Benchmark failed: %v\n", err)
		os.Exit(1)
	}

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// runBenchmarks times every built-in stage at every configured size.
func runBenchmarks(config BenchmarkConfig) ([]BenchmarkResult, error) {
	table := benchmark.Default()
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d stages, %d sizes, %d runs\n", len(table.Stages()), len(config.Sizes), config.Runs)

	for _, stage := range table.Stages() {
		bench, err := table.Lookup(stage)
		if err != nil {
			return nil, err
		}
		input := schema.ChartInput{Name: "Benchmark", Stage: stage, Subject: schema.DefaultSubject}

		layout := timeLayout(input, bench, config.Runs)
		g := core.BuildChart(input, bench)

		for _, size := range config.Sizes {
			fmt.Printf("Rendering %s at %dpx\n", stage, size)
			opts := render.Options{Size: size, DPI: config.DPI[size]}
			cold, warm, err := timeRender(g, opts, config.Runs)
			if err != nil {
				return nil, err
			}
			results = append(results, BenchmarkResult{
				Stage:      string(stage),
				Size:       size,
				LayoutTime: formatDuration(layout),
				ColdTime:   formatDuration(cold),
				WarmTime:   formatDuration(warm),
			})
		}
	}
	return results, nil
}

// timeLayout returns the average time of one BuildChart call.
func timeLayout(input schema.ChartInput, bench schema.StageBenchmark, runs int) time.Duration {
	const callsPerRun = 1000
	start := time.Now()
	for range runs * callsPerRun {
		_ = core.BuildChart(input, bench)
	}
	return time.Since(start) / time.Duration(runs*callsPerRun)
}

// timeRender renders g runs times and returns the cold time and the warm average.
func timeRender(g schema.ChartGeometry, opts render.Options, runs int) (cold, warm time.Duration, err error) {
	var total time.Duration
	for run := range runs {
		start := time.Now()
		if err := render.WritePNG(io.Discard, g, schema.DefaultTheme(), opts); err != nil {
			return 0, 0, err
		}
		elapsed := time.Since(start)
		if run == 0 {
			cold = elapsed
			continue
		}
		total += elapsed
	}
	return cold, total / time.Duration(runs-1), nil
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.3fms", float64(d)/float64(time.Millisecond))
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s/napkin_benchmark_%s.csv", os.TempDir(), timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"stage", "size", "layout_avg", "render_cold", "render_warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		record := []string{result.Stage, strconv.Itoa(result.Size), result.LayoutTime, result.ColdTime, result.WarmTime}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, result := range results {
		fmt.Printf("  %-9s %5dpx: Layout: %s, Cold: %s, Warm: %s\n", result.Stage, result.Size, result.LayoutTime, result.ColdTime, result.WarmTime)
	}
}
