package contract

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/astella/napkin/schema"
	"github.com/fatih/color"
)

// Band label constants.
const (
	BelowValue  = "Below"  // Below the benchmark range
	WithinValue = "Within" // Inside the benchmark range
	AboveValue  = "Above"  // Above the benchmark range
)

// Color variables for console output.
var (
	BelowColor  = color.New(color.FgRed, color.Bold)   // BelowColor flags a metric under the low benchmark.
	WithinColor = color.New(color.FgCyan)              // WithinColor is the neutral in-range signal.
	AboveColor  = color.New(color.FgGreen, color.Bold) // AboveColor marks a metric beating the high benchmark.
)

// GetPlainLabel returns a plain text label for a benchmark band. This is the
// core logic used for CSV, JSON, and table printing.
func GetPlainLabel(band schema.Band) string {
	switch band {
	case schema.BelowBand:
		return BelowValue
	case schema.AboveBand:
		return AboveValue
	default:
		return WithinValue
	}
}

// GetColorLabel returns a colored band label for console output (table).
func GetColorLabel(band schema.Band) string {
	text := GetPlainLabel(band)

	switch band {
	case schema.BelowBand:
		return BelowColor.Sprint(text)
	case schema.AboveBand:
		return AboveColor.Sprint(text)
	default:
		return WithinColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// LogChartHeader prints a concise, 2-line header for a chart.
func LogChartHeader(w io.Writer, cfg *Config) {
	source := "built-in"
	if cfg.BenchmarksFile != "" {
		source = cfg.BenchmarksFile
	}
	if cfg.UseEmojis {
		_, _ = fmt.Fprintf(w, "🚀 Startup: %s (Stage: %s)\n", cfg.Name, cfg.Stage)
		_, _ = fmt.Fprintf(w, "📏 Benchmarks: %s (overlap threshold: %v)\n", source, cfg.Threshold)
		return
	}
	_, _ = fmt.Fprintf(w, "Startup: %s (Stage: %s)\n", cfg.Name, cfg.Stage)
	_, _ = fmt.Fprintf(w, "Benchmarks: %s (overlap threshold: %v)\n", source, cfg.Threshold)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
