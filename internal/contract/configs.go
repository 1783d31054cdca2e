package contract

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/astella/napkin/internal/benchmark"
	"github.com/astella/napkin/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 1
	DefaultImageSize = 1400 // pixels per side
	DefaultDPI       = 100.0
	MinImageSize     = 200
	MaxImageSize     = 8000
	MaxDPI           = 600.0
)

// Config holds the runtime configuration for a chart.
// This struct remains the "final, validated" config.
type Config struct {
	Name       string
	Stage      schema.Stage
	Subject    schema.MetricSet
	Metrics    []schema.MetricDef
	Benchmarks BenchmarkSource
	Threshold  float64
	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	ImageSize  int
	DPI        float64

	BenchmarksFile string // Custom table path, empty for the built-in table

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Precision  int    `mapstructure:"precision"`
	Width      int    `mapstructure:"width"`
	Benchmarks string `mapstructure:"benchmarks"`
	Emoji      string `mapstructure:"emoji"`
	Color      string `mapstructure:"color"`

	// --- Fields from chartCmd.Flags() ---
	Name        string  `mapstructure:"name"`
	Stage       string  `mapstructure:"stage"`
	ARR         float64 `mapstructure:"arr"`
	Growth      float64 `mapstructure:"growth"`
	RoundSize   float64 `mapstructure:"round-size"`
	CapTable    float64 `mapstructure:"cap-table"`
	Valuation   float64 `mapstructure:"valuation"`
	GrossMargin float64 `mapstructure:"gross-margin"`
	Threshold   float64 `mapstructure:"threshold"`
	Size        int     `mapstructure:"size"`
	DPI         float64 `mapstructure:"dpi"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Subject != nil {
		clone.Subject = c.Subject.Clone()
	}
	if c.Metrics != nil {
		clone.Metrics = slices.Clone(c.Metrics)
	}
	return &clone
}

// ChartInput assembles the layout input described by the config.
func (c *Config) ChartInput() schema.ChartInput {
	return schema.ChartInput{
		Name:      c.Name,
		Stage:     c.Stage,
		Subject:   c.Subject.Clone(),
		Metrics:   slices.Clone(c.Metrics),
		Threshold: c.Threshold,
	}
}

// SubjectFromInput collects the six metric flags into a metric set.
func SubjectFromInput(input *ConfigRawInput) schema.MetricSet {
	return schema.MetricSet{
		schema.ARR:         input.ARR,
		schema.Growth:      input.Growth,
		schema.RoundSize:   input.RoundSize,
		schema.CapTable:    input.CapTable,
		schema.Valuation:   input.Valuation,
		schema.GrossMargin: input.GrossMargin,
	}
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct. A custom benchmark file, when given,
// replaces the fallback source.
func ProcessAndValidate(cfg *Config, fallback BenchmarkSource, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := resolveBenchmarks(cfg, fallback, input); err != nil {
		return err
	}
	if err := validateSubject(cfg, input); err != nil {
		return err
	}
	return validateImageOptions(cfg, input)
}

// ValidateSubject checks the simple numeric bounds of a metric set.
func ValidateSubject(defs []schema.MetricDef, subject schema.MetricSet) error {
	for _, d := range defs {
		v, ok := subject[d.Key]
		if !ok {
			return fmt.Errorf("missing value for %s", d.Key)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be a finite number", d.Key)
		}
		if v < 0 {
			return fmt.Errorf("%s must be >= 0 (received %v)", d.Key, v)
		}
		if d.Max > 0 && v > d.Max {
			return fmt.Errorf("%s must be <= %v (received %v)", d.Key, d.Max, v)
		}
	}
	return nil
}

// validateSimpleInputs processes and validates output related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.Name = strings.TrimSpace(input.Name)
	if cfg.Name == "" {
		cfg.Name = schema.DefaultStartupName
	}

	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json, csv, parquet, png", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	if input.Threshold <= 0 {
		return fmt.Errorf("threshold must be greater than 0 (received %v)", input.Threshold)
	}
	cfg.Threshold = input.Threshold

	if input.Width < 0 {
		return fmt.Errorf("width must be >= 0 (received %d)", input.Width)
	}
	return nil
}

// resolveBenchmarks picks the benchmark table and resolves the stage against it.
func resolveBenchmarks(cfg *Config, fallback BenchmarkSource, input *ConfigRawInput) error {
	cfg.Metrics = slices.Clone(schema.DefaultMetrics)
	cfg.Benchmarks = fallback
	cfg.BenchmarksFile = input.Benchmarks
	if input.Benchmarks != "" {
		table, err := benchmark.LoadFile(input.Benchmarks, cfg.Metrics)
		if err != nil {
			return fmt.Errorf("invalid --benchmarks file: %w", err)
		}
		cfg.Benchmarks = table
	}
	if cfg.Benchmarks == nil {
		return fmt.Errorf("no benchmark table available")
	}

	stage, err := cfg.Benchmarks.ResolveStage(input.Stage)
	if err != nil {
		return err
	}
	cfg.Stage = stage
	return nil
}

func validateSubject(cfg *Config, input *ConfigRawInput) error {
	subject := SubjectFromInput(input)
	if err := ValidateSubject(cfg.Metrics, subject); err != nil {
		return err
	}
	cfg.Subject = subject
	return nil
}

func validateImageOptions(cfg *Config, input *ConfigRawInput) error {
	if input.Size < MinImageSize || input.Size > MaxImageSize {
		return fmt.Errorf("size must be between %d and %d pixels (received %d)", MinImageSize, MaxImageSize, input.Size)
	}
	cfg.ImageSize = input.Size

	if input.DPI <= 0 || input.DPI > MaxDPI {
		return fmt.Errorf("dpi must be greater than 0 and cannot exceed %v (received %v)", MaxDPI, input.DPI)
	}
	cfg.DPI = input.DPI
	return nil
}

// ProcessProfilingConfig enables profiling when a file prefix is given.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
}
