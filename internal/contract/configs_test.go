package contract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/astella/napkin/internal/benchmark"
	"github.com/astella/napkin/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Output:      "text",
		Precision:   1,
		Emoji:       "no",
		Color:       "yes",
		Name:        "Acme",
		Stage:       "Seed",
		ARR:         1.1,
		Growth:      389,
		RoundSize:   3.5,
		CapTable:    72,
		Valuation:   13,
		GrossMargin: 82,
		Threshold:   schema.DefaultOverlapThreshold,
		Size:        DefaultImageSize,
		DPI:         DefaultDPI,
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*ConfigRawInput)
		expectError string
	}{
		{name: "valid minimal config", modify: func(*ConfigRawInput) {}},
		{name: "stage is folded", modify: func(in *ConfigRawInput) { in.Stage = "series-a" }},
		{name: "json output", modify: func(in *ConfigRawInput) { in.Output = "JSON" }},
		{name: "png output", modify: func(in *ConfigRawInput) { in.Output = "png" }},
		{name: "invalid output", modify: func(in *ConfigRawInput) { in.Output = "xml" }, expectError: "invalid output format"},
		{name: "parquet to stdout", modify: func(in *ConfigRawInput) { in.Output = "parquet" }, expectError: "requires --output-file"},
		{name: "precision too high", modify: func(in *ConfigRawInput) { in.Precision = 3 }, expectError: "precision must be 1 or 2"},
		{name: "unknown stage", modify: func(in *ConfigRawInput) { in.Stage = "Series C" }, expectError: "unknown stage"},
		{name: "negative value", modify: func(in *ConfigRawInput) { in.ARR = -1 }, expectError: "ARR must be >= 0"},
		{name: "cap table over 100", modify: func(in *ConfigRawInput) { in.CapTable = 101 }, expectError: "Cap Table must be <= 100"},
		{name: "gross margin over 100", modify: func(in *ConfigRawInput) { in.GrossMargin = 120 }, expectError: "Gross Margin must be <= 100"},
		{name: "growth over 100 is fine", modify: func(in *ConfigRawInput) { in.Growth = 1000 }},
		{name: "zero threshold", modify: func(in *ConfigRawInput) { in.Threshold = 0 }, expectError: "threshold must be greater than 0"},
		{name: "bad emoji flag", modify: func(in *ConfigRawInput) { in.Emoji = "maybe" }, expectError: "invalid --emoji value"},
		{name: "bad color flag", modify: func(in *ConfigRawInput) { in.Color = "sometimes" }, expectError: "invalid --color value"},
		{name: "negative width", modify: func(in *ConfigRawInput) { in.Width = -5 }, expectError: "width must be >= 0"},
		{name: "tiny image", modify: func(in *ConfigRawInput) { in.Size = 10 }, expectError: "size must be between"},
		{name: "zero dpi", modify: func(in *ConfigRawInput) { in.DPI = 0 }, expectError: "dpi must be greater than 0"},
		{name: "missing benchmark file", modify: func(in *ConfigRawInput) { in.Benchmarks = "nope.yaml" }, expectError: "invalid --benchmarks file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.modify(input)
			cfg := &Config{}
			err := ProcessAndValidate(cfg, benchmark.Default(), input)
			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestProcessAndValidateFields(t *testing.T) {
	input := validInput()
	input.Name = "  "
	input.Stage = "series b"
	input.Output = "CSV"
	input.OutputFile = "out.csv"
	input.Width = 120

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, benchmark.Default(), input))

	assert.Equal(t, schema.DefaultStartupName, cfg.Name)
	assert.Equal(t, schema.SeriesBStage, cfg.Stage)
	assert.Equal(t, schema.CSVOut, cfg.Output)
	assert.Equal(t, "out.csv", cfg.OutputFile)
	assert.Equal(t, 120, cfg.Width)
	assert.True(t, cfg.UseColors)
	assert.False(t, cfg.UseEmojis)
	assert.Equal(t, schema.DefaultSubject, cfg.Subject)
	assert.Equal(t, schema.DefaultMetrics, cfg.Metrics)
	assert.Empty(t, cfg.BenchmarksFile)
}

func TestProcessAndValidateCustomBenchmarks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.json")
	doc := `{"stages":[{"stage":"Bridge",
	 "low":{"ARR":2,"Growth":120,"Round Size":2,"Cap Table":70,"Valuation":12,"Gross Margin":65},
	 "high":{"ARR":4,"Growth":180,"Round Size":5,"Cap Table":75,"Valuation":20,"Gross Margin":75}}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	input := validInput()
	input.Benchmarks = path
	input.Stage = "bridge"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, benchmark.Default(), input))
	assert.Equal(t, schema.Stage("Bridge"), cfg.Stage)
	assert.Equal(t, path, cfg.BenchmarksFile)

	bench, err := cfg.Benchmarks.Lookup(cfg.Stage)
	require.NoError(t, err)
	assert.Equal(t, 3.0, bench.Range(schema.ARR).Midpoint())
}

// TestProcessAndValidateWithMockSource checks that stage resolution goes through the source.
func TestProcessAndValidateWithMockSource(t *testing.T) {
	source := &MockBenchmarkSource{}
	source.On("ResolveStage", "seed").Return(schema.SeedStage, nil).Once()

	input := validInput()
	input.Stage = "seed"
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, source, input))
	assert.Equal(t, schema.SeedStage, cfg.Stage)
	assert.Same(t, source, cfg.Benchmarks)
	source.AssertExpectations(t)

	failing := &MockBenchmarkSource{}
	failing.On("ResolveStage", mock.Anything).Return(schema.Stage(""), errors.New("boom"))
	err := ProcessAndValidate(&Config{}, failing, validInput())
	assert.EqualError(t, err, "boom")
}

func TestProcessAndValidateNilSource(t *testing.T) {
	err := ProcessAndValidate(&Config{}, nil, validInput())
	assert.ErrorContains(t, err, "no benchmark table")
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{
		Name:    "Acme",
		Subject: schema.DefaultSubject.Clone(),
		Metrics: schema.DefaultMetrics,
	}
	clone := cfg.Clone()
	clone.Subject[schema.ARR] = 99
	clone.Metrics[0].ShortName = "changed"

	assert.Equal(t, 1.1, cfg.Subject[schema.ARR])
	assert.Equal(t, "ARR", cfg.Metrics[0].ShortName)
	assert.Equal(t, "Acme", clone.Name)
}

func TestConfigChartInput(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, benchmark.Default(), validInput()))

	input := cfg.ChartInput()
	assert.Equal(t, "Acme", input.Name)
	assert.Equal(t, schema.SeedStage, input.Stage)
	assert.Equal(t, schema.DefaultOverlapThreshold, input.Threshold)

	input.Subject[schema.ARR] = 50
	assert.Equal(t, 1.1, cfg.Subject[schema.ARR])
}

func TestValidateSubjectMissingMetric(t *testing.T) {
	err := ValidateSubject(schema.DefaultMetrics, schema.MetricSet{schema.ARR: 1})
	assert.EqualError(t, err, "missing value for Growth")
}

func TestProcessProfilingConfig(t *testing.T) {
	profile := &ProfileConfig{}
	ProcessProfilingConfig(profile, "")
	assert.False(t, profile.Enabled)

	ProcessProfilingConfig(profile, "napkin")
	assert.True(t, profile.Enabled)
	assert.Equal(t, "napkin", profile.Prefix)
}
