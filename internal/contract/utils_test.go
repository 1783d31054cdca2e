package contract

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/astella/napkin/schema"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    schema.Band
		expected string
	}{
		{name: "below", input: schema.BelowBand, expected: BelowValue},
		{name: "within", input: schema.WithinBand, expected: WithinValue},
		{name: "above", input: schema.AboveBand, expected: AboveValue},
		{name: "unknown falls back to within", input: schema.Band("sideways"), expected: WithinValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.input))
		})
	}
}

func TestGetColorLabel(t *testing.T) {
	original := color.NoColor
	defer func() { color.NoColor = original }()

	color.NoColor = true
	assert.Equal(t, BelowValue, GetColorLabel(schema.BelowBand))

	color.NoColor = false
	colored := GetColorLabel(schema.AboveBand)
	assert.Contains(t, colored, AboveValue)
	assert.NotEqual(t, AboveValue, colored)
}

func TestSelectOutputFile(t *testing.T) {
	f, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, f)

	path := filepath.Join(t.TempDir(), "chart.json")
	f, err = SelectOutputFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.FileExists(t, path)

	_, err = SelectOutputFile(filepath.Join(t.TempDir(), "missing", "chart.json"))
	assert.Error(t, err)
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		wantErr  bool
	}{
		{"yes", true, false},
		{"YES", true, false},
		{"true", true, false},
		{"1", true, false},
		{"no", false, false},
		{"False", false, false},
		{"0", false, false},
		{" no ", false, false},
		{"maybe", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLogChartHeader(t *testing.T) {
	cfg := &Config{Name: "Acme", Stage: schema.SeedStage, Threshold: 12}

	var buf bytes.Buffer
	LogChartHeader(&buf, cfg)
	assert.Equal(t, "Startup: Acme (Stage: Seed)\nBenchmarks: built-in (overlap threshold: 12)\n", buf.String())

	buf.Reset()
	cfg.UseEmojis = true
	cfg.BenchmarksFile = "custom.toml"
	LogChartHeader(&buf, cfg)
	assert.Contains(t, buf.String(), "🚀 Startup: Acme")
	assert.Contains(t, buf.String(), "📏 Benchmarks: custom.toml")
}
