//go:build integration

package integration

import (
	"encoding/csv"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/astella/napkin/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartText(t *testing.T) {
	stdout, _, err := runNapkin(t, t.TempDir(), "chart", "--name", "Acme", "--emoji", "no", "--width", "100")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Startup: Acme (Stage: Seed)")
	assert.Contains(t, stdout, "Legend: Acme Metrics | Napkin Low | Napkin High")
	assert.Contains(t, stdout, "Napkin Benchmark: ARR $0.64M-$1.83M")
}

func TestChartJSON(t *testing.T) {
	stdout, _, err := runNapkin(t, t.TempDir(), "chart", "--stage", "series-b", "--output", "json")
	require.NoError(t, err)

	var g schema.ChartGeometry
	require.NoError(t, json.Unmarshal([]byte(stdout), &g))
	assert.Equal(t, schema.SeriesBStage, g.Stage)
	assert.Len(t, g.Axes, 6)
}

func TestChartEnvAndConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".napkin.yaml"), []byte("name: FromFile\nstage: Pre-Seed\n"), 0o644))

	stdout, _, err := runNapkin(t, dir, "chart", "--output", "json")
	require.NoError(t, err)
	var g schema.ChartGeometry
	require.NoError(t, json.Unmarshal([]byte(stdout), &g))
	assert.Equal(t, "FromFile", g.Name)
	assert.Equal(t, schema.PreSeedStage, g.Stage)
}

func TestChartPNG(t *testing.T) {
	dir := t.TempDir()
	_, stderr, err := runNapkin(t, dir, "chart", "--name", "Acme Rockets", "--output", "png", "--size", "400", "--dpi", "40")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Wrote PNG to napkin_radar_acme_rockets.png")

	file, err := os.Open(filepath.Join(dir, "napkin_radar_acme_rockets.png"))
	require.NoError(t, err)
	defer file.Close()
	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
}

func TestStagesCSV(t *testing.T) {
	stdout, _, err := runNapkin(t, t.TempDir(), "stages", "--output", "csv")
	require.NoError(t, err)
	records, err := csv.NewReader(strings.NewReader(stdout)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1+4*6)
}

func TestCustomBenchmarks(t *testing.T) {
	dir := t.TempDir()
	table := `[[stages]]
stage = "Angel"
[stages.low]
ARR = 0.0
Growth = 0.0
"Round Size" = 0.1
"Cap Table" = 95.0
Valuation = 1.0
"Gross Margin" = 60.0
[stages.high]
ARR = 0.1
Growth = 0.0
"Round Size" = 0.3
"Cap Table" = 95.0
Valuation = 3.0
"Gross Margin" = 60.0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stages.toml"), []byte(table), 0o644))

	stdout, _, err := runNapkin(t, dir, "chart", "--benchmarks", "stages.toml", "--stage", "angel", "--output", "json")
	require.NoError(t, err)
	var g schema.ChartGeometry
	require.NoError(t, json.Unmarshal([]byte(stdout), &g))
	assert.Equal(t, schema.Stage("Angel"), g.Stage)
}

func TestInvalidInputsFail(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown stage", []string{"chart", "--stage", "series-z"}, "unknown stage"},
		{"negative arr", []string{"chart", "--arr", "-1"}, "ARR must be >= 0"},
		{"bad output", []string{"chart", "--output", "xml"}, "invalid output format"},
		{"parquet needs file", []string{"stages", "--output", "parquet"}, "requires --output-file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := runNapkin(t, t.TempDir(), tt.args...)
			require.Error(t, err)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestVersion(t *testing.T) {
	// cobra's cmd.Printf writes to stderr.
	_, stderr, err := runNapkin(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, stderr, "napkin CLI")
	assert.Contains(t, stderr, "Stages:  Pre-Seed, Seed, Series A, Series B")
}
