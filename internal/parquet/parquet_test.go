package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/astella/napkin/core"
	"github.com/astella/napkin/internal/benchmark"
	"github.com/astella/napkin/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartPointStructTags(t *testing.T) {
	s := parquet.SchemaOf(new(ChartPoint))
	require.NotNil(t, s)

	expectedColumns := []string{
		"startup", "stage", "axis_index", "metric", "series", "value", "score",
		"label", "label_radius", "label_angle", "radial_offset", "angular_offset",
		"direction", "band",
	}
	for _, colName := range expectedColumns {
		col, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestStageRangeStructTags(t *testing.T) {
	s := parquet.SchemaOf(new(StageRange))
	for _, colName := range []string{"stage", "metric", "low", "high", "midpoint"} {
		_, ok := s.Lookup(colName)
		assert.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func seedGeometry(t *testing.T) schema.ChartGeometry {
	t.Helper()
	bench, err := benchmark.Default().Lookup(schema.SeedStage)
	require.NoError(t, err)
	return core.BuildChart(schema.ChartInput{Name: "Acme", Subject: schema.DefaultSubject}, bench)
}

func TestChartPointsFromGeometry(t *testing.T) {
	rows := ChartPointsFromGeometry(seedGeometry(t))
	require.Len(t, rows, 18)

	first := rows[0]
	assert.Equal(t, "Acme", first.Startup)
	assert.Equal(t, "Seed", first.Stage)
	assert.Equal(t, "ARR", first.Metric)
	assert.Equal(t, "subject", first.Series)
	require.NotNil(t, first.Band)
	assert.Equal(t, "within", *first.Band)
	assert.Nil(t, first.Direction)

	assert.Equal(t, "low", rows[1].Series)
	assert.Nil(t, rows[1].Band)

	// Cap Table high label is pushed outward.
	capHigh := rows[3*3+2]
	assert.Equal(t, "Cap Table", capHigh.Metric)
	require.NotNil(t, capHigh.Direction)
	assert.Equal(t, "up", *capHigh.Direction)
}

func TestWriteChartPoints(t *testing.T) {
	data := ChartPointsFromGeometry(seedGeometry(t))
	outputPath := filepath.Join(t.TempDir(), "chart.parquet")

	out, err := os.Create(outputPath)
	require.NoError(t, err)
	require.NoError(t, WriteChartPoints(out, data))
	require.NoError(t, out.Close())

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[ChartPoint](file)
	defer reader.Close()

	readData := make([]ChartPoint, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	require.Equal(t, len(data), n, "Should read all records")

	for i := range data {
		assert.Equal(t, data[i].Metric, readData[i].Metric)
		assert.Equal(t, data[i].Series, readData[i].Series)
		assert.Equal(t, data[i].Label, readData[i].Label)
		assert.InDelta(t, data[i].Score, readData[i].Score, 1e-9)
		assert.InDelta(t, data[i].LabelRadius, readData[i].LabelRadius, 1e-9)
		if data[i].Direction == nil {
			assert.Nil(t, readData[i].Direction)
		} else {
			require.NotNil(t, readData[i].Direction)
			assert.Equal(t, *data[i].Direction, *readData[i].Direction)
		}
	}
}

func TestWriteStageRanges(t *testing.T) {
	table := benchmark.Default()
	var benches []schema.StageBenchmark
	for _, s := range table.Stages() {
		b, err := table.Lookup(s)
		require.NoError(t, err)
		benches = append(benches, b)
	}
	data := StageRangesFromBenchmarks(benches, schema.DefaultMetrics)
	require.Len(t, data, 24)
	assert.Equal(t, "Pre-Seed", data[0].Stage)
	assert.InDelta(t, 0.09, data[0].Midpoint, 1e-9)

	outputPath := filepath.Join(t.TempDir(), "stages.parquet")
	out, err := os.Create(outputPath)
	require.NoError(t, err)
	require.NoError(t, WriteStageRanges(out, data))
	require.NoError(t, out.Close())

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteChartPointsEmpty(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.parquet")
	out, err := os.Create(outputPath)
	require.NoError(t, err)
	require.NoError(t, WriteChartPoints(out, []ChartPoint{}))
	require.NoError(t, out.Close())

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()
	reader := parquet.NewGenericReader[ChartPoint](file)
	defer reader.Close()
	assert.Equal(t, int64(0), reader.NumRows())
}
