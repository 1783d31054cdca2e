package core

import (
	"math"
	"testing"

	"github.com/astella/napkin/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxisAngles(t *testing.T) {
	angles := AxisAngles(6)
	require.Len(t, angles, 6)
	for i, a := range angles {
		assert.InDelta(t, float64(i)*math.Pi/3, a, 1e-12)
	}
	assert.Nil(t, AxisAngles(0))
}

func TestProject(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		x, y  float64
	}{
		{"up", 0, 0, 100},
		{"right", math.Pi / 2, 100, 0},
		{"down", math.Pi, 0, -100},
		{"left", 3 * math.Pi / 2, -100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Project(tt.angle, 100)
			assert.InDelta(t, tt.x, x, 1e-9)
			assert.InDelta(t, tt.y, y, 1e-9)
		})
	}
}

// TestAxisLabelPlacementSixAxes checks the standard hexagon layout.
func TestAxisLabelPlacementSixAxes(t *testing.T) {
	expected := []struct {
		align  schema.Align
		radius float64
	}{
		{schema.AlignCenter, 110},
		{schema.AlignLeft, 113},
		{schema.AlignLeft, 113},
		{schema.AlignCenter, 117},
		{schema.AlignRight, 113},
		{schema.AlignRight, 113},
	}
	for i, angle := range AxisAngles(6) {
		label := AxisLabelPlacement(i, angle, "m")
		assert.Equal(t, expected[i].align, label.Align, "axis %d", i)
		assert.InDelta(t, expected[i].radius, label.Radius, 1e-9, "axis %d", i)
		assert.Equal(t, "m", label.Text)
	}
}

func TestAxisLabelPlacementFiveAxes(t *testing.T) {
	angles := AxisAngles(5)
	aligns := make([]schema.Align, len(angles))
	for i, a := range angles {
		aligns[i] = AxisLabelPlacement(i, a, "").Align
	}
	// No axis lands exactly at the bottom with an odd count.
	assert.Equal(t, []schema.Align{schema.AlignCenter, schema.AlignLeft, schema.AlignLeft, schema.AlignRight, schema.AlignRight}, aligns)
}

func TestChartLayersOrder(t *testing.T) {
	layers := ChartLayers()
	require.NotEmpty(t, layers)

	z := map[schema.LayerKind]float64{}
	for i, l := range layers {
		if i > 0 {
			assert.GreaterOrEqual(t, l.ZOrder, layers[i-1].ZOrder, "layers must be sorted bottom to top")
		}
		z[l.Kind] = l.ZOrder
	}
	assert.Less(t, z[schema.BenchmarkBandLayer], z[schema.SubjectFillLayer])
	assert.Less(t, z[schema.BenchmarkLineLayer], z[schema.SubjectLineLayer])
	assert.Less(t, z[schema.SubjectLineLayer], z[schema.SubjectHaloLayer])
	assert.Less(t, z[schema.SubjectHaloLayer], z[schema.SubjectMarkerLayer])
	assert.Greater(t, z[schema.SubjectLabelLayer], z[schema.BenchmarkLabelLayer])
}
