package core

import (
	"math"

	"github.com/astella/napkin/schema"
)

// Axis label distances, as multiples of the outer ring radius.
const (
	firstAxisLabelDistance  = 1.10
	sideAxisLabelDistance   = 1.13
	bottomAxisLabelDistance = 1.17
)

// angleEpsilon absorbs float error when comparing axis angles against 0 and π.
const angleEpsilon = 1e-9

// AxisAngles returns n evenly spaced angles starting at 0. Angle 0 points up
// and angles grow clockwise.
func AxisAngles(n int) []float64 {
	if n <= 0 {
		return nil
	}
	step := 2 * math.Pi / float64(n)
	angles := make([]float64, n)
	for i := range n {
		angles[i] = float64(i) * step
	}
	return angles
}

// Project converts a chart angle and radius into cartesian coordinates with
// the origin at the chart centre and y pointing up.
func Project(angle, radius float64) (x, y float64) {
	return radius * math.Sin(angle), radius * math.Cos(angle)
}

// ProjectPoint is Project returning a schema.Point.
func ProjectPoint(angle, radius float64) schema.Point {
	x, y := Project(angle, radius)
	return schema.Point{X: x, Y: y}
}

// AxisLabelPlacement positions a metric name outside the rim. Labels on the
// right half are left-aligned, the left half right-aligned, and the top and
// bottom centred. The bottom label sits a little further out.
func AxisLabelPlacement(index int, angle float64, text string) schema.AxisLabel {
	label := schema.AxisLabel{Text: text, Radius: schema.MaxScore * sideAxisLabelDistance}
	switch {
	case index == 0:
		label.Align = schema.AlignCenter
		label.Radius = schema.MaxScore * firstAxisLabelDistance
	case math.Abs(angle) < angleEpsilon:
		label.Align = schema.AlignCenter
	case math.Abs(angle-math.Pi) < angleEpsilon:
		label.Align = schema.AlignCenter
		label.Radius = schema.MaxScore * bottomAxisLabelDistance
	case angle < math.Pi:
		label.Align = schema.AlignLeft
	default:
		label.Align = schema.AlignRight
	}
	label.Pos = ProjectPoint(angle, label.Radius)
	return label
}

// ChartLayers returns the drawing order of the chart. The benchmark band sits
// at the bottom, benchmark lines under the subject series, and the subject
// labels on top.
func ChartLayers() []schema.Layer {
	return []schema.Layer{
		{Kind: schema.GridLayer, ZOrder: 1},
		{Kind: schema.OuterRingLayer, ZOrder: 1},
		{Kind: schema.BenchmarkBandLayer, ZOrder: 1},
		{Kind: schema.BenchmarkLineLayer, ZOrder: 2, Series: schema.LowSeries},
		{Kind: schema.BenchmarkLineLayer, ZOrder: 2, Series: schema.HighSeries},
		{Kind: schema.SubjectFillLayer, ZOrder: 3, Series: schema.SubjectSeries},
		{Kind: schema.SubjectLineLayer, ZOrder: 4, Series: schema.SubjectSeries},
		{Kind: schema.SubjectHaloLayer, ZOrder: 4.5, Series: schema.SubjectSeries},
		{Kind: schema.BenchmarkLabelLayer, ZOrder: 5, Series: schema.LowSeries},
		{Kind: schema.BenchmarkLabelLayer, ZOrder: 5, Series: schema.HighSeries},
		{Kind: schema.SubjectMarkerLayer, ZOrder: 5, Series: schema.SubjectSeries},
		{Kind: schema.SubjectLabelLayer, ZOrder: 6, Series: schema.SubjectSeries},
		{Kind: schema.AxisLabelLayer, ZOrder: 6},
	}
}
