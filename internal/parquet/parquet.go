// Package parquet provides data structures and functions for exporting napkin
// chart data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"

	"github.com/astella/napkin/schema"
	"github.com/parquet-go/parquet-go"
)

// ChartPoint is one series value on one axis of a chart, with its label placement.
type ChartPoint struct {
	// Startup is the display name of the charted company
	Startup string `parquet:"startup,snappy,dict"`

	// Stage is the benchmark stage the chart was normalized against
	Stage string `parquet:"stage,snappy,dict"`

	// AxisIndex is the position of the metric in axis order
	AxisIndex int32 `parquet:"axis_index,snappy"`

	// Metric is the metric name of the axis
	Metric string `parquet:"metric,snappy,dict"`

	// Series is subject, low or high
	Series string `parquet:"series,snappy,dict"`

	// Value is the raw metric value
	Value float64 `parquet:"value,snappy"`

	// Score is the normalized radius in [0,100]
	Score float64 `parquet:"score,snappy"`

	// Label is the formatted value text
	Label string `parquet:"label,snappy"`

	// LabelRadius and LabelAngle are the final label position
	LabelRadius float64 `parquet:"label_radius,snappy"`
	LabelAngle  float64 `parquet:"label_angle,snappy"`

	// RadialOffset and AngularOffset are the collision displacement
	RadialOffset  float64 `parquet:"radial_offset,snappy"`
	AngularOffset float64 `parquet:"angular_offset,snappy"`

	// Direction is the push direction of a displaced label (nullable)
	Direction *string `parquet:"direction,optional,snappy"`

	// Band classifies the subject value against the benchmark (nullable, subject rows only)
	Band *string `parquet:"band,optional,snappy"`
}

// StageRange is one metric range of one benchmark stage.
type StageRange struct {
	Stage    string  `parquet:"stage,snappy,dict"`
	Metric   string  `parquet:"metric,snappy,dict"`
	Low      float64 `parquet:"low,snappy"`
	High     float64 `parquet:"high,snappy"`
	Midpoint float64 `parquet:"midpoint,snappy"`
}

// ChartPointsFromGeometry flattens a chart into rows, axis by axis in
// subject, low, high order.
func ChartPointsFromGeometry(g schema.ChartGeometry) []ChartPoint {
	rows := make([]ChartPoint, 0, len(g.Axes)*3)
	for _, a := range g.Axes {
		for _, p := range []schema.PointGeometry{a.Subject, a.Low, a.High} {
			row := ChartPoint{
				Startup:       g.Name,
				Stage:         string(g.Stage),
				AxisIndex:     int32(a.Index),
				Metric:        string(a.Metric.Key),
				Series:        string(p.Series),
				Value:         p.Value,
				Score:         p.Score,
				Label:         p.Label,
				LabelRadius:   p.Place.Radius,
				LabelAngle:    p.Place.Angle,
				RadialOffset:  p.Place.RadialOffset,
				AngularOffset: p.Place.AngularOffset,
			}
			if p.Place.Adjusted() {
				dir := string(p.Place.Direction)
				row.Direction = &dir
			}
			if p.Series == schema.SubjectSeries {
				band := string(a.Band)
				row.Band = &band
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// StageRangesFromBenchmarks flattens benchmark stages into rows in metric order.
func StageRangesFromBenchmarks(benches []schema.StageBenchmark, defs []schema.MetricDef) []StageRange {
	rows := make([]StageRange, 0, len(benches)*len(defs))
	for _, b := range benches {
		for _, d := range defs {
			r := b.Range(d.Key)
			rows = append(rows, StageRange{
				Stage:    string(b.Stage),
				Metric:   string(d.Key),
				Low:      r.Low,
				High:     r.High,
				Midpoint: r.Midpoint(),
			})
		}
	}
	return rows
}

// WriteChartPoints writes chart rows as a Parquet file to w.
func WriteChartPoints(w io.Writer, data []ChartPoint) error {
	return writeRows(w, data)
}

// WriteStageRanges writes benchmark rows as a Parquet file to w.
func WriteStageRanges(w io.Writer, data []StageRange) error {
	return writeRows(w, data)
}

// writeRows writes a slice of rows using struct schema inference.
func writeRows[T any](w io.Writer, data []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
