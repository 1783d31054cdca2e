package core

import (
	"strings"

	"github.com/astella/napkin/schema"
)

// BuildChart turns a subject metric set and its stage benchmark into drawable
// geometry. It is pure: the same input always yields the same geometry.
func BuildChart(input schema.ChartInput, bench schema.StageBenchmark) schema.ChartGeometry {
	defs := input.Metrics
	if len(defs) == 0 {
		defs = schema.DefaultMetrics
	}
	threshold := input.Threshold
	if threshold <= 0 {
		threshold = schema.DefaultOverlapThreshold
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = schema.DefaultStartupName
	}

	subject := NormalizeSeries(schema.SubjectSeries, input.Subject, bench, defs)
	low := NormalizeSeries(schema.LowSeries, bench.Low, bench, defs)
	high := NormalizeSeries(schema.HighSeries, bench.High, bench, defs)

	angles := AxisAngles(len(defs))
	axes := make([]schema.AxisGeometry, len(defs))
	for i, d := range defs {
		angle := angles[i]
		r := bench.Range(d.Key)
		value := input.Subject[d.Key]
		s := subject.Scores[i]

		axes[i] = schema.AxisGeometry{
			Index:  i,
			Metric: d,
			Angle:  angle,
			Tip:    ProjectPoint(angle, schema.MaxScore),
			Range:  r,
			Band:   schema.ClassifyBand(value, r),
			Label:  AxisLabelPlacement(i, angle, string(d.Key)),
			Subject: schema.PointGeometry{
				Series: schema.SubjectSeries,
				Value:  value,
				Score:  s,
				Label:  schema.FormatValue(d, value),
				Pos:    ProjectPoint(angle, s),
				Place:  centeredLabel(angle, s),
			},
			Low:  benchmarkPoint(schema.LowSeries, d, r.Low, low.Scores[i], s, angle, threshold),
			High: benchmarkPoint(schema.HighSeries, d, r.High, high.Scores[i], s, angle, threshold),
		}
	}

	return schema.ChartGeometry{
		Name:      name,
		Stage:     bench.Stage,
		Threshold: threshold,
		Axes:      axes,
		Series:    []schema.NormalizedSeries{subject, low, high},
		Layers:    ChartLayers(),
		Legend:    schema.BuildLegend(name),
		Footnote:  schema.BuildFootnote(defs, bench),
	}
}

func benchmarkPoint(kind schema.SeriesKind, d schema.MetricDef, value, score, subject, angle, threshold float64) schema.PointGeometry {
	return schema.PointGeometry{
		Series: kind,
		Value:  value,
		Score:  score,
		Label:  schema.FormatValue(d, value),
		Pos:    ProjectPoint(angle, score),
		Place:  PlaceLabel(angle, subject, score, threshold),
	}
}
