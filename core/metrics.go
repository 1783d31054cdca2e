package core

import (
	"fmt"
	"math"

	"github.com/astella/napkin/schema"
)

// BuildMetricsModel describes how defs are normalized and how benchmark labels
// are displaced at the given overlap threshold.
func BuildMetricsModel(defs []schema.MetricDef, threshold float64) *schema.MetricsRenderModel {
	if len(defs) == 0 {
		defs = schema.DefaultMetrics
	}
	if threshold <= 0 {
		threshold = schema.DefaultOverlapThreshold
	}

	metrics := make([]schema.MetricFormula, len(defs))
	for i, d := range defs {
		m := schema.MetricFormula{Metric: d.Key, Kind: d.Kind, Format: d.Format, Max: d.Max}
		switch d.Kind {
		case schema.Percentage:
			m.Formula = "value / midpoint * 100, capped at 100"
			m.ZeroMidpoint = "0"
		default:
			m.Formula = fmt.Sprintf("%v + (value/midpoint - %v) * %v, clamped to [%v, %v]",
				schema.FloorScore, schema.FloorRatio,
				(schema.CeilingScore-schema.FloorScore)/(schema.CeilingRatio-schema.FloorRatio),
				schema.FloorScore, schema.CeilingScore)
			m.ZeroMidpoint = fmt.Sprintf("%v if value > 0, else %v", schema.CeilingScore, schema.FloorScore)
		}
		metrics[i] = m
	}

	overlap := make([]schema.OverlapRule, 0, len(overlapTiers))
	lower := 0.0
	for _, t := range overlapTiers {
		if lower >= threshold {
			break
		}
		upper := math.Min(t.below, threshold)
		overlap = append(overlap, schema.OverlapRule{
			Distance: fmt.Sprintf("%v <= distance < %v", lower, upper),
			Radial:   fmt.Sprintf("(%v - distance) * %v + %v", threshold, t.slope, t.base),
			Angular:  t.angular,
		})
		lower = t.below
	}

	return &schema.MetricsRenderModel{
		Title:       "Napkin Normalization",
		Description: fmt.Sprintf("Scores share a 0-100 radius where the benchmark midpoint scores %v", schema.ReferenceScore),
		Metrics:     metrics,
		Overlap:     overlap,
		Threshold:   threshold,
	}
}
