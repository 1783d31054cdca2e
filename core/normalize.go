package core

import (
	"math"

	"github.com/astella/napkin/schema"
)

// Normalize maps a raw value onto the shared radial scale relative to the
// benchmark midpoint.
//
// For higher_better metrics the midpoint scores 70, half of it or less scores
// 40 and one and a half times it or more scores 100, with a straight line in
// between. A zero midpoint saturates: any positive value scores 100, zero
// scores 40.
//
// For percentage metrics the score is value/midpoint*100, unclamped, or 0 for a
// zero midpoint. Callers clamp with ClampScore.
func Normalize(value, midpoint float64, kind schema.MetricKind) float64 {
	if kind == schema.Percentage {
		if midpoint == 0 {
			return 0
		}
		return value / midpoint * 100
	}

	if midpoint == 0 {
		if value > 0 {
			return schema.CeilingScore
		}
		return schema.FloorScore
	}

	ratio := value / midpoint
	switch {
	case ratio >= schema.CeilingRatio:
		return schema.CeilingScore
	case ratio <= schema.FloorRatio:
		return schema.FloorScore
	default:
		slope := (schema.CeilingScore - schema.FloorScore) / (schema.CeilingRatio - schema.FloorRatio)
		return schema.FloorScore + (ratio-schema.FloorRatio)*slope
	}
}

// ClampScore bounds a score to [0,100]. NaN maps to the minimum.
func ClampScore(score float64) float64 {
	if math.IsNaN(score) {
		return schema.MinScore
	}
	return math.Min(math.Max(score, schema.MinScore), schema.MaxScore)
}

// NormalizeSeries normalizes one metric set against a stage benchmark, in axis order.
func NormalizeSeries(kind schema.SeriesKind, set schema.MetricSet, bench schema.StageBenchmark, defs []schema.MetricDef) schema.NormalizedSeries {
	scores := make([]float64, len(defs))
	for i, d := range defs {
		mid := bench.Range(d.Key).Midpoint()
		scores[i] = ClampScore(Normalize(set[d.Key], mid, d.Kind))
	}
	return schema.NormalizedSeries{Kind: kind, Scores: scores}
}
