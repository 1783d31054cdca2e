package core

import (
	"math"

	"github.com/astella/napkin/schema"
)

// overlapTier is one step of the displacement schedule. The push grows as
// the labels get closer.
type overlapTier struct {
	below   float64 // applies when distance < below
	slope   float64
	base    float64
	angular float64
}

var overlapTiers = []overlapTier{
	{below: 7, slope: 1.3, base: 8, angular: 0.18},
	{below: 9, slope: 1.1, base: 6, angular: 0.12},
	{below: math.Inf(1), slope: 0.9, base: 4, angular: 0.08},
}

// ResolveOverlap computes how far a benchmark label must move to stay clear
// of the subject label on the same axis. Labels at least threshold apart are
// left alone. A benchmark below the subject is pushed down (toward the centre)
// with a positive angular shift; otherwise it is pushed up with a negative one.
func ResolveOverlap(subject, benchmark, threshold float64) schema.LabelPlacement {
	distance := math.Abs(subject - benchmark)
	if distance >= threshold {
		return schema.LabelPlacement{}
	}

	var tier overlapTier
	for _, t := range overlapTiers {
		if distance < t.below {
			tier = t
			break
		}
	}

	p := schema.LabelPlacement{
		RadialOffset:  (threshold-distance)*tier.slope + tier.base,
		AngularOffset: tier.angular,
		Direction:     schema.DownDir,
	}
	if benchmark >= subject {
		p.Direction = schema.UpDir
		p.AngularOffset = -tier.angular
	}
	return p
}

// PlaceLabel resolves the overlap of a benchmark label and applies it to the
// label's axis angle and score, clamping the displaced radius into [0,100].
func PlaceLabel(angle, subject, benchmark, threshold float64) schema.LabelPlacement {
	p := ResolveOverlap(subject, benchmark, threshold)
	switch p.Direction {
	case schema.DownDir:
		p.Radius = ClampScore(benchmark - p.RadialOffset)
	case schema.UpDir:
		p.Radius = ClampScore(benchmark + p.RadialOffset)
	default:
		p.Radius = benchmark
	}
	p.Angle = angle + p.AngularOffset
	p.Align = alignFor(p.AngularOffset)
	p.Pos = ProjectPoint(p.Angle, p.Radius)
	return p
}

// centeredLabel is the placement of a label drawn exactly on its point.
func centeredLabel(angle, score float64) schema.LabelPlacement {
	return schema.LabelPlacement{Radius: score, Angle: angle, Align: schema.AlignCenter, Pos: ProjectPoint(angle, score)}
}

func alignFor(angular float64) schema.Align {
	switch {
	case angular > 0:
		return schema.AlignLeft
	case angular < 0:
		return schema.AlignRight
	default:
		return schema.AlignCenter
	}
}
