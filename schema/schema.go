// Package schema has models, constants and display helpers for all parts of napkin.
package schema

// MetricDef describes one axis of the chart.
type MetricDef struct {
	Key       MetricKey     `json:"key"`
	Kind      MetricKind    `json:"kind"`
	Format    DisplayFormat `json:"format"`
	ShortName string        `json:"short_name"` // name used in the benchmark footnote
	Max       float64       `json:"max,omitempty"`
}

// MetricSet maps each metric to a raw, non-negative value.
type MetricSet map[MetricKey]float64

// Clone returns a copy of the set.
func (m MetricSet) Clone() MetricSet {
	clone := make(MetricSet, len(m))
	for k, v := range m {
		clone[k] = v
	}
	return clone
}

// BenchmarkRange is the low/high reference pair of one metric at one stage.
type BenchmarkRange struct {
	Low  float64 `json:"low" yaml:"low" toml:"low"`
	High float64 `json:"high" yaml:"high" toml:"high"`
}

// Midpoint returns the arithmetic mean of the range, the 70-score anchor.
func (r BenchmarkRange) Midpoint() float64 {
	return (r.Low + r.High) / 2
}

// Contains reports whether v lies within [Low, High].
func (r BenchmarkRange) Contains(v float64) bool {
	return v >= r.Low && v <= r.High
}

// StageBenchmark holds the low and high reference sets of a single stage.
type StageBenchmark struct {
	Stage Stage     `json:"stage"`
	Low   MetricSet `json:"low"`
	High  MetricSet `json:"high"`
}

// Range returns the benchmark range for a metric. Missing values read as zero.
func (b StageBenchmark) Range(key MetricKey) BenchmarkRange {
	return BenchmarkRange{Low: b.Low[key], High: b.High[key]}
}

// ChartInput is everything needed to compute one chart.
type ChartInput struct {
	Name      string      `json:"name"`
	Stage     Stage       `json:"stage"`
	Subject   MetricSet   `json:"subject"`
	Metrics   []MetricDef `json:"metrics"`
	Threshold float64     `json:"threshold"`
}

// NormalizedSeries is one plotted series of scores in axis order.
type NormalizedSeries struct {
	Kind   SeriesKind `json:"kind"`
	Scores []float64  `json:"scores"`
}

// Point is a cartesian position on the chart plane: origin at the centre,
// y up, and the outer ring at distance 100.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LabelPlacement is the transient displacement of one label to keep it clear of the subject label.
type LabelPlacement struct {
	RadialOffset  float64   `json:"radial_offset"`
	AngularOffset float64   `json:"angular_offset"`
	Direction     Direction `json:"direction,omitempty"`
	Radius        float64   `json:"radius"` // final label radius in [0,100]
	Angle         float64   `json:"angle"`  // final label angle in radians
	Align         Align     `json:"align"`
	Pos           Point     `json:"pos"`
}

// Adjusted reports whether the label was displaced at all.
func (p LabelPlacement) Adjusted() bool {
	return p.Direction != NoDirection
}

// PointGeometry is a single series value on a single axis.
type PointGeometry struct {
	Series SeriesKind     `json:"series"`
	Value  float64        `json:"value"` // raw input value
	Score  float64        `json:"score"` // plotted radius in [0,100]
	Label  string         `json:"label"`
	Pos    Point          `json:"pos"`
	Place  LabelPlacement `json:"placement"`
}

// AxisLabel is the metric name drawn outside the rim.
type AxisLabel struct {
	Text   string  `json:"text"`
	Radius float64 `json:"radius"`
	Align  Align   `json:"align"`
	Pos    Point   `json:"pos"`
}

// AxisGeometry is the full drawable state of one axis.
type AxisGeometry struct {
	Index   int            `json:"index"`
	Metric  MetricDef      `json:"metric"`
	Angle   float64        `json:"angle"`
	Tip     Point          `json:"tip"` // rim end of the spoke
	Range   BenchmarkRange `json:"range"`
	Band    Band           `json:"band"`
	Label   AxisLabel      `json:"axis_label"`
	Subject PointGeometry  `json:"subject"`
	Low     PointGeometry  `json:"low"`
	High    PointGeometry  `json:"high"`
}

// Layer carries the z-order of one drawable layer so collaborators can reproduce the stacking.
type Layer struct {
	Kind   LayerKind  `json:"kind"`
	ZOrder float64    `json:"z_order"`
	Series SeriesKind `json:"series,omitempty"`
}

// LegendEntry is one swatch + caption of the chart legend.
type LegendEntry struct {
	Series SeriesKind `json:"series"`
	Text   string     `json:"text"`
}

// ChartGeometry is the output of the layout engine, consumed by every renderer.
type ChartGeometry struct {
	Name      string             `json:"name"`
	Stage     Stage              `json:"stage"`
	Threshold float64            `json:"threshold"`
	Axes      []AxisGeometry     `json:"axes"`
	Series    []NormalizedSeries `json:"series"`
	Layers    []Layer            `json:"layers"`
	Legend    []LegendEntry      `json:"legend"`
	Footnote  string             `json:"footnote"`
}

// SeriesScores returns the scores of the named series, or nil if absent.
func (g ChartGeometry) SeriesScores(kind SeriesKind) []float64 {
	for _, s := range g.Series {
		if s.Kind == kind {
			return s.Scores
		}
	}
	return nil
}
