package schema

// Custom string types for type safety.
type (
	// MetricKey names one axis of the radar chart.
	MetricKey string

	// MetricKind selects the normalization rule applied to a metric.
	MetricKind string

	// DisplayFormat selects how raw metric values are rendered as label text.
	DisplayFormat string

	// Stage represents a startup lifecycle stage with its own benchmark table.
	Stage string

	// SeriesKind identifies one of the three plotted series.
	SeriesKind string

	// Direction tags which way a benchmark label was pushed to avoid the subject label.
	Direction string

	// Align is the horizontal text alignment hint for a label.
	Align string

	// LayerKind identifies a drawable layer of the chart.
	LayerKind string

	// Band classifies a subject value against its benchmark range.
	Band string

	// OutputMode represents the format of the output.
	OutputMode string
)

// All metrics supported, in default axis order.
const (
	ARR         MetricKey = "ARR"
	Growth      MetricKey = "Growth"
	RoundSize   MetricKey = "Round Size"
	CapTable    MetricKey = "Cap Table"
	Valuation   MetricKey = "Valuation"
	GrossMargin MetricKey = "Gross Margin"
)

// All normalization kinds supported.
const (
	HigherBetter MetricKind = "higher_better" // default
	Percentage   MetricKind = "percentage"
)

// All label display formats supported.
const (
	CurrencyFormat DisplayFormat = "currency" // $<value>M
	PercentFormat  DisplayFormat = "percent"  // <int value>%
)

// All lifecycle stages supported.
const (
	PreSeedStage Stage = "Pre-Seed"
	SeedStage    Stage = "Seed" // default
	SeriesAStage Stage = "Series A"
	SeriesBStage Stage = "Series B"
)

// All series plotted on a chart.
const (
	SubjectSeries SeriesKind = "subject"
	LowSeries     SeriesKind = "low"
	HighSeries    SeriesKind = "high"
)

// All label push directions.
const (
	NoDirection Direction = ""
	DownDir     Direction = "down"
	UpDir       Direction = "up"
)

// All alignment hints.
const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// All chart layers, bottom to top.
const (
	GridLayer           LayerKind = "grid"
	OuterRingLayer      LayerKind = "outer_ring"
	BenchmarkBandLayer  LayerKind = "benchmark_band"
	BenchmarkLineLayer  LayerKind = "benchmark_lines"
	SubjectFillLayer    LayerKind = "subject_fill"
	SubjectLineLayer    LayerKind = "subject_line"
	SubjectHaloLayer    LayerKind = "subject_marker_halo"
	BenchmarkLabelLayer LayerKind = "benchmark_labels"
	SubjectMarkerLayer  LayerKind = "subject_markers"
	SubjectLabelLayer   LayerKind = "subject_labels"
	AxisLabelLayer      LayerKind = "axis_labels"
)

// All benchmark bands.
const (
	BelowBand  Band = "below"
	WithinBand Band = "within"
	AboveBand  Band = "above"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	CSVOut     OutputMode = "csv"
	ParquetOut OutputMode = "parquet"
	PNGOut     OutputMode = "png"
)

// Normalization anchors.
const (
	ReferenceScore = 70.0  // score of a value equal to the benchmark midpoint
	FloorScore     = 40.0  // score at or below FloorRatio
	CeilingScore   = 100.0 // score at or above CeilingRatio
	FloorRatio     = 0.5
	CeilingRatio   = 1.5
	MaxScore       = 100.0
	MinScore       = 0.0
)

// DefaultOverlapThreshold is the score distance below which benchmark labels are displaced.
const DefaultOverlapThreshold = 12.0

// AllStages lists the built-in stages in presentation order.
var AllStages = []Stage{PreSeedStage, SeedStage, SeriesAStage, SeriesBStage}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	JSONOut:    {},
	CSVOut:     {},
	ParquetOut: {},
	PNGOut:     {},
}
