package schema

// Brand palette.
const (
	DeepOcean  = "#225379" // dark text, contrasts
	MarineBlue = "#3981A4" // benchmark band and labels
	Turquoise  = "#56BBC2" // primary accent, subject series
	GridGray   = "#E0E0E0"
	RingGray   = "#C0C0C0"
	White      = "#FFFFFF"
)

// LineStyle describes a stroked path.
type LineStyle struct {
	Color string
	Width float64
	Alpha float64
	Dash  []float64
}

// TextStyle describes a label and its rounded box.
type TextStyle struct {
	Color     string
	Size      float64
	Bold      bool
	BoxEdge   string
	BoxWidth  float64
	BoxAlpha  float64
	BoxMargin float64
}

// Theme is the immutable styling passed to a renderer. Renderers must not
// mutate it; DefaultTheme returns a fresh value on every call.
type Theme struct {
	Background     string
	Grid           LineStyle
	OuterRing      LineStyle
	BandColor      string
	BandAlpha      float64
	BenchmarkLine  LineStyle
	SubjectLine    LineStyle
	SubjectFill    float64 // alpha of the subject area
	MarkerRadius   float64
	MarkerEdge     float64
	HaloAlpha      float64
	SubjectLabel   TextStyle
	BenchmarkLabel TextStyle
	AxisLabel      TextStyle
	LegendText     TextStyle
	Footnote       TextStyle
}

// DefaultTheme returns the brand theme.
func DefaultTheme() Theme {
	return Theme{
		Background:    White,
		Grid:          LineStyle{Color: GridGray, Width: 1.2, Alpha: 0.6},
		OuterRing:     LineStyle{Color: RingGray, Width: 2.5, Alpha: 0.7},
		BandColor:     MarineBlue,
		BandAlpha:     0.15,
		BenchmarkLine: LineStyle{Color: MarineBlue, Width: 1.8, Alpha: 0.5, Dash: []float64{2, 4}},
		SubjectLine:   LineStyle{Color: Turquoise, Width: 4.5, Alpha: 1},
		SubjectFill:   0.25,
		MarkerRadius:  9,
		MarkerEdge:    3.5,
		HaloAlpha:     0.35,
		SubjectLabel: TextStyle{
			Color: DeepOcean, Size: 15, Bold: true,
			BoxEdge: Turquoise, BoxWidth: 2.5, BoxAlpha: 0.98, BoxMargin: 0.45,
		},
		BenchmarkLabel: TextStyle{
			Color: MarineBlue, Size: 14,
			BoxEdge: MarineBlue, BoxWidth: 1.2, BoxAlpha: 0.85, BoxMargin: 0.3,
		},
		AxisLabel:  TextStyle{Color: DeepOcean, Size: 18, Bold: true},
		LegendText: TextStyle{Color: DeepOcean, Size: 16, Bold: true},
		Footnote:   TextStyle{Color: MarineBlue, Size: 13.5},
	}
}

// SeriesColor returns the swatch color of a series.
func (t Theme) SeriesColor(kind SeriesKind) string {
	if kind == SubjectSeries {
		return t.SubjectLine.Color
	}
	return t.BandColor
}
