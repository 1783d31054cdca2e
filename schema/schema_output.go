package schema

// RangeView is a benchmark range with its display text.
type RangeView struct {
	Metric   MetricKey `json:"metric"`
	Low      float64   `json:"low"`
	High     float64   `json:"high"`
	Midpoint float64   `json:"midpoint"`
	Display  string    `json:"display"`
}

// StageView lists every metric range of one stage in axis order.
type StageView struct {
	Stage  Stage       `json:"stage"`
	Ranges []RangeView `json:"ranges"`
}

// BuildStageViews adds midpoints and display text to benchmark stages.
func BuildStageViews(benches []StageBenchmark, defs []MetricDef) []StageView {
	views := make([]StageView, len(benches))
	for i, b := range benches {
		ranges := make([]RangeView, len(defs))
		for j, d := range defs {
			r := b.Range(d.Key)
			ranges[j] = RangeView{
				Metric:   d.Key,
				Low:      r.Low,
				High:     r.High,
				Midpoint: r.Midpoint(),
				Display:  FormatRange(d, r),
			}
		}
		views[i] = StageView{Stage: b.Stage, Ranges: ranges}
	}
	return views
}
