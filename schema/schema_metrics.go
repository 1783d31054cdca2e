package schema

// MetricFormula describes how one metric is normalized, for display purposes.
type MetricFormula struct {
	Metric       MetricKey     `json:"metric"`
	Kind         MetricKind    `json:"kind"`
	Format       DisplayFormat `json:"format"`
	Formula      string        `json:"formula"`
	ZeroMidpoint string        `json:"zero_midpoint"`
	Max          float64       `json:"max,omitempty"`
}

// OverlapRule is one tier of the label displacement schedule, for display purposes.
type OverlapRule struct {
	Distance string  `json:"distance"`
	Radial   string  `json:"radial_offset"`
	Angular  float64 `json:"angular_offset"`
}

// MetricsRenderModel contains all processed data needed for displaying the normalization rules.
type MetricsRenderModel struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Metrics     []MetricFormula `json:"metrics"`
	Overlap     []OverlapRule   `json:"overlap"`
	Threshold   float64         `json:"threshold"`
}
