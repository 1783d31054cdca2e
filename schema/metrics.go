package schema

// DefaultMetrics is the fixed axis order of the chart.
// Cap Table is the only metric normalized as a percentage of its benchmark.
var DefaultMetrics = []MetricDef{
	{Key: ARR, Kind: HigherBetter, Format: CurrencyFormat, ShortName: "ARR"},
	{Key: Growth, Kind: HigherBetter, Format: PercentFormat, ShortName: "Growth"},
	{Key: RoundSize, Kind: HigherBetter, Format: CurrencyFormat, ShortName: "Round"},
	{Key: CapTable, Kind: Percentage, Format: PercentFormat, ShortName: "Cap Table", Max: 100},
	{Key: Valuation, Kind: HigherBetter, Format: CurrencyFormat, ShortName: "Valuation"},
	{Key: GrossMargin, Kind: HigherBetter, Format: PercentFormat, ShortName: "Gross Margin", Max: 100},
}

// DefaultSubject mirrors the starting values of the interactive form.
var DefaultSubject = MetricSet{
	ARR:         1.1,
	Growth:      389,
	RoundSize:   3.5,
	CapTable:    72,
	Valuation:   13,
	GrossMargin: 82,
}

// DefaultStartupName is used when no name is given.
const DefaultStartupName = "Startup"

// LookupMetric returns the default definition for a metric key.
func LookupMetric(key MetricKey) (MetricDef, bool) {
	for _, m := range DefaultMetrics {
		if m.Key == key {
			return m, true
		}
	}
	return MetricDef{}, false
}

// MetricKeys returns the keys of defs in order.
func MetricKeys(defs []MetricDef) []MetricKey {
	keys := make([]MetricKey, len(defs))
	for i, d := range defs {
		keys[i] = d.Key
	}
	return keys
}
