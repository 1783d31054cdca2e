package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// FormatDecimal renders v with the shortest representation that still shows
// a fractional digit, so 13 reads "13.0" and 0.46 reads "0.46".
func FormatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// FormatValue renders a raw metric value in its fixed display form.
func FormatValue(def MetricDef, v float64) string {
	switch def.Format {
	case CurrencyFormat:
		return fmt.Sprintf("$%sM", FormatDecimal(v))
	default:
		return wholePercent(v) + "%"
	}
}

// wholePercent truncates v toward zero without integer overflow.
func wholePercent(v float64) string {
	return strconv.FormatFloat(math.Trunc(v)+0, 'f', 0, 64)
}

// FormatRange renders a benchmark range for the footnote. Percent metrics
// collapse to a single value when both ends agree.
func FormatRange(def MetricDef, r BenchmarkRange) string {
	switch def.Format {
	case CurrencyFormat:
		return fmt.Sprintf("%s-%s", FormatValue(def, r.Low), FormatValue(def, r.High))
	default:
		if math.Trunc(r.Low) == math.Trunc(r.High) {
			return FormatValue(def, r.Low)
		}
		return fmt.Sprintf("%s%%-%s%%", wholePercent(r.Low), wholePercent(r.High))
	}
}

// BuildFootnote summarizes the active benchmark range of every metric.
func BuildFootnote(defs []MetricDef, bench StageBenchmark) string {
	parts := make([]string, 0, len(defs))
	for _, d := range defs {
		parts = append(parts, fmt.Sprintf("%s %s", d.ShortName, FormatRange(d, bench.Range(d.Key))))
	}
	return "Napkin Benchmark: " + strings.Join(parts, " | ")
}

// BuildLegend returns the legend entries for a startup name.
func BuildLegend(name string) []LegendEntry {
	if strings.TrimSpace(name) == "" {
		name = DefaultStartupName
	}
	return []LegendEntry{
		{Series: SubjectSeries, Text: name + " Metrics"},
		{Series: LowSeries, Text: "Napkin Low"},
		{Series: HighSeries, Text: "Napkin High"},
	}
}

// ClassifyBand places a raw value against its benchmark range.
func ClassifyBand(v float64, r BenchmarkRange) Band {
	switch {
	case v < r.Low:
		return BelowBand
	case v > r.High:
		return AboveBand
	default:
		return WithinBand
	}
}

// Slugify lowercases a name and replaces whitespace with underscores,
// dropping anything that is not a letter, digit, dash or underscore.
func Slugify(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = strings.ToLower(DefaultStartupName)
	}
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsSpace(r):
			b.WriteRune('_')
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DefaultImageName returns the download name used by the PNG export.
func DefaultImageName(name string) string {
	return "napkin_radar_" + Slugify(name) + ".png"
}
