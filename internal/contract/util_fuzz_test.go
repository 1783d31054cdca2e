package contract

import (
	"testing"

	"github.com/astella/napkin/schema"
)

// FuzzParseBoolString fuzzes ParseBoolString with random strings.
func FuzzParseBoolString(f *testing.F) {
	for _, seed := range []string{"yes", "no", "true", "false", "1", "0", "", "YeS", "2"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		v, err := ParseBoolString(s)
		if err != nil && v {
			t.Errorf("ParseBoolString(%q) returned true with an error", s)
		}
	})
}

// FuzzValidateSubject fuzzes the numeric bounds check.
func FuzzValidateSubject(f *testing.F) {
	f.Add(1.1, 389.0, 3.5, 72.0, 13.0, 82.0)
	f.Add(0.0, 0.0, 0.0, 0.0, 0.0, 0.0)
	f.Add(-1.0, 0.0, 0.0, 101.0, 0.0, 0.0)

	f.Fuzz(func(t *testing.T, arr, growth, round, capTable, valuation, margin float64) {
		subject := schema.MetricSet{
			schema.ARR: arr, schema.Growth: growth, schema.RoundSize: round,
			schema.CapTable: capTable, schema.Valuation: valuation, schema.GrossMargin: margin,
		}
		if err := ValidateSubject(schema.DefaultMetrics, subject); err == nil {
			for _, v := range subject {
				if v < 0 {
					t.Errorf("negative value %v accepted", v)
				}
			}
			if capTable > 100 || margin > 100 {
				t.Errorf("percentage over 100 accepted: %v %v", capTable, margin)
			}
		}
	})
}
