// Package benchmark loads the stage benchmark tables used to anchor normalization.
package benchmark

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/astella/napkin/schema"
	"gopkg.in/yaml.v3"
)

//go:embed benchmarks.yaml
var builtinYAML []byte

// ErrUnknownStage is returned when a stage is not present in a table.
var ErrUnknownStage = errors.New("unknown stage")

// Format is the encoding of a benchmark table document.
type Format string

// All table formats supported.
const (
	YAMLFormat Format = "yaml"
	TOMLFormat Format = "toml"
	JSONFormat Format = "json"
)

// tableDoc is the on-disk shape shared by every format.
type tableDoc struct {
	Stages []stageDoc `yaml:"stages" toml:"stages" json:"stages"`
}

type stageDoc struct {
	Stage string             `yaml:"stage" toml:"stage" json:"stage"`
	Low   map[string]float64 `yaml:"low" toml:"low" json:"low"`
	High  map[string]float64 `yaml:"high" toml:"high" json:"high"`
}

// Table is an immutable set of stage benchmarks. Lookups hand out copies.
type Table struct {
	order  []schema.Stage
	stages map[schema.Stage]schema.StageBenchmark
}

var builtin = mustParse(builtinYAML)

func mustParse(data []byte) *Table {
	t, err := Parse(data, YAMLFormat)
	if err != nil {
		panic(fmt.Sprintf("built-in benchmark table is invalid: %v", err))
	}
	return t
}

// Default returns the built-in four-stage table.
func Default() *Table {
	return builtin
}

// FormatFromPath infers the table format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAMLFormat, nil
	case ".toml":
		return TOMLFormat, nil
	case ".json":
		return JSONFormat, nil
	default:
		return "", fmt.Errorf("unsupported benchmark file extension %q (expected .yaml, .yml, .toml or .json)", filepath.Ext(path))
	}
}

// LoadFile reads a custom benchmark table and checks it covers every metric in defs.
func LoadFile(path string, defs []schema.MetricDef) (*Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read benchmark file: %w", err)
	}
	t, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := t.Validate(defs); err != nil {
		return nil, err
	}
	return t, nil
}

// Parse decodes a table document in the given format.
func Parse(data []byte, format Format) (*Table, error) {
	var doc tableDoc
	switch format {
	case YAMLFormat:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	case TOMLFormat:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
			return nil, fmt.Errorf("invalid TOML: %w", err)
		}
	case JSONFormat:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported benchmark format %q", format)
	}

	if len(doc.Stages) == 0 {
		return nil, errors.New("benchmark table has no stages")
	}

	t := &Table{stages: make(map[schema.Stage]schema.StageBenchmark, len(doc.Stages))}
	for _, s := range doc.Stages {
		name := schema.Stage(strings.TrimSpace(s.Stage))
		if name == "" {
			return nil, errors.New("benchmark stage without a name")
		}
		if _, dup := t.stages[name]; dup {
			return nil, fmt.Errorf("duplicate benchmark stage %q", name)
		}
		t.order = append(t.order, name)
		t.stages[name] = schema.StageBenchmark{
			Stage: name,
			Low:   toMetricSet(s.Low),
			High:  toMetricSet(s.High),
		}
	}
	return t, nil
}

func toMetricSet(m map[string]float64) schema.MetricSet {
	set := make(schema.MetricSet, len(m))
	for k, v := range m {
		set[schema.MetricKey(k)] = v
	}
	return set
}

// Validate checks that every stage defines both ends of every metric as a
// finite, non-negative number. Low <= High is assumed, not enforced.
func (t *Table) Validate(defs []schema.MetricDef) error {
	for _, stage := range t.order {
		b := t.stages[stage]
		for _, d := range defs {
			if err := checkBound(stage, "low", d.Key, b.Low); err != nil {
				return err
			}
			if err := checkBound(stage, "high", d.Key, b.High); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkBound(stage schema.Stage, end string, key schema.MetricKey, set schema.MetricSet) error {
	v, ok := set[key]
	switch {
	case !ok:
		return fmt.Errorf("stage %q is missing a %s value for %s", stage, end, key)
	case math.IsNaN(v) || math.IsInf(v, 0):
		return fmt.Errorf("stage %q has a non-finite %s value for %s", stage, end, key)
	case v < 0:
		return fmt.Errorf("stage %q has a negative %s value for %s (%v)", stage, end, key, v)
	}
	return nil
}

// Stages returns the stage names in document order.
func (t *Table) Stages() []schema.Stage {
	out := make([]schema.Stage, len(t.order))
	copy(out, t.order)
	return out
}

// Lookup returns a copy of the benchmark for a stage.
func (t *Table) Lookup(stage schema.Stage) (schema.StageBenchmark, error) {
	b, ok := t.stages[stage]
	if !ok {
		return schema.StageBenchmark{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownStage, stage, t.stageList())
	}
	return schema.StageBenchmark{Stage: b.Stage, Low: b.Low.Clone(), High: b.High.Clone()}, nil
}

// ResolveStage matches user input against the table's stage names, ignoring
// case, spaces, dashes and underscores ("series-a" resolves to "Series A").
func (t *Table) ResolveStage(input string) (schema.Stage, error) {
	want := foldStage(input)
	for _, s := range t.order {
		if foldStage(string(s)) == want {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w %q (available: %s)", ErrUnknownStage, input, t.stageList())
}

func (t *Table) stageList() string {
	names := make([]string, len(t.order))
	for i, s := range t.order {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func foldStage(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
