package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/astella/napkin/internal/contract"
	"github.com/astella/napkin/schema"
)

// PrintMetricsDefinitions displays how every metric is normalized and how labels are displaced.
// This is a static display that does not depend on the subject values.
func PrintMetricsDefinitions(renderModel *schema.MetricsRenderModel, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, renderModel)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVMetrics(w, renderModel)
		}, "Wrote CSV")
	case schema.ParquetOut, schema.PNGOut:
		return fmt.Errorf("%s output is not available for metrics", cfg.Output)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricsText(w, renderModel, cfg)
		}, "Wrote text")
	}
}

// writeMetricsText displays metrics in human-readable text format.
func writeMetricsText(w io.Writer, renderModel *schema.MetricsRenderModel, cfg *contract.Config) error {
	title := renderModel.Title
	overlapTitle := "Label Overlap"
	if cfg.UseEmojis {
		title = "📐 " + title
		overlapTitle = "🏷️  " + overlapTitle
	}

	lines := []string{
		title,
		strings.Repeat("=", len(renderModel.Title)+3),
		"",
		renderModel.Description,
		"",
	}
	for _, m := range renderModel.Metrics {
		lines = append(lines,
			fmt.Sprintf("%s (%s, %s)", m.Metric, m.Kind, m.Format),
			fmt.Sprintf("   Formula: %s", m.Formula),
			fmt.Sprintf("   Zero midpoint: %s", m.ZeroMidpoint),
		)
		if m.Max > 0 {
			lines = append(lines, fmt.Sprintf("   Max input: %v", m.Max))
		}
		lines = append(lines, "")
	}

	lines = append(lines, fmt.Sprintf("%s (threshold %v)", overlapTitle, renderModel.Threshold))
	for _, o := range renderModel.Overlap {
		lines = append(lines, fmt.Sprintf("   %s: radial %s, angular %v rad", o.Distance, o.Radial, o.Angular))
	}
	return writeLines(w, lines...)
}

// writeCSVMetrics writes the metric definitions in CSV format.
func writeCSVMetrics(w io.Writer, renderModel *schema.MetricsRenderModel) error {
	header := []string{"metric", "kind", "format", "formula", "zero_midpoint", "max"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, m := range renderModel.Metrics {
			record := []string{
				string(m.Metric),
				string(m.Kind),
				string(m.Format),
				m.Formula,
				m.ZeroMidpoint,
				fmt.Sprint(m.Max),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}
