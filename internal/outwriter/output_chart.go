package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/astella/napkin/internal/contract"
	"github.com/astella/napkin/internal/parquet"
	"github.com/astella/napkin/internal/render"
	"github.com/astella/napkin/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintChart outputs the chart geometry, dispatching based on the output format configured.
func PrintChart(g schema.ChartGeometry, cfg *contract.Config) error {
	fmtFloat, fmtAngle := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, g)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return WriteChartCSV(w, g, fmtFloat, fmtAngle)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WriteChartPoints(w, parquet.ChartPointsFromGeometry(g))
		}, "Wrote Parquet")
	case schema.PNGOut:
		outputFile := cfg.OutputFile
		if outputFile == "" {
			outputFile = schema.DefaultImageName(g.Name)
		}
		return writeWithFile(outputFile, func(w io.Writer) error {
			return render.WritePNG(w, g, schema.DefaultTheme(), render.Options{Size: cfg.ImageSize, DPI: cfg.DPI})
		}, "Wrote PNG")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return WriteChartTable(w, g, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// WriteChartTable writes one row per axis, followed by the legend and the wrapped footnote.
func WriteChartTable(w io.Writer, g schema.ChartGeometry, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "Metric", "Value", "Score", "Low", "High", "Band", "Labels"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, a := range g.Axes {
		band := contract.GetPlainLabel(a.Band)
		if cfg.UseColors {
			band = contract.GetColorLabel(a.Band)
		}
		data = append(data, []string{
			strconv.Itoa(a.Index + 1),
			string(a.Metric.Key),
			a.Subject.Label,
			fmtFloat(a.Subject.Score),
			a.Low.Label,
			a.High.Label,
			band,
			placementNote(a),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	legend := make([]string, len(g.Legend))
	for i, e := range g.Legend {
		legend[i] = e.Text
	}
	lines := []string{"Legend: " + strings.Join(legend, " | ")}
	lines = append(lines, wrapText(g.Footnote, getWrapWidth(cfg))...)
	return writeLines(w, lines...)
}

// placementNote lists the benchmark labels that were moved off their vertex.
func placementNote(a schema.AxisGeometry) string {
	var notes []string
	for _, p := range []schema.PointGeometry{a.Low, a.High} {
		if p.Place.Adjusted() {
			notes = append(notes, fmt.Sprintf("%s %s", p.Series, p.Place.Direction))
		}
	}
	if len(notes) == 0 {
		return "-"
	}
	return strings.Join(notes, ", ")
}

// WriteChartCSV writes the flattened chart rows in CSV format.
func WriteChartCSV(w io.Writer, g schema.ChartGeometry, fmtFloat, fmtAngle func(float64) string) error {
	header := []string{
		"startup", "stage", "axis_index", "metric", "series", "value", "score", "label",
		"label_radius", "label_angle", "radial_offset", "angular_offset", "direction", "band",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, p := range parquet.ChartPointsFromGeometry(g) {
			record := []string{
				p.Startup,
				p.Stage,
				strconv.Itoa(int(p.AxisIndex)),
				p.Metric,
				p.Series,
				strconv.FormatFloat(p.Value, 'f', -1, 64),
				fmtFloat(p.Score),
				p.Label,
				fmtFloat(p.LabelRadius),
				fmtAngle(p.LabelAngle),
				fmtFloat(p.RadialOffset),
				fmtAngle(p.AngularOffset),
				optional(p.Direction),
				optional(p.Band),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}
