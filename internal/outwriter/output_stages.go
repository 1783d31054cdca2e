package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/astella/napkin/internal/contract"
	"github.com/astella/napkin/internal/parquet"
	"github.com/astella/napkin/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintStages outputs every benchmark stage using the configured output format.
func PrintStages(benches []schema.StageBenchmark, defs []schema.MetricDef, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	views := schema.BuildStageViews(benches, defs)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, views)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return WriteStagesCSV(w, views, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WriteStageRanges(w, parquet.StageRangesFromBenchmarks(benches, defs))
		}, "Wrote Parquet")
	case schema.PNGOut:
		return fmt.Errorf("png output is only available for charts")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return WriteStagesTable(w, views)
		}, "Wrote table")
	}
}

// WriteStagesTable writes one row per stage with the display range of every metric.
func WriteStagesTable(w io.Writer, views []schema.StageView) error {
	if len(views) == 0 {
		return writeLines(w, "No benchmark stages defined.")
	}

	table := tablewriter.NewWriter(w)
	headers := []string{"Stage"}
	for _, r := range views[0].Ranges {
		headers = append(headers, string(r.Metric))
	}
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, v := range views {
		row := []string{string(v.Stage)}
		for _, r := range v.Ranges {
			row = append(row, r.Display)
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// WriteStagesCSV writes one record per stage and metric.
func WriteStagesCSV(w io.Writer, views []schema.StageView, fmtFloat func(float64) string) error {
	header := []string{"stage", "metric", "low", "high", "midpoint", "display"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, v := range views {
			for _, r := range v.Ranges {
				record := []string{
					string(v.Stage),
					string(r.Metric),
					fmtFloat(r.Low),
					fmtFloat(r.High),
					fmtFloat(r.Midpoint),
					r.Display,
				}
				if err := cw.Write(record); err != nil {
					return fmt.Errorf("failed to write CSV record: %w", err)
				}
			}
		}
		return nil
	})
}
