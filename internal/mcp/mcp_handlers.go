package mcp

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/astella/napkin/core"
	"github.com/astella/napkin/internal/contract"
	"github.com/astella/napkin/internal/outwriter"
	"github.com/astella/napkin/internal/render"
	"github.com/astella/napkin/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// metricArgs maps tool argument names onto metric keys.
var metricArgs = []struct {
	arg string
	key schema.MetricKey
}{
	{"arr", schema.ARR},
	{"growth", schema.Growth},
	{"round_size", schema.RoundSize},
	{"cap_table", schema.CapTable},
	{"valuation", schema.Valuation},
	{"gross_margin", schema.GrossMargin},
}

// chartConfig overlays the request arguments on a copy of the base config
// and re-validates the parts a request can change.
func (h *toolHandler) chartConfig(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	if len(cfg.Metrics) == 0 {
		cfg.Metrics = schema.DefaultMetrics
	}
	if n := strings.TrimSpace(request.GetString("name", "")); n != "" {
		cfg.Name = n
	}
	if s := request.GetString("stage", ""); s != "" {
		stage, err := cfg.Benchmarks.ResolveStage(s)
		if err != nil {
			return nil, err
		}
		cfg.Stage = stage
	}
	if cfg.Subject == nil {
		cfg.Subject = schema.DefaultSubject.Clone()
	}
	for _, m := range metricArgs {
		cfg.Subject[m.key] = request.GetFloat(m.arg, cfg.Subject[m.key])
	}
	if err := contract.ValidateSubject(cfg.Metrics, cfg.Subject); err != nil {
		return nil, err
	}
	cfg.Threshold = request.GetFloat("threshold", cfg.Threshold)
	if cfg.Threshold <= 0 {
		return nil, fmt.Errorf("threshold must be greater than 0 (received %v)", cfg.Threshold)
	}
	return cfg, nil
}

func (h *toolHandler) buildGeometry(request mcp.CallToolRequest) (schema.ChartGeometry, *contract.Config, error) {
	cfg, err := h.chartConfig(request)
	if err != nil {
		return schema.ChartGeometry{}, nil, err
	}
	bench, err := cfg.Benchmarks.Lookup(cfg.Stage)
	if err != nil {
		return schema.ChartGeometry{}, nil, err
	}
	return core.BuildChart(cfg.ChartInput(), bench), cfg, nil
}

func (h *toolHandler) handleBuildChart(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	g, cfg, err := h.buildGeometry(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid chart parameters: %v", err)), nil
	}

	switch format := request.GetString("format", "json"); format {
	case "json":
		jsonData, _ := json.MarshalIndent(g, "", "  ")
		return mcp.NewToolResultText(string(jsonData)), nil
	case "text":
		cfg.UseColors = false
		fmtFloat := func(v float64) string { return fmt.Sprintf("%.*f", cfg.Precision, v) }
		var buf bytes.Buffer
		if err := outwriter.WriteChartTable(&buf, g, cfg, fmtFloat); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to write table: %v", err)), nil
		}
		return mcp.NewToolResultText(buf.String()), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown format %q (expected json or text)", format)), nil
	}
}

func (h *toolHandler) handleRenderPNG(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	g, cfg, err := h.buildGeometry(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid chart parameters: %v", err)), nil
	}

	opts := render.Options{
		Size: request.GetInt("size", cfg.ImageSize),
		DPI:  request.GetFloat("dpi", cfg.DPI),
	}
	if opts.Size < contract.MinImageSize || opts.Size > contract.MaxImageSize {
		return mcp.NewToolResultError(fmt.Sprintf("size must be between %d and %d pixels", contract.MinImageSize, contract.MaxImageSize)), nil
	}
	if opts.DPI <= 0 || opts.DPI > contract.MaxDPI {
		return mcp.NewToolResultError(fmt.Sprintf("dpi must be greater than 0 and cannot exceed %v", contract.MaxDPI)), nil
	}

	var buf bytes.Buffer
	if err := render.WritePNG(&buf, g, schema.DefaultTheme(), opts); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("render failed: %v", err)), nil
	}

	text := fmt.Sprintf("%s (%s). %s", schema.DefaultImageName(g.Name), g.Stage, g.Footnote)
	return mcp.NewToolResultImage(text, base64.StdEncoding.EncodeToString(buf.Bytes()), "image/png"), nil
}

func (h *toolHandler) handleListStages(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	benches, err := core.CollectStages(h.baseCfg.Benchmarks)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list stages: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(schema.BuildStageViews(benches, h.baseCfg.Metrics), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleExplainMetrics(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	threshold := request.GetFloat("threshold", h.baseCfg.Threshold)
	if threshold <= 0 {
		return mcp.NewToolResultError(fmt.Sprintf("threshold must be greater than 0 (received %v)", threshold)), nil
	}

	jsonData, _ := json.MarshalIndent(core.BuildMetricsModel(h.baseCfg.Metrics, threshold), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
