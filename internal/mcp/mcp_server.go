// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/astella/napkin/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// chartOptions are the tool arguments shared by every chart tool.
func chartOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("name", mcp.Description("Startup name shown in the legend.")),
		mcp.WithString("stage", mcp.Description("Benchmark stage (Pre-Seed, Seed, Series A, Series B). Loose spellings like 'series-a' are accepted.")),
		mcp.WithNumber("arr", mcp.Description("Annual recurring revenue in millions of USD.")),
		mcp.WithNumber("growth", mcp.Description("Year over year growth in percent.")),
		mcp.WithNumber("round_size", mcp.Description("Current round size in millions of USD.")),
		mcp.WithNumber("cap_table", mcp.Description("Founder ownership in percent (0-100).")),
		mcp.WithNumber("valuation", mcp.Description("Valuation in millions of USD.")),
		mcp.WithNumber("gross_margin", mcp.Description("Gross margin in percent (0-100).")),
		mcp.WithNumber("threshold", mcp.Description("Label overlap threshold in score units. Defaults to 12.")),
	}
}

// NewMCPServer initializes and configures the Napkin MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Napkin Radar Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: build_radar_chart ---
	buildOpts := append([]mcp.ToolOption{
		mcp.WithDescription("Normalize startup metrics against a stage benchmark and lay out the radar chart."),
		mcp.WithString("format", mcp.Description("Result format. Defaults to 'json'."), mcp.Enum("json", "text")),
	}, chartOptions()...)
	s.AddTool(mcp.NewTool("build_radar_chart", buildOpts...), h.handleBuildChart)

	// --- 2. Tool: render_radar_png ---
	renderOpts := append([]mcp.ToolOption{
		mcp.WithDescription("Render the radar chart as a PNG image."),
		mcp.WithNumber("size", mcp.Description("Image width and height in pixels. Defaults to 1400.")),
		mcp.WithNumber("dpi", mcp.Description("Resolution used to scale fonts and strokes. Defaults to 100.")),
	}, chartOptions()...)
	s.AddTool(mcp.NewTool("render_radar_png", renderOpts...), h.handleRenderPNG)

	// --- 3. Tool: list_stages ---
	s.AddTool(mcp.NewTool("list_stages",
		mcp.WithDescription("List the benchmark ranges of every startup stage."),
	), h.handleListStages)

	// --- 4. Tool: explain_metrics ---
	s.AddTool(mcp.NewTool("explain_metrics",
		mcp.WithDescription("Describe how each metric is normalized and how overlapping labels are moved."),
		mcp.WithNumber("threshold", mcp.Description("Label overlap threshold in score units.")),
	), h.handleExplainMetrics)

	return s
}

// StartMCPServer starts the Napkin MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
