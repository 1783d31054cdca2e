package mcp_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"testing"

	"github.com/astella/napkin/internal/benchmark"
	"github.com/astella/napkin/internal/contract"
	mcp_internal "github.com/astella/napkin/internal/mcp"
	"github.com/astella/napkin/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig() *contract.Config {
	return &contract.Config{
		Name:       "Acme",
		Stage:      schema.SeedStage,
		Subject:    schema.DefaultSubject.Clone(),
		Metrics:    schema.DefaultMetrics,
		Benchmarks: benchmark.Default(),
		Threshold:  schema.DefaultOverlapThreshold,
		Precision:  contract.DefaultPrecision,
		ImageSize:  contract.DefaultImageSize,
		DPI:        contract.DefaultDPI,
	}
}

func callTool(t *testing.T, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	s := mcp_internal.NewMCPServer(baseConfig())
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	require.NotNil(t, res)
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "first content should be text")
	return text.Text
}

func TestBuildRadarChart(t *testing.T) {
	res := callTool(t, "build_radar_chart", map[string]any{
		"name":  "Rocket",
		"stage": "series-a",
		"arr":   4.0,
	})
	require.False(t, res.IsError, resultText(t, res))

	var g schema.ChartGeometry
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &g))
	assert.Equal(t, "Rocket", g.Name)
	assert.Equal(t, schema.SeriesAStage, g.Stage)
	require.Len(t, g.Axes, 6)
	assert.Equal(t, 4.0, g.Axes[0].Subject.Value)
	assert.Equal(t, 389.0, g.Axes[1].Subject.Value, "unset metrics keep the base values")
}

func TestBuildRadarChartText(t *testing.T) {
	res := callTool(t, "build_radar_chart", map[string]any{"format": "text"})
	require.False(t, res.IsError)
	text := resultText(t, res)
	assert.Contains(t, text, "Legend: Acme Metrics | Napkin Low | Napkin High")
	assert.Contains(t, text, "Napkin Benchmark:")
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		tool string
		args map[string]any
		want string
	}{
		{"unknown stage", "build_radar_chart", map[string]any{"stage": "series-z"}, "unknown stage"},
		{"negative arr", "build_radar_chart", map[string]any{"arr": -1.0}, "ARR must be >= 0"},
		{"cap table over 100", "build_radar_chart", map[string]any{"cap_table": 120.0}, "Cap Table must be <= 100"},
		{"zero threshold", "build_radar_chart", map[string]any{"threshold": 0.0}, "threshold must be greater than 0"},
		{"unknown format", "build_radar_chart", map[string]any{"format": "xml"}, "unknown format"},
		{"tiny image", "render_radar_png", map[string]any{"size": 10.0}, "size must be between"},
		{"dpi too high", "render_radar_png", map[string]any{"size": 300.0, "dpi": 5000.0}, "dpi must be greater than 0"},
		{"dpi zero", "render_radar_png", map[string]any{"size": 300.0, "dpi": 0.0}, "dpi must be greater than 0"},
		{"negative dpi", "render_radar_png", map[string]any{"size": 200.0, "dpi": -1.0}, "dpi must be greater than 0"},
		{"explain zero threshold", "explain_metrics", map[string]any{"threshold": -2.0}, "threshold must be greater than 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := callTool(t, tt.tool, tt.args)
			assert.True(t, res.IsError, "The response should indicate an error state")
			assert.Contains(t, resultText(t, res), tt.want)
		})
	}
}

func TestRenderRadarPNG(t *testing.T) {
	res := callTool(t, "render_radar_png", map[string]any{"size": 240.0, "dpi": 24.0})
	require.False(t, res.IsError, resultText(t, res))
	require.Len(t, res.Content, 2)

	assert.Contains(t, resultText(t, res), "napkin_radar_acme.png")
	img, ok := res.Content[1].(mcp.ImageContent)
	require.True(t, ok, "second content should be an image")
	assert.Equal(t, "image/png", img.MIMEType)

	data, err := base64.StdEncoding.DecodeString(img.Data)
	require.NoError(t, err)
	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 240, decoded.Bounds().Dx())
}

func TestListStages(t *testing.T) {
	res := callTool(t, "list_stages", nil)
	require.False(t, res.IsError)

	var views []schema.StageView
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &views))
	require.Len(t, views, 4)
	assert.Equal(t, schema.PreSeedStage, views[0].Stage)
	assert.Equal(t, "$0.64M-$1.83M", views[1].Ranges[0].Display)
}

func TestExplainMetrics(t *testing.T) {
	res := callTool(t, "explain_metrics", map[string]any{"threshold": 8.0})
	require.False(t, res.IsError)

	var model schema.MetricsRenderModel
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &model))
	assert.Equal(t, 8.0, model.Threshold)
	assert.Len(t, model.Overlap, 2)
	assert.Len(t, model.Metrics, 6)
}
