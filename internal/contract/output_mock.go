package contract

import (
	"github.com/astella/napkin/schema"
	"github.com/stretchr/testify/mock"
)

// MockOutputWriter is a mock implementation of OutputWriter for testing.
type MockOutputWriter struct {
	mock.Mock
}

var _ OutputWriter = &MockOutputWriter{} // Compile-time check

// WriteChart implements the OutputWriter interface.
func (m *MockOutputWriter) WriteChart(g schema.ChartGeometry, cfg *Config) error {
	args := m.Called(g, cfg)
	return args.Error(0)
}

// WriteStages implements the OutputWriter interface.
func (m *MockOutputWriter) WriteStages(benches []schema.StageBenchmark, defs []schema.MetricDef, cfg *Config) error {
	args := m.Called(benches, defs, cfg)
	return args.Error(0)
}

// WriteMetrics implements the OutputWriter interface.
func (m *MockOutputWriter) WriteMetrics(renderModel *schema.MetricsRenderModel, cfg *Config) error {
	args := m.Called(renderModel, cfg)
	return args.Error(0)
}
