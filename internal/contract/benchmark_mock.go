package contract

import (
	"github.com/astella/napkin/schema"
	"github.com/stretchr/testify/mock"
)

// MockBenchmarkSource is a mock implementation of BenchmarkSource for testing.
type MockBenchmarkSource struct {
	mock.Mock
}

var _ BenchmarkSource = &MockBenchmarkSource{} // Compile-time check

// Stages implements the BenchmarkSource interface.
func (m *MockBenchmarkSource) Stages() []schema.Stage {
	ret := m.Called()
	stages, _ := ret.Get(0).([]schema.Stage)
	return stages
}

// Lookup implements the BenchmarkSource interface.
func (m *MockBenchmarkSource) Lookup(stage schema.Stage) (schema.StageBenchmark, error) {
	args := m.Called(stage)
	return args.Get(0).(schema.StageBenchmark), args.Error(1)
}

// ResolveStage implements the BenchmarkSource interface.
func (m *MockBenchmarkSource) ResolveStage(input string) (schema.Stage, error) {
	args := m.Called(input)
	return args.Get(0).(schema.Stage), args.Error(1)
}
