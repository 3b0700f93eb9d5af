package mock

import (
	"context"
	"iter"

	"github.com/brightbeam/mailmind/ai"
)

// MockGenerator is a test double for ai.Generator.
// It allows custom behavior injection via function fields.
type MockGenerator struct {
	// GenerateFunc is called by Generate if set.
	// If nil, returns DefaultResponse.
	GenerateFunc func(ctx context.Context, prompt string, opts ...ai.GenerateOption) (string, error)

	// GenerateStreamFunc is called by GenerateStream if set.
	// If nil, yields DefaultResponse as a single chunk.
	GenerateStreamFunc func(ctx context.Context, prompt string, opts ...ai.GenerateOption) iter.Seq2[string, error]

	// DefaultResponse is returned by the default Generate behavior.
	DefaultResponse string

	// Prompts records every prompt passed to Generate or GenerateStream,
	// in call order, for test assertions.
	Prompts []string

	callCount int
}

// NewMockGenerator creates a mock generator with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockGenerator().
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{DefaultResponse: "mock response"}
}

// Generate returns DefaultResponse unless GenerateFunc is set.
func (m *MockGenerator) Generate(ctx context.Context, prompt string, opts ...ai.GenerateOption) (string, error) {
	m.callCount++
	m.Prompts = append(m.Prompts, prompt)

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt, opts...)
	}
	return m.DefaultResponse, nil
}

// GenerateStream yields DefaultResponse as one chunk unless
// GenerateStreamFunc is set.
func (m *MockGenerator) GenerateStream(ctx context.Context, prompt string, opts ...ai.GenerateOption) iter.Seq2[string, error] {
	m.callCount++
	m.Prompts = append(m.Prompts, prompt)

	if m.GenerateStreamFunc != nil {
		return m.GenerateStreamFunc(ctx, prompt, opts...)
	}
	return func(yield func(string, error) bool) {
		yield(m.DefaultResponse, nil)
	}
}

// CallCount returns the number of times any method was called.
func (m *MockGenerator) CallCount() int {
	return m.callCount
}

// Reset clears recorded calls and injected behavior.
func (m *MockGenerator) Reset() {
	m.callCount = 0
	m.Prompts = nil
	m.GenerateFunc = nil
	m.GenerateStreamFunc = nil
}
