package mock

import (
	"context"

	"github.com/brightbeam/mailmind/ai"
)

// MockClassifier is a test double for ai.Classifier.
// It allows custom behavior injection via function fields.
type MockClassifier struct {
	// CategorizeEmailFunc is called by CategorizeEmail if set.
	// If nil, returns an INFORMATIONAL categorization.
	CategorizeEmailFunc func(ctx context.Context, emailContent, customPrompt string) (ai.Categorization, error)

	// ExtractActionItemsFunc is called by ExtractActionItems if set.
	// If nil, returns an empty extraction.
	ExtractActionItemsFunc func(ctx context.Context, emailContent, customPrompt string) (ai.Extraction, error)

	// Prompts records every customPrompt passed in, for test assertions.
	Prompts []string

	callCount int
}

// NewMockClassifier creates a mock classifier with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockClassifier().
func NewMockClassifier() *MockClassifier {
	return &MockClassifier{}
}

// CategorizeEmail returns an INFORMATIONAL result unless
// CategorizeEmailFunc is set.
func (m *MockClassifier) CategorizeEmail(ctx context.Context, emailContent, customPrompt string) (ai.Categorization, error) {
	m.callCount++
	m.Prompts = append(m.Prompts, customPrompt)

	if m.CategorizeEmailFunc != nil {
		return m.CategorizeEmailFunc(ctx, emailContent, customPrompt)
	}
	return ai.Categorization{Category: "INFORMATIONAL", Reason: "mock categorization"}, nil
}

// ExtractActionItems returns an empty extraction unless
// ExtractActionItemsFunc is set.
func (m *MockClassifier) ExtractActionItems(ctx context.Context, emailContent, customPrompt string) (ai.Extraction, error) {
	m.callCount++
	m.Prompts = append(m.Prompts, customPrompt)

	if m.ExtractActionItemsFunc != nil {
		return m.ExtractActionItemsFunc(ctx, emailContent, customPrompt)
	}
	return ai.Extraction{}, nil
}

// CallCount returns the number of times any method was called.
func (m *MockClassifier) CallCount() int {
	return m.callCount
}

// Reset clears recorded calls and injected behavior.
func (m *MockClassifier) Reset() {
	m.callCount = 0
	m.Prompts = nil
	m.CategorizeEmailFunc = nil
	m.ExtractActionItemsFunc = nil
}
