package mock

import (
	"context"

	"github.com/poiesic/melodex/core"
)

// MockAnalyzer is a test double for ai.Analyzer.
// It allows custom behavior injection via function fields.
type MockAnalyzer struct {
	// AnalyzeFunc is called by Analyze if set.
	// If nil, uses default deterministic behavior.
	AnalyzeFunc func(ctx context.Context, sourceURL string) (*core.TrackAnalysis, error)

	callCount int
}

// NewMockAnalyzer creates a mock analyzer with default deterministic behavior.
// Note: Returns concrete type to allow behavior injection and assertions.
func NewMockAnalyzer() *MockAnalyzer {
	return &MockAnalyzer{}
}

// Analyze returns a fixed analysis derived from the source URL.
func (m *MockAnalyzer) Analyze(ctx context.Context, sourceURL string) (*core.TrackAnalysis, error) {
	m.callCount++

	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, sourceURL)
	}

	return &core.TrackAnalysis{
		Summary:     "analysis of " + sourceURL,
		Language:    "English",
		LanguageIso: "en",
		Explicit:    false,
		Keywords:    []string{"keyword"},
		Moods:       []string{"mood"},
		Themes:      []string{"theme"},
		Flags:       []byte(`{}`),
	}, nil
}

// CallCount returns the number of times Analyze was called.
func (m *MockAnalyzer) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockAnalyzer) Reset() {
	m.callCount = 0
	m.AnalyzeFunc = nil
}
