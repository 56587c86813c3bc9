package mock

import (
	"context"
	"fmt"
	"strings"

	"github.com/poiesic/scrapreform/ai"
)

// MockSummarizer is a test double for ai.Summarizer.
// It allows custom behavior injection via function fields.
type MockSummarizer struct {
	// SummarizeFunc is called by Summarize if set.
	// If nil, uses default deterministic behavior.
	SummarizeFunc func(ctx context.Context, req ai.SummaryRequest) (string, error)

	// LastRequest is the most recent request received.
	LastRequest ai.SummaryRequest

	callCount int
}

// NewMockSummarizer creates a mock summarizer with default deterministic behavior.
// Note: Returns concrete type to allow test assertions via GetMockSummarizer().
func NewMockSummarizer() *MockSummarizer {
	return &MockSummarizer{}
}

// Summarize records the request and returns a short deterministic analysis.
func (m *MockSummarizer) Summarize(ctx context.Context, req ai.SummaryRequest) (string, error) {
	m.callCount++
	m.LastRequest = req

	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx, req)
	}

	return fmt.Sprintf("Analyse de %q (%s)", req.Query, strings.Join(req.Keywords, ", ")), nil
}

// CallCount returns the number of times Summarize was called.
func (m *MockSummarizer) CallCount() int {
	return m.callCount
}

// Reset clears the call count and any injected behavior.
func (m *MockSummarizer) Reset() {
	m.callCount = 0
	m.SummarizeFunc = nil
	m.LastRequest = ai.SummaryRequest{}
}
