// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.Summarizer and ai.AIProvider
// for use in unit tests. The mocks allow tests to run without external AI
// service dependencies and enable controlled, deterministic behavior.
//
// # Usage in Tests
//
//	provider := mock.NewMockProvider()
//	answer, err := provider.Summarizer().Summarize(ctx, req)
//
//	// Custom behavior injection
//	summarizer := mock.NewMockSummarizer()
//	summarizer.SummarizeFunc = func(ctx context.Context, req ai.SummaryRequest) (string, error) {
//	    return "", ai.ErrRateLimited
//	}
//
//	// Check call counts
//	count := summarizer.CallCount()
package mock
