package ai

import "context"

// SummaryRequest carries the filtered material for one analysis.
type SummaryRequest struct {
	// Query is the user's question, verbatim.
	Query string

	// Keywords are the primary keywords extracted from Query.
	Keywords []string

	// Content is the assembled per-source block of excerpts or raw text.
	Content string
}

// Summarizer turns filtered source material into a cited legal analysis.
// Implementations must be thread-safe for concurrent use.
type Summarizer interface {
	// Summarize returns the analysis text for the request.
	// Returns an error if the model could not be reached or returned nothing.
	Summarize(ctx context.Context, req SummaryRequest) (string, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
type AIProvider interface {
	// Summarizer returns the analysis service.
	// The returned Summarizer is safe for concurrent use.
	Summarizer() Summarizer

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
