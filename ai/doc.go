// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package ai provides abstractions for the AI services used by scrapreform.
//
// The relevance filter decides which paragraphs of which sources are worth
// reading; the ai package turns that material into a written legal analysis
// with citations. The filter never depends on this package.
//
// # Interfaces
//
//   - Summarizer: writes the analysis for a SummaryRequest
//   - AIProvider: aggregates AI services for convenient initialization
//
// # Implementation Packages
//
//   - ai/openai: production implementation using OpenAI-compatible chat APIs
//   - ai/mock: test doubles for unit testing without external dependencies
//
// Public constructors (openai.NewProvider, openai.NewSummarizer) return
// interface types. Test constructors (mock.NewMockSummarizer) return concrete
// types so tests can inject behavior and assert on call counts.
//
// # Usage Example
//
//	cfg := ai.NewConfig(ai.WithModel("gpt-4o-mini"))
//	provider, err := openai.NewProvider(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	answer, err := provider.Summarizer().Summarize(ctx, ai.SummaryRequest{
//	    Query:    "responsabilité contractuelle club sportif",
//	    Keywords: []string{"responsabilite", "contractuelle", "club", "sportif"},
//	    Content:  content,
//	})
package ai
