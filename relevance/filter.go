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


package relevance

import (
	"cmp"
	"log/slog"
	"slices"
	"strings"

	"github.com/poiesic/scrapreform/core"
	"github.com/poiesic/scrapreform/lexicon"
)

const (
	// DefaultMinParagraphLength is the shortest paragraph, in runes, considered.
	DefaultMinParagraphLength = 50

	// DefaultMaxParagraphs caps the paragraphs kept per document.
	DefaultMaxParagraphs = 15
)

// MatchResult is the evaluation of one paragraph against a query.
type MatchResult struct {
	Paragraph       core.Paragraph
	MatchedKeywords []string // distinct primary keywords, in query order
	ProximityScore  float64  // zero unless IsRelevant
	IsRelevant      bool
}

// Result is the filtered view of one document.
type Result struct {
	Matches         []string // paragraph texts, best first
	MatchedKeywords []string // union over Matches, in query order
	RelevanceScore  float64  // sum of the proximity scores of Matches
}

// Filter selects the relevant paragraphs of a document. Create one with
// NewFilter; a Filter holds no per-call state and is safe for concurrent use.
// The zero Filter has no length floor, no monitor and keeps
// DefaultMaxParagraphs.
type Filter struct {
	minParagraphLength int
	maxParagraphs      int
	monitor            FilterMonitor
	logger             *slog.Logger
}

// Option configures a Filter.
type Option func(*Filter) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(f *Filter) error {
		if logger == nil {
			logger = slog.Default()
		}
		f.logger = logger
		return nil
	}
}

// WithMinParagraphLength sets the shortest paragraph considered.
// Default is 50 runes.
func WithMinParagraphLength(n int) Option {
	return func(f *Filter) error {
		if n < 0 {
			return ErrInvalidParagraphLength
		}
		f.minParagraphLength = n
		return nil
	}
}

// WithMaxParagraphs sets how many paragraphs are kept per document.
// Default is 15.
func WithMaxParagraphs(n int) Option {
	return func(f *Filter) error {
		if n <= 0 {
			return ErrInvalidMaxParagraphs
		}
		f.maxParagraphs = n
		return nil
	}
}

// WithMonitor attaches a FilterMonitor. A nil monitor disables monitoring.
func WithMonitor(monitor FilterMonitor) Option {
	return func(f *Filter) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		f.monitor = monitor
		return nil
	}
}

// NewFilter creates a Filter.
func NewFilter(opts ...Option) (*Filter, error) {
	f := &Filter{
		minParagraphLength: DefaultMinParagraphLength,
		maxParagraphs:      DefaultMaxParagraphs,
		monitor:            &noopMonitor{},
		logger:             slog.Default().With("component", "relevance-filter"),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// defaultFilter resolves its logger on each call so that it follows
// slog.SetDefault.
var defaultFilter = &Filter{
	minParagraphLength: DefaultMinParagraphLength,
	maxParagraphs:      DefaultMaxParagraphs,
	monitor:            &noopMonitor{},
}

// FindRelevantContent filters text with the default Filter.
func FindRelevantContent(text string, kw *Keywords) Result {
	return defaultFilter.FindRelevantContent(text, kw)
}

// Evaluate checks one paragraph against the query. A paragraph is relevant
// when it contains at least MinRequiredMatches distinct primary keywords,
// each in any of its variant forms. Only relevant paragraphs get a score:
//
//	|matched|/|primary|*100 + 2*(variants present) + LegalRelevanceScore
func (f *Filter) Evaluate(p core.Paragraph, kw *Keywords) MatchResult {
	result := MatchResult{Paragraph: p}
	if kw.Empty() {
		return result
	}
	normalized := lexicon.Normalize(p.Text)
	result.MatchedKeywords = matchKeywords(normalized, kw)

	required := MinRequiredMatches(len(kw.PrimaryKeywords))
	result.IsRelevant = len(result.MatchedKeywords) >= required
	if !result.IsRelevant {
		return result
	}

	coverage := float64(len(result.MatchedKeywords)) / float64(len(kw.PrimaryKeywords)) * 100
	result.ProximityScore = coverage + 2*float64(kw.countVariants(normalized)) + legalScore(normalized)
	return result
}

// FindRelevantContent returns the best paragraphs of text for the query.
// Paragraphs shorter than the minimum length are never considered, even when
// they contain every keyword. Ranking is by descending proximity score with
// ties kept in document order. An empty query yields an empty Result.
func (f *Filter) FindRelevantContent(text string, kw *Keywords) Result {
	if kw.Empty() {
		return Result{}
	}
	monitor := f.mon()
	monitor.Start(kw)

	required := MinRequiredMatches(len(kw.PrimaryKeywords))
	paragraphs := splitParagraphs(text, f.minParagraphLength, monitor.ParagraphTooShort)
	var relevant []MatchResult
	for _, p := range paragraphs {
		res := f.Evaluate(p, kw)
		monitor.ParagraphEvaluated(res)
		// Evaluate already applies the threshold; both gates must pass.
		if !res.IsRelevant || len(res.MatchedKeywords) < required {
			continue
		}
		relevant = append(relevant, res)
	}

	slices.SortStableFunc(relevant, func(a, b MatchResult) int {
		return cmp.Compare(b.ProximityScore, a.ProximityScore)
	})
	limit := f.maxParagraphs
	if limit <= 0 {
		limit = DefaultMaxParagraphs
	}
	if len(relevant) > limit {
		relevant = relevant[:limit]
	}

	result := Result{}
	seen := make(map[string]struct{})
	for _, res := range relevant {
		result.Matches = append(result.Matches, res.Paragraph.Text)
		result.RelevanceScore += res.ProximityScore
		for _, k := range res.MatchedKeywords {
			seen[k] = struct{}{}
		}
	}
	for _, k := range kw.PrimaryKeywords {
		if _, ok := seen[k]; ok {
			result.MatchedKeywords = append(result.MatchedKeywords, k)
			delete(seen, k)
		}
	}

	f.log().Debug("filtered document",
		"paragraphs", len(paragraphs),
		"relevant", len(relevant),
		"kept", len(result.Matches),
		"score", result.RelevanceScore)
	monitor.Finish(result)
	return result
}

func (f *Filter) mon() FilterMonitor {
	if f.monitor == nil {
		return &noopMonitor{}
	}
	return f.monitor
}

func (f *Filter) log() *slog.Logger {
	if f.logger == nil {
		return slog.Default().With("component", "relevance-filter")
	}
	return f.logger
}

// matchKeywords returns the distinct primary keywords, in query order, of
// which at least one variant occurs in the normalized text.
func matchKeywords(normalized string, kw *Keywords) []string {
	var matched []string
	seen := make(map[string]struct{})
	for i, variants := range kw.keywordVariants() {
		word := kw.PrimaryKeywords[i]
		if _, ok := seen[word]; ok {
			continue
		}
		for _, v := range variants {
			if strings.Contains(normalized, v) {
				matched = append(matched, word)
				seen[word] = struct{}{}
				break
			}
		}
	}
	return matched
}
