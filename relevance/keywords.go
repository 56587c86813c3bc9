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
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cloudflare/ahocorasick"
	"github.com/poiesic/scrapreform/lexicon"
)

// minKeywordLength is the shortest token, in runes, kept as a keyword.
const minKeywordLength = 3

// Keywords is the query side of a relevance check.
type Keywords struct {
	// PrimaryKeywords are the normalized query tokens in query order.
	// Duplicates are kept.
	PrimaryKeywords []string

	// AllVariants is the sorted union of the variants of every primary keyword.
	AllVariants []string

	// MinRequiredMatches is the number of distinct primary keywords a paragraph
	// must contain to be relevant.
	MinRequiredMatches int

	variants [][]string
	matcher  *ahocorasick.Matcher
}

// ExtractKeywords normalizes a free-form query and derives its keywords.
// An empty query, or one made only of stop words, yields no primary keywords,
// which the filter treats as "nothing can match".
func ExtractKeywords(query string) *Keywords {
	kw := &Keywords{}

	for _, field := range strings.Fields(lexicon.Normalize(query)) {
		token := stripToken(field)
		if utf8.RuneCountInString(token) < minKeywordLength || lexicon.IsStopWord(token) {
			continue
		}
		kw.PrimaryKeywords = append(kw.PrimaryKeywords, token)
	}

	union := make(map[string]struct{})
	kw.variants = make([][]string, len(kw.PrimaryKeywords))
	for i, word := range kw.PrimaryKeywords {
		kw.variants[i] = lexicon.Variants(word)
		for _, v := range kw.variants[i] {
			union[v] = struct{}{}
		}
	}

	kw.AllVariants = make([]string, 0, len(union))
	for v := range union {
		kw.AllVariants = append(kw.AllVariants, v)
	}
	slices.Sort(kw.AllVariants)

	kw.MinRequiredMatches = MinRequiredMatches(len(kw.PrimaryKeywords))
	if len(kw.AllVariants) > 0 {
		kw.matcher = ahocorasick.NewStringMatcher(kw.AllVariants)
	}
	return kw
}

// MinRequiredMatches returns the co-occurrence threshold for a query with n
// primary keywords: max(2, ceil(n/2)).
//
// The floor of two means a single-keyword query can never be satisfied, since
// only distinct primary keywords are counted, never their variants.
func MinRequiredMatches(n int) int {
	return max(2, (n+1)/2)
}

// Empty reports whether there is nothing to match against.
func (k *Keywords) Empty() bool {
	return k == nil || len(k.PrimaryKeywords) == 0
}

// keywordVariants returns the variants of each primary keyword, computing them
// when the Keywords value was built by hand.
func (k *Keywords) keywordVariants() [][]string {
	if len(k.variants) == len(k.PrimaryKeywords) {
		return k.variants
	}
	out := make([][]string, len(k.PrimaryKeywords))
	for i, word := range k.PrimaryKeywords {
		out[i] = lexicon.Variants(word)
	}
	return out
}

// variantMatcher returns the matcher over AllVariants, or nil when there are none.
func (k *Keywords) variantMatcher() *ahocorasick.Matcher {
	if k.matcher != nil {
		return k.matcher
	}
	dict := uniqueNonEmpty(k.AllVariants)
	if len(dict) == 0 {
		return nil
	}
	return ahocorasick.NewStringMatcher(dict)
}

// countVariants returns how many distinct AllVariants entries occur in the
// normalized text.
func (k *Keywords) countVariants(normalized string) int {
	m := k.variantMatcher()
	if m == nil || normalized == "" {
		return 0
	}
	return len(m.MatchThreadSafe([]byte(normalized)))
}

// stripToken keeps only letters and digits.
func stripToken(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

func uniqueNonEmpty(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
