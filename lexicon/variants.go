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


package lexicon

import (
	"maps"
	"slices"
	"strings"
)

// suffixRule rewrites a word ending in from into the stem plus each of to.
type suffixRule struct {
	from string
	to   []string
}

// suffixRules are the French adjective and noun endings handled beyond the
// plain plural and feminine heuristics. Every matching rule fires.
var suffixRules = []suffixRule{
	{from: "al", to: []string{"aux", "ale", "ales"}},
	{from: "aux", to: []string{"al", "ale", "ales"}},
	{from: "if", to: []string{"ive", "ifs", "ives"}},
	{from: "eur", to: []string{"rice", "euse", "eurs"}},
}

// Variants returns the sorted set of surface forms of a normalized word: the
// word itself, plural and feminine forms, suffix rewrites and domain synonyms.
// The result always contains word and is deterministic.
//
// The rules are heuristics. They produce non-words ("responsabilit") and very
// short stems ("vie" gives "vi"), and miss irregular forms such as doubled
// consonant feminines ("contractuelle" never reaches "contractuel" without the
// synonym table). Callers only use the output for substring tests.
func Variants(word string) []string {
	if word == "" {
		return []string{word}
	}

	set := map[string]struct{}{word: {}}
	add := func(forms ...string) {
		for _, f := range forms {
			set[f] = struct{}{}
		}
	}

	add(plural(word))

	if stem, ok := strings.CutSuffix(word, "e"); ok {
		add(stem, plural(stem))
	} else {
		add(word+"e", word+"es")
	}

	for _, rule := range suffixRules {
		stem, ok := strings.CutSuffix(word, rule.from)
		if !ok {
			continue
		}
		for _, to := range rule.to {
			add(stem + to)
		}
	}

	addSynonyms(set, word)
	return sortedKeys(set)
}

// plural toggles the trailing "s" of a word.
func plural(word string) string {
	if stem, ok := strings.CutSuffix(word, "s"); ok {
		return stem
	}
	return word + "s"
}

func sortedKeys(set map[string]struct{}) []string {
	return slices.Sorted(maps.Keys(set))
}
