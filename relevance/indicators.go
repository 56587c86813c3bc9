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
	"regexp"

	"github.com/poiesic/scrapreform/lexicon"
)

// Indicator is a weighted pattern whose presence signals legal content.
// Patterns are written against normalized text.
type Indicator struct {
	Name    string
	Pattern *regexp.Regexp
	Weight  int
}

const months = `(?:janvier|fevrier|mars|avril|mai|juin|juillet|aout|septembre|octobre|novembre|decembre)`

var indicators = []Indicator{
	{"article reference", regexp.MustCompile(`\bart(?:icle)?s?\.?\s*(?:[lrd]\.?\s*)?\d+(?:-\d+)*`), 3},
	{"code", regexp.MustCompile(`\bcode (?:civil|penal|du travail|de commerce|du sport|de la consommation|des assurances|de la securite sociale|de procedure (?:civile|penale))\b`), 4},
	{"cour de cassation", regexp.MustCompile(`\bcour de cassation\b`), 5},
	{"conseil d'etat", regexp.MustCompile(`\bconseil d['’]etat\b`), 5},
	{"conseil constitutionnel", regexp.MustCompile(`\bconseil constitutionnel\b`), 5},
	{"cour d'appel", regexp.MustCompile(`\bcours? d['’]appel\b`), 4},
	{"european court", regexp.MustCompile(`\b(?:cjue|cedh|cour de justice de l['’]union europeenne|cour europeenne des droits de l['’]homme)\b`), 5},
	{"cassation chamber", regexp.MustCompile(`\bcass\.?\s*(?:civ|com|soc|crim|plen)\b`), 5},
	{"lower court", regexp.MustCompile(`\b(?:tribunal (?:judiciaire|administratif|de commerce|correctionnel)|conseil de prud['’]hommes)\b`), 3},
	{"jurisprudence", regexp.MustCompile(`\bjurisprudences?\b`), 4},
	{"dated ruling", regexp.MustCompile(`\b(?:arret|decision|jugement) du \d{1,2}(?:er)? ` + months + ` \d{4}\b`), 3},
	{"statute number", regexp.MustCompile(`\b(?:loi|decret|ordonnance) (?:n\s*[°o]\.?\s*)?\d{2,4}-\d+`), 4},
	{"responsabilite", regexp.MustCompile(`\bresponsabilite (?:civile|penale|contractuelle|delictuelle)\b`), 4},
	{"dommages et interets", regexp.MustCompile(`\bdommages?[- ]et[- ]interets?\b`), 4},
	{"prejudice", regexp.MustCompile(`\bprejudices?\b`), 3},
	{"nullite", regexp.MustCompile(`\bnullites?\b`), 3},
	{"resiliation", regexp.MustCompile(`\bresiliations?\b`), 3},
	{"inexecution", regexp.MustCompile(`\binexecutions?\b`), 3},
	{"doctrine", regexp.MustCompile(`\b(?:doctrine|alineas?)\b`), 2},
}

// Indicators returns a copy of the indicator table.
func Indicators() []Indicator {
	out := make([]Indicator, len(indicators))
	copy(out, indicators)
	return out
}

// LegalRelevanceScore sums, over every indicator, the number of non-overlapping
// matches in the normalized text times the indicator weight. The score is not
// scaled by length: a longer passage with more legal terms scores higher.
func LegalRelevanceScore(text string) float64 {
	return legalScore(lexicon.Normalize(text))
}

func legalScore(normalized string) float64 {
	if normalized == "" {
		return 0
	}
	var score int
	for _, ind := range indicators {
		score += len(ind.Pattern.FindAllStringIndex(normalized, -1)) * ind.Weight
	}
	return float64(score)
}
