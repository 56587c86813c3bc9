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


package scrape

import (
	"fmt"
	"strings"

	"github.com/poiesic/scrapreform/core"
)

// RawTextLimit is the number of runes of raw text a source contributes when no
// filtering takes place.
const RawTextLimit = 5000

const separator = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// NormalizeURL prefixes URLs that have no http or https scheme with "https://".
func NormalizeURL(url string) string {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return "https://" + url
}

// AssembleMatches renders the filtered excerpts of every source as one delimited
// block. The URL line is what the summarizer cites.
func AssembleMatches(matches []core.RelevantMatch) string {
	var sb strings.Builder
	for _, m := range matches {
		sb.WriteString("\n" + separator + "\n")
		fmt.Fprintf(&sb, "📍 SOURCE: %s\n", m.SiteName)
		fmt.Fprintf(&sb, "📁 Catégorie: %s\n", m.Category)
		fmt.Fprintf(&sb, "🔗 URL EXACTE: %s\n", m.URL)
		fmt.Fprintf(&sb, "🔑 Mots-clés trouvés: %s\n", strings.Join(m.MatchingKeywords, ", "))
		sb.WriteString("\n📄 EXTRAITS PERTINENTS:\n")
		for i, para := range m.RelevantParagraphs {
			fmt.Fprintf(&sb, "\n[Extrait %d]\n%s\n", i+1, para)
		}
		sb.WriteString("\n" + separator + "\n")
	}
	return sb.String()
}

// AssembleRaw renders a source's unfiltered text, capped at RawTextLimit runes.
func AssembleRaw(site core.SiteEntry, text string) string {
	var sb strings.Builder
	sb.WriteString(separator + "\n")
	fmt.Fprintf(&sb, "[%s] %s\n", site.Category, site.SiteName)
	fmt.Fprintf(&sb, "🔗 URL: %s\n\n", NormalizeURL(site.URL))
	sb.WriteString(truncateRunes(text, RawTextLimit))
	sb.WriteString("\n" + separator + "\n\n")
	return sb.String()
}

// NoResultMessage is the answer given when no source had anything relevant.
func NoResultMessage(query string, keywords []string) string {
	return fmt.Sprintf("❌ Aucune information pertinente trouvée pour la recherche \"%s\".\n\n"+
		"Mots-clés recherchés: %s\n\n"+
		"Essayez avec d'autres termes ou vérifiez que les sites contiennent bien ce type d'information.",
		query, strings.Join(keywords, ", "))
}

func truncateRunes(s string, limit int) string {
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}
