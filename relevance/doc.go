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


// Package relevance decides which passages of scraped French legal text are
// worth handing to a summarizer for a given query.
//
// The flow for one request is:
//
//	kw := relevance.ExtractKeywords("responsabilité contractuelle")
//	for _, doc := range documents {
//	    res := relevance.FindRelevantContent(doc.Text, kw)
//	    if len(res.Matches) == 0 {
//	        continue // the source contributed nothing
//	    }
//	    ...
//	}
//
// ExtractKeywords drops stop words and short tokens from the normalized query
// and expands every remaining keyword through lexicon.Variants. The filter then
// splits a document on line breaks, discards short paragraphs and keeps those
// in which enough distinct query keywords occur, in any of their variant forms.
// Kept paragraphs are ranked by a proximity score that combines keyword
// coverage, the number of variant forms present and LegalRelevanceScore, a
// weighted count of legal-domain indicators such as statute references and
// named courts.
//
// Nothing in this package returns an error. Empty queries, empty documents and
// non-matching text all produce empty results, and callers should treat an
// empty result as "no information from this source" rather than a failure.
//
// All functions are safe for concurrent use. A Keywords value is read-only once
// built and may be shared across goroutines filtering different documents.
package relevance
