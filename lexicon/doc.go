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


// Package lexicon holds the French text primitives used by the relevance filter.
//
// Everything here operates on normalized text: lower-cased, canonically
// decomposed, with combining marks removed, so that "Responsabilité" and
// "responsabilite" compare equal. The package exposes:
//   - Normalize, the accent-insensitive folding applied before any comparison
//   - Variants, a heuristic generator of gender, number and synonym forms
//   - IsStopWord and Synonyms, lookups into static tables
//
// The tables are built once at package initialization and never mutated, so
// every function in this package is safe for concurrent use.
//
// The morphology is a best-effort approximation of French inflection. It knows
// a handful of suffix rules and nothing about irregular words; it is not an
// inflection engine and produces non-words alongside real forms.
package lexicon
