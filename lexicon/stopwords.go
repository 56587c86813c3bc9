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

// stopWords holds common French function words in normalized form: articles,
// pronouns, prepositions, conjunctions, auxiliary forms and intensifiers.
var stopWords = map[string]struct{}{
	"le": {}, "la": {}, "les": {}, "un": {}, "une": {}, "des": {}, "de": {}, "du": {},
	"dans": {}, "sur": {}, "pour": {}, "par": {}, "avec": {}, "sans": {}, "sous": {},
	"entre": {}, "vers": {}, "chez": {}, "et": {}, "ou": {}, "mais": {}, "donc": {},
	"car": {}, "ni": {}, "que": {}, "qui": {}, "quoi": {}, "dont": {}, "ce": {},
	"cette": {}, "ces": {}, "son": {}, "sa": {}, "ses": {}, "leur": {}, "leurs": {},
	"mon": {}, "ma": {}, "mes": {}, "ton": {}, "ta": {}, "tes": {}, "notre": {},
	"nos": {}, "votre": {}, "vos": {}, "au": {}, "aux": {}, "en": {}, "est": {},
	"sont": {}, "etre": {}, "avoir": {}, "fait": {}, "faire": {}, "peut": {},
	"peuvent": {}, "doit": {}, "doivent": {}, "tout": {}, "tous": {}, "toute": {},
	"toutes": {}, "plus": {}, "moins": {}, "tres": {}, "bien": {}, "mal": {},
	"peu": {}, "beaucoup": {}, "trop": {}, "aussi": {}, "comme": {}, "comment": {},
	"quand": {}, "pourquoi": {}, "si": {}, "alors": {}, "ainsi": {},
}

// IsStopWord reports whether the normalized token is a French stop word.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}
