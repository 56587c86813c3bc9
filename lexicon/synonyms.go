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

import "slices"

// synonymTable maps a normalized legal or sport term to its cluster of related
// forms. Lookups run in both directions: a value pulls in its key and siblings.
var synonymTable = map[string][]string{
	"responsabilite": {"responsable", "responsables", "responsabilites"},
	"contractuel":    {"contractuelle", "contractuels", "contractuelles"},
	"contrat":        {"contrats", "convention", "conventions"},
	"tribunal":       {"tribunaux", "juridiction", "juridictions", "cour"},
	"juge":           {"juges", "magistrat", "magistrats"},
	"avocat":         {"avocats", "avocate", "avocates"},
	"prejudice":      {"prejudices", "dommage", "dommages"},
	"indemnisation":  {"indemnite", "indemnites", "reparation", "indemniser"},
	"faute":          {"fautes", "fautif", "fautive", "manquement"},
	"licenciement":   {"licencie", "licencier", "licenciements", "congediement"},
	"salarie":        {"salaries", "employe", "employes", "travailleur"},
	"employeur":      {"employeurs", "patron", "patronat"},
	"sport":          {"sports", "sportif", "sportive", "sportifs"},
	"sportif":        {"sportive", "sportifs", "sportives", "athlete", "athletes"},
	"club":           {"clubs", "association", "associations"},
	"federation":     {"federations", "ligue", "ligues"},
	"arbitre":        {"arbitres", "arbitrage", "arbitral"},
	"dopage":         {"dopant", "dopants", "antidopage"},
	"blessure":       {"blessures", "lesion", "lesions"},
	"accident":       {"accidents", "sinistre", "sinistres"},
	"assurance":      {"assurances", "assureur", "assureurs"},
	"loi":            {"lois", "legislation", "legislatif"},
	"article":        {"articles", "disposition", "dispositions"},
	"jurisprudence":  {"arret", "arrets", "jurisprudences"},
	"decision":       {"decisions", "jugement", "jugements"},
	"appel":          {"appels", "recours", "pourvoi"},
	"cassation":      {"pourvoi", "pourvois", "cassations"},
	"penal":          {"penale", "penaux", "penales", "criminel"},
	"civil":          {"civile", "civils", "civiles"},
	"sanction":       {"sanctions", "peine", "peines", "amende"},
	"nullite":        {"nulle", "annulation", "nullites"},
	"resiliation":    {"resilier", "rupture", "resolution"},
	"inexecution":    {"inexecute", "defaillance", "manquement"},
	"obligation":     {"obligations", "engagement", "engagements"},
	"vente":          {"ventes", "vendeur", "acheteur", "cession"},
	"bail":           {"baux", "location", "locataire", "bailleur"},
	"propriete":      {"proprietaire", "proprietaires", "proprietes"},
	"divorce":        {"divorces", "separation", "divorcer"},
	"succession":     {"successions", "heritier", "heritiers", "heritage"},
	"societe":        {"societes", "entreprise", "entreprises"},
	"consommateur":   {"consommateurs", "consommation"},
	"mineur":         {"mineurs", "mineure", "enfant", "enfants"},
}

// reverseSynonyms maps every value of synonymTable to the keys it belongs to.
var reverseSynonyms = buildReverseSynonyms(synonymTable)

func buildReverseSynonyms(table map[string][]string) map[string][]string {
	reverse := make(map[string][]string)
	for key, values := range table {
		for _, v := range values {
			reverse[v] = append(reverse[v], key)
		}
	}
	for v := range reverse {
		slices.Sort(reverse[v])
	}
	return reverse
}

// Synonyms returns the sorted domain synonyms of a normalized word, excluding
// the word itself. If the word is a key its cluster is returned; if it is a
// value, the owning key and the sibling values are returned. Unknown words
// yield nil.
func Synonyms(word string) []string {
	set := make(map[string]struct{})
	addSynonyms(set, word)
	delete(set, word)
	if len(set) == 0 {
		return nil
	}
	return sortedKeys(set)
}

func addSynonyms(set map[string]struct{}, word string) {
	for _, v := range synonymTable[word] {
		set[v] = struct{}{}
	}
	for _, key := range reverseSynonyms[word] {
		set[key] = struct{}{}
		for _, v := range synonymTable[key] {
			set[v] = struct{}{}
		}
	}
}
