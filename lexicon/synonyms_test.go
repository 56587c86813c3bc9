package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynonyms(t *testing.T) {
	tests := []struct {
		name    string
		word    string
		want    []string
		notWant []string
	}{
		{
			name:    "key",
			word:    "tribunal",
			want:    []string{"tribunaux", "juridiction", "juridictions", "cour"},
			notWant: []string{"tribunal"},
		},
		{
			name:    "value",
			word:    "responsable",
			want:    []string{"responsabilite", "responsables", "responsabilites"},
			notWant: []string{"responsable"},
		},
		{
			name: "value in several clusters",
			word: "manquement",
			want: []string{"faute", "fautif", "inexecution", "defaillance"},
		},
		{
			name: "pourvoi belongs to appel and cassation",
			word: "pourvoi",
			want: []string{"appel", "recours", "cassation", "pourvois"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Synonyms(tt.word)
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, got, w)
			}
		})
	}
}

func TestSynonyms_Unknown(t *testing.T) {
	assert.Nil(t, Synonyms("xylophone"))
	assert.Nil(t, Synonyms(""))
}

func TestSynonymTable_Normalized(t *testing.T) {
	for key, values := range synonymTable {
		assert.Equal(t, Normalize(key), key)
		for _, v := range values {
			assert.Equal(t, Normalize(v), v, "%s -> %s", key, v)
			assert.NotEqual(t, key, v)
		}
	}
}

func TestIsStopWord(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"les", true},
		{"dans", true},
		{"etre", true},
		{"tres", true},
		{"pourquoi", true},
		{"être", false},
		{"contrat", false},
		{"responsabilite", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStopWord(tt.word))
		})
	}
}

func TestStopWords_Normalized(t *testing.T) {
	for w := range stopWords {
		assert.Equal(t, Normalize(w), w)
	}
}
