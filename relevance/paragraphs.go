package relevance

import (
	"strings"
	"unicode/utf8"

	"github.com/poiesic/scrapreform/core"
)

// SplitParagraphs splits text on runs of line breaks, trims each piece and
// keeps those of at least minLength runes. Index counts kept paragraphs only.
func SplitParagraphs(text string, minLength int) []core.Paragraph {
	return splitParagraphs(text, minLength, nil)
}

// splitParagraphs is SplitParagraphs with a callback for each non-blank piece
// dropped by the length floor. tooShort may be nil.
func splitParagraphs(text string, minLength int, tooShort func(string)) []core.Paragraph {
	var out []core.Paragraph
	for _, piece := range splitLines(text) {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		if utf8.RuneCountInString(piece) < minLength {
			if tooShort != nil {
				tooShort(piece)
			}
			continue
		}
		out = append(out, core.Paragraph{Index: len(out), Text: piece})
	}
	return out
}

func splitLines(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
}
