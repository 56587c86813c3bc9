package relevance

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/poiesic/scrapreform/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	onlyResponsable = "Le gérant est responsable de la bonne tenue des comptes de la société."
	bothKeywords    = "Le débiteur est responsable du dommage causé par son manquement contractuel envers le créancier."
	shortParagraph  = "Responsabilité contractuelle du vendeur."
)

func TestFindRelevantContent_ContractualLiability(t *testing.T) {
	kw := ExtractKeywords("responsabilité contractuelle")
	require.Equal(t, []string{"responsabilite", "contractuelle"}, kw.PrimaryKeywords)
	require.Equal(t, 2, kw.MinRequiredMatches)

	t.Run("one keyword is not enough", func(t *testing.T) {
		res := FindRelevantContent(onlyResponsable, kw)
		assert.Empty(t, res.Matches)
		assert.Empty(t, res.MatchedKeywords)
		assert.Zero(t, res.RelevanceScore)
	})

	t.Run("variants satisfy both keywords", func(t *testing.T) {
		res := FindRelevantContent(bothKeywords, kw)
		require.Equal(t, []string{bothKeywords}, res.Matches)
		assert.Equal(t, []string{"responsabilite", "contractuelle"}, res.MatchedKeywords)
		assert.Greater(t, res.RelevanceScore, 100.0)
	})

	t.Run("mixed document keeps only the relevant paragraph", func(t *testing.T) {
		text := onlyResponsable + "\n\n" + bothKeywords + "\r\n"
		res := FindRelevantContent(text, kw)
		assert.Equal(t, []string{bothKeywords}, res.Matches)
	})
}

func TestFindRelevantContent_LengthFloor(t *testing.T) {
	kw := ExtractKeywords("responsabilité contractuelle")
	require.Len(t, []rune(shortParagraph), 40)

	res := FindRelevantContent(shortParagraph, kw)
	assert.Empty(t, res.Matches)

	// The same keywords padded past the floor are accepted.
	long := shortParagraph + " Voir la jurisprudence."
	res = FindRelevantContent(long, kw)
	assert.Equal(t, []string{long}, res.Matches)
}

func TestFindRelevantContent_LengthBoundary(t *testing.T) {
	kw := ExtractKeywords("responsabilité contractuelle")
	base := "responsabilité contractuelle "

	exact := base + strings.Repeat("a", DefaultMinParagraphLength-len([]rune(base)))
	require.Len(t, []rune(exact), DefaultMinParagraphLength)
	assert.Equal(t, []string{exact}, FindRelevantContent(exact, kw).Matches)

	short := exact[:len(exact)-1]
	assert.Empty(t, FindRelevantContent(short, kw).Matches)
}

func TestFindRelevantContent_EmptyKeywords(t *testing.T) {
	texts := []string{"", bothKeywords, strings.Repeat(bothKeywords+"\n", 5)}
	for _, kw := range []*Keywords{nil, ExtractKeywords(""), ExtractKeywords("le la les"), {}} {
		for _, text := range texts {
			res := FindRelevantContent(text, kw)
			assert.Empty(t, res.Matches)
			assert.Empty(t, res.MatchedKeywords)
			assert.Zero(t, res.RelevanceScore)
		}
	}
}

func TestFindRelevantContent_SingleKeywordUnsatisfiable(t *testing.T) {
	kw := ExtractKeywords("tribunal")
	text := "Le tribunal judiciaire, comme tout tribunal, est une juridiction de premier degré."

	res := FindRelevantContent(text, kw)
	assert.Empty(t, res.Matches)
}

func TestFindRelevantContent_Ranking(t *testing.T) {
	kw := ExtractKeywords("responsabilité contractuelle")
	plain := "La responsabilité contractuelle suppose un contrat valable entre les parties."
	legal := "La responsabilité contractuelle est régie par l'article 1231-1 du code civil, selon la Cour de cassation."

	res := FindRelevantContent(plain+"\n"+legal, kw)
	require.Len(t, res.Matches, 2)
	assert.Equal(t, legal, res.Matches[0])
	assert.Equal(t, plain, res.Matches[1])
}

func TestFindRelevantContent_TiesKeepDocumentOrder(t *testing.T) {
	kw := ExtractKeywords("responsabilité contractuelle")
	first := "La responsabilité contractuelle suppose un contrat valable entre les parties A."
	second := "La responsabilité contractuelle suppose un contrat valable entre les parties B."

	res := FindRelevantContent(first+"\n"+second, kw)
	assert.Equal(t, []string{first, second}, res.Matches)

	res = FindRelevantContent(second+"\n"+first, kw)
	assert.Equal(t, []string{second, first}, res.Matches)
}

func TestFindRelevantContent_Deterministic(t *testing.T) {
	kw := ExtractKeywords("résiliation du bail commercial pour inexécution")
	var b strings.Builder
	for i := range 30 {
		fmt.Fprintf(&b, "Paragraphe %d : la résiliation du bail commercial pour inexécution des obligations du preneur.\n", i)
	}

	first := FindRelevantContent(b.String(), kw)
	second := FindRelevantContent(b.String(), kw)
	assert.Equal(t, first, second)
}

func TestFindRelevantContent_CapsParagraphs(t *testing.T) {
	kw := ExtractKeywords("responsabilité contractuelle")
	var b strings.Builder
	for i := range 20 {
		fmt.Fprintf(&b, "Paragraphe %02d sur la responsabilité contractuelle du prestataire.\n", i)
	}

	res := FindRelevantContent(b.String(), kw)
	require.Len(t, res.Matches, DefaultMaxParagraphs)
	assert.True(t, strings.HasPrefix(res.Matches[0], "Paragraphe 00"))
	assert.True(t, strings.HasPrefix(res.Matches[14], "Paragraphe 14"))

	var sum float64
	f, err := NewFilter()
	require.NoError(t, err)
	for i, text := range res.Matches {
		sum += f.Evaluate(core.Paragraph{Index: i, Text: text}, kw).ProximityScore
	}
	assert.InDelta(t, sum, res.RelevanceScore, 1e-9)
}

func TestFindRelevantContent_MatchedKeywordsInQueryOrder(t *testing.T) {
	kw := ExtractKeywords("nullité contrat vente consentement")
	text := "Le consentement vicié entraîne la nullité du contrat, selon la jurisprudence constante.\n" +
		"La vente est parfaite dès l'accord sur la chose et le prix, même si le contrat n'est pas encore exécuté."

	res := FindRelevantContent(text, kw)
	require.Len(t, res.Matches, 2)
	assert.Equal(t, []string{"nullite", "contrat", "vente", "consentement"}, res.MatchedKeywords)
}

func TestFindRelevantContent_IndicatorMonotonic(t *testing.T) {
	kw := ExtractKeywords("responsabilité contractuelle")
	base := "La responsabilité contractuelle suppose un contrat valable entre les parties."

	before := FindRelevantContent(base, kw)
	after := FindRelevantContent(base+" Cour de cassation.", kw)

	require.Len(t, before.Matches, 1)
	require.Len(t, after.Matches, 1)
	assert.Greater(t, after.RelevanceScore, before.RelevanceScore)
}

func TestFilter_Evaluate(t *testing.T) {
	f, err := NewFilter()
	require.NoError(t, err)
	kw := ExtractKeywords("responsabilité contractuelle")

	tests := []struct {
		name        string
		text        string
		wantMatched []string
		wantRel     bool
	}{
		{
			name:        "both keywords",
			text:        bothKeywords,
			wantMatched: []string{"responsabilite", "contractuelle"},
			wantRel:     true,
		},
		{
			name:        "one keyword",
			text:        onlyResponsable,
			wantMatched: []string{"responsabilite"},
			wantRel:     false,
		},
		{
			name:        "accents and case ignored",
			text:        "RESPONSABILITÉ CONTRACTUELLE",
			wantMatched: []string{"responsabilite", "contractuelle"},
			wantRel:     true,
		},
		{
			name:        "nothing",
			text:        "Le match a été reporté à cause de la pluie.",
			wantMatched: nil,
			wantRel:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := f.Evaluate(core.Paragraph{Text: tt.text}, kw)
			assert.Equal(t, tt.wantMatched, res.MatchedKeywords)
			assert.Equal(t, tt.wantRel, res.IsRelevant)
			if tt.wantRel {
				assert.Greater(t, res.ProximityScore, 0.0)
			} else {
				assert.Zero(t, res.ProximityScore)
			}
		})
	}
}

func TestFilter_EvaluateScore(t *testing.T) {
	f, err := NewFilter()
	require.NoError(t, err)
	kw := &Keywords{
		PrimaryKeywords: []string{"responsabilite", "contractuelle"},
		AllVariants:     []string{"contractuelle", "responsabilite"},
	}

	// 2/2*100 + 2*2 variants + responsabilite contractuelle (4)
	res := f.Evaluate(core.Paragraph{Text: "La responsabilité contractuelle."}, kw)
	assert.True(t, res.IsRelevant)
	assert.Equal(t, 108.0, res.ProximityScore)
}

func TestFilter_DuplicateKeywordsCountOnce(t *testing.T) {
	f, err := NewFilter()
	require.NoError(t, err)
	kw := ExtractKeywords("contrat contrat")

	res := f.Evaluate(core.Paragraph{Text: "Le contrat de travail et le contrat de bail sont distincts."}, kw)
	assert.Equal(t, []string{"contrat"}, res.MatchedKeywords)
	assert.False(t, res.IsRelevant)
}

func TestNewFilter_Options(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{name: "defaults"},
		{name: "custom lengths", opts: []Option{WithMinParagraphLength(10), WithMaxParagraphs(3)}},
		{name: "nil logger and monitor", opts: []Option{WithLogger(nil), WithMonitor(nil)}},
		{name: "negative length", opts: []Option{WithMinParagraphLength(-1)}, wantErr: ErrInvalidParagraphLength},
		{name: "zero max", opts: []Option{WithMaxParagraphs(0)}, wantErr: ErrInvalidMaxParagraphs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFilter(tt.opts...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, f)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, f.monitor)
			assert.NotNil(t, f.logger)
		})
	}
}

func TestFilter_CustomLimits(t *testing.T) {
	f, err := NewFilter(WithMinParagraphLength(10), WithMaxParagraphs(1))
	require.NoError(t, err)
	kw := ExtractKeywords("responsabilité contractuelle")

	text := shortParagraph + "\n" + "Responsabilité contractuelle du bailleur, article 1719 du code civil."
	res := f.FindRelevantContent(text, kw)
	require.Len(t, res.Matches, 1)
	assert.Contains(t, res.Matches[0], "article 1719")
}

type recordingMonitor struct {
	mu        sync.Mutex
	started   int
	tooShort  []string
	evaluated []MatchResult
	finished  []Result
}

func (m *recordingMonitor) Start(_ *Keywords) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started++
}

func (m *recordingMonitor) ParagraphTooShort(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tooShort = append(m.tooShort, text)
}

func (m *recordingMonitor) ParagraphEvaluated(result MatchResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evaluated = append(m.evaluated, result)
}

func (m *recordingMonitor) Finish(result Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.finished = append(m.finished, result)
}

func TestFilter_Monitor(t *testing.T) {
	mon := &recordingMonitor{}
	f, err := NewFilter(WithMonitor(mon))
	require.NoError(t, err)
	kw := ExtractKeywords("responsabilité contractuelle")

	text := strings.Join([]string{shortParagraph, onlyResponsable, bothKeywords}, "\n")
	res := f.FindRelevantContent(text, kw)

	assert.Equal(t, 1, mon.started)
	assert.Equal(t, []string{shortParagraph}, mon.tooShort)
	require.Len(t, mon.evaluated, 2)
	assert.Equal(t, 0, mon.evaluated[0].Paragraph.Index)
	assert.False(t, mon.evaluated[0].IsRelevant)
	assert.Equal(t, 1, mon.evaluated[1].Paragraph.Index)
	assert.True(t, mon.evaluated[1].IsRelevant)
	require.Len(t, mon.finished, 1)
	assert.Equal(t, res, mon.finished[0])
}

func TestFindRelevantContent_Concurrent(t *testing.T) {
	kw := ExtractKeywords("responsabilité contractuelle")
	want := FindRelevantContent(bothKeywords, kw)

	var wg sync.WaitGroup
	results := make([]Result, 32)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = FindRelevantContent(bothKeywords, kw)
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestSplitParagraphs(t *testing.T) {
	text := "  première ligne assez longue pour passer le seuil de longueur  \r\n\r\n" +
		"court\n" +
		"\n\n   \n" +
		"seconde ligne elle aussi assez longue pour passer le seuil fixé\n"

	got := SplitParagraphs(text, DefaultMinParagraphLength)
	require.Len(t, got, 2)
	assert.Equal(t, core.Paragraph{Index: 0, Text: "première ligne assez longue pour passer le seuil de longueur"}, got[0])
	assert.Equal(t, 1, got[1].Index)

	assert.Len(t, SplitParagraphs(text, 0), 3)
	assert.Empty(t, SplitParagraphs("", 0))

	var dropped []string
	kept := splitParagraphs(text, DefaultMinParagraphLength, func(s string) { dropped = append(dropped, s) })
	assert.Equal(t, got, kept)
	assert.Equal(t, []string{"court"}, dropped)
}

func TestFilter_ZeroValue(t *testing.T) {
	f := &Filter{}
	kw := ExtractKeywords("responsabilité contractuelle")

	var res Result
	require.NotPanics(t, func() {
		res = f.FindRelevantContent(shortParagraph+"\n"+bothKeywords, kw)
	})
	assert.ElementsMatch(t, []string{shortParagraph, bothKeywords}, res.Matches)
}

func TestFindRelevantContent_ShortStemVariants(t *testing.T) {
	// "vie" yields the stem "vi", found inside "service".
	kw := ExtractKeywords("vie contrat")
	text := "Le contrat de service a été signé par le comité de direction hier matin."

	res := FindRelevantContent(text, kw)
	assert.Equal(t, []string{text}, res.Matches)
	assert.Equal(t, []string{"vie", "contrat"}, res.MatchedKeywords)
}

func TestFindRelevantContent_NoDoubledConsonantMatch(t *testing.T) {
	kw := ExtractKeywords("valeur actuelle")
	text := "La valeur du bien dépend surtout du prix actuel du marché immobilier local."

	res := FindRelevantContent(text, kw)
	assert.Empty(t, res.Matches)
}
