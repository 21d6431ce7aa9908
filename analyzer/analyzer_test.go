package analyzer

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steosofficial/steosmorphy/encoding"
	"github.com/steosofficial/steosmorphy/morph"
)

// newTestAnalyzer builds a tiny Morphologist directly (bypassing
// LoadMorphAnalyzer's file/mmap machinery) and wraps it through
// NewMorphAnalyzer, exactly as a real load would, so the prediction
// index gets built too.
func newTestAnalyzer(t *testing.T) *MorphAnalyzer {
	t.Helper()
	require := require.New(t)

	b := morph.NewBuilder(encoding.Russian)
	line := b.AddSuffixLine()
	nounAttr := morph.RussianNounPos{
		Number: morph.NumberSingular,
		Gender: morph.GenderFeminine,
		Case:   morph.CaseNominative,
	}.Pack()
	instrAttr := morph.RussianNounPos{
		Number: morph.NumberSingular,
		Gender: morph.GenderFeminine,
		Case:   morph.CaseInstrumental,
	}.Pack()
	require.NoError(b.AddSuffix(line, nounAttr, "а"))
	require.NoError(b.AddSuffix(line, instrAttr, "ой"))
	require.NoError(b.AddBase(1, line, "мам", "мама"))

	return NewMorphAnalyzer(b.Build())
}

func TestParseDictionaryWord(t *testing.T) {
	assert := assert.New(t)
	a := newTestAnalyzer(t)

	parses := a.Parse("мама")
	if assert.Len(parses, 1) {
		assert.Equal("мама", parses[0].Lemma)
		assert.NotEmpty(parses[0].PartOfSpeech)
	}
}

func TestParseUnknownWord(t *testing.T) {
	a := newTestAnalyzer(t)
	assert.Nil(t, a.Parse("папа"))
}

func TestInflectProducesAllForms(t *testing.T) {
	assert := assert.New(t)
	a := newTestAnalyzer(t)

	forms := a.Inflect("мама")
	words := make([]string, len(forms))
	for i, f := range forms {
		words[i] = f.Word
	}
	sort.Strings(words)
	assert.Equal([]string{"мама", "мамой"}, words)
}

func TestParsePredictedAndPredictOOV(t *testing.T) {
	assert := assert.New(t)
	a := newTestAnalyzer(t)

	// "папа" is not a dictionary word but shares the "мам"-paradigm
	// suffix "а"; prediction should find an analogous analysis.
	predicted := a.ParsePredicted("папа")
	if assert.Len(predicted, 1) {
		assert.NotEmpty(predicted[0].PartOfSpeech)
	}

	forms := a.Predict("папа", predicted[0].Lemma)
	assert.NotEmpty(forms)
}

func TestAnalyzeFallsBackToPrediction(t *testing.T) {
	assert := assert.New(t)
	a := newTestAnalyzer(t)

	parses, forms := a.Analyze("папа")
	assert.NotEmpty(parses)
	assert.NotEmpty(forms)
}

func TestParseListAndInflectListSortedByWord(t *testing.T) {
	a := newTestAnalyzer(t)

	parsed := a.ParseList([]string{"мама", "мама", "папа"})
	assert.True(t, sort.SliceIsSorted(parsed, func(i, j int) bool { return parsed[i].Word < parsed[j].Word }))

	inflected := a.InflectList([]string{"мама"})
	assert.NotEmpty(t, inflected)
	assert.True(t, sort.SliceIsSorted(inflected, func(i, j int) bool { return inflected[i].Word < inflected[j].Word }))
}
