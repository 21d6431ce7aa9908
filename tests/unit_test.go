// unit_test.go
package tests

import (
	"sort"
	"testing"

	steosmorphy "github.com/steosofficial/steosmorphy/analyzer"
	"github.com/steosofficial/steosmorphy/encoding"
	"github.com/steosofficial/steosmorphy/morph"
)

var analyzer *steosmorphy.MorphAnalyzer

// TestMain строит небольшой словарь-фикстуру в памяти и оборачивает его
// в MorphAnalyzer, ровно так же, как это сделал бы LoadMorphAnalyzer для
// настоящего production-словаря. Реальные словарные данные в пакет не
// поставляются (см. DESIGN.md), поэтому тесты используют фикстуру,
// покрывающую основные части речи и омонимию/предсказание.
func TestMain(m *testing.M) {
	analyzer = mustBuildFixtureAnalyzer()
	m.Run()
}

// mustBuildFixtureAnalyzer собирает Morphologist из нескольких лемм,
// достаточных для проверки словарного разбора, омонимии, неизменяемых
// частей речи и предсказания несловарных слов по суффиксу.
func mustBuildFixtureAnalyzer() *steosmorphy.MorphAnalyzer {
	b := morph.NewBuilder(encoding.Russian)

	// "мама" - простое существительное женского рода.
	mamaLine := b.AddSuffixLine()
	addSuffix(b, mamaLine, "а", morph.RussianNounPos{Number: morph.NumberSingular, Gender: morph.GenderFeminine, Case: morph.CaseNominative})
	addSuffix(b, mamaLine, "ы", morph.RussianNounPos{Number: morph.NumberSingular, Gender: morph.GenderFeminine, Case: morph.CaseGenitive})
	addSuffix(b, mamaLine, "е", morph.RussianNounPos{Number: morph.NumberSingular, Gender: morph.GenderFeminine, Case: morph.CaseDative})
	addSuffix(b, mamaLine, "ой", morph.RussianNounPos{Number: morph.NumberSingular, Gender: morph.GenderFeminine, Case: morph.CaseInstrumental})
	mustAddBase(b, 1, mamaLine, "мам", "мама")

	// "стали" омоним: глагол "стать" (прош. вр., мн.ч.) и существительное
	// "сталь" (род. падеж, ед.ч.) — обе леммы дают форму "стали".
	statLine := b.AddSuffixLine()
	addSuffix(b, statLine, "ли", morph.RussianVerbPos{Number: morph.NumberPlural, Time: morph.TimePast})
	mustAddBase(b, 2, statLine, "ста", "стать")

	stalLine := b.AddSuffixLine()
	addSuffix(b, stalLine, "и", morph.RussianNounPos{Number: morph.NumberSingular, Gender: morph.GenderFeminine, Case: morph.CaseGenitive})
	mustAddBase(b, 3, stalLine, "стал", "сталь")

	// "кот" — существительное мужского рода, для OOV-предсказания по
	// тому же парадигматическому суффиксу ("нейросеть" и т.п. не
	// строятся из production-словаря, которого здесь нет).
	kotLine := b.AddSuffixLine()
	addSuffix(b, kotLine, "", morph.RussianNounPos{Number: morph.NumberSingular, Gender: morph.GenderMasculine, Case: morph.CaseNominative})
	addSuffix(b, kotLine, "а", morph.RussianNounPos{Number: morph.NumberSingular, Gender: morph.GenderMasculine, Case: morph.CaseGenitive})
	addSuffix(b, kotLine, "у", morph.RussianNounPos{Number: morph.NumberSingular, Gender: morph.GenderMasculine, Case: morph.CaseDative})
	mustAddBase(b, 4, kotLine, "кот", "кот")

	// "в" — неизменяемый предлог.
	vLine := b.AddSuffixLine()
	addSuffix(b, vLine, "", morph.NewRussianInvariablePos(morph.RussianPreposition, morph.LangNormal))
	mustAddBase(b, 5, vLine, "в", "в")

	return steosmorphy.NewMorphAnalyzer(b.Build())
}

func addSuffix(b *morph.Builder, line morph.LineID, suffix string, pos interface{ Pack() uint32 }) {
	if err := b.AddSuffix(line, pos.Pack(), suffix); err != nil {
		panic(err)
	}
}

func mustAddBase(b *morph.Builder, id morph.LemmaID, line morph.LineID, base, mainForm string) {
	if err := b.AddBase(id, line, base, mainForm); err != nil {
		panic(err)
	}
}

func TestAnalyze_DictionaryWords(t *testing.T) {
	testCases := []struct {
		name          string
		word          string
		expectedLemma string
		expectedPOS   string
		expectedCase  string
		expectedForms []string
	}{
		{
			name:          "Простое существительное (мама)",
			word:          "мама",
			expectedLemma: "мама",
			expectedPOS:   "Существительное",
			expectedCase:  "Именительный",
			expectedForms: []string{"мама", "маме", "мамой", "мамы"},
		},
		{
			name:          "Существительное не в начальной форме (коту)",
			word:          "коту",
			expectedLemma: "кот",
			expectedPOS:   "Существительное",
			expectedCase:  "Дательный",
			expectedForms: []string{"кот", "кота", "коту"},
		},
		{
			name:          "Предлог (в)",
			word:          "в",
			expectedLemma: "в",
			expectedPOS:   "Предлог",
			expectedCase:  "",
			expectedForms: []string{"в"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parses, forms := analyzer.Analyze(tc.word)

			if len(parses) == 0 {
				t.Fatalf("Слово '%s' не найдено в словаре, хотя должно было", tc.word)
			}

			foundParse := findParse(parses, tc.expectedLemma, tc.expectedPOS)
			if foundParse == nil {
				t.Fatalf("Ожидаемый разбор (лемма: %s, ЧР: %s) не найден", tc.expectedLemma, tc.expectedPOS)
			}

			if foundParse.Case != tc.expectedCase {
				t.Errorf("Неверный падеж: ожидали '%s', получили '%s'", tc.expectedCase, foundParse.Case)
			}

			for _, expectedForm := range tc.expectedForms {
				found := false
				for _, actualForm := range forms {
					if actualForm.Word == expectedForm {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("Ожидаемая словоформа '%s' не найдена в сгенерированном списке", expectedForm)
				}
			}
		})
	}
}

func TestAnalyze_AmbiguousWord(t *testing.T) {
	word := "стали"
	parses, _ := analyzer.Analyze(word)

	if len(parses) < 2 {
		t.Fatalf("Для слова '%s' ожидалось как минимум 2 разбора (глагол и сущ.), получено %d", word, len(parses))
	}

	verbParse := findParse(parses, "стать", "Глагол")
	if verbParse == nil {
		t.Error("Не найден разбор для 'стали' как глагола 'стать'")
	}

	nounParse := findParse(parses, "сталь", "Существительное")
	if nounParse == nil {
		t.Error("Не найден разбор для 'стали' как существительного 'сталь'")
	} else if nounParse.Case != "Родительный" {
		t.Errorf("Для 'стали' (сущ) ожидали Родительный падеж, получили '%s'", nounParse.Case)
	}
}

func TestAnalyze_OOVWords(t *testing.T) {
	// "боту" не в словаре, но разделяет парадигму с "коту" (суффикс "у").
	word := "боту"
	parses, forms := analyzer.Analyze(word)

	if parses == nil {
		t.Fatalf("Слово '%s' не было предсказано, хотя должно было", word)
	}
	if len(parses) != 1 {
		t.Fatalf("Для предсказанного слова ожидается 1 вариант разбора, получено %d", len(parses))
	}

	p := parses[0]
	if p.PartOfSpeech != "Существительное" {
		t.Errorf("Неверная предсказанная ЧР: ожидали 'Существительное', получили '%s'", p.PartOfSpeech)
	}

	if len(forms) == 0 {
		t.Errorf("Не сгенерированы словоформы для предсказанного слова '%s'", word)
	}
}

func TestParseList(t *testing.T) {
	words := []string{"мама", "стали", "коту"}

	expectedLemmas := map[string]bool{
		"мама":  true,
		"стать": true,
		"сталь": true,
		"кот":   true,
	}

	results := analyzer.ParseList(words)

	if len(results) < len(words) {
		t.Fatalf("Ожидалось как минимум %d разборов, получено %d", len(words), len(results))
	}

	foundLemmas := make(map[string]bool)
	for _, p := range results {
		foundLemmas[p.Lemma] = true
	}

	for lemma := range expectedLemmas {
		if !foundLemmas[lemma] {
			t.Errorf("Ожидаемая лемма '%s' не найдена в результатах пакетной обработки", lemma)
		}
	}

	isSorted := sort.SliceIsSorted(results, func(i, j int) bool {
		return results[i].Word < results[j].Word
	})
	if !isSorted {
		t.Error("Результат ParseList не отсортирован по полю Word")
	}
}

func TestInflectList(t *testing.T) {
	words := []string{"мама", "коту"}

	expectedForms := []string{"мама", "маме", "мамой", "мамы", "кот", "кота", "коту"}

	results := analyzer.InflectList(words)

	if len(results) < len(words) {
		t.Fatalf("Ожидалось как минимум %d разборов, получено %d", len(words), len(results))
	}

	for _, expectedForm := range expectedForms {
		found := false
		for _, actualForm := range results {
			if expectedForm == actualForm.Word {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Ожидаемая словоформа '%v' не найдена в сгенерированном списке", expectedForm)
		}
	}

	isSorted := sort.SliceIsSorted(results, func(i, j int) bool {
		return results[i].Word < results[j].Word
	})
	if !isSorted {
		t.Error("Результат InflectList не отсортирован по полю Word")
	}
}

// findParse ищет в срезе разборов тот, который соответствует ожиданиям.
// Необходимо для неоднозначных слов.
func findParse(parses []*steosmorphy.Parsed, lemma, pos string) *steosmorphy.Parsed {
	for _, p := range parses {
		if p.Lemma == lemma && p.PartOfSpeech == pos {
			return p
		}
	}
	return nil
}
