// tagset.go turns a packed Russian POS attribute into a structured
// Parsed value: the grammatical categories a caller usually wants as
// named fields, plus an OtherTags bucket for the rest.
package analyzer

import "github.com/steosofficial/steosmorphy/morph"

// GrammemeSet is a set of human-readable grammeme names.
type GrammemeSet map[string]struct{}

// Parsed holds one full morphological analysis of a word.
type Parsed struct {
	Word         string      `json:"word"`
	Lemma        string      `json:"lemma"`
	Tags         uint32      `json:"tags"`
	PartOfSpeech string      `json:"part_of_speech"`
	Animacy      string      `json:"animacy"`
	Case         string      `json:"case"`
	Gender       string      `json:"gender"`
	Number       string      `json:"number"`
	Person       string      `json:"person"`
	Tense        string      `json:"tense"`
	Voice        string      `json:"voice"`
	OtherTags    GrammemeSet `json:"other_tags"`
}

func addTag(set GrammemeSet, s string) {
	if s != "" {
		set[s] = struct{}{}
	}
}

func addFlag(set GrammemeSet, on bool, label string) {
	if on {
		set[label] = struct{}{}
	}
}

// newParsed builds a Parsed from a surface form, its lemma, and its
// packed Russian POS attribute. An unrecognized tag leaves every
// grammatical field empty rather than failing — per spec §7,
// AlphabetMiss-style data misses never propagate as errors.
func newParsed(word, lemma string, attr uint32) *Parsed {
	p := &Parsed{Word: word, Lemma: lemma, Tags: attr, OtherTags: make(GrammemeSet)}

	pos, err := morph.UnpackRussian(attr)
	if err != nil {
		return p
	}
	p.PartOfSpeech = pos.Tag().String()

	switch v := pos.(type) {
	case morph.RussianNounPos:
		p.Number, p.Gender, p.Case = v.Number.String(), v.Gender.String(), v.Case.String()
		addTag(p.OtherTags, v.Lang.String())
		addTag(p.OtherTags, v.Entity.String())
	case morph.RussianAdjectivePos:
		p.Number, p.Gender, p.Case, p.Animacy = v.Number.String(), v.Gender.String(), v.Case.String(), v.Animation.String()
		addTag(p.OtherTags, v.Lang.String())
		addFlag(p.OtherTags, v.Brevity, "Краткая форма")
	case morph.RussianPronounNounPos:
		p.Number, p.Gender, p.Case, p.Person = v.Number.String(), v.Gender.String(), v.Case.String(), v.Person.String()
		addTag(p.OtherTags, v.Lang.String())
	case morph.RussianVerbPos:
		p.Number, p.Tense, p.Voice, p.Person, p.Gender = v.Number.String(), v.Time.String(), v.Voice.String(), v.Person.String(), v.Gender.String()
		addTag(p.OtherTags, v.Lang.String())
		addFlag(p.OtherTags, v.Impersonal, "Безличный")
	case morph.RussianParticiplePos:
		p.Number, p.Tense, p.Voice, p.Case, p.Gender, p.Animacy = v.Number.String(), v.Time.String(), v.Voice.String(), v.Case.String(), v.Gender.String(), v.Animation.String()
		addTag(p.OtherTags, v.Lang.String())
	case morph.RussianAdverbParticiplePos:
		p.Tense, p.Voice = v.Time.String(), v.Voice.String()
		addTag(p.OtherTags, v.Lang.String())
	case morph.RussianPronounPredicativePos:
		p.Number, p.Case = v.Number.String(), v.Case.String()
		addTag(p.OtherTags, v.Lang.String())
	case morph.RussianPronounAdjectivePos:
		p.Number, p.Gender, p.Case, p.Animacy = v.Number.String(), v.Gender.String(), v.Case.String(), v.Animation.String()
		addTag(p.OtherTags, v.Lang.String())
	case morph.RussianNumeralQuantitativePos:
		p.Gender, p.Case = v.Gender.String(), v.Case.String()
		addTag(p.OtherTags, v.Lang.String())
	case morph.RussianNumeralOrdinalPos:
		p.Number, p.Gender, p.Case, p.Animacy = v.Number.String(), v.Gender.String(), v.Case.String(), v.Animation.String()
		addTag(p.OtherTags, v.Lang.String())
	case morph.RussianAdverbPos:
		addTag(p.OtherTags, v.Lang.String())
		addFlag(p.OtherTags, v.Relativity, "Относительное")
		addFlag(p.OtherTags, v.Questionality, "Вопросительное")
		addFlag(p.OtherTags, v.Brevity, "Краткая форма")
	case morph.RussianPredicatePos:
		p.Tense = v.Time.String()
		addTag(p.OtherTags, v.Lang.String())
		addFlag(p.OtherTags, v.Unchanged, "Неизменяемое")
	case morph.RussianInvariablePos:
		addTag(p.OtherTags, v.Lang.String())
	}

	return p
}
