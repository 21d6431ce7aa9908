package morph

import "fmt"

// EnglishTag is the part-of-speech discriminator carried in the low 5
// bits of a packed English POS word.
type EnglishTag uint32

const (
	EnglishAdjective        EnglishTag = 1
	EnglishAdverb           EnglishTag = 2
	EnglishVerb             EnglishTag = 3
	EnglishNumeral          EnglishTag = 4
	EnglishNumeralOrdinal   EnglishTag = 5
	EnglishConjunction      EnglishTag = 6
	EnglishInterjection     EnglishTag = 7
	EnglishPreposition      EnglishTag = 8
	EnglishParticle         EnglishTag = 9
	EnglishArticle          EnglishTag = 10
	EnglishNoun             EnglishTag = 11
	EnglishPronoun          EnglishTag = 12
	EnglishPronounNoun      EnglishTag = 13
	EnglishPronounAdjective EnglishTag = 14
	EnglishPossessive       EnglishTag = 15
)

type EnglishNumber uint32

const (
	ENumberUnknown  EnglishNumber = 0
	ENumberSingular EnglishNumber = 0x01
	ENumberPlural   EnglishNumber = 0x02
	ENumberUncount  EnglishNumber = 0x04
	ENumberMass     EnglishNumber = 0x08
)

type EnglishGender uint32

const (
	EGenderUnknown   EnglishGender = 0
	EGenderMasculine EnglishGender = 1
	EGenderFeminine  EnglishGender = 2
	EGenderNeuter    EnglishGender = 3
)

type EnglishCase uint32

const (
	ECaseUnknown     EnglishCase = 0
	ECaseNominative  EnglishCase = 1
	ECaseObject      EnglishCase = 2
)

type EnglishTime uint32

const (
	ETimeUnknown        EnglishTime = 0
	ETimeInfinitive     EnglishTime = 1
	ETimePresent        EnglishTime = 2
	ETimePast           EnglishTime = 3
	ETimeFutureToBe     EnglishTime = 4
	ETimePastParticiple EnglishTime = 5
	ETimeGerund         EnglishTime = 6
	ETimeIfToBe         EnglishTime = 7
)

type EnglishPerson uint32

const (
	EPersonUnknown EnglishPerson = 0
	EPersonFirst   EnglishPerson = 0x01
	EPersonSecond  EnglishPerson = 0x02
	EPersonThird   EnglishPerson = 0x04
)

type PronounType uint32

const (
	PronounTypeUnknown      PronounType = 0
	PronounTypePersonal     PronounType = 1
	PronounTypePossessive   PronounType = 2
	PronounTypeReflexive    PronounType = 3
	PronounTypeDemonstrative PronounType = 4
)

type PronounForm uint32

const (
	PronounFormUnknown     PronounForm = 0
	PronounFormPredicative PronounForm = 1
	PronounFormAttributive PronounForm = 2
)

type Degree uint32

const (
	DegreeUnknown     Degree = 0
	DegreePositive    Degree = 1
	DegreeComparative Degree = 2
	DegreeSuperlative Degree = 3
)

type EnglishAnimation uint32

const (
	EAnimationUnknown   EnglishAnimation = 0
	EAnimationAnimate   EnglishAnimation = 0x01
	EAnimationInanimate EnglishAnimation = 0x02
)

// EnglishPos is the tagged-sum interface every English POS variant
// implements: its discriminator tag, and packing into the normative
// 32-bit layout.
type EnglishPos interface {
	Tag() EnglishTag
	Pack() uint32
}

func packEnglishTag(tag EnglishTag) uint32 { return uint32(tag) }

type EnglishNounPos struct {
	Number    EnglishNumber
	Gender    EnglishGender
	Case      EnglishCase
	Animation EnglishAnimation
	Type      PronounType
	Narrative bool
}

func (p EnglishNounPos) Tag() EnglishTag { return EnglishNoun }
func (p EnglishNounPos) Pack() uint32 {
	v := packEnglishTag(EnglishNoun)
	v |= uint32(p.Number) << 5
	v |= uint32(p.Gender) << 9
	v |= uint32(p.Case) << 11
	v |= uint32(p.Animation) << 13
	v |= uint32(p.Type) << 15
	v |= boolBit(p.Narrative) << 18
	return v
}

func unpackEnglishNoun(w uint32) EnglishNounPos {
	return EnglishNounPos{
		Number:    EnglishNumber((w >> 5) & 0xF),
		Gender:    EnglishGender((w >> 9) & 0x3),
		Case:      EnglishCase((w >> 11) & 0x3),
		Animation: EnglishAnimation((w >> 13) & 0x3),
		Type:      PronounType((w >> 15) & 0x7),
		Narrative: (w>>18)&0x1 != 0,
	}
}

type EnglishAdjectivePos struct {
	Degree Degree
	Prop   bool
}

func (p EnglishAdjectivePos) Tag() EnglishTag { return EnglishAdjective }
func (p EnglishAdjectivePos) Pack() uint32 {
	v := packEnglishTag(EnglishAdjective)
	v |= uint32(p.Degree) << 5
	v |= boolBit(p.Prop) << 7
	return v
}

func unpackEnglishAdjective(w uint32) EnglishAdjectivePos {
	return EnglishAdjectivePos{
		Degree: Degree((w >> 5) & 0x3),
		Prop:   (w>>7)&0x1 != 0,
	}
}

type EnglishVerbPos struct {
	Time   EnglishTime
	Gender EnglishGender
	Person EnglishPerson
}

func (p EnglishVerbPos) Tag() EnglishTag { return EnglishVerb }
func (p EnglishVerbPos) Pack() uint32 {
	v := packEnglishTag(EnglishVerb)
	v |= uint32(p.Time) << 5
	v |= uint32(p.Gender) << 8
	v |= uint32(p.Person) << 10
	return v
}

func unpackEnglishVerb(w uint32) EnglishVerbPos {
	return EnglishVerbPos{
		Time:   EnglishTime((w >> 5) & 0x7),
		Gender: EnglishGender((w >> 8) & 0x3),
		Person: EnglishPerson((w >> 10) & 0x7),
	}
}

type EnglishAdverbPos struct {
	Degree Degree
}

func (p EnglishAdverbPos) Tag() EnglishTag { return EnglishAdverb }
func (p EnglishAdverbPos) Pack() uint32 {
	v := packEnglishTag(EnglishAdverb)
	v |= uint32(p.Degree) << 5
	return v
}

func unpackEnglishAdverb(w uint32) EnglishAdverbPos {
	return EnglishAdverbPos{Degree: Degree((w >> 5) & 0x3)}
}

type EnglishPronounPos struct {
	Number EnglishNumber
	Case   EnglishCase
	Type   PronounType
	Person EnglishPerson
}

func (p EnglishPronounPos) Tag() EnglishTag { return EnglishPronoun }
func (p EnglishPronounPos) Pack() uint32 {
	v := packEnglishTag(EnglishPronoun)
	v |= uint32(p.Number) << 5
	v |= uint32(p.Case) << 9
	v |= uint32(p.Type) << 11
	v |= uint32(p.Person) << 14
	return v
}

func unpackEnglishPronoun(w uint32) EnglishPronounPos {
	return EnglishPronounPos{
		Number: EnglishNumber((w >> 5) & 0xF),
		Case:   EnglishCase((w >> 9) & 0x3),
		Type:   PronounType((w >> 11) & 0x7),
		Person: EnglishPerson((w >> 14) & 0x7),
	}
}

type EnglishPronounAdjectivePos struct {
	Number EnglishNumber
	Form   PronounForm
	Type   PronounType
}

func (p EnglishPronounAdjectivePos) Tag() EnglishTag { return EnglishPronounAdjective }
func (p EnglishPronounAdjectivePos) Pack() uint32 {
	v := packEnglishTag(EnglishPronounAdjective)
	v |= uint32(p.Number) << 5
	v |= uint32(p.Form) << 9
	v |= uint32(p.Type) << 11
	return v
}

func unpackEnglishPronounAdjective(w uint32) EnglishPronounAdjectivePos {
	return EnglishPronounAdjectivePos{
		Number: EnglishNumber((w >> 5) & 0xF),
		Form:   PronounForm((w >> 9) & 0x3),
		Type:   PronounType((w >> 11) & 0x7),
	}
}

// EnglishInvariablePos covers every English tag that carries no fields
// beyond its discriminator: Numeral, NumeralOrdinal, Conjunction,
// Interjection, Preposition, Particle, Article, PronounNoun, Possessive.
type EnglishInvariablePos struct {
	tag EnglishTag
}

func (p EnglishInvariablePos) Tag() EnglishTag { return p.tag }
func (p EnglishInvariablePos) Pack() uint32    { return packEnglishTag(p.tag) }

func unpackEnglishInvariable(tag EnglishTag) EnglishInvariablePos {
	return EnglishInvariablePos{tag: tag}
}

// UnpackEnglish reads the low 5 bits of word to dispatch to the matching
// variant's unpacker.
func UnpackEnglish(word uint32) (EnglishPos, error) {
	tag := EnglishTag(word & 0x1F)
	switch tag {
	case EnglishNoun:
		return unpackEnglishNoun(word), nil
	case EnglishAdjective:
		return unpackEnglishAdjective(word), nil
	case EnglishVerb:
		return unpackEnglishVerb(word), nil
	case EnglishAdverb:
		return unpackEnglishAdverb(word), nil
	case EnglishPronoun:
		return unpackEnglishPronoun(word), nil
	case EnglishPronounAdjective:
		return unpackEnglishPronounAdjective(word), nil
	case EnglishNumeral, EnglishNumeralOrdinal, EnglishConjunction, EnglishInterjection,
		EnglishPreposition, EnglishParticle, EnglishArticle, EnglishPronounNoun, EnglishPossessive:
		return unpackEnglishInvariable(tag), nil
	default:
		return nil, fmt.Errorf("morph: unknown english pos tag %d", tag)
	}
}
