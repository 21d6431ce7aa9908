package morph

// String implementations for the English POS model's enums.

func (t EnglishTag) String() string {
	switch t {
	case EnglishNoun:
		return "Noun"
	case EnglishAdjective:
		return "Adjective"
	case EnglishVerb:
		return "Verb"
	case EnglishAdverb:
		return "Adverb"
	case EnglishPronoun:
		return "Pronoun"
	case EnglishPronounNoun:
		return "PronounNoun"
	case EnglishPronounAdjective:
		return "PronounAdjective"
	case EnglishNumeral:
		return "Numeral"
	case EnglishNumeralOrdinal:
		return "NumeralOrdinal"
	case EnglishConjunction:
		return "Conjunction"
	case EnglishInterjection:
		return "Interjection"
	case EnglishPreposition:
		return "Preposition"
	case EnglishParticle:
		return "Particle"
	case EnglishArticle:
		return "Article"
	case EnglishPossessive:
		return "Possessive"
	default:
		return ""
	}
}

func (n EnglishNumber) String() string {
	switch n {
	case ENumberSingular:
		return "Singular"
	case ENumberPlural:
		return "Plural"
	case ENumberUncount:
		return "Uncountable"
	case ENumberMass:
		return "Mass"
	default:
		return ""
	}
}

func (g EnglishGender) String() string {
	switch g {
	case EGenderMasculine:
		return "Masculine"
	case EGenderFeminine:
		return "Feminine"
	case EGenderNeuter:
		return "Neuter"
	default:
		return ""
	}
}

func (c EnglishCase) String() string {
	switch c {
	case ECaseNominative:
		return "Nominative"
	case ECaseObject:
		return "Objective"
	default:
		return ""
	}
}

func (t EnglishTime) String() string {
	switch t {
	case ETimeInfinitive:
		return "Infinitive"
	case ETimePresent:
		return "Present"
	case ETimePast:
		return "Past"
	case ETimeFutureToBe:
		return "FutureWithToBe"
	case ETimePastParticiple:
		return "PastParticiple"
	case ETimeGerund:
		return "Gerund"
	case ETimeIfToBe:
		return "Subjunctive"
	default:
		return ""
	}
}

func (p EnglishPerson) String() string {
	switch p {
	case EPersonFirst:
		return "First"
	case EPersonSecond:
		return "Second"
	case EPersonThird:
		return "Third"
	default:
		return ""
	}
}

func (d Degree) String() string {
	switch d {
	case DegreePositive:
		return "Positive"
	case DegreeComparative:
		return "Comparative"
	case DegreeSuperlative:
		return "Superlative"
	default:
		return ""
	}
}

func (a EnglishAnimation) String() string {
	switch a {
	case EAnimationAnimate:
		return "Animate"
	case EAnimationInanimate:
		return "Inanimate"
	default:
		return ""
	}
}
