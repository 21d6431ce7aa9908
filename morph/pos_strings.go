package morph

// String implementations for the Russian POS model's enums. Names follow
// the traditional Russian grammatical terminology, matching what a
// Russian-language morphology tool's tag output looks like.

func (t RussianTag) String() string {
	switch t {
	case RussianNoun:
		return "Существительное"
	case RussianAdjective:
		return "Прилагательное"
	case RussianPronounNoun:
		return "Местоимение-существительное"
	case RussianVerb:
		return "Глагол"
	case RussianParticiple:
		return "Причастие"
	case RussianAdverbParticiple:
		return "Деепричастие"
	case RussianPronounPredicative:
		return "Местоимение-предикатив"
	case RussianPronounAdjective:
		return "Местоимение-прилагательное"
	case RussianNumeralQuantitative:
		return "Числительное"
	case RussianNumeralOrdinal:
		return "Числительное порядковое"
	case RussianAdverb:
		return "Наречие"
	case RussianPredicate:
		return "Предикатив"
	case RussianPreposition:
		return "Предлог"
	case RussianConjunction:
		return "Союз"
	case RussianInterjection:
		return "Междометие"
	case RussianParticle:
		return "Частица"
	case RussianIntroductoryWord:
		return "Вводное слово"
	default:
		return ""
	}
}

func (n Number) String() string {
	switch n {
	case NumberSingular:
		return "Единственное число"
	case NumberPlural:
		return "Множественное число"
	default:
		return ""
	}
}

func (g Gender) String() string {
	switch g {
	case GenderMasculine:
		return "Мужской"
	case GenderFeminine:
		return "Женский"
	case GenderNeuter:
		return "Средний"
	default:
		return ""
	}
}

func (c Case) String() string {
	switch c {
	case CaseNominative:
		return "Именительный"
	case CaseGenitive:
		return "Родительный"
	case CaseGenitive2:
		return "Партитивный"
	case CaseDative:
		return "Дательный"
	case CaseAccusative:
		return "Винительный"
	case CaseInstrumental:
		return "Творительный"
	case CasePrepositional:
		return "Предложный"
	case CasePrepositional2:
		return "Местный"
	case CaseVocative:
		return "Звательный"
	default:
		return ""
	}
}

func (t Time) String() string {
	switch t {
	case TimePresent:
		return "Настоящее"
	case TimeFuture:
		return "Будущее"
	case TimePast:
		return "Прошедшее"
	default:
		return ""
	}
}

func (p Person) String() string {
	switch p {
	case PersonFirst:
		return "1-е лицо"
	case PersonSecond:
		return "2-е лицо"
	case PersonThird:
		return "3-е лицо"
	default:
		return ""
	}
}

func (v Voice) String() string {
	switch v {
	case VoiceActive:
		return "Действительный"
	case VoicePassive:
		return "Страдательный"
	default:
		return ""
	}
}

func (a Animation) String() string {
	switch a {
	case AnimationAnimate:
		return "Одушевленное"
	case AnimationInanimate:
		return "Неодушевленное"
	default:
		return ""
	}
}

func (l Lang) String() string {
	switch l {
	case LangSlang:
		return "Жаргонизм"
	case LangArchaism:
		return "Архаизм"
	case LangInformal:
		return "Разговорное"
	default:
		return ""
	}
}

func (e Entity) String() string {
	switch e {
	case EntityAbbreviation:
		return "Аббревиатура"
	case EntityFirstName:
		return "Имя"
	case EntityMiddleName:
		return "Отчество"
	case EntityFamilyName:
		return "Фамилия"
	default:
		return ""
	}
}
