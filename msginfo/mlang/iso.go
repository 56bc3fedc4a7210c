package mlang

import (
	"golang.org/x/text/language"
)

var tagByLanguage = map[Language]language.Tag{
	English:            language.English,
	Spanish:            language.Spanish,
	German:             language.German,
	Italian:            language.Italian,
	French:             language.French,
	Japanese:           language.Japanese,
	Korean:             language.Korean,
	ChineseSimplified:  language.SimplifiedChinese,
	ChineseTraditional: language.TraditionalChinese,
}

// FromTag maps tag onto an official language, falling back to the ISO 639-3 code of its base.
// A tag without an explicit base, such as "und" or "und-JP", is kept as its BCP 47 text.
func FromTag(tag language.Tag) Language {
	base, confidence := tag.Base()
	if confidence != language.Exact {
		return Parse(tag.String())
	}
	switch base.String() {
	case "en":
		return English
	case "es":
		return Spanish
	case "de":
		return German
	case "it":
		return Italian
	case "fr":
		return French
	case "ja":
		return Japanese
	case "ko":
		return Korean
	case "zh":
		script, _ := tag.Script()
		if script.String() == "Hant" {
			return ChineseTraditional
		}
		return ChineseSimplified
	}
	return Language(base.ISO3())
}

// FromCode accepts ISO 639-1, ISO 639-3 or BCP 47 codes. Text that does not
// parse as a language code is kept as is.
func FromCode(code string) Language {
	tag, err := language.Parse(code)
	if err != nil {
		return Parse(code)
	}
	if _, confidence := tag.Base(); confidence != language.Exact {
		return Parse(code)
	}
	return FromTag(tag)
}

// Tag returns the BCP 47 tag of l. ok is false when l is neither official nor a parseable code.
func (l Language) Tag() (tag language.Tag, ok bool) {
	if tag, ok = tagByLanguage[l]; ok {
		return tag, true
	}
	tag, err := language.Parse(string(l))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
