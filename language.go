package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language is one of the languages the dashboard ships translations for.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
	Tamil   Language = "ta"
)

// DefaultLanguage is used whenever no better match exists.
const DefaultLanguage = English

var supported = []Language{English, Hindi, Tamil}

var languageTags = map[Language]language.Tag{
	English: language.English,
	Hindi:   language.Hindi,
	Tamil:   language.Tamil,
}

// native names and flags shown by the language switcher
var languageLabels = map[Language][2]string{
	English: {"English", "🇬🇧"},
	Hindi:   {"हिंदी", "🇮🇳"},
	Tamil:   {"தமிழ்", "🇮🇳"},
}

var matcher = language.NewMatcher(SupportedTags())

// Languages returns the supported languages in switcher order.
func Languages() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

// SupportedTags returns the language tags of Languages, default first.
func SupportedTags() []language.Tag {
	tags := make([]language.Tag, 0, len(supported))
	for _, lang := range supported {
		tags = append(tags, languageTags[lang])
	}
	return tags
}

// ParseLanguage maps a BCP 47 tag such as "en-US" or "TA" onto a supported
// language by its base language.
func ParseLanguage(s string) (Language, error) {
	value := strings.TrimSpace(s)
	if value == "" {
		return "", fmt.Errorf("%w: empty language", ErrUnsupportedLanguage)
	}
	tag, err := language.Parse(value)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrUnsupportedLanguage, s, err)
	}
	base, _ := tag.Base()
	lang := Language(base.String())
	if !lang.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
	}
	return lang, nil
}

// MustParseLanguage is like ParseLanguage but panics on error.
func MustParseLanguage(s string) Language {
	lang, err := ParseLanguage(s)
	if err != nil {
		panic(err)
	}
	return lang
}

// MatchLanguage picks the best supported language for the preferred tags,
// in priority order. It returns DefaultLanguage when nothing matches.
func MatchLanguage(preferred ...language.Tag) Language {
	return MatchLanguageOr(DefaultLanguage, preferred...)
}

// MatchLanguageOr is MatchLanguage with the caller's fallback, e.g. the
// configured default of a server.
func MatchLanguageOr(fallback Language, preferred ...language.Tag) Language {
	if !fallback.Valid() {
		fallback = DefaultLanguage
	}
	if len(preferred) == 0 {
		return fallback
	}
	_, index, confidence := matcher.Match(preferred...)
	if confidence == language.No {
		return fallback
	}
	return supported[index]
}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	_, ok := languageTags[l]
	return ok
}

// Tag returns the x/text language tag for l, or language.Und.
func (l Language) Tag() language.Tag {
	if tag, ok := languageTags[l]; ok {
		return tag
	}
	return language.Und
}

// NativeName returns the language's name written in that language.
func (l Language) NativeName() string {
	return languageLabels[l][0]
}

// Flag returns the emoji flag used next to the language name.
func (l Language) Flag() string {
	return languageLabels[l][1]
}

func (l Language) String() string {
	return string(l)
}
