// Package i18n resolves SmartLogistics dashboard labels from a static,
// nested locale catalog.
//
// A Bundle holds one tree per language. Keys are dot-separated paths such
// as "dashboard.welcome". Lookups never fail: anything that does not
// resolve to text renders as the key itself.
package i18n

import "golang.org/x/text/message"

// Locale is a Bundle bound to one language.
type Locale struct {
	bundle *Bundle
	lang   Language
}

// Locale returns a view of b for lang. An empty lang selects the bundle's
// default language.
func (b *Bundle) Locale(lang Language) *Locale {
	if lang == "" && b != nil {
		lang = b.config.DefaultLanguage
	}
	return &Locale{bundle: b, lang: lang}
}

// LocaleFor returns a view of b for the language in s.
func (b *Bundle) LocaleFor(s Settings) *Locale {
	return b.Locale(s.Language)
}

// Language returns the language the locale is bound to.
func (l *Locale) Language() Language {
	return l.lang
}

// T translates key and fills {placeholders} from args, e.g.
//
//	T("metrics.boxCount", map[string]any{"count": 1200})
//
// Unresolved keys return the key. When rendering fails the untouched
// message is returned. A nil args map skips rendering.
func (l *Locale) T(key string, args map[string]any) string {
	if l == nil || l.bundle == nil {
		return key
	}
	text, ok := l.bundle.Lookup(l.lang, key)
	if !ok || args == nil {
		return text
	}
	res, err := RenderTemplate(l.lang, text, args)
	if err != nil {
		return text
	}
	return res
}

// Printer returns an x/text printer for the locale's language.
func (l *Locale) Printer() *message.Printer {
	return l.bundle.Printer(l.lang)
}
