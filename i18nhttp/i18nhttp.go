// Package i18nhttp resolves the viewer's language and theme from HTTP
// requests and serves catalog messages as JSON.
package i18nhttp

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/smartlogistics/i18n"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// ThemeParam is the query parameter used to select a theme.
	ThemeParam = "theme"
	// LangCookieName stores the viewer's language preference.
	LangCookieName = "sl_lang"
	// ThemeCookieName stores the viewer's theme preference.
	ThemeCookieName = "sl_theme"

	cookieMaxAge = 365 * 24 * time.Hour
)

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Flag   string `json:"flag"`
	Active bool   `json:"active"`
}

// ResolveLanguage picks the request language from the lang query
// parameter, the language cookie, then Accept-Language, and falls back
// when none of them names a supported language. The bool reports whether
// the choice came from the query and should be persisted.
func ResolveLanguage(r *http.Request, fallback i18n.Language) (i18n.Language, bool) {
	if !fallback.Valid() {
		fallback = i18n.DefaultLanguage
	}
	if r == nil {
		return fallback, false
	}
	if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
		if lang, err := i18n.ParseLanguage(value); err == nil {
			return lang, true
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if lang, err := i18n.ParseLanguage(cookie.Value); err == nil {
			return lang, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return i18n.MatchLanguageOr(fallback, tags...), false
		}
	}
	return fallback, false
}

// ResolveTheme picks the request theme from the theme query parameter,
// then the theme cookie. The bool reports whether it came from the query.
func ResolveTheme(r *http.Request) (i18n.Theme, bool) {
	if r == nil {
		return i18n.DefaultTheme, false
	}
	if value := r.URL.Query().Get(ThemeParam); value != "" {
		if theme, err := i18n.ParseTheme(value); err == nil {
			return theme, true
		}
	}
	if cookie, err := r.Cookie(ThemeCookieName); err == nil {
		if theme, err := i18n.ParseTheme(cookie.Value); err == nil {
			return theme, false
		}
	}
	return i18n.DefaultTheme, false
}

// Middleware resolves Settings for every request and stores them on the
// request context. Query selections are persisted as cookies.
func Middleware(fallback i18n.Language) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang, persistLang := ResolveLanguage(r, fallback)
			theme, persistTheme := ResolveTheme(r)
			if persistLang {
				setCookie(w, LangCookieName, lang.String())
			}
			if persistTheme {
				setCookie(w, ThemeCookieName, string(theme))
			}
			s := i18n.Settings{Language: lang, Theme: theme}
			next.ServeHTTP(w, r.WithContext(i18n.NewContext(r.Context(), s)))
		})
	}
}

func setCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// BuildLanguageOptions returns the switcher entries for languages with the
// active one flagged.
func BuildLanguageOptions(languages []i18n.Language, active i18n.Language) []LanguageOption {
	options := make([]LanguageOption, 0, len(languages))
	for _, lang := range languages {
		options = append(options, LanguageOption{
			Code:   lang.String(),
			Name:   lang.NativeName(),
			Flag:   lang.Flag(),
			Active: lang == active,
		})
	}
	return options
}
