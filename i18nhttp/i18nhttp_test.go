package i18nhttp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smartlogistics/i18n"
)

func TestResolveLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		url         string
		cookie      string
		accept      string
		fallback    i18n.Language
		want        i18n.Language
		wantPersist bool
	}{
		{name: "query", url: "/?lang=hi", want: i18n.Hindi, wantPersist: true},
		{name: "query region", url: "/?lang=ta-IN", want: i18n.Tamil, wantPersist: true},
		{name: "bad query uses cookie", url: "/?lang=xx", cookie: "ta", want: i18n.Tamil},
		{name: "cookie", url: "/", cookie: "hi", want: i18n.Hindi},
		{name: "accept language", url: "/", accept: "fr-FR, ta;q=0.8, en;q=0.5", want: i18n.Tamil},
		{name: "accept unsupported", url: "/", accept: "ja", want: i18n.English},
		{name: "accept unsupported uses fallback", url: "/", accept: "fr-FR,de;q=0.8", fallback: i18n.Hindi, want: i18n.Hindi},
		{name: "accept match beats fallback", url: "/", accept: "ta-IN", fallback: i18n.Hindi, want: i18n.Tamil},
		{name: "fallback", url: "/", fallback: i18n.Hindi, want: i18n.Hindi},
		{name: "invalid fallback", url: "/", fallback: "fr", want: i18n.English},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "http://example.com"+tt.url, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			fallback := tt.fallback
			if fallback == "" {
				fallback = i18n.English
			}
			got, persist := ResolveLanguage(req, fallback)
			if got != tt.want || persist != tt.wantPersist {
				t.Fatalf("ResolveLanguage = %s, %v; want %s, %v", got, persist, tt.want, tt.wantPersist)
			}
		})
	}
}

func TestResolveTheme(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://example.com/?theme=dark", nil)
	if theme, persist := ResolveTheme(req); theme != i18n.ThemeDark || !persist {
		t.Fatalf("ResolveTheme(query) = %s, %v", theme, persist)
	}

	req = httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
	req.AddCookie(&http.Cookie{Name: ThemeCookieName, Value: "system"})
	if theme, persist := ResolveTheme(req); theme != i18n.ThemeSystem || persist {
		t.Fatalf("ResolveTheme(cookie) = %s, %v", theme, persist)
	}

	if theme, _ := ResolveTheme(nil); theme != i18n.DefaultTheme {
		t.Fatalf("ResolveTheme(nil) = %s", theme)
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got i18n.Settings
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = i18n.SettingsFromContext(r.Context())
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=ta&theme=dark", nil)
	Middleware(i18n.English)(next).ServeHTTP(rec, req)

	if got.Language != i18n.Tamil || got.Theme != i18n.ThemeDark {
		t.Fatalf("settings = %+v", got)
	}
	cookies := map[string]string{}
	for _, c := range rec.Result().Cookies() {
		cookies[c.Name] = c.Value
	}
	if cookies[LangCookieName] != "ta" || cookies[ThemeCookieName] != "dark" {
		t.Fatalf("cookies = %v", cookies)
	}
}

func TestBuildLanguageOptions(t *testing.T) {
	t.Parallel()

	options := BuildLanguageOptions(i18n.Languages(), i18n.Hindi)
	if len(options) != 3 {
		t.Fatalf("len(options) = %d, want 3", len(options))
	}
	if !options[1].Active || options[0].Active || options[2].Active {
		t.Fatalf("options = %+v", options)
	}
	if options[1].Name != "हिंदी" || options[1].Code != "hi" {
		t.Fatalf("options[1] = %+v", options[1])
	}
}
