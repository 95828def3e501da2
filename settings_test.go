package i18n

import (
	"context"
	"errors"
	"testing"
)

func TestSettings(t *testing.T) {
	t.Parallel()

	s := DefaultSettings()
	if s.Language != English || s.Theme != ThemeLight {
		t.Fatalf("DefaultSettings() = %+v", s)
	}

	dark := s.WithTheme(ThemeDark).WithLanguage(Tamil)
	if dark.Theme != ThemeDark || dark.Language != Tamil {
		t.Fatalf("With* = %+v", dark)
	}
	if s.Theme != ThemeLight || s.Language != English {
		t.Fatalf("With* mutated the receiver: %+v", s)
	}
	if got := dark.WithLanguage("fr").WithTheme("neon"); got != dark {
		t.Fatalf("invalid values changed settings: %+v", got)
	}
	if got := s.WithTheme(" Dark "); got.Theme != ThemeDark {
		t.Fatalf("WithTheme(\" Dark \").Theme = %q, want %q", got.Theme, ThemeDark)
	}
}

func TestParseTheme(t *testing.T) {
	t.Parallel()

	if got, err := ParseTheme(" Dark "); err != nil || got != ThemeDark {
		t.Fatalf("ParseTheme(Dark) = %q, %v", got, err)
	}
	if _, err := ParseTheme("sepia"); !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("err = %v, want ErrUnknownTheme", err)
	}
}

func TestSettingsContext(t *testing.T) {
	t.Parallel()

	if got := SettingsFromContext(context.Background()); got != DefaultSettings() {
		t.Fatalf("empty context = %+v", got)
	}
	want := Settings{Language: Hindi, Theme: ThemeSystem}
	ctx := NewContext(context.Background(), want)
	if got := SettingsFromContext(ctx); got != want {
		t.Fatalf("SettingsFromContext = %+v, want %+v", got, want)
	}
}
