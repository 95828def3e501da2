package i18n

import (
	"context"
	"fmt"
	"strings"
)

// Theme is the dashboard color scheme.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// DefaultTheme matches the dashboard's initial appearance.
const DefaultTheme = ThemeLight

// ParseTheme accepts a theme name, case-insensitively.
func ParseTheme(s string) (Theme, error) {
	switch theme := Theme(strings.ToLower(strings.TrimSpace(s))); theme {
	case ThemeLight, ThemeDark, ThemeSystem:
		return theme, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
	}
}

// Settings is the per-viewer display state: selected language and theme.
// It is passed explicitly to rendering code. The With* methods return a
// modified copy.
type Settings struct {
	Language Language
	Theme    Theme
}

// DefaultSettings returns English with the light theme.
func DefaultSettings() Settings {
	return Settings{Language: DefaultLanguage, Theme: DefaultTheme}
}

// WithLanguage returns s with the language replaced. Unsupported
// languages leave s unchanged.
func (s Settings) WithLanguage(lang Language) Settings {
	if lang.Valid() {
		s.Language = lang
	}
	return s
}

// WithTheme returns s with the theme replaced. Unknown themes leave s
// unchanged.
func (s Settings) WithTheme(theme Theme) Settings {
	if parsed, err := ParseTheme(string(theme)); err == nil {
		s.Theme = parsed
	}
	return s
}

type settingsKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s Settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, s)
}

// SettingsFromContext returns the settings stored on ctx, or
// DefaultSettings when none are present.
func SettingsFromContext(ctx context.Context) Settings {
	if ctx == nil {
		return DefaultSettings()
	}
	if s, ok := ctx.Value(settingsKey{}).(Settings); ok {
		return s
	}
	return DefaultSettings()
}
