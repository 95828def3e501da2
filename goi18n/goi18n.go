// Package goi18n exposes a catalog to code built on
// github.com/nicksnyder/go-i18n. Every leaf becomes a go-i18n message whose
// ID is its key path.
package goi18n

import (
	"fmt"
	"log"
	"sort"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"

	"github.com/smartlogistics/i18n"
)

// NewBundle builds a go-i18n bundle holding every message of b.
func NewBundle(b *i18n.Bundle) (*goi18n.Bundle, error) {
	bundle := goi18n.NewBundle(b.Config().DefaultLanguage.Tag())
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, lang := range b.Languages() {
		flat := b.Flatten(lang)
		keys := sortedKeys(flat)
		messages := make([]*goi18n.Message, 0, len(keys))
		for _, key := range keys {
			if flat[key] == "" {
				continue
			}
			messages = append(messages, &goi18n.Message{ID: key, Other: flat[key]})
		}
		if err := bundle.AddMessages(lang.Tag(), messages...); err != nil {
			return nil, fmt.Errorf("add %s messages: %w", lang, err)
		}
	}
	return bundle, nil
}

// Translator renders go-i18n messages and falls back to the key.
type Translator struct {
	bundle          *goi18n.Bundle
	defaultLanguage i18n.Language
}

// NewTranslator wraps a go-i18n bundle built from b.
func NewTranslator(b *i18n.Bundle) (*Translator, error) {
	bundle, err := NewBundle(b)
	if err != nil {
		return nil, err
	}
	return &Translator{bundle: bundle, defaultLanguage: b.Config().DefaultLanguage}, nil
}

// T renders key for lang with go-i18n template data. Only lang is
// consulted; a missing message returns key.
func (t *Translator) T(lang i18n.Language, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	if lang == "" {
		lang = t.defaultLanguage
	}
	localizer := goi18n.NewLocalizer(t.bundle, lang.String())
	msg, tag, err := localizer.LocalizeWithTag(&goi18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil || tag != lang.Tag() {
		if err != nil {
			log.Printf("goi18n: localize failed (key=%s, lang=%s): %v", key, lang, err)
		}
		return key
	}
	return msg
}

// MarshalTOML writes lang's messages as a flat go-i18n message file, the
// format of active.<lang>.toml.
func MarshalTOML(b *i18n.Bundle, lang i18n.Language) ([]byte, error) {
	if !b.HasLanguage(lang) {
		return nil, fmt.Errorf("%w: %s not in bundle", i18n.ErrUnsupportedLanguage, lang)
	}
	flat := b.Flatten(lang)
	for key, text := range flat {
		if text == "" {
			delete(flat, key)
		}
	}
	data, err := toml.Marshal(flat)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", lang, err)
	}
	return data, nil
}

// FileName returns the conventional go-i18n file name for lang.
func FileName(lang i18n.Language) string {
	return "active." + lang.String() + ".toml"
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
