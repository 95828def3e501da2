// Package checker inspects a locale directory for drift between languages
// and for malformed message templates.
package checker

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/smartlogistics/i18n"
	"github.com/smartlogistics/i18n/goi18n"
)

type Result struct {
	Languages       []string
	DefaultLanguage string
	MissingKeys     map[string][]string         // keys other languages define
	RedundantKeys   map[string][]string         // keys the default language lacks
	SyntaxErrors    map[string]map[string]error // lang -> key -> err
	AllKeys         []string

	bundle *i18n.Bundle
}

// CheckLocales performs:
//  1. key alignment check (missing / redundant)
//  2. template syntax check via i18n.ValidateTemplate()
func CheckLocales(dir string, base i18n.Language) (*Result, error) {
	messages, err := i18n.ReadMessagesFS(os.DirFS(dir), ".")
	if err != nil {
		return nil, err
	}
	b, err := i18n.NewFromMessages(i18n.Config{DefaultLanguage: base, AllowPartial: true}, messages)
	if err != nil {
		return nil, err
	}

	res := &Result{
		DefaultLanguage: b.Config().DefaultLanguage.String(),
		MissingKeys:     map[string][]string{},
		RedundantKeys:   map[string][]string{},
		SyntaxErrors:    map[string]map[string]error{},
		bundle:          b,
	}

	for lang, missing := range b.Diff() {
		res.MissingKeys[lang.String()] = missing
	}

	baseKeys := map[string]struct{}{}
	for _, key := range b.Keys(b.Config().DefaultLanguage) {
		baseKeys[key] = struct{}{}
	}
	all := map[string]struct{}{}
	for _, lang := range b.Languages() {
		res.Languages = append(res.Languages, lang.String())
		for key, text := range b.Flatten(lang) {
			all[key] = struct{}{}
			if _, ok := baseKeys[key]; !ok {
				res.RedundantKeys[lang.String()] = append(res.RedundantKeys[lang.String()], key)
			}
			if err := i18n.ValidateTemplate(text); err != nil {
				if res.SyntaxErrors[lang.String()] == nil {
					res.SyntaxErrors[lang.String()] = map[string]error{}
				}
				res.SyntaxErrors[lang.String()][key] = err
			}
		}
	}
	for _, keys := range res.RedundantKeys {
		sort.Strings(keys)
	}
	for key := range all {
		res.AllKeys = append(res.AllKeys, key)
	}
	sort.Strings(res.AllKeys)
	return res, nil
}

// HasIssues reports whether any language is missing keys, carries keys
// unknown to the default language, or has template errors.
func (r *Result) HasIssues() bool {
	for _, arr := range r.MissingKeys {
		if len(arr) > 0 {
			return true
		}
	}
	for _, arr := range r.RedundantKeys {
		if len(arr) > 0 {
			return true
		}
	}
	for _, errs := range r.SyntaxErrors {
		if len(errs) > 0 {
			return true
		}
	}
	return false
}

// Export writes one go-i18n active.<lang>.toml file per language to dir
// and returns the written paths.
func (r *Result) Export(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	var paths []string
	for _, lang := range r.bundle.Languages() {
		data, err := goi18n.MarshalTOML(r.bundle, lang)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(dir, goi18n.FileName(lang))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
