package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk envelope shared by every format:
//
//	language: en
//	messages:
//	  dashboard:
//	    welcome: Welcome to SmartLogistics
type catalogFile struct {
	Language string         `yaml:"language" toml:"language" json:"language"`
	Messages map[string]any `yaml:"messages" toml:"messages" json:"messages"`
}

type unmarshalFunc func(data []byte, v any) error

var unmarshalers = map[string]unmarshalFunc{
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".toml": toml.Unmarshal,
	".json": json.Unmarshal,
}

// IsCatalogFile reports whether name has an extension the loader decodes.
func IsCatalogFile(name string) bool {
	_, ok := unmarshalers[strings.ToLower(path.Ext(name))]
	return ok
}

//go:embed locales/*.yaml
var embeddedLocales embed.FS

var defaultBundle = mustLoadEmbedded()

// Default returns the process-wide bundle built from the embedded catalog.
func Default() *Bundle {
	return defaultBundle
}

// EmbeddedFS returns the embedded catalog files, rooted at their directory.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		panic(err)
	}
	return sub
}

// LoadEmbedded builds a bundle from the embedded catalog.
func LoadEmbedded(cfg Config) (*Bundle, error) {
	return LoadFS(cfg, EmbeddedFS(), ".")
}

// LoadDir loads all catalog files below dir, e.g. ./locales/en.yaml and
// ./locales/hi.toml.
func LoadDir(cfg Config, dir string) (*Bundle, error) {
	return LoadFS(cfg, os.DirFS(dir), ".")
}

// MustLoadDir is LoadDir for initialization code; it panics on error.
func MustLoadDir(cfg Config, dir string) *Bundle {
	b, err := LoadDir(cfg, dir)
	if err != nil {
		panic(err)
	}
	return b
}

// LoadFS walks dir in fsys and loads every .yaml, .yml, .toml and .json
// file. Files declaring the same language are merged; a key path defined
// twice for one language is an error.
func LoadFS(cfg Config, fsys fs.FS, dir string) (*Bundle, error) {
	messages, err := ReadMessagesFS(fsys, dir)
	if err != nil {
		return nil, err
	}
	return NewFromMessages(cfg, messages)
}

// ReadMessagesFS decodes and merges the catalog files below dir without
// building a bundle. Tools that inspect broken catalogs use it directly.
func ReadMessagesFS(fsys fs.FS, dir string) (map[Language]map[string]any, error) {
	messages := map[Language]map[string]any{}
	err := fs.WalkDir(fsys, dir, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsCatalogFile(name) {
			return nil
		}
		lang, msgs, err := readCatalogFile(fsys, name)
		if err != nil {
			return fmt.Errorf("load %s: %w", name, err)
		}
		if messages[lang] == nil {
			messages[lang] = map[string]any{}
		}
		if err := mergeMessages(messages[lang], msgs, ""); err != nil {
			return fmt.Errorf("load %s: %w", name, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, fmt.Errorf("%w: no catalog files found in %s", ErrInvalidCatalog, dir)
	}
	return messages, nil
}

func readCatalogFile(fsys fs.FS, name string) (Language, map[string]any, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", nil, err
	}
	unmarshal := unmarshalers[strings.ToLower(path.Ext(name))]
	var file catalogFile
	if err := unmarshal(data, &file); err != nil {
		return "", nil, fmt.Errorf("%w: decode: %v", ErrInvalidCatalog, err)
	}
	if strings.TrimSpace(file.Language) == "" {
		return "", nil, fmt.Errorf("%w: missing 'language' field", ErrInvalidCatalog)
	}
	lang, err := ParseLanguage(file.Language)
	if err != nil {
		return "", nil, err
	}
	return lang, file.Messages, nil
}

func mergeMessages(dst, src map[string]any, prefix string) error {
	for name, value := range src {
		key := joinKey(prefix, name)
		existing, ok := dst[name]
		if !ok {
			dst[name] = value
			continue
		}
		existingTable, ok1 := existing.(map[string]any)
		valueTable, ok2 := value.(map[string]any)
		if !ok1 || !ok2 {
			return fmt.Errorf("%w: %s is defined twice", ErrInvalidCatalog, key)
		}
		merged := make(map[string]any, len(existingTable)+len(valueTable))
		for k, v := range existingTable {
			merged[k] = v
		}
		if err := mergeMessages(merged, valueTable, key); err != nil {
			return err
		}
		dst[name] = merged
	}
	return nil
}

func mustLoadEmbedded() *Bundle {
	b, err := LoadEmbedded(Config{})
	if err != nil {
		panic(err)
	}
	if err := CheckKeys(b, Keys()); err != nil {
		panic(err)
	}
	return b
}

// CheckKeys verifies that every key resolves in every language of b.
func CheckKeys(b *Bundle, keys []string) error {
	var missing []string
	for _, lang := range b.Languages() {
		for _, key := range keys {
			if _, ok := b.Lookup(lang, key); !ok {
				missing = append(missing, lang.String()+":"+key)
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: unresolved %s", ErrShapeMismatch, strings.Join(missing, ", "))
	}
	return nil
}
