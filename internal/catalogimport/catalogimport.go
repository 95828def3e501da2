// Package catalogimport copies a locale catalog into a SQL store.
package catalogimport

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/smartlogistics/i18n"
	"github.com/smartlogistics/i18n/internal/config"
	"github.com/smartlogistics/i18n/sqlstore"
)

// Config holds importer settings.
type Config struct {
	DSN        string `env:"SL_CATALOG_DSN"`
	LocalesDir string `env:"SL_LOCALES_DIR"`
	Partial    bool   `env:"SL_CATALOG_PARTIAL" envDefault:"false"`
	DryRun     bool
}

// ParseConfig reads env defaults and then flags from args.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	err := config.ParseConfigFromArgs(&cfg, fs, args, func(fs *flag.FlagSet, cfg *Config) {
		fs.StringVar(&cfg.DSN, "dsn", cfg.DSN, "target SQL store (SQLite path or postgres:// URL)")
		fs.StringVar(&cfg.LocalesDir, "d", cfg.LocalesDir, "locale directory (default: embedded catalog)")
		fs.BoolVar(&cfg.Partial, "partial", cfg.Partial, "accept catalogs with missing keys or languages")
		fs.BoolVar(&cfg.DryRun, "dry-run", false, "validate the catalog without writing")
	})
	if err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.DSN) == "" && !cfg.DryRun {
		return Config{}, errors.New("dsn is required")
	}
	return cfg, nil
}

// Run loads the catalog and upserts every message into the store.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	bcfg := i18n.Config{AllowPartial: cfg.Partial}

	var (
		b   *i18n.Bundle
		err error
	)
	source := "embedded catalog"
	if dir := strings.TrimSpace(cfg.LocalesDir); dir != "" {
		source = dir
		b, err = i18n.LoadDir(bcfg, dir)
	} else {
		b, err = i18n.LoadEmbedded(bcfg)
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", source, err)
	}

	if cfg.DryRun {
		for _, lang := range b.Languages() {
			fmt.Fprintf(out, "%s: %d messages\n", lang, len(b.Keys(lang)))
		}
		fmt.Fprintf(out, "dry run: %s is valid\n", source)
		return nil
	}

	store, err := sqlstore.Open(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Import(ctx, b)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	fmt.Fprintf(out, "imported %d messages from %s\n", n, source)
	return nil
}
