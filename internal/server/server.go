// Package server runs the dashboard's translation API.
package server

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/smartlogistics/i18n"
	"github.com/smartlogistics/i18n/i18nhttp"
	"github.com/smartlogistics/i18n/internal/config"
	"github.com/smartlogistics/i18n/sqlstore"
)

// Config holds the server settings.
type Config struct {
	Addr            string        `env:"SL_ADDR" envDefault:":8080"`
	DefaultLanguage string        `env:"SL_DEFAULT_LANGUAGE" envDefault:"en"`
	LocalesDir      string        `env:"SL_LOCALES_DIR"`
	CatalogDSN      string        `env:"SL_CATALOG_DSN"`
	ShutdownTimeout time.Duration `env:"SL_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// ParseConfig reads env defaults and then flags from args.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	err := config.ParseConfigFromArgs(&cfg, fs, args, func(fs *flag.FlagSet, cfg *Config) {
		fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
		fs.StringVar(&cfg.DefaultLanguage, "lang", cfg.DefaultLanguage, "default language (en, hi, ta)")
		fs.StringVar(&cfg.LocalesDir, "locales", cfg.LocalesDir, "load locale files from this directory instead of the embedded catalog")
		fs.StringVar(&cfg.CatalogDSN, "dsn", cfg.CatalogDSN, "load the catalog from a SQL store (SQLite path or postgres:// URL)")
		fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "graceful shutdown timeout")
	})
	if err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return Config{}, errors.New("listen address is required")
	}
	return cfg, nil
}

// LoadBundle returns the catalog selected by cfg: the SQL store when a DSN
// is set, else the locale directory, else the embedded catalog. The string
// describes the source for logging.
func LoadBundle(ctx context.Context, cfg Config) (*i18n.Bundle, string, error) {
	lang, err := i18n.ParseLanguage(cfg.DefaultLanguage)
	if err != nil {
		return nil, "", err
	}
	bcfg := i18n.Config{DefaultLanguage: lang}

	switch {
	case strings.TrimSpace(cfg.CatalogDSN) != "":
		store, err := sqlstore.Open(ctx, cfg.CatalogDSN)
		if err != nil {
			return nil, "", err
		}
		defer store.Close()
		b, err := store.Load(ctx, bcfg)
		if err != nil {
			return nil, "", err
		}
		return b, "sql store", nil
	case strings.TrimSpace(cfg.LocalesDir) != "":
		b, err := i18n.LoadDir(bcfg, cfg.LocalesDir)
		if err != nil {
			return nil, "", err
		}
		return b, cfg.LocalesDir, nil
	default:
		b, err := i18n.LoadEmbedded(bcfg)
		if err != nil {
			return nil, "", err
		}
		return b, "embedded catalog", nil
	}
}

// NewHandler mounts the translation API and a health check.
func NewHandler(b *i18n.Bundle) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/i18n/", i18nhttp.NewHandler(b))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return i18nhttp.Middleware(b.Config().DefaultLanguage)(mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, cfg Config) error {
	b, source, err := LoadBundle(ctx, cfg)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	log.Printf("catalog loaded from %s (languages=%v)", source, b.Languages())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewHandler(b),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	log.Printf("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
