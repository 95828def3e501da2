// Package sqlstore persists catalog messages in SQLite or PostgreSQL and
// loads them back into an immutable bundle.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/smartlogistics/i18n"
)

type dialect int

const (
	dialectSQLite dialect = iota
	dialectPostgres
)

func (d dialect) String() string {
	if d == dialectPostgres {
		return "postgres"
	}
	return "sqlite"
}

func (d dialect) driverName() string {
	if d == dialectPostgres {
		return "pgx"
	}
	return "sqlite"
}

func (d dialect) upsertSQL() string {
	if d == dialectPostgres {
		return `INSERT INTO translations (locale, message_key, message) VALUES ($1, $2, $3)
ON CONFLICT (locale, message_key) DO UPDATE SET message = EXCLUDED.message`
	}
	return `INSERT INTO translations (locale, message_key, message) VALUES (?, ?, ?)
ON CONFLICT (locale, message_key) DO UPDATE SET message = excluded.message`
}

// Store is a SQL-backed message table.
type Store struct {
	db      *sql.DB
	dialect dialect
}

// Open connects to dsn and applies migrations. postgres:// and
// postgresql:// URLs use PostgreSQL; anything else is a SQLite file path,
// optionally prefixed with sqlite://.
func Open(ctx context.Context, dsn string) (*Store, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("sqlstore: dsn is required")
	}

	d, source := dialectSQLite, ""
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		d, source = dialectPostgres, dsn
	} else {
		source = sqliteSource(strings.TrimPrefix(dsn, "sqlite://"))
	}

	if err := runMigrations(d, source); err != nil {
		return nil, fmt.Errorf("sqlstore: %w", err)
	}

	db, err := sql.Open(d.driverName(), source)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: open %s: %w", d, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlstore: ping %s: %w", d, err)
	}
	return &Store{db: db, dialect: d}, nil
}

// sqliteSource cleans the file path and adds a busy timeout, keeping any
// query options already present (file:x.db?mode=rwc).
func sqliteSource(dsn string) string {
	path, query, hasQuery := strings.Cut(dsn, "?")
	if !strings.HasPrefix(path, "file:") {
		path = filepath.Clean(path)
	}
	const pragma = "_pragma=busy_timeout(5000)"
	if !hasQuery || query == "" {
		return path + "?" + pragma
	}
	if strings.Contains(query, "busy_timeout") {
		return path + "?" + query
	}
	return path + "?" + query + "&" + pragma
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Import upserts every non-empty message of b in one transaction and
// returns the number of rows written.
func (s *Store) Import(ctx context.Context, b *i18n.Bundle) (n int, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("sqlstore: begin import: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, s.dialect.upsertSQL())
	if err != nil {
		return 0, fmt.Errorf("sqlstore: prepare import: %w", err)
	}
	defer stmt.Close()

	for _, lang := range b.Languages() {
		flat := b.Flatten(lang)
		keys := make([]string, 0, len(flat))
		for key := range flat {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if flat[key] == "" {
				continue
			}
			if _, err = stmt.ExecContext(ctx, lang.String(), key, flat[key]); err != nil {
				return 0, fmt.Errorf("sqlstore: import %s %s: %w", lang, key, err)
			}
			n++
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("sqlstore: commit import: %w", err)
	}
	return n, nil
}

// Load reads every stored message into a bundle built with cfg.
func (s *Store) Load(ctx context.Context, cfg i18n.Config) (*i18n.Bundle, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT locale, message_key, message FROM translations ORDER BY locale, message_key`)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: query messages: %w", err)
	}
	defer rows.Close()

	flat := map[i18n.Language]map[string]string{}
	for rows.Next() {
		var locale, key, message string
		if err := rows.Scan(&locale, &key, &message); err != nil {
			return nil, fmt.Errorf("sqlstore: scan message: %w", err)
		}
		lang, err := i18n.ParseLanguage(locale)
		if err != nil {
			return nil, fmt.Errorf("sqlstore: row %s/%s: %w", locale, key, err)
		}
		if flat[lang] == nil {
			flat[lang] = map[string]string{}
		}
		flat[lang][key] = message
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlstore: read messages: %w", err)
	}
	if len(flat) == 0 {
		return nil, fmt.Errorf("sqlstore: %w: no messages stored", i18n.ErrInvalidCatalog)
	}
	return i18n.NewFromFlat(cfg, flat)
}
