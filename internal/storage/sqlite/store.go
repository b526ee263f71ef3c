// Package sqlite provides a SQLite-backed reference content store.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sqlitemigrate "github.com/louisbranch/referencehub/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/referencehub/internal/storage"
	"github.com/louisbranch/referencehub/internal/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists reference content state in SQLite. It implements every
// storage contract of the parent package.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite store at the provided path and applies embedded
// migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// languageMapParam renders a LanguageMap for a nullable TEXT column. A nil
// map becomes NULL so field absence survives the round trip.
func languageMapParam(m storage.LanguageMap) (any, error) {
	if m == nil {
		return nil, nil
	}
	encoded, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode language map: %w", err)
	}
	return string(encoded), nil
}

func languageMapValue(column sql.NullString) (storage.LanguageMap, error) {
	if !column.Valid {
		return nil, nil
	}
	var m storage.LanguageMap
	if err := json.Unmarshal([]byte(column.String), &m); err != nil {
		return nil, fmt.Errorf("decode language map: %w", err)
	}
	return m, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

var (
	_ storage.ReferenceStore     = (*Store)(nil)
	_ storage.LabelGroupStore    = (*Store)(nil)
	_ storage.OverrideStore      = (*Store)(nil)
	_ storage.ClientSettingStore = (*Store)(nil)
	_ storage.SchemaStore        = (*Store)(nil)
)
