package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // registers "sqlite3" driver for database/sql

	"github.com/pkordes/servicelog/internal/domain"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS storage_slots (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
)`

// SQLiteSlotRepo is a SlotRepo backed by a single SQLite database file.
type SQLiteSlotRepo struct {
	db *sql.DB
}

// OpenSQLiteSlotRepo creates or opens the SQLite database at path and ensures
// the storage_slots table exists, creating the parent directory if needed.
// Callers must Close the returned repo.
func OpenSQLiteSlotRepo(path string) (*SQLiteSlotRepo, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("repo.OpenSQLiteSlotRepo: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("repo.OpenSQLiteSlotRepo: open: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("repo.OpenSQLiteSlotRepo: ping: %w", err)
	}

	// SQLite only supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, stmt := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		sqliteSchema,
	} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("repo.OpenSQLiteSlotRepo: %w", err)
		}
	}
	return &SQLiteSlotRepo{db: db}, nil
}

// Close closes the database connection.
func (r *SQLiteSlotRepo) Close() error {
	return r.db.Close()
}

// Get reads a slot by key.
func (r *SQLiteSlotRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM storage_slots WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("repo.SQLiteSlotRepo.Get: %w", domain.ErrNotFound)
		}
		return "", fmt.Errorf("repo.SQLiteSlotRepo.Get: %w", err)
	}
	return value, nil
}

// Put upserts a slot.
func (r *SQLiteSlotRepo) Put(ctx context.Context, key, value string) error {
	if err := validateKey(key); err != nil {
		return fmt.Errorf("repo.SQLiteSlotRepo.Put: %w", err)
	}

	const q = `
		INSERT INTO storage_slots (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE
		SET value      = excluded.value,
		    updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')`

	if _, err := r.db.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("repo.SQLiteSlotRepo.Put: %w", err)
	}
	return nil
}
