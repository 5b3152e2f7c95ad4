package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/servicelog/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgSlotRepo is the Postgres implementation of SlotRepo.
// Slots live in the storage_slots table created by the goose migrations.
type pgSlotRepo struct {
	db db
}

// NewPostgresSlotRepo constructs a SlotRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPostgresSlotRepo(db db) SlotRepo {
	return &pgSlotRepo{db: db}
}

// Get reads a slot by key.
func (r *pgSlotRepo) Get(ctx context.Context, key string) (string, error) {
	const q = `SELECT value FROM storage_slots WHERE key = @key`

	var value string
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("repo.PostgresSlotRepo.Get: %w", domain.ErrNotFound)
		}
		return "", fmt.Errorf("repo.PostgresSlotRepo.Get: %w", err)
	}
	return value, nil
}

// Put upserts a slot, bumping updated_at on overwrite.
func (r *pgSlotRepo) Put(ctx context.Context, key, value string) error {
	if err := validateKey(key); err != nil {
		return fmt.Errorf("repo.PostgresSlotRepo.Put: %w", err)
	}

	const q = `
		INSERT INTO storage_slots (key, value)
		VALUES (@key, @value)
		ON CONFLICT (key) DO UPDATE
		SET value      = EXCLUDED.value,
		    updated_at = now()`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"key": key, "value": value}); err != nil {
		return fmt.Errorf("repo.PostgresSlotRepo.Put: %w", err)
	}
	return nil
}
