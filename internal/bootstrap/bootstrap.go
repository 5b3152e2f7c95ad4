// Package bootstrap opens the configured storage backend and builds the two
// record stores on top of it. The API server and the CLI share it so both
// see the same slots.
package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/pkordes/servicelog/internal/config"
	"github.com/pkordes/servicelog/internal/persist"
	"github.com/pkordes/servicelog/internal/repo"
	"github.com/pkordes/servicelog/internal/store"
	"github.com/pkordes/servicelog/migrations"
)

// App bundles the stores built from one storage backend.
type App struct {
	Slots       repo.SlotRepo
	Drafts      *store.DraftStore
	ServiceLogs *store.ServiceLogStore

	close func() error
}

// Close releases the storage backend.
func (a *App) Close() error {
	if a.close == nil {
		return nil
	}
	return a.close()
}

// Open opens the slot backend named by cfg.StorageDriver and hydrates both
// stores from it.
func Open(ctx context.Context, cfg config.Config, log *slog.Logger, opts ...store.Option) (*App, error) {
	slots, closeFn, err := OpenSlots(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	adapter := persist.NewAdapter(slots, log)
	drafts, err := store.NewDraftStore(ctx, adapter, opts...)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("bootstrap.Open: drafts: %w", err), closeFn())
	}
	logs, err := store.NewServiceLogStore(ctx, adapter, opts...)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("bootstrap.Open: service logs: %w", err), closeFn())
	}

	return &App{Slots: slots, Drafts: drafts, ServiceLogs: logs, close: closeFn}, nil
}

// OpenSlots opens the slot backend named by cfg.StorageDriver.
// The returned func releases whatever connections the backend holds.
func OpenSlots(ctx context.Context, cfg config.Config, log *slog.Logger) (repo.SlotRepo, func() error, error) {
	if log == nil {
		log = slog.Default()
	}
	noop := func() error { return nil }

	switch cfg.StorageDriver {
	case config.DriverMemory:
		log.Warn("using in-memory storage; records are lost on exit")
		return repo.NewMemorySlotRepo(), noop, nil

	case config.DriverFile, "":
		slots, err := repo.NewFileSlotRepo(cfg.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("bootstrap.OpenSlots: %w", err)
		}
		log.Info("storage ready", "driver", config.DriverFile, "dir", cfg.DataDir)
		return slots, noop, nil

	case config.DriverSQLite:
		slots, err := repo.OpenSQLiteSlotRepo(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("bootstrap.OpenSlots: %w", err)
		}
		log.Info("storage ready", "driver", config.DriverSQLite, "path", cfg.SQLitePath)
		return slots, slots.Close, nil

	case config.DriverPostgres:
		if err := Migrate(ctx, cfg.DatabaseURL); err != nil {
			return nil, nil, err
		}
		// pgxpool.New does not open connections immediately; the ping does.
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("bootstrap.OpenSlots: create pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("bootstrap.OpenSlots: ping: %w", err)
		}
		log.Info("storage ready", "driver", config.DriverPostgres)
		return repo.NewPostgresSlotRepo(pool), func() error {
			pool.Close()
			return nil
		}, nil

	case config.DriverMongo:
		client, err := repo.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, fmt.Errorf("bootstrap.OpenSlots: %w", err)
		}
		collection := client.Database(cfg.MongoDatabase).Collection(repo.MongoSlotCollection)
		log.Info("storage ready", "driver", config.DriverMongo, "database", cfg.MongoDatabase)
		return repo.NewMongoSlotRepo(collection), func() error {
			return client.Disconnect(context.Background())
		}, nil
	}

	return nil, nil, fmt.Errorf("bootstrap.OpenSlots: unknown storage driver %q", cfg.StorageDriver)
}

// Migrate applies every pending goose migration to the Postgres database at dsn.
func Migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("bootstrap.Migrate: open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("bootstrap.Migrate: create goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap.Migrate: run migrations: %w", err)
	}
	for _, r := range results {
		slog.Info("migration applied", "version", r.Source.Version, "duration", r.Duration)
	}
	return nil
}
