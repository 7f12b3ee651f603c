package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/kefmc/tournament-engine/internal/model"
	"github.com/kefmc/tournament-engine/internal/storage"
)

//go:embed migrations/*.sql
var migrations embed.FS

const (
	getQuery    = "SELECT value FROM kv WHERE key = ?"
	upsertQuery = `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	deleteQuery = "DELETE FROM kv WHERE key = ?"
)

// Storage is a SQLite-backed implementation of the storage interface
type Storage struct {
	db *sqlx.DB
}

// New opens (or creates) the database at path and applies migrations.
// Use ":memory:" for a throwaway database.
func New(path string) (*Storage, error) {
	dsn := "file:" + path + "?_journal_mode=WAL&_busy_timeout=5000"
	if path == ":memory:" {
		dsn = "file::memory:"
	}

	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to sqlite: %w", err)
	}
	// A single connection keeps ":memory:" databases alive and serializes writers
	db.SetMaxOpenConns(1)

	if err := runMigrations(db.DB); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storage{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("creating migrate driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("creating migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}

// Close closes the database
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.GetContext(ctx, &value, getQuery, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrKeyNotFound
		}
		return nil, err
	}
	return value, nil
}

func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, upsertQuery, key, value)
	return err
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, deleteQuery, key)
	return err
}

// Apply runs all mutations in one transaction
func (s *Storage) Apply(ctx context.Context, mutations ...storage.Mutation) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, m := range mutations {
		if m.Delete {
			_, err = tx.ExecContext(ctx, deleteQuery, m.Key)
		} else {
			_, err = tx.ExecContext(ctx, upsertQuery, m.Key, m.Value)
		}
		if err != nil {
			return fmt.Errorf("applying %q: %w", m.Key, err)
		}
	}

	return tx.Commit()
}
