package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store is the relational data-access layer. It owns the SQLite handle and
// every query runs through it; construct one per process (or per test) and
// pass it to the services.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path and initializes the
// schema. foreignKeys toggles SQLite's foreign-key enforcement; the store's
// delete paths do not depend on it being on (see cascade.go), it exists so
// both code paths stay testable.
func Open(path string, foreignKeys bool) (*Store, error) {
	fk := "off"
	if foreignKeys {
		fk = "on"
	}
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=%s", path, fk))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite allows a single writer, and an in-memory database is scoped to
	// its connection. One pooled connection keeps both cases correct.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// querier is satisfied by both *sql.DB and *sql.Tx so guards, sequencing and
// scans can run inside or outside a transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// withTx runs fn inside a transaction, rolling back on any error so
// multi-statement operations leave no partial state behind.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
