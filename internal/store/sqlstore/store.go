// Package sqlstore implements store.Store on database/sql.
//
// The same queries run against SQLite (modernc.org/sqlite, the default for a
// single-node deployment) and Postgres (pgx). Constraint violations are mapped
// to store.ErrAlreadyExists and store.ErrNotFound so callers never need to
// know which database is underneath.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/listenupapp/shelves-server/internal/store"
)

// timeLayout is RFC3339 with a fixed nine-digit fraction so text timestamps
// compare in chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// queries implements store.Queries over a connection pool or a transaction.
type queries struct {
	db      dbtx
	dialect dialect
}

var _ store.Queries = (*queries)(nil)

func (q *queries) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return q.db.ExecContext(ctx, q.dialect.Rebind(query), args...)
}

func (q *queries) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return q.db.QueryContext(ctx, q.dialect.Rebind(query), args...)
}

func (q *queries) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return q.db.QueryRowContext(ctx, q.dialect.Rebind(query), args...)
}

// insertError maps constraint violations on insert to store sentinels.
func (q *queries) insertError(err error) error {
	switch {
	case q.dialect.IsUniqueViolation(err):
		return store.ErrAlreadyExists
	case q.dialect.IsForeignKeyViolation(err):
		return store.ErrNotFound
	default:
		return err
	}
}

// deleteError maps a foreign-key rejection on delete to store.ErrReferenced.
func (q *queries) deleteError(err error) error {
	if q.dialect.IsForeignKeyViolation(err) {
		return store.ErrReferenced
	}
	return err
}

// Store is a database/sql backed store.Store.
type Store struct {
	*queries

	db     *sql.DB
	logger *slog.Logger
}

var _ store.Store = (*Store)(nil)

func newStore(db *sql.DB, d dialect, logger *slog.Logger) *Store {
	return &Store{
		queries: &queries{db: db, dialect: d},
		db:      db,
		logger:  logger,
	}
}

// Dialect returns the name of the underlying database ("sqlite" or "postgres").
func (s *Store) Dialect() string {
	return s.dialect.Name()
}

// InTx runs fn inside a transaction. Any error from fn, a panic, or a
// cancelled context rolls the transaction back.
func (s *Store) InTx(ctx context.Context, fn func(q store.Queries) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&queries{db: tx, dialect: s.dialect}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// notFound maps sql.ErrNoRows to store.ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// formatTime formats a time.Time for storage as text.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime parses a stored timestamp. RFC3339Nano also accepts timeLayout.
func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// timestamp scans a created_at column stored as TEXT (SQLite) or
// TIMESTAMPTZ (Postgres).
type timestamp struct {
	time.Time
}

func (ts *timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		ts.Time = v.UTC()
		return nil
	case string:
		t, err := parseTime(v)
		if err != nil {
			return err
		}
		ts.Time = t
		return nil
	case []byte:
		t, err := parseTime(string(v))
		if err != nil {
			return err
		}
		ts.Time = t
		return nil
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

// nullString returns a sql.NullString, treating "" as NULL.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
