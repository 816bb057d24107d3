package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/thirstydigital/django/internal/logger"
	"github.com/thirstydigital/django/migrations"
)

// DB wraps [sql.DB] with structured logging and per-request query recording.
// Every statement issued through the wrapper methods is appended to the
// request's [QueryLog] when one is installed in the context.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies all pending schema migrations to the database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// QueryRowContext issues a single-row query, recording it into the
// context's query log when active.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	start := time.Now()
	row := db.DB.QueryRowContext(ctx, query, args...)
	recordQuery(ctx, query, time.Since(start))
	return row
}

// QueryContext issues a multi-row query, recording it into the context's
// query log when active.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := db.DB.QueryContext(ctx, query, args...)
	recordQuery(ctx, query, time.Since(start))
	return rows, err
}

// ExecContext executes a statement, recording it into the context's query
// log when active.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := db.DB.ExecContext(ctx, query, args...)
	recordQuery(ctx, query, time.Since(start))
	return res, err
}
