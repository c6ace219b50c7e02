package db

import (
	"context"
	"database/sql"
)

// DBTX is the common interface satisfied by *sql.DB, *sql.Conn and *sql.Tx.
// Element repositories depend on it so the same queries run against the pool,
// a pinned catalog session, or an import transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Conn)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
