package repository

import (
	"context"
	"database/sql"
)

// dbtx is the subset of database/sql operations repositories need. Both
// *sql.DB and *sql.Tx satisfy it, so the same repository code runs inside
// or outside an explicit transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
