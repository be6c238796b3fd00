// internal/core/ports/database.go
package ports

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgx shared by a pooled connection and an open
// transaction. Repositories take a Querier so the same method runs unchanged
// inside or outside a transaction boundary.
type Querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// Database is the handle for one store: the control plane or a single
// tenant's database. Transaction runs fn atomically, rolling back when fn
// returns an error.
type Database interface {
	Querier
	Transaction(ctx context.Context, fn func(tx pgx.Tx) error) error
	Ping(ctx context.Context) error
	Close()
}

// TenantDatabases resolves organization ids to pooled per-tenant handles.
type TenantDatabases interface {
	Database(ctx context.Context, organizationID string) (Database, error)
	CloseAll()
}
