// Package postgres implements the domain repositories on PostgreSQL via pgx.
//
// Every statement is parameterized; identifiers coming from admin requests
// are never formatted into SQL text.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// DBTX is the subset of *pgxpool.Pool, *pgx.Conn and pgx.Tx the repositories use.
type DBTX interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
