// Package db contains the persistence layer for employees and transactions.
// It follows the sqlc-generated Queries shape used across the codebase:
// a DBTX abstraction over pgx connections, pools, and transactions, with
// one method per named query. Schema lives in schema.sql.
package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgx behaviour the query layer needs. Satisfied by
// *pgx.Conn, pgx.Tx and *pgxpool.Pool.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// New creates a Queries instance backed by the given connection.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Queries executes the named SQL statements of the persistence layer.
type Queries struct {
	db DBTX
}

// WithTx returns a Queries instance that runs against the given transaction.
func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

// GetDBTX returns the underlying database transaction or connection interface
// This is useful for starting transactions or accessing the raw database connection
func (q *Queries) GetDBTX() DBTX {
	return q.db
}
