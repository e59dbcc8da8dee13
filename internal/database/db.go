// Package database provides the pgx query layer for the importer.
// All queries go through a Queries value bound to a DBTX, so the same
// code runs against a pool or inside a transaction.
package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// New binds the query set to a database handle.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Queries holds all SQL operations for the realtors and listings tables.
type Queries struct {
	db DBTX
}
