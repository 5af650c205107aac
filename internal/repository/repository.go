// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch data, abstracting
// SQL logic away from the service layer. Every method issues exactly
// one parameterized statement on the injected pool; error translation
// happens upstream in sqlerr.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// DB is the query surface the repositories need from a connection pool.
// *pgxpool.Pool satisfies it; tests substitute a mock pool.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
