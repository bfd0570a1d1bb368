// Package repository implements the trivia persistence gateway on
// Postgres via pgx. Every list query orders by id ascending explicitly;
// pagination windows and totals upstream depend on that stable order.
package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store runs trivia queries against a pgx connection pool. It satisfies
// trivia.Store.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore wraps a connection pool for trivia queries.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}
