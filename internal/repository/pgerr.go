package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors shared by repositories.
var (
	// ErrDuplicate signals a unique constraint violation.
	ErrDuplicate = errors.New("row violates a unique constraint")
	// ErrNotFound signals that the referenced row does not exist.
	ErrNotFound = errors.New("row not found")
)

// IsUniqueViolation reports whether err is the store's duplicate-key signal.
// Keeps the Postgres error code out of handler logic.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// querier is the subset of pgx operations implemented by both *pgxpool.Pool
// and pgx.Tx, so statements can run inside or outside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
