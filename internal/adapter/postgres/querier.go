package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the common interface implemented by both *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Builder is the squirrel statement builder configured for PostgreSQL placeholders.
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type txCtxKey struct{}

func withTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

// QuerierFromCtx returns the transaction from context if present,
// otherwise returns the pool.
func QuerierFromCtx(ctx context.Context, pool *pgxpool.Pool) Querier {
	if tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return tx
	}
	return pool
}

// QueryBuilt renders a squirrel builder and runs it as a query.
func QueryBuilt(ctx context.Context, q Querier, b squirrel.Sqlizer) (pgx.Rows, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return q.Query(ctx, sql, args...)
}

// QueryRowBuilt renders a squirrel builder and runs it as a single-row query.
func QueryRowBuilt(ctx context.Context, q Querier, b squirrel.Sqlizer) (pgx.Row, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return q.QueryRow(ctx, sql, args...), nil
}
