package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx, so every
// repository works bound to the pool or to a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// delayQuerier wraps a Querier and sleeps before every statement. Enabled via
// FAULT_DB_DELAY so the latency verifier can be failed deterministically.
type delayQuerier struct {
	q     Querier
	delay time.Duration
}

// WithDelay returns q unchanged when delay is zero, otherwise a wrapper that
// stalls each statement by delay.
func WithDelay(q Querier, delay time.Duration) Querier {
	if delay <= 0 {
		return q
	}
	return &delayQuerier{q: q, delay: delay}
}

func (d *delayQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	time.Sleep(d.delay)
	return d.q.Exec(ctx, sql, args...)
}

func (d *delayQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	time.Sleep(d.delay)
	return d.q.Query(ctx, sql, args...)
}

func (d *delayQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	time.Sleep(d.delay)
	return d.q.QueryRow(ctx, sql, args...)
}
