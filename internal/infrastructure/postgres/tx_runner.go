package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/factoryflow/factoryflow-api/internal/application/inventory"
	"github.com/factoryflow/factoryflow-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
	wrap func(Querier) Querier
}

// NewTxRunner builds the runner with the pool. wrap decorates the tx Querier
// (fault injection); pass nil for none.
func NewTxRunner(pool *pgxpool.Pool, wrap func(Querier) Querier) *TxRunner {
	if wrap == nil {
		wrap = func(q Querier) Querier { return q }
	}
	return &TxRunner{pool: pool, wrap: wrap}
}

// Run begins a transaction, executes fn with repos bound to the tx, and
// commits on nil or rolls back on any error. This is the atomicity guarantee
// of the move operation: the debit and credit are never visible separately,
// including to direct SQL readers.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	movementRepo repository.MovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	q := r.wrap(tx)
	itemRepo := NewItemRepository(q)
	movementRepo := NewMovementRepository(q)

	if err := fn(itemRepo, movementRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
