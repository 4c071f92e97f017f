package inventory

import (
	"context"

	"github.com/factoryflow/factoryflow-api/internal/domain/repository"
)

// TxRunner executes a function inside a database transaction, passing
// repositories bound to that transaction. Guarantees atomicity for the move
// operation: fn's writes commit together or roll back together.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
