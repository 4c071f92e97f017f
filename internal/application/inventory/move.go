package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/factoryflow/factoryflow-api/internal/domain"
	"github.com/factoryflow/factoryflow-api/internal/domain/entity"
	"github.com/factoryflow/factoryflow-api/internal/domain/repository"
)

// MoveUseCase transfers a quantity of an item between two locations as a
// single durable transaction: row lock on the source (SELECT FOR UPDATE),
// balance check, debit, credit-or-create, audit row, then Commit or Rollback.
type MoveUseCase struct {
	txRunner     TxRunner
	locationRepo repository.LocationRepository
}

// NewMoveUseCase builds the use case.
func NewMoveUseCase(txRunner TxRunner, locationRepo repository.LocationRepository) *MoveUseCase {
	return &MoveUseCase{txRunner: txRunner, locationRepo: locationRepo}
}

// MoveInput input for a move. Quantity must be a positive integer.
type MoveInput struct {
	Item         string
	FromLocation string
	ToLocation   string
	Quantity     int64
}

// MoveResult updated state of both affected rows after a committed move.
type MoveResult struct {
	MovementID string
	From       *entity.Item
	To         *entity.Item
}

// Move validates the request, resolves both locations, then runs the
// debit/credit pair inside one transaction. Repeating the same call doubles
// the effect; moves are transfers, not idempotent commands.
func (uc *MoveUseCase) Move(ctx context.Context, input MoveInput) (*MoveResult, error) {
	input.Item = strings.TrimSpace(input.Item)
	if input.Item == "" || input.FromLocation == "" || input.ToLocation == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.FromLocation == input.ToLocation {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	from, err := uc.locationRepo.GetByName(input.FromLocation)
	if err != nil {
		return nil, err
	}
	to, err := uc.locationRepo.GetByName(input.ToLocation)
	if err != nil {
		return nil, err
	}
	if from == nil || to == nil {
		return nil, domain.ErrUnknownLocation
	}

	now := time.Now()
	result := &MoveResult{MovementID: uuid.New().String()}

	// Begin transaction; TxRunner commits on nil, rolls back on any error.
	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		movementRepo repository.MovementRepository,
	) error {
		// Lock the source row so the balance check and debit are one unit.
		source, err := itemRepo.GetForUpdate(input.Item, from.ID)
		if err != nil {
			return err
		}
		if source == nil {
			return domain.ErrUnknownItem
		}
		if source.Quantity < input.Quantity {
			return domain.ErrInsufficientQuantity
		}

		source.Quantity -= input.Quantity
		source.UpdatedAt = now
		if err := itemRepo.SetQuantity(source.ID, source.Quantity); err != nil {
			return err
		}

		dest, err := itemRepo.Upsert(&entity.Item{
			Name:       input.Item,
			LocationID: to.ID,
			Quantity:   input.Quantity,
		})
		if err != nil {
			return err
		}

		if err := movementRepo.Create(&entity.Movement{
			ID:             result.MovementID,
			ItemName:       input.Item,
			FromLocationID: from.ID,
			ToLocationID:   to.ID,
			Quantity:       input.Quantity,
			CreatedAt:      now,
		}); err != nil {
			return err
		}

		source.LocationName = from.Name
		dest.LocationName = to.Name
		result.From = source
		result.To = dest
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
