package inventory

import (
	"context"
	"strings"

	"github.com/factoryflow/factoryflow-api/internal/domain"
	"github.com/factoryflow/factoryflow-api/internal/domain/entity"
	"github.com/factoryflow/factoryflow-api/internal/domain/repository"
)

// UseCase covers the non-transactional inventory operations: list, add,
// delete, plus the location and movement listings backing the UI and the
// audit endpoint.
type UseCase struct {
	itemRepo     repository.ItemRepository
	locationRepo repository.LocationRepository
	movementRepo repository.MovementRepository
}

// NewUseCase builds the use case.
func NewUseCase(
	itemRepo repository.ItemRepository,
	locationRepo repository.LocationRepository,
	movementRepo repository.MovementRepository,
) *UseCase {
	return &UseCase{
		itemRepo:     itemRepo,
		locationRepo: locationRepo,
		movementRepo: movementRepo,
	}
}

// List returns all items, optionally filtered by location name.
func (uc *UseCase) List(ctx context.Context, location string) ([]*entity.Item, error) {
	_ = ctx
	return uc.itemRepo.List(location)
}

// Add creates the (name, location) row or adds quantity to an existing one.
// A zero quantity is accepted on create (an empty shelf is valid state).
func (uc *UseCase) Add(ctx context.Context, name string, locationName string, quantity int64) (*entity.Item, error) {
	_ = ctx
	name = strings.TrimSpace(name)
	if name == "" || locationName == "" {
		return nil, domain.ErrInvalidInput
	}
	if quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	loc, err := uc.locationRepo.GetByName(locationName)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrUnknownLocation
	}

	item, err := uc.itemRepo.Upsert(&entity.Item{
		Name:       name,
		LocationID: loc.ID,
		Quantity:   quantity,
	})
	if err != nil {
		return nil, err
	}
	item.LocationName = loc.Name
	return item, nil
}

// Delete removes an item row by id.
func (uc *UseCase) Delete(ctx context.Context, id int64) error {
	_ = ctx
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrUnknownItem
	}
	return uc.itemRepo.Delete(id)
}

// ListLocations returns the seeded locations.
func (uc *UseCase) ListLocations(ctx context.Context) ([]*entity.Location, error) {
	_ = ctx
	return uc.locationRepo.List()
}

// ListMovements returns the most recent move audit rows, newest first.
func (uc *UseCase) ListMovements(ctx context.Context, limit int) ([]*entity.Movement, error) {
	_ = ctx
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return uc.movementRepo.ListRecent(limit)
}
