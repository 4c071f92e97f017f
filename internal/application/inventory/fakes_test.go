package inventory_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/factoryflow/factoryflow-api/internal/application/inventory"
	"github.com/factoryflow/factoryflow-api/internal/domain/entity"
	"github.com/factoryflow/factoryflow-api/internal/domain/repository"
)

// In-memory implementations of the repository ports, shared by the use-case
// tests. The fake TxRunner runs the callback against a copy of the item state
// and only publishes it on success, mirroring commit/rollback.

type itemKey struct {
	name string
	loc  int64
}

type fakeItemRepo struct {
	items  map[itemKey]*entity.Item
	nextID int64
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[itemKey]*entity.Item{}, nextID: 1}
}

func (r *fakeItemRepo) clone() *fakeItemRepo {
	c := newFakeItemRepo()
	c.nextID = r.nextID
	for k, v := range r.items {
		cp := *v
		c.items[k] = &cp
	}
	return c
}

func (r *fakeItemRepo) Get(name string, locationID int64) (*entity.Item, error) {
	if it, ok := r.items[itemKey{name, locationID}]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeItemRepo) GetForUpdate(name string, locationID int64) (*entity.Item, error) {
	return r.Get(name, locationID)
}

func (r *fakeItemRepo) GetByID(id int64) (*entity.Item, error) {
	for _, it := range r.items {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) Upsert(item *entity.Item) (*entity.Item, error) {
	k := itemKey{item.Name, item.LocationID}
	if existing, ok := r.items[k]; ok {
		existing.Quantity += item.Quantity
		existing.UpdatedAt = time.Now()
		cp := *existing
		return &cp, nil
	}
	stored := &entity.Item{
		ID:         r.nextID,
		Name:       item.Name,
		LocationID: item.LocationID,
		Quantity:   item.Quantity,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	r.nextID++
	r.items[k] = stored
	cp := *stored
	return &cp, nil
}

func (r *fakeItemRepo) SetQuantity(id int64, quantity int64) error {
	for _, it := range r.items {
		if it.ID == id {
			it.Quantity = quantity
			it.UpdatedAt = time.Now()
			return nil
		}
	}
	return nil
}

func (r *fakeItemRepo) List(locationName string) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range r.items {
		if locationName == "" || it.LocationName == locationName {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Delete(id int64) error {
	for k, it := range r.items {
		if it.ID == id {
			delete(r.items, k)
			return nil
		}
	}
	return nil
}

func newItem(name string, locationID, qty int64) *entity.Item {
	return &entity.Item{Name: name, LocationID: locationID, Quantity: qty}
}

func newMovement() *entity.Movement {
	return &entity.Movement{
		ID:             uuid.New().String(),
		ItemName:       "Widget",
		FromLocationID: 1,
		ToLocationID:   2,
		Quantity:       1,
		CreatedAt:      time.Now(),
	}
}

type fakeLocationRepo struct {
	byName map[string]*entity.Location
}

func newFakeLocationRepo(names ...string) *fakeLocationRepo {
	r := &fakeLocationRepo{byName: map[string]*entity.Location{}}
	for i, n := range names {
		r.byName[n] = &entity.Location{ID: int64(i + 1), Name: n}
	}
	return r
}

func (r *fakeLocationRepo) GetByName(name string) (*entity.Location, error) {
	if loc, ok := r.byName[name]; ok {
		return loc, nil
	}
	return nil, nil
}

func (r *fakeLocationRepo) List() ([]*entity.Location, error) {
	var out []*entity.Location
	for _, loc := range r.byName {
		out = append(out, loc)
	}
	return out, nil
}

func (r *fakeLocationRepo) Seed(names []string) error {
	for _, n := range names {
		if _, ok := r.byName[n]; !ok {
			r.byName[n] = &entity.Location{ID: int64(len(r.byName) + 1), Name: n}
		}
	}
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.Movement
	createErr error
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListRecent(limit int) ([]*entity.Movement, error) {
	if limit > len(r.movements) {
		limit = len(r.movements)
	}
	out := make([]*entity.Movement, 0, limit)
	for i := len(r.movements) - 1; i >= 0 && len(out) < limit; i-- {
		cp := *r.movements[i]
		out = append(out, &cp)
	}
	return out, nil
}

// fakeTxRunner emulates commit/rollback: fn runs against a copy of the item
// state, which replaces the real one only when fn succeeds.
type fakeTxRunner struct {
	items     *fakeItemRepo
	movements *fakeMovementRepo
}

var _ inventory.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	movementRepo repository.MovementRepository,
) error) error {
	_ = ctx
	txItems := r.items.clone()
	movementsBefore := len(r.movements.movements)
	if err := fn(txItems, r.movements); err != nil {
		r.movements.movements = r.movements.movements[:movementsBefore]
		return err
	}
	r.items.items = txItems.items
	r.items.nextID = txItems.nextID
	return nil
}
