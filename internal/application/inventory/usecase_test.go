package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factoryflow/factoryflow-api/internal/application/inventory"
	"github.com/factoryflow/factoryflow-api/internal/domain"
)

func newUseCaseEnv() (*inventory.UseCase, *fakeItemRepo, *fakeMovementRepo) {
	items := newFakeItemRepo()
	movements := &fakeMovementRepo{}
	locations := newFakeLocationRepo("Warehouse A", "Warehouse B")
	return inventory.NewUseCase(items, locations, movements), items, movements
}

func TestAdd_CreatesItemAtLocation(t *testing.T) {
	uc, _, _ := newUseCaseEnv()

	item, err := uc.Add(context.Background(), "Bolt", "Warehouse A", 10)
	require.NoError(t, err)

	assert.Equal(t, "Bolt", item.Name)
	assert.Equal(t, int64(10), item.Quantity)
	assert.Equal(t, "Warehouse A", item.LocationName)
	assert.NotZero(t, item.ID)
}

func TestAdd_AccumulatesExistingRow(t *testing.T) {
	uc, _, _ := newUseCaseEnv()

	first, err := uc.Add(context.Background(), "Bolt", "Warehouse A", 10)
	require.NoError(t, err)
	second, err := uc.Add(context.Background(), "Bolt", "Warehouse A", 15)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "same (name, location) must reuse the row")
	assert.Equal(t, int64(25), second.Quantity, "adding an existing item accumulates quantity")
}

func TestAdd_ZeroQuantityIsValid(t *testing.T) {
	uc, _, _ := newUseCaseEnv()

	item, err := uc.Add(context.Background(), "Bolt", "Warehouse A", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), item.Quantity)
}

func TestAdd_Rejections(t *testing.T) {
	uc, _, _ := newUseCaseEnv()

	_, err := uc.Add(context.Background(), "", "Warehouse A", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "empty name")

	_, err = uc.Add(context.Background(), "Bolt", "Warehouse A", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "negative quantity")

	_, err = uc.Add(context.Background(), "Bolt", "Warehouse Z", 10)
	assert.ErrorIs(t, err, domain.ErrUnknownLocation, "unseeded location")
}

func TestDelete_UnknownItem(t *testing.T) {
	uc, _, _ := newUseCaseEnv()

	err := uc.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrUnknownItem)
}

func TestDelete_RemovesRow(t *testing.T) {
	uc, items, _ := newUseCaseEnv()

	created, err := uc.Add(context.Background(), "Bolt", "Warehouse A", 10)
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))

	got, err := items.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListMovements_ClampsLimit(t *testing.T) {
	uc, _, movements := newUseCaseEnv()
	for i := 0; i < 3; i++ {
		require.NoError(t, movements.Create(newMovement()))
	}

	out, err := uc.ListMovements(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, out, 3, "zero limit falls back to the default window")

	out, err = uc.ListMovements(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
