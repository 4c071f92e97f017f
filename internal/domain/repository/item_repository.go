package repository

import "github.com/factoryflow/factoryflow-api/internal/domain/entity"

// ItemRepository is the persistence port for item stock per location.
// Used inside transactions to guarantee consistency of the move operation.
type ItemRepository interface {
	// Get returns the item row for (name, locationID), or nil when absent.
	Get(name string, locationID int64) (*entity.Item, error)
	// GetForUpdate locks the row for update (SELECT FOR UPDATE). Returns nil
	// when absent.
	GetForUpdate(name string, locationID int64) (*entity.Item, error)
	GetByID(id int64) (*entity.Item, error)
	// Upsert inserts the (name, location) row or adds to its quantity.
	Upsert(item *entity.Item) (*entity.Item, error)
	// SetQuantity updates the quantity of an existing row.
	SetQuantity(id int64, quantity int64) error
	List(locationName string) ([]*entity.Item, error)
	Delete(id int64) error
}
