package repository

import "github.com/factoryflow/factoryflow-api/internal/domain/entity"

// LocationRepository is the persistence port for locations (DIP).
type LocationRepository interface {
	// GetByName returns nil when the location does not exist.
	GetByName(name string) (*entity.Location, error)
	List() ([]*entity.Location, error)
	// Seed inserts the given location names if missing (bootstrap only).
	Seed(names []string) error
}
