package repository

import "github.com/factoryflow/factoryflow-api/internal/domain/entity"

// MovementRepository is the persistence port for the move audit trail.
type MovementRepository interface {
	Create(m *entity.Movement) error
	ListRecent(limit int) ([]*entity.Movement, error)
}
