package postgres

import (
	"context"
	"fmt"

	"github.com/factoryflow/factoryflow-api/internal/domain/entity"
	"github.com/factoryflow/factoryflow-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implements MovementRepository over PostgreSQL (pool or tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository builds the movement adapter. Pass pool or tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persists one audit row. Called inside the move transaction.
func (r *MovementRepo) Create(m *entity.Movement) error {
	query := `
		INSERT INTO movements (id, item_name, from_location_id, to_location_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ItemName, m.FromLocationID, m.ToLocationID, m.Quantity, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListRecent returns the newest audit rows with location names joined.
func (r *MovementRepo) ListRecent(limit int) ([]*entity.Movement, error) {
	query := `
		SELECT m.id, m.item_name, m.from_location_id, m.to_location_id,
		       lf.name, lt.name, m.quantity, m.created_at
		FROM movements m
		JOIN locations lf ON lf.id = m.from_location_id
		JOIN locations lt ON lt.id = m.to_location_id
		ORDER BY m.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ItemName, &m.FromLocationID, &m.ToLocationID,
			&m.FromLocation, &m.ToLocation, &m.Quantity, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
