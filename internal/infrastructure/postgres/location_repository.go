package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/factoryflow/factoryflow-api/internal/domain/entity"
	"github.com/factoryflow/factoryflow-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implements LocationRepository over PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository builds the location adapter. Pass pool or tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// GetByName returns the location, or nil when it does not exist.
func (r *LocationRepo) GetByName(name string) (*entity.Location, error) {
	var loc entity.Location
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name FROM locations WHERE name = $1`, name,
	).Scan(&loc.ID, &loc.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &loc, nil
}

// List returns all locations ordered by name.
func (r *LocationRepo) List() ([]*entity.Location, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name FROM locations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var list []*entity.Location
	for rows.Next() {
		var loc entity.Location
		if err := rows.Scan(&loc.ID, &loc.Name); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &loc)
	}
	return list, rows.Err()
}

// Seed inserts the given location names, skipping ones already present.
func (r *LocationRepo) Seed(names []string) error {
	for _, name := range names {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO locations (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
		if err != nil {
			return fmt.Errorf("seed location %q: %w", name, err)
		}
	}
	return nil
}
