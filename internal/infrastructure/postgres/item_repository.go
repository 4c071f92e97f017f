package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/factoryflow/factoryflow-api/internal/domain/entity"
	"github.com/factoryflow/factoryflow-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implements ItemRepository over PostgreSQL (usable with pool or tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository builds the item adapter. Pass pool or tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Get returns the (name, location) row, or nil when absent.
func (r *ItemRepo) Get(name string, locationID int64) (*entity.Item, error) {
	query := `
		SELECT id, name, location_id, quantity, created_at, updated_at
		FROM items WHERE name = $1 AND location_id = $2`
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, name, locationID).Scan(
		&it.ID, &it.Name, &it.LocationID, &it.Quantity, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// GetForUpdate reads the row and locks it (SELECT FOR UPDATE) so the balance
// check and debit of a move act on a stable quantity.
func (r *ItemRepo) GetForUpdate(name string, locationID int64) (*entity.Item, error) {
	query := `
		SELECT id, name, location_id, quantity, created_at, updated_at
		FROM items WHERE name = $1 AND location_id = $2
		FOR UPDATE`
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, name, locationID).Scan(
		&it.ID, &it.Name, &it.LocationID, &it.Quantity, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item for update: %w", err)
	}
	return &it, nil
}

// GetByID returns the row by primary key, or nil when absent.
func (r *ItemRepo) GetByID(id int64) (*entity.Item, error) {
	query := `
		SELECT i.id, i.name, i.location_id, l.name, i.quantity, i.created_at, i.updated_at
		FROM items i JOIN locations l ON l.id = i.location_id
		WHERE i.id = $1`
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.Name, &it.LocationID, &it.LocationName, &it.Quantity, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item by id: %w", err)
	}
	return &it, nil
}

// Upsert inserts the (name, location) row or adds the quantity to the
// existing one, returning the stored state.
func (r *ItemRepo) Upsert(item *entity.Item) (*entity.Item, error) {
	query := `
		INSERT INTO items (name, location_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (name, location_id)
		DO UPDATE SET quantity = items.quantity + EXCLUDED.quantity, updated_at = now()
		RETURNING id, name, location_id, quantity, created_at, updated_at`
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, item.Name, item.LocationID, item.Quantity).Scan(
		&it.ID, &it.Name, &it.LocationID, &it.Quantity, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert item: %w", err)
	}
	return &it, nil
}

// SetQuantity updates the quantity of an existing row.
func (r *ItemRepo) SetQuantity(id int64, quantity int64) error {
	query := `UPDATE items SET quantity = $2, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, quantity)
	if err != nil {
		return fmt.Errorf("set item quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("set item quantity: no row with id %d", id)
	}
	return nil
}

// List returns all items joined with their location name, optionally filtered
// by location.
func (r *ItemRepo) List(locationName string) ([]*entity.Item, error) {
	query := `
		SELECT i.id, i.name, i.location_id, l.name, i.quantity, i.created_at, i.updated_at
		FROM items i JOIN locations l ON l.id = i.location_id`
	args := []any{}
	if locationName != "" {
		query += ` WHERE l.name = $1`
		args = append(args, locationName)
	}
	query += ` ORDER BY i.name, l.name`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.LocationID, &it.LocationName, &it.Quantity, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Delete removes an item row by id.
func (r *ItemRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
