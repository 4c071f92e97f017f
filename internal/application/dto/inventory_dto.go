package dto

import (
	"time"

	"github.com/factoryflow/factoryflow-api/internal/domain/entity"
)

// CreateItemRequest body for POST /inventory.
type CreateItemRequest struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	Location string `json:"location"`
}

// ItemResponse one inventory row in responses.
type ItemResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	Location string `json:"location"`
}

// ItemFromEntity maps a domain item to its response shape.
func ItemFromEntity(it *entity.Item) ItemResponse {
	return ItemResponse{
		ID:       it.ID,
		Name:     it.Name,
		Quantity: it.Quantity,
		Location: it.LocationName,
	}
}

// MoveRequest body for POST /move.
type MoveRequest struct {
	Item         string `json:"item"`
	Quantity     int64  `json:"quantity"`
	FromLocation string `json:"from_location"`
	ToLocation   string `json:"to_location"`
}

// MoveResponse updated source and destination state after a move.
type MoveResponse struct {
	Message  string       `json:"message"`
	FromItem ItemResponse `json:"from_item"`
	ToItem   ItemResponse `json:"to_item"`
}

// LocationResponse one location in responses.
type LocationResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MovementResponse one audit row in GET /movements.
type MovementResponse struct {
	ID           string    `json:"id"`
	Item         string    `json:"item"`
	FromLocation string    `json:"from_location"`
	ToLocation   string    `json:"to_location"`
	Quantity     int64     `json:"quantity"`
	CreatedAt    time.Time `json:"created_at"`
}
