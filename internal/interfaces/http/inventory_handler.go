package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/factoryflow/factoryflow-api/internal/application/dto"
	"github.com/factoryflow/factoryflow-api/internal/application/inventory"
	"github.com/factoryflow/factoryflow-api/internal/domain"
)

// InventoryHandler serves the inventory REST endpoints.
type InventoryHandler struct {
	uc     *inventory.UseCase
	moveUC *inventory.MoveUseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(uc *inventory.UseCase, moveUC *inventory.MoveUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, moveUC: moveUC}
}

// List godoc
// @Summary      List inventory items
// @Tags         inventory
// @Produce      json
// @Param        location  query  string  false  "Filter by location name"
// @Success      200  {array}   dto.ItemResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), c.Query("location"))
	if err != nil {
		return errorJSON(c, err)
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ItemFromEntity(it))
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Add an item (or add quantity to an existing one)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "name, quantity, location"
// @Success      201  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
	}
	item, err := h.uc.Add(c.Context(), in.Name, in.Location, in.Quantity)
	if err != nil {
		// Unknown location on create is an input error, not a missing resource.
		if errors.Is(err, domain.ErrUnknownLocation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_LOCATION", Message: domain.ErrUnknownLocation.Error()})
		}
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ItemFromEntity(item))
}

// Delete godoc
// @Summary      Delete an item row
// @Tags         inventory
// @Produce      json
// @Param        id   path  int  true  "Item id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: "item id must be an integer"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": fmt.Sprintf("Item %d deleted", id)})
}

// Move godoc
// @Summary      Move quantity of an item between two locations
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MoveRequest  true  "item, quantity, from_location, to_location"
// @Success      200  {object}  dto.MoveResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /move [post]
func (h *InventoryHandler) Move(c *fiber.Ctx) error {
	var in dto.MoveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
	}
	result, err := h.moveUC.Move(c.Context(), inventory.MoveInput{
		Item:         in.Item,
		FromLocation: in.FromLocation,
		ToLocation:   in.ToLocation,
		Quantity:     in.Quantity,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MoveResponse{
		Message: fmt.Sprintf("Moved %d '%s' from '%s' to '%s'",
			in.Quantity, in.Item, in.FromLocation, in.ToLocation),
		FromItem: dto.ItemFromEntity(result.From),
		ToItem:   dto.ItemFromEntity(result.To),
	})
}

// ListMovements godoc
// @Summary      Recent move audit records
// @Tags         inventory
// @Produce      json
// @Param        limit  query  int  false  "Max rows (default 50)"
// @Success      200  {array}   dto.MovementResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	movements, err := h.uc.ListMovements(c.Context(), c.QueryInt("limit"))
	if err != nil {
		return errorJSON(c, err)
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.MovementResponse{
			ID:           m.ID,
			Item:         m.ItemName,
			FromLocation: m.FromLocation,
			ToLocation:   m.ToLocation,
			Quantity:     m.Quantity,
			CreatedAt:    m.CreatedAt,
		})
	}
	return c.JSON(out)
}

// ListLocations godoc
// @Summary      List seeded locations
// @Tags         inventory
// @Produce      json
// @Success      200  {array}   dto.LocationResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /locations [get]
func (h *InventoryHandler) ListLocations(c *fiber.Ctx) error {
	locations, err := h.uc.ListLocations(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	out := make([]dto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		out = append(out, dto.LocationResponse{ID: l.ID, Name: l.Name})
	}
	return c.JSON(out)
}

// errorJSON maps domain errors to HTTP status codes and the machine-readable
// error body.
func errorJSON(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_QUANTITY", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	case errors.Is(err, domain.ErrUnknownLocation):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_LOCATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnknownItem):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_ITEM", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
