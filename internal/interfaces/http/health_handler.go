package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/factoryflow/factoryflow-api/internal/application/dto"
)

// Version reported by /health.
const Version = "1.0.0"

// Pinger checks connectivity of the persistence layer.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	pinger  Pinger
	appName string
}

// NewHealthHandler builds the handler.
func NewHealthHandler(pinger Pinger, appName string) *HealthHandler {
	return &HealthHandler{pinger: pinger, appName: appName}
}

// Check godoc
// @Summary      Liveness and database connectivity
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Failure      503  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{
			Status:   "unhealthy",
			Database: err.Error(),
			Version:  Version,
		})
	}
	return c.JSON(dto.HealthResponse{
		Status:   "healthy",
		Database: "connected",
		Version:  Version,
	})
}
