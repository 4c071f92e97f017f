package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/factoryflow/factoryflow-api/internal/application/inventory"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	InventoryUC *inventory.UseCase
	MoveUC      *inventory.MoveUseCase
	Pinger      Pinger
	AppName     string
}

// Router registers the API routes, the health endpoint and the HTML frontend.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(MetricsMiddleware())

	healthHandler := NewHealthHandler(deps.Pinger, deps.AppName)
	app.Get("/health", healthHandler.Check)
	app.Get("/metrics", MetricsHandler())

	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.MoveUC)
	app.Get("/inventory", inventoryHandler.List)
	app.Post("/inventory", inventoryHandler.Create)
	app.Delete("/inventory/:id", inventoryHandler.Delete)
	app.Post("/move", inventoryHandler.Move)
	app.Get("/movements", inventoryHandler.ListMovements)
	app.Get("/locations", inventoryHandler.ListLocations)

	homeHandler := NewHomeHandler(deps.InventoryUC, deps.MoveUC)
	app.Get("/", homeHandler.Home)
	app.Post("/add-item-form", homeHandler.AddItemForm)
	app.Post("/move-item-form", homeHandler.MoveItemForm)
}
