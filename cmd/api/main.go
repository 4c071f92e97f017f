package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/factoryflow/factoryflow-api/docs"
	"github.com/factoryflow/factoryflow-api/internal/application/inventory"
	"github.com/factoryflow/factoryflow-api/internal/infrastructure/postgres"
	httpRouter "github.com/factoryflow/factoryflow-api/internal/interfaces/http"
	"github.com/factoryflow/factoryflow-api/pkg/config"
	"github.com/factoryflow/factoryflow-api/pkg/logger"
)

// @title FactoryFlow API
// @version 1.0
// @description Inventory Management System
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	if err := postgres.InitSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("schema bootstrap")
	}

	// FAULT_DB_DELAY stalls every statement; zero delay is a no-op wrap.
	q := postgres.WithDelay(pool, cfg.DB.FaultDelay)
	if cfg.DB.FaultDelay > 0 {
		log.Warn().Dur("delay", cfg.DB.FaultDelay).Msg("persistence fault injection enabled")
	}

	itemRepo := postgres.NewItemRepository(q)
	locationRepo := postgres.NewLocationRepository(q)
	movementRepo := postgres.NewMovementRepository(q)
	txRunner := postgres.NewTxRunner(pool, func(tx postgres.Querier) postgres.Querier {
		return postgres.WithDelay(tx, cfg.DB.FaultDelay)
	})

	if err := locationRepo.Seed(postgres.DefaultLocations); err != nil {
		log.Fatal().Err(err).Msg("seed locations")
	}

	inventoryUC := inventory.NewUseCase(itemRepo, locationRepo, movementRepo)
	moveUC := inventory.NewMoveUseCase(txRunner, locationRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "FactoryFlow API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC: inventoryUC,
		MoveUC:      moveUC,
		Pinger:      pool,
		AppName:     cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
