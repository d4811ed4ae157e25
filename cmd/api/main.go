package main

import (
	"log"
	"net/http"
	"time"

	"fleetdesk/internal/core/cache"
	"fleetdesk/internal/core/config"
	"fleetdesk/internal/core/logger"
	"fleetdesk/internal/core/server"
	dispatchhandler "fleetdesk/internal/features/dispatch/handler"
	dispatchservice "fleetdesk/internal/features/dispatch/service"
	orderadapters "fleetdesk/internal/features/orders/adapters"
	orderhandler "fleetdesk/internal/features/orders/handler"
	orderports "fleetdesk/internal/features/orders/ports"
	orderservice "fleetdesk/internal/features/orders/service"
	vehicleadapters "fleetdesk/internal/features/vehicles/adapters"
	vehiclehandler "fleetdesk/internal/features/vehicles/handler"
	vehicleservice "fleetdesk/internal/features/vehicles/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// @title Fleetdesk Dispatch API
// @version 1.0
// @description Load-dispatch and trip-planning API for the fleetdesk back office.
// @contact.name API Support
// @contact.email support@fleetdesk.io
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Order catalog: the fleet back office when configured, demo data otherwise.
	var orderRepo orderports.OrderRepository
	if cfg.FleetAPI.URL != "" {
		fleetAdapter := orderadapters.NewFleetAPIAdapter(cfg.FleetAPI)
		if err := fleetAdapter.HealthCheck(); err != nil {
			l.Fatal("Fleet API health check failed", zap.Error(err))
		}
		l.Info("Fleet API connection verified", zap.String("url", cfg.FleetAPI.URL))
		orderRepo = fleetAdapter
	} else {
		l.Info("No fleet API configured, using embedded demo catalog")
		orderRepo = orderadapters.NewMemoryOrderRepository(demoOrders())
	}

	vehicleRepo := vehicleadapters.NewMemoryVehicleRepository(demoVehicles())

	// Board cache is best-effort: without Redis the board is recomputed per request.
	var boardCache cache.Cache
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Warn("Redis unavailable, board caching disabled", zap.Error(err))
	} else {
		boardCache = redisCache
		defer redisCache.Close()
	}

	catalogSvc := orderservice.NewCatalogService(orderRepo)
	poolSvc := vehicleservice.NewPoolService(vehicleRepo)
	planner := dispatchservice.NewPlanner(orderRepo, vehicleRepo, cfg.Dispatch.LockAssignedTrips)
	board := dispatchservice.NewBoard(orderRepo, vehicleRepo, boardCache,
		time.Duration(cfg.Dispatch.BoardCacheTTLSeconds)*time.Second)

	orderHdl := orderhandler.NewOrderHandler(catalogSvc)
	vehicleHdl := vehiclehandler.NewVehicleHandler(poolSvc)
	dispatchHdl := dispatchhandler.NewDispatchHandler(planner, board)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/orders", orderHdl.ListOrders)
	srv.App.Get("/orders/:id", orderHdl.GetOrder)
	srv.App.Get("/vehicles", vehicleHdl.ListVehicles)
	srv.App.Get("/vehicles/:id", vehicleHdl.GetVehicle)

	srv.App.Post("/dispatch/trips", dispatchHdl.CreateTrip)
	srv.App.Get("/dispatch/trips", dispatchHdl.ListTrips)
	srv.App.Get("/dispatch/trips/:id", dispatchHdl.GetTrip)
	srv.App.Post("/dispatch/trips/:id/orders", dispatchHdl.AddOrder)
	srv.App.Delete("/dispatch/trips/:id/orders/:orderId", dispatchHdl.RemoveOrder)
	srv.App.Post("/dispatch/trips/:id/vehicle", dispatchHdl.AssignVehicle)
	srv.App.Post("/dispatch/trips/:id/status", dispatchHdl.AdvanceStatus)
	srv.App.Post("/dispatch/drop", dispatchHdl.Drop)
	srv.App.Get("/dispatch/board", dispatchHdl.GetBoard)

	srv.App.Get("/health", func(c *fiber.Ctx) error {
		cacheStatus := "disabled"
		if boardCache != nil {
			cacheStatus = "ok"
			if err := boardCache.Ping(c.Context()); err != nil {
				cacheStatus = "unreachable"
			}
		}
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status": "ok",
			"cache":  cacheStatus,
		})
	})

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
