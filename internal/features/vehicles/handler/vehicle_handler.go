package handler

import (
	"errors"
	"net/http"

	"fleetdesk/internal/core/logger"
	"fleetdesk/internal/features/vehicles/domain"
	"fleetdesk/internal/features/vehicles/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// VehicleHandler handles HTTP requests related to the vehicle pool.
type VehicleHandler struct {
	// service is the PoolService instance.
	service *service.PoolService
}

// NewVehicleHandler creates a new instance of VehicleHandler.
func NewVehicleHandler(s *service.PoolService) *VehicleHandler {
	return &VehicleHandler{
		service: s,
	}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// ListVehicles handles the request to list vehicles.
// @Summary List vehicles
// @Description Returns the vehicle pool, optionally filtered by status. Use status=available for assignment candidates.
// @Tags Vehicles
// @Produce json
// @Param status query string false "Vehicle status filter (available, assigned, maintenance)"
// @Success 200 {array} domain.Vehicle
// @Failure 500 {object} ErrorResponse
// @Router /vehicles [get]
func (h *VehicleHandler) ListVehicles(c *fiber.Ctx) error {
	status := domain.VehicleStatus(c.Query("status"))

	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	vehicles, err := h.service.List(c.Context(), status)
	if err != nil {
		logger.Get().Error("Failed to list vehicles",
			zap.String("status", string(status)),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(vehicles)
}

// GetVehicle handles the request to retrieve a single vehicle.
// @Summary Get vehicle by ID
// @Tags Vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} domain.Vehicle
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) GetVehicle(c *fiber.Ctx) error {
	vehicleID := c.Params("id")

	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	vehicle, err := h.service.Get(c.Context(), vehicleID)
	if err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "Vehicle not found",
				RayID:   rayID,
			})
		}

		logger.Get().Error("Failed to fetch vehicle",
			zap.String("vehicle_id", vehicleID),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(vehicle)
}
