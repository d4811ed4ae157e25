package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"fleetdesk/internal/core/logger"
	"fleetdesk/internal/features/dispatch/domain"
	"fleetdesk/internal/features/dispatch/ports"
	"fleetdesk/internal/features/dispatch/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Drag-and-drop list identifiers produced by the dispatch board UI.
const (
	listOrders     = "orders"
	listVehicles   = "vehicles"
	tripListPrefix = "trip-"
)

// DispatchHandler handles HTTP requests for trip planning and assignment.
type DispatchHandler struct {
	planner ports.PlannerService
	board   ports.BoardService
}

// NewDispatchHandler creates a new DispatchHandler.
func NewDispatchHandler(planner ports.PlannerService, board ports.BoardService) *DispatchHandler {
	return &DispatchHandler{
		planner: planner,
		board:   board,
	}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// AddOrderRequest is the body for attaching an order to a trip.
type AddOrderRequest struct {
	OrderID string `json:"order_id"`
}

// AssignVehicleRequest is the body for attaching a vehicle to a trip.
type AssignVehicleRequest struct {
	VehicleID string `json:"vehicle_id"`
	// ETA is the optional estimated arrival time, RFC 3339.
	ETA string `json:"eta,omitempty"`
}

// AdvanceStatusRequest is the body for advancing a trip's lifecycle state.
type AdvanceStatusRequest struct {
	Status domain.TripStatus `json:"status"`
}

// DropTarget identifies one end of a drag-and-drop gesture.
type DropTarget struct {
	// ListID is one of "orders", "vehicles", or "trip-<tripId>".
	ListID string `json:"listId"`
	// Index is the position within the list; not load-bearing for routing.
	Index int `json:"index"`
}

// DropRequest is the drag-and-drop result emitted by the dispatch board.
type DropRequest struct {
	Source      DropTarget `json:"source"`
	Destination DropTarget `json:"destination"`
	DraggedID   string     `json:"draggedId"`
}

// CreateTrip handles POST /dispatch/trips.
// @Summary Create a trip
// @Description Allocates a new empty trip in the planning state with a unique sequential identifier.
// @Tags Dispatch
// @Produce json
// @Success 201 {object} domain.Trip
// @Failure 500 {object} ErrorResponse
// @Router /dispatch/trips [post]
func (h *DispatchHandler) CreateTrip(c *fiber.Ctx) error {
	trip, err := h.planner.CreateTrip(c.Context())
	if err != nil {
		return h.fail(c, "create trip", err)
	}
	return c.Status(http.StatusCreated).JSON(trip)
}

// ListTrips handles GET /dispatch/trips.
// @Summary List trips
// @Tags Dispatch
// @Produce json
// @Success 200 {array} domain.Trip
// @Failure 500 {object} ErrorResponse
// @Router /dispatch/trips [get]
func (h *DispatchHandler) ListTrips(c *fiber.Ctx) error {
	trips, err := h.planner.Trips(c.Context())
	if err != nil {
		return h.fail(c, "list trips", err)
	}
	return c.Status(http.StatusOK).JSON(trips)
}

// GetTrip handles GET /dispatch/trips/:id.
// @Summary Get trip by ID
// @Tags Dispatch
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} domain.Trip
// @Failure 404 {object} ErrorResponse
// @Router /dispatch/trips/{id} [get]
func (h *DispatchHandler) GetTrip(c *fiber.Ctx) error {
	trip, err := h.planner.Trip(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "get trip", err)
	}
	return c.Status(http.StatusOK).JSON(trip)
}

// AddOrder handles POST /dispatch/trips/:id/orders.
// @Summary Add an order to a trip
// @Description Attaches a catalog order to the trip and recomputes the trip's total weight.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param body body AddOrderRequest true "Order reference"
// @Success 200 {object} domain.Trip
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /dispatch/trips/{id}/orders [post]
func (h *DispatchHandler) AddOrder(c *fiber.Ctx) error {
	var req AddOrderRequest
	if err := c.BodyParser(&req); err != nil || req.OrderID == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "order_id is required",
			RayID:   rayID(c),
		})
	}

	trip, err := h.planner.AddOrder(c.Context(), c.Params("id"), req.OrderID)
	if err != nil {
		return h.fail(c, "add order", err)
	}
	return c.Status(http.StatusOK).JSON(trip)
}

// RemoveOrder handles DELETE /dispatch/trips/:id/orders/:orderId.
// @Summary Remove an order from a trip
// @Tags Dispatch
// @Produce json
// @Param id path string true "Trip ID"
// @Param orderId path string true "Order ID"
// @Success 200 {object} domain.Trip
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /dispatch/trips/{id}/orders/{orderId} [delete]
func (h *DispatchHandler) RemoveOrder(c *fiber.Ctx) error {
	trip, err := h.planner.RemoveOrder(c.Context(), c.Params("id"), c.Params("orderId"))
	if err != nil {
		return h.fail(c, "remove order", err)
	}
	return c.Status(http.StatusOK).JSON(trip)
}

// AssignVehicle handles POST /dispatch/trips/:id/vehicle.
// @Summary Assign a vehicle to a trip
// @Description Attaches an available vehicle, enforcing the capacity precondition. On failure nothing is modified.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param body body AssignVehicleRequest true "Vehicle reference"
// @Success 200 {object} domain.Trip
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /dispatch/trips/{id}/vehicle [post]
func (h *DispatchHandler) AssignVehicle(c *fiber.Ctx) error {
	var req AssignVehicleRequest
	if err := c.BodyParser(&req); err != nil || req.VehicleID == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "vehicle_id is required",
			RayID:   rayID(c),
		})
	}

	var eta *time.Time
	if req.ETA != "" {
		parsed, err := time.Parse(time.RFC3339, req.ETA)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "eta must be RFC 3339",
				RayID:   rayID(c),
			})
		}
		eta = &parsed
	}

	trip, err := h.planner.AssignVehicle(c.Context(), c.Params("id"), req.VehicleID, eta)
	if err != nil {
		return h.fail(c, "assign vehicle", err)
	}
	return c.Status(http.StatusOK).JSON(trip)
}

// AdvanceStatus handles POST /dispatch/trips/:id/status.
// @Summary Advance trip status
// @Description Moves a trip forward through assigned -> in_transit -> completed.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param body body AdvanceStatusRequest true "Next status"
// @Success 200 {object} domain.Trip
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /dispatch/trips/{id}/status [post]
func (h *DispatchHandler) AdvanceStatus(c *fiber.Ctx) error {
	var req AdvanceStatusRequest
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "status is required",
			RayID:   rayID(c),
		})
	}

	trip, err := h.planner.AdvanceStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return h.fail(c, "advance status", err)
	}
	return c.Status(http.StatusOK).JSON(trip)
}

// Drop handles POST /dispatch/drop, translating a drag-and-drop gesture into
// the corresponding planner command. Unroutable gestures are ignored, not
// failed: the board simply re-renders.
// @Summary Apply a drag-and-drop gesture
// @Tags Dispatch
// @Accept json
// @Produce json
// @Param body body DropRequest true "Drag-and-drop result"
// @Success 200 {object} domain.Trip
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /dispatch/drop [post]
func (h *DispatchHandler) Drop(c *fiber.Ctx) error {
	var req DropRequest
	if err := c.BodyParser(&req); err != nil || req.DraggedID == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid drop payload",
			RayID:   rayID(c),
		})
	}

	src, dst := req.Source.ListID, req.Destination.ListID

	var (
		trip domain.Trip
		err  error
	)
	switch {
	case src == listOrders && strings.HasPrefix(dst, tripListPrefix):
		trip, err = h.planner.AddOrder(c.Context(), strings.TrimPrefix(dst, tripListPrefix), req.DraggedID)
	case src == listVehicles && strings.HasPrefix(dst, tripListPrefix):
		trip, err = h.planner.AssignVehicle(c.Context(), strings.TrimPrefix(dst, tripListPrefix), req.DraggedID, nil)
	case strings.HasPrefix(src, tripListPrefix) && dst == listOrders:
		trip, err = h.planner.RemoveOrder(c.Context(), strings.TrimPrefix(src, tripListPrefix), req.DraggedID)
	default:
		logger.Get().Warn("Ignoring unroutable drop gesture",
			zap.String("source", src),
			zap.String("destination", dst),
			zap.String("dragged_id", req.DraggedID),
		)
		return c.Status(http.StatusOK).JSON(fiber.Map{"status": "ignored"})
	}

	if err != nil {
		return h.fail(c, "drop", err)
	}
	return c.Status(http.StatusOK).JSON(trip)
}

// GetBoard handles GET /dispatch/board.
// @Summary Warehouse board
// @Description Returns open orders grouped by warehouse with best-fit vehicle suggestions.
// @Tags Dispatch
// @Produce json
// @Success 200 {array} domain.WarehouseGroup
// @Failure 500 {object} ErrorResponse
// @Router /dispatch/board [get]
func (h *DispatchHandler) GetBoard(c *fiber.Ctx) error {
	groups, err := h.board.Board(c.Context())
	if err != nil {
		return h.fail(c, "board", err)
	}
	return c.Status(http.StatusOK).JSON(groups)
}

// fail maps planner errors onto HTTP statuses and logs server-side failures.
func (h *DispatchHandler) fail(c *fiber.Ctx, op string, err error) error {
	status := http.StatusInternalServerError
	msg := "Internal Server Error"

	var capErr *domain.CapacityError
	switch {
	case errors.As(err, &capErr):
		status = http.StatusConflict
		msg = capErr.Error()
	case errors.Is(err, service.ErrTripNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrVehicleNotFound),
		errors.Is(err, service.ErrOrderNotOnTrip):
		status = http.StatusNotFound
		msg = err.Error()
	case errors.Is(err, service.ErrTripLocked),
		errors.Is(err, domain.ErrVehicleUnavailable),
		errors.Is(err, domain.ErrVehicleAlreadyAttached),
		errors.Is(err, domain.ErrInvalidTransition):
		status = http.StatusConflict
		msg = err.Error()
	default:
		logger.Get().Error("Dispatch operation failed",
			zap.String("operation", op),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
	}

	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		RayID:   rayID(c),
	})
}

// rayID extracts the request correlation ID set by the requestid middleware.
func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}
