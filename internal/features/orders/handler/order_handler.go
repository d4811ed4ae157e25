package handler

import (
	"errors"
	"net/http"

	"fleetdesk/internal/core/logger"
	"fleetdesk/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests related to the order catalog.
type OrderHandler struct {
	// service is the CatalogService instance.
	service *service.CatalogService
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(s *service.CatalogService) *OrderHandler {
	return &OrderHandler{
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

// ListOrders handles the request to list or search the open-order catalog.
// @Summary List or search orders
// @Description Returns open orders, optionally filtered by a case-insensitive substring match on order ID and customer name.
// @Tags Orders
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {array} domain.Order
// @Failure 500 {object} ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	term := c.Query("q")

	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	orders, err := h.service.Search(c.Context(), term)
	if err != nil {
		logger.Get().Error("Failed to list orders",
			zap.String("term", term),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(orders)
}

// GetOrder handles the request to retrieve a single order.
// @Summary Get order by ID
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")

	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	order, err := h.service.Get(c.Context(), orderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "Order not found",
				RayID:   rayID,
			})
		}

		logger.Get().Error("Failed to fetch order",
			zap.String("order_id", orderID),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(order)
}
