package ports

import (
	"context"

	"fleetdesk/internal/features/orders/domain"
)

// OrderRepository defines the interface for order catalog lookups.
// This is a Secondary Port (Driven Port); the catalog is read-only to the
// dispatch core.
type OrderRepository interface {
	// List returns all open orders in catalog order.
	List(ctx context.Context) ([]domain.Order, error)
	// Get retrieves a single order by its unique identifier.
	// Returns nil (no error) when the order does not exist.
	Get(ctx context.Context, orderID string) (*domain.Order, error)
}
