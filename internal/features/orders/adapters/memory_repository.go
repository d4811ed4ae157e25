package adapters

import (
	"context"
	"sync"

	"fleetdesk/internal/features/orders/domain"
)

// MemoryOrderRepository implements ports.OrderRepository with an in-memory
// store. The record set is constructor-injected; there is no embedded data.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []domain.Order
	byID   map[string]int
}

// NewMemoryOrderRepository creates a repository holding the given orders.
// Insertion order is preserved for List.
func NewMemoryOrderRepository(orders []domain.Order) *MemoryOrderRepository {
	byID := make(map[string]int, len(orders))
	for i, o := range orders {
		byID[o.ID] = i
	}
	return &MemoryOrderRepository{
		orders: orders,
		byID:   byID,
	}
}

// List returns snapshot copies of all orders in insertion order.
func (r *MemoryOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

// Get returns a snapshot copy of the order, or nil when not found.
func (r *MemoryOrderRepository) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[orderID]
	if !ok {
		return nil, nil
	}
	order := r.orders[i]
	return &order, nil
}
