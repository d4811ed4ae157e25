package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fleetdesk/internal/core/cache"
	"fleetdesk/internal/core/logger"
	"fleetdesk/internal/features/dispatch/domain"
	orderports "fleetdesk/internal/features/orders/ports"
	vehicleports "fleetdesk/internal/features/vehicles/ports"

	"go.uber.org/zap"
)

const boardCacheKey = "dispatch_board"

// Board implements ports.BoardService. The warehouse view is derived from
// the order catalog and vehicle pool on every display; a short cache TTL
// bounds the recomputation cost without persisting the view.
type Board struct {
	orders   orderports.OrderRepository
	vehicles vehicleports.VehicleRepository
	cache    cache.Cache
	ttl      time.Duration
}

// NewBoard creates a Board. A nil cache disables caching entirely.
func NewBoard(orders orderports.OrderRepository, vehicles vehicleports.VehicleRepository, c cache.Cache, ttl time.Duration) *Board {
	return &Board{
		orders:   orders,
		vehicles: vehicles,
		cache:    c,
		ttl:      ttl,
	}
}

// Board returns the open orders grouped by warehouse, each with its total
// estimated weight and a best-fit vehicle suggestion (smallest available
// capacity that still covers the group weight; absent when none fits).
func (b *Board) Board(ctx context.Context) ([]domain.WarehouseGroup, error) {
	if cached := b.fromCache(ctx); cached != nil {
		return cached, nil
	}

	orders, err := b.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("board: failed to list orders: %w", err)
	}

	vehicles, err := b.vehicles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("board: failed to list vehicles: %w", err)
	}

	groups := domain.GroupByWarehouse(orders)
	for i := range groups {
		groups[i].SuggestedVehicle = domain.BestFit(vehicles, groups[i].TotalWeight)
	}

	b.toCache(ctx, groups)
	return groups, nil
}

// fromCache returns the cached board view, or nil on miss or cache trouble.
// Cache failures never fail the request.
func (b *Board) fromCache(ctx context.Context) []domain.WarehouseGroup {
	if b.cache == nil {
		return nil
	}

	data, err := b.cache.Get(ctx, boardCacheKey)
	if err != nil || data == nil {
		return nil
	}

	var groups []domain.WarehouseGroup
	if err := json.Unmarshal(data, &groups); err != nil {
		logger.Get().Warn("Discarding malformed cached board", zap.Error(err))
		return nil
	}
	return groups
}

// toCache stores the freshly computed view under the configured TTL.
func (b *Board) toCache(ctx context.Context, groups []domain.WarehouseGroup) {
	if b.cache == nil {
		return
	}

	data, err := json.Marshal(groups)
	if err != nil {
		logger.Get().Warn("Failed to marshal board for caching", zap.Error(err))
		return
	}

	if err := b.cache.Set(ctx, boardCacheKey, data, b.ttl); err != nil {
		logger.Get().Warn("Failed to cache board", zap.Error(err))
	}
}
