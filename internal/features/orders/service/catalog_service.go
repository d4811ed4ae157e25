package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fleetdesk/internal/features/orders/domain"
	"fleetdesk/internal/features/orders/ports"
)

// ErrOrderNotFound is returned when the order does not exist in the catalog.
var ErrOrderNotFound = errors.New("order not found")

// CatalogService exposes the open-order catalog with text search.
type CatalogService struct {
	// repo is the interface for fetching order data.
	repo ports.OrderRepository
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(repo ports.OrderRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// List returns all open orders in catalog order.
func (s *CatalogService) List(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list orders: %w", err)
	}
	return orders, nil
}

// Get retrieves a single order by ID.
func (s *CatalogService) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.repo.Get(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// Search returns orders whose ID or customer name contains the term,
// case-insensitively, preserving catalog order. An empty term matches all.
func (s *CatalogService) Search(ctx context.Context, term string) ([]domain.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search orders: %w", err)
	}

	if term == "" {
		return orders, nil
	}

	needle := strings.ToLower(term)
	matched := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.ID), needle) ||
			strings.Contains(strings.ToLower(o.CustomerName), needle) {
			matched = append(matched, o)
		}
	}
	return matched, nil
}
