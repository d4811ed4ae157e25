package service

import (
	"context"
	"errors"
	"fmt"

	"fleetdesk/internal/features/vehicles/domain"
	"fleetdesk/internal/features/vehicles/ports"
)

// ErrVehicleNotFound is returned when the vehicle does not exist in the pool.
var ErrVehicleNotFound = errors.New("vehicle not found")

// PoolService exposes the vehicle pool to the dispatch screens.
type PoolService struct {
	// repo is the interface for fetching vehicle data.
	repo ports.VehicleRepository
}

// NewPoolService creates a new instance of PoolService.
func NewPoolService(repo ports.VehicleRepository) *PoolService {
	return &PoolService{
		repo: repo,
	}
}

// List returns all vehicles, optionally filtered by status.
func (s *PoolService) List(ctx context.Context, status domain.VehicleStatus) ([]domain.Vehicle, error) {
	vehicles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list vehicles: %w", err)
	}

	if status == "" {
		return vehicles, nil
	}

	filtered := make([]domain.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v.Status == status {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}

// Available returns the vehicles that may be offered as assignment candidates.
// Maintenance vehicles are excluded entirely; assigned vehicles likewise.
func (s *PoolService) Available(ctx context.Context) ([]domain.Vehicle, error) {
	vehicles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list vehicles: %w", err)
	}

	available := make([]domain.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v.Assignable() {
			available = append(available, v)
		}
	}
	return available, nil
}

// Get retrieves a single vehicle by ID.
func (s *PoolService) Get(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	vehicle, err := s.repo.Get(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}
	return vehicle, nil
}
