package adapters

import (
	"context"
	"fmt"
	"sync"

	"fleetdesk/internal/features/vehicles/domain"
)

// MemoryVehicleRepository implements ports.VehicleRepository with an
// in-memory store. The record set is constructor-injected.
type MemoryVehicleRepository struct {
	mu       sync.RWMutex
	vehicles []domain.Vehicle
	byID     map[string]int
}

// NewMemoryVehicleRepository creates a repository holding the given vehicles.
func NewMemoryVehicleRepository(vehicles []domain.Vehicle) *MemoryVehicleRepository {
	byID := make(map[string]int, len(vehicles))
	for i, v := range vehicles {
		byID[v.ID] = i
	}
	return &MemoryVehicleRepository{
		vehicles: vehicles,
		byID:     byID,
	}
}

// List returns snapshot copies of all vehicles in insertion order.
func (r *MemoryVehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Vehicle, len(r.vehicles))
	copy(out, r.vehicles)
	return out, nil
}

// Get returns a snapshot copy of the vehicle, or nil when not found.
func (r *MemoryVehicleRepository) Get(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[vehicleID]
	if !ok {
		return nil, nil
	}
	vehicle := r.vehicles[i]
	return &vehicle, nil
}

// UpdateStatus sets the status of an existing vehicle.
func (r *MemoryVehicleRepository) UpdateStatus(ctx context.Context, vehicleID string, status domain.VehicleStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.byID[vehicleID]
	if !ok {
		return fmt.Errorf("vehicle not found: %s", vehicleID)
	}
	r.vehicles[i].Status = status
	return nil
}
