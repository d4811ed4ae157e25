package ports

import (
	"context"

	"fleetdesk/internal/features/vehicles/domain"
)

// VehicleRepository defines the interface for vehicle pool lookups and the
// single status mutation performed by the assignment engine. No other
// component writes vehicle state.
type VehicleRepository interface {
	// List returns all vehicles in the pool.
	List(ctx context.Context) ([]domain.Vehicle, error)
	// Get retrieves a single vehicle by its unique identifier.
	// Returns nil (no error) when the vehicle does not exist.
	Get(ctx context.Context, vehicleID string) (*domain.Vehicle, error)
	// UpdateStatus sets the status of an existing vehicle.
	UpdateStatus(ctx context.Context, vehicleID string, status domain.VehicleStatus) error
}
