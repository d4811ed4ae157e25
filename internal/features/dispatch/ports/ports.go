package ports

import (
	"context"
	"time"

	"fleetdesk/internal/features/dispatch/domain"
)

// PlannerService defines the primary port for trip composition and vehicle
// assignment. All mutations of trip membership and vehicle status go through
// this port; UI gestures and explicit commands are both routed here.
type PlannerService interface {
	// CreateTrip allocates a new empty trip with a unique sequential ID.
	CreateTrip(ctx context.Context) (domain.Trip, error)
	// Trips returns all trips of the session in creation order.
	Trips(ctx context.Context) ([]domain.Trip, error)
	// Trip returns a single trip by ID.
	Trip(ctx context.Context, tripID string) (domain.Trip, error)
	// AddOrder attaches a catalog order to a trip and recomputes its weight.
	AddOrder(ctx context.Context, tripID, orderID string) (domain.Trip, error)
	// RemoveOrder detaches an order from a trip and recomputes its weight.
	RemoveOrder(ctx context.Context, tripID, orderID string) (domain.Trip, error)
	// AssignVehicle attaches a vehicle to a trip, enforcing the capacity
	// precondition, and flips both statuses to assigned.
	AssignVehicle(ctx context.Context, tripID, vehicleID string, eta *time.Time) (domain.Trip, error)
	// AdvanceStatus moves a trip forward through assigned -> in_transit -> completed.
	AdvanceStatus(ctx context.Context, tripID string, next domain.TripStatus) (domain.Trip, error)
}

// BoardService defines the primary port for the warehouse suggestion board.
type BoardService interface {
	// Board returns the open orders grouped by warehouse with best-fit
	// vehicle suggestions.
	Board(ctx context.Context) ([]domain.WarehouseGroup, error)
}
