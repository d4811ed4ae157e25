package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"fleetdesk/internal/core/logger"
	"fleetdesk/internal/features/dispatch/domain"
	orderports "fleetdesk/internal/features/orders/ports"
	vehicledomain "fleetdesk/internal/features/vehicles/domain"
	vehicleports "fleetdesk/internal/features/vehicles/ports"

	"go.uber.org/zap"
)

var (
	// ErrTripNotFound is returned when the trip ID is unknown to the planner.
	ErrTripNotFound = errors.New("trip not found")
	// ErrOrderNotFound is returned when the order ID is not in the catalog.
	ErrOrderNotFound = errors.New("order not found")
	// ErrVehicleNotFound is returned when the vehicle ID is not in the pool.
	ErrVehicleNotFound = errors.New("vehicle not found")
	// ErrOrderNotOnTrip is returned when removing an order the trip does not hold.
	ErrOrderNotOnTrip = errors.New("order is not attached to trip")
	// ErrTripLocked is returned when composing an assigned trip while the
	// lock-assigned-trips policy is active.
	ErrTripLocked = errors.New("trip is locked after vehicle assignment")
)

// Planner implements ports.PlannerService. Trips are session-scoped,
// in-memory state; orders and vehicles are resolved by ID through their
// repositories, never aliased from list views.
//
// A single mutex serializes all mutations. Each operation is one discrete
// user gesture and completes atomically; no partial state is observable.
type Planner struct {
	mu     sync.Mutex
	trips  map[string]*domain.Trip
	seq    int
	byTime []string // trip IDs in creation order

	orders   orderports.OrderRepository
	vehicles vehicleports.VehicleRepository

	// lockAssigned freezes trip composition once a vehicle is attached.
	// When false, later additions may exceed capacity and are only logged.
	lockAssigned bool
}

// NewPlanner creates a Planner backed by the given catalogs.
func NewPlanner(orders orderports.OrderRepository, vehicles vehicleports.VehicleRepository, lockAssigned bool) *Planner {
	return &Planner{
		trips:        make(map[string]*domain.Trip),
		orders:       orders,
		vehicles:     vehicles,
		lockAssigned: lockAssigned,
	}
}

// CreateTrip allocates a new trip in the planning state. Identifiers are
// sequential and never reused within a session.
func (p *Planner) CreateTrip(ctx context.Context) (domain.Trip, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.seq++
	trip := domain.NewTrip(fmt.Sprintf("TRIP-%03d", p.seq))
	p.trips[trip.ID] = trip
	p.byTime = append(p.byTime, trip.ID)

	logger.Get().Info("Trip created", zap.String("trip_id", trip.ID))
	return trip.Snapshot(), nil
}

// Trips returns all trips in creation order.
func (p *Planner) Trips(ctx context.Context) ([]domain.Trip, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]domain.Trip, 0, len(p.byTime))
	for _, id := range p.byTime {
		out = append(out, p.trips[id].Snapshot())
	}
	return out, nil
}

// Trip returns a single trip by ID.
func (p *Planner) Trip(ctx context.Context, tripID string) (domain.Trip, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	trip, ok := p.trips[tripID]
	if !ok {
		return domain.Trip{}, ErrTripNotFound
	}
	return trip.Snapshot(), nil
}

// AddOrder resolves the order in the catalog and attaches a snapshot of it
// to the trip, recomputing the trip's total weight. The catalog itself is
// never modified.
func (p *Planner) AddOrder(ctx context.Context, tripID, orderID string) (domain.Trip, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	trip, ok := p.trips[tripID]
	if !ok {
		return domain.Trip{}, ErrTripNotFound
	}

	if p.lockAssigned && trip.Status != domain.TripStatusPlanning {
		return domain.Trip{}, ErrTripLocked
	}

	order, err := p.orders.Get(ctx, orderID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("planner: failed to resolve order: %w", err)
	}
	if order == nil {
		logger.Get().Warn("Add order skipped: unknown order",
			zap.String("trip_id", tripID),
			zap.String("order_id", orderID),
		)
		return domain.Trip{}, ErrOrderNotFound
	}

	trip.AddOrder(*order)

	if trip.Vehicle != nil && trip.TotalWeight > trip.Vehicle.Capacity {
		logger.Get().Warn("Trip weight now exceeds assigned vehicle capacity",
			zap.String("trip_id", trip.ID),
			zap.String("vehicle_id", trip.Vehicle.ID),
			zap.Float64("total_weight", trip.TotalWeight),
			zap.Float64("capacity", trip.Vehicle.Capacity),
		)
	}

	return trip.Snapshot(), nil
}

// RemoveOrder detaches the order from the trip, recomputing the weight
// symmetrically with AddOrder.
func (p *Planner) RemoveOrder(ctx context.Context, tripID, orderID string) (domain.Trip, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	trip, ok := p.trips[tripID]
	if !ok {
		return domain.Trip{}, ErrTripNotFound
	}

	if p.lockAssigned && trip.Status != domain.TripStatusPlanning {
		return domain.Trip{}, ErrTripLocked
	}

	if !trip.RemoveOrder(orderID) {
		logger.Get().Warn("Remove order skipped: order not on trip",
			zap.String("trip_id", tripID),
			zap.String("order_id", orderID),
		)
		return domain.Trip{}, ErrOrderNotOnTrip
	}

	return trip.Snapshot(), nil
}

// AssignVehicle attaches an available vehicle to the trip. The capacity
// precondition is checked at this moment only; on success the trip and the
// vehicle flip to assigned as one logical transition, on failure nothing
// is modified.
func (p *Planner) AssignVehicle(ctx context.Context, tripID, vehicleID string, eta *time.Time) (domain.Trip, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	trip, ok := p.trips[tripID]
	if !ok {
		return domain.Trip{}, ErrTripNotFound
	}

	vehicle, err := p.vehicles.Get(ctx, vehicleID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("planner: failed to resolve vehicle: %w", err)
	}
	if vehicle == nil {
		logger.Get().Warn("Assignment skipped: unknown vehicle",
			zap.String("trip_id", tripID),
			zap.String("vehicle_id", vehicleID),
		)
		return domain.Trip{}, ErrVehicleNotFound
	}

	if err := trip.AttachVehicle(*vehicle); err != nil {
		return domain.Trip{}, err
	}

	if err := p.vehicles.UpdateStatus(ctx, vehicleID, vehicledomain.VehicleStatusAssigned); err != nil {
		trip.DetachVehicle()
		return domain.Trip{}, fmt.Errorf("planner: failed to update vehicle status: %w", err)
	}

	trip.EstimatedArrival = eta

	logger.Get().Info("Vehicle assigned to trip",
		zap.String("trip_id", trip.ID),
		zap.String("vehicle_id", vehicleID),
		zap.Float64("total_weight", trip.TotalWeight),
		zap.Float64("capacity", vehicle.Capacity),
	)

	return trip.Snapshot(), nil
}

// AdvanceStatus moves a trip forward through its lifecycle.
func (p *Planner) AdvanceStatus(ctx context.Context, tripID string, next domain.TripStatus) (domain.Trip, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	trip, ok := p.trips[tripID]
	if !ok {
		return domain.Trip{}, ErrTripNotFound
	}

	if err := trip.Advance(next); err != nil {
		return domain.Trip{}, err
	}

	logger.Get().Info("Trip status advanced",
		zap.String("trip_id", trip.ID),
		zap.String("status", string(trip.Status)),
	)
	return trip.Snapshot(), nil
}
