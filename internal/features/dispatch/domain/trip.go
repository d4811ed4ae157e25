package domain

import (
	"errors"
	"fmt"
	"time"

	orderdomain "fleetdesk/internal/features/orders/domain"
	vehicledomain "fleetdesk/internal/features/vehicles/domain"
)

// TripStatus represents the lifecycle state of a trip.
// The planner only produces planning and assigned; the later states are
// advanced explicitly by dispatch staff.
type TripStatus string

const (
	// TripStatusPlanning is the sole initial state: orders are being composed
	// and no vehicle is attached.
	TripStatusPlanning TripStatus = "planning"
	// TripStatusAssigned indicates a vehicle has been attached.
	TripStatusAssigned TripStatus = "assigned"
	// TripStatusInTransit indicates the vehicle has departed.
	TripStatusInTransit TripStatus = "in_transit"
	// TripStatusCompleted is the sole terminal state.
	TripStatusCompleted TripStatus = "completed"
	// TripStatusCancelled appears in administrative list views only; the
	// planner never produces it.
	TripStatusCancelled TripStatus = "cancelled"
)

var (
	// ErrVehicleUnavailable is returned when the vehicle is not an eligible
	// assignment target (maintenance or already assigned), regardless of capacity.
	ErrVehicleUnavailable = errors.New("vehicle is not available for assignment")
	// ErrVehicleAlreadyAttached is returned when the trip already has a vehicle.
	ErrVehicleAlreadyAttached = errors.New("trip already has a vehicle attached")
	// ErrInvalidTransition is returned on an out-of-order status change.
	ErrInvalidTransition = errors.New("invalid trip status transition")
)

// CapacityError reports that a vehicle's rated capacity is insufficient for
// a trip's current total weight. The attempted assignment is fully rolled
// back; the caller surfaces the failure to the user.
type CapacityError struct {
	// TripID is the trip the assignment was attempted on.
	TripID string
	// VehicleID is the offending vehicle.
	VehicleID string
	// Capacity is the vehicle's rated capacity in kg.
	Capacity float64
	// Required is the trip's total weight in kg.
	Required float64
}

// Error implements the error interface, naming the offending vehicle.
func (e *CapacityError) Error() string {
	return fmt.Sprintf("vehicle %s capacity %.1f kg is insufficient for trip %s weight %.1f kg",
		e.VehicleID, e.Capacity, e.TripID, e.Required)
}

// Trip is a unit of dispatch work grouping orders for a single vehicle run.
// Order records are snapshot copies; the originating catalog is never
// mutated by trip composition.
type Trip struct {
	// ID is the unique, sequentially generated trip identifier.
	ID string `json:"id"`
	// Orders is the ordered collection of attached order snapshots.
	Orders []orderdomain.Order `json:"orders"`
	// Vehicle is the attached vehicle, if any.
	Vehicle *vehicledomain.Vehicle `json:"vehicle,omitempty"`
	// Status is the lifecycle state of the trip.
	Status TripStatus `json:"status"`
	// TotalWeight is the sum of per-order weight estimates, recomputed on
	// every membership change.
	TotalWeight float64 `json:"total_weight"`
	// EstimatedArrival is the expected arrival time, if provided.
	EstimatedArrival *time.Time `json:"estimated_arrival,omitempty"`
}

// NewTrip creates an empty trip in the planning state.
func NewTrip(id string) *Trip {
	return &Trip{
		ID:     id,
		Orders: []orderdomain.Order{},
		Status: TripStatusPlanning,
	}
}

// AddOrder appends an order snapshot to the trip and recomputes the total
// weight. Duplicates are not prevented here.
func (t *Trip) AddOrder(order orderdomain.Order) {
	t.Orders = append(t.Orders, order)
	t.recomputeWeight()
}

// RemoveOrder removes the first attached order with the given ID and
// recomputes the total weight. It reports whether an order was removed.
func (t *Trip) RemoveOrder(orderID string) bool {
	for i, o := range t.Orders {
		if o.ID == orderID {
			t.Orders = append(t.Orders[:i], t.Orders[i+1:]...)
			t.recomputeWeight()
			return true
		}
	}
	return false
}

// AttachVehicle performs the capacity-checked vehicle assignment.
// On any failure the trip is left unmodified; on success the vehicle is
// attached and the trip moves to assigned in one step.
func (t *Trip) AttachVehicle(vehicle vehicledomain.Vehicle) error {
	if t.Vehicle != nil {
		return ErrVehicleAlreadyAttached
	}
	if !vehicle.Assignable() {
		return ErrVehicleUnavailable
	}
	if vehicle.Capacity < t.TotalWeight {
		return &CapacityError{
			TripID:    t.ID,
			VehicleID: vehicle.ID,
			Capacity:  vehicle.Capacity,
			Required:  t.TotalWeight,
		}
	}

	vehicle.Status = vehicledomain.VehicleStatusAssigned
	t.Vehicle = &vehicle
	t.Status = TripStatusAssigned
	return nil
}

// DetachVehicle reverses AttachVehicle. Used only to roll back a failed
// assignment; releasing a vehicle from a live trip is an administrative
// action outside the planner.
func (t *Trip) DetachVehicle() {
	t.Vehicle = nil
	t.Status = TripStatusPlanning
}

// Advance moves the trip to the next lifecycle state. Only the forward
// progression assigned -> in_transit -> completed is permitted.
func (t *Trip) Advance(next TripStatus) error {
	valid := (t.Status == TripStatusAssigned && next == TripStatusInTransit) ||
		(t.Status == TripStatusInTransit && next == TripStatusCompleted)
	if !valid {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.Status, next)
	}
	t.Status = next
	return nil
}

// Snapshot returns a copy of the trip safe to hand outside the planner lock.
func (t *Trip) Snapshot() Trip {
	cp := *t
	cp.Orders = make([]orderdomain.Order, len(t.Orders))
	copy(cp.Orders, t.Orders)
	if t.Vehicle != nil {
		v := *t.Vehicle
		cp.Vehicle = &v
	}
	return cp
}

// recomputeWeight derives the total weight from the currently attached
// orders. It is never cached across membership changes.
func (t *Trip) recomputeWeight() {
	var total float64
	for _, o := range t.Orders {
		total += EstimateWeight(o)
	}
	t.TotalWeight = total
}
