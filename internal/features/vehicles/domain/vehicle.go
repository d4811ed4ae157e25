package domain

// VehicleStatus represents the availability state of a vehicle.
type VehicleStatus string

const (
	// VehicleStatusAvailable indicates the vehicle can be assigned to a trip.
	VehicleStatusAvailable VehicleStatus = "available"
	// VehicleStatusAssigned indicates the vehicle is attached to a trip.
	VehicleStatusAssigned VehicleStatus = "assigned"
	// VehicleStatusMaintenance indicates the vehicle is out of service and
	// never assignable.
	VehicleStatusMaintenance VehicleStatus = "maintenance"
)

// Location represents a geographic coordinate.
type Location struct {
	// Latitude is the north-south coordinate in decimal degrees.
	Latitude float64 `json:"latitude"`
	// Longitude is the east-west coordinate in decimal degrees.
	Longitude float64 `json:"longitude"`
}

// Driver identifies the driver currently assigned to a vehicle.
type Driver struct {
	// ID is the unique identifier of the driver.
	ID string `json:"id"`
	// Name is the driver's display name.
	Name string `json:"name"`
}

// Vehicle represents a transport asset in the fleet.
type Vehicle struct {
	// ID is the unique identifier for the vehicle.
	ID string `json:"id"`
	// Type is the vehicle class label (e.g., "Mini Truck", "Container Truck").
	Type string `json:"type"`
	// Capacity is the rated load capacity in weight units (kg).
	Capacity float64 `json:"capacity"`
	// Status is the availability state of the vehicle.
	Status VehicleStatus `json:"status"`
	// CurrentLocation is the last known position, if tracked.
	CurrentLocation *Location `json:"current_location,omitempty"`
	// Driver is the assigned driver, if any.
	Driver *Driver `json:"driver,omitempty"`
}

// Assignable reports whether the vehicle may be offered as an assignment
// candidate. Maintenance and already-assigned vehicles are excluded.
func (v *Vehicle) Assignable() bool {
	return v.Status == VehicleStatusAvailable
}
