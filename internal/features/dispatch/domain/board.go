package domain

import (
	orderdomain "fleetdesk/internal/features/orders/domain"
	vehicledomain "fleetdesk/internal/features/vehicles/domain"
)

// WarehouseGroup is a read-only view of the open orders sharing an origin
// warehouse, with a best-fit vehicle suggestion. It is recomputed from the
// catalog, never persisted.
type WarehouseGroup struct {
	// WarehouseID identifies the origin warehouse.
	WarehouseID string `json:"warehouse_id"`
	// Orders are the catalog orders originating at this warehouse.
	Orders []orderdomain.Order `json:"orders"`
	// TotalWeight is the estimated weight of all orders in the group.
	TotalWeight float64 `json:"total_weight"`
	// SuggestedVehicle is the best-fit available vehicle, if any fits.
	SuggestedVehicle *vehicledomain.Vehicle `json:"suggested_vehicle,omitempty"`
}

// GroupByWarehouse partitions orders by warehouse ID, preserving first-seen
// warehouse order and catalog order within each group.
func GroupByWarehouse(orders []orderdomain.Order) []WarehouseGroup {
	index := make(map[string]int)
	groups := make([]WarehouseGroup, 0)

	for _, o := range orders {
		i, ok := index[o.WarehouseID]
		if !ok {
			i = len(groups)
			index[o.WarehouseID] = i
			groups = append(groups, WarehouseGroup{WarehouseID: o.WarehouseID})
		}
		groups[i].Orders = append(groups[i].Orders, o)
		groups[i].TotalWeight += EstimateWeight(o)
	}
	return groups
}

// BestFit selects the available vehicle with the smallest capacity that is
// still >= weight, minimizing wasted capacity. Returns nil when no available
// vehicle is large enough; absence is not an error.
func BestFit(vehicles []vehicledomain.Vehicle, weight float64) *vehicledomain.Vehicle {
	var best *vehicledomain.Vehicle
	for i := range vehicles {
		v := &vehicles[i]
		if !v.Assignable() || v.Capacity < weight {
			continue
		}
		if best == nil || v.Capacity < best.Capacity {
			best = v
		}
	}
	if best == nil {
		return nil
	}
	cp := *best
	return &cp
}
