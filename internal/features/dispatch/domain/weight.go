package domain

import (
	"strings"

	orderdomain "fleetdesk/internal/features/orders/domain"
)

// DefaultUnitWeight is the per-unit weight (kg) assumed for products that
// match no category keyword. Unknown names never fail estimation.
const DefaultUnitWeight = 10

// categoryWeights maps product-name keywords to per-unit weights in kg.
// Matching is first-hit in declaration order, so more specific keywords
// ("remote") come before the broader ones they could co-occur with ("tv").
var categoryWeights = []struct {
	keyword string
	kg      float64
}{
	{"washing machine", 60},
	{"refrigerator", 80},
	{"microwave", 15},
	{"remote", 0.5},
	{"tv", 25},
}

// UnitWeight returns the estimated per-unit weight for a product name using
// a case-insensitive keyword match.
func UnitWeight(productName string) float64 {
	name := strings.ToLower(productName)
	for _, c := range categoryWeights {
		if strings.Contains(name, c.keyword) {
			return c.kg
		}
	}
	return DefaultUnitWeight
}

// EstimateWeight returns the estimated physical shipment weight of an order:
// the sum over its line items of per-unit weight times quantity. The result
// is deterministic, non-negative and scales linearly with quantities.
func EstimateWeight(order orderdomain.Order) float64 {
	var total float64
	for _, item := range order.LineItems {
		total += UnitWeight(item.ProductName) * float64(item.Quantity)
	}
	return total
}
