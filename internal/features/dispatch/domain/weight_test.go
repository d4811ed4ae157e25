package domain

import (
	"testing"

	orderdomain "fleetdesk/internal/features/orders/domain"

	"github.com/stretchr/testify/assert"
)

func TestUnitWeight(t *testing.T) {
	tests := []struct {
		name        string
		productName string
		expected    float64
	}{
		{name: "TV", productName: "Smart TV 43\"", expected: 25},
		{name: "Remote", productName: "TV Remote", expected: 0.5},
		{name: "Refrigerator", productName: "Refrigerator 260L", expected: 80},
		{name: "WashingMachine", productName: "Washing Machine 7kg", expected: 60},
		{name: "Microwave", productName: "Microwave Oven", expected: 15},
		{name: "CaseInsensitive", productName: "REFRIGERATOR", expected: 80},
		{name: "UnknownFallsBack", productName: "Garden Hose", expected: DefaultUnitWeight},
		{name: "EmptyFallsBack", productName: "", expected: DefaultUnitWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UnitWeight(tt.productName))
		})
	}
}

func TestEstimateWeight(t *testing.T) {
	t.Run("SumsLineItems", func(t *testing.T) {
		// TV x1 + Remote x2 = 25 + 1 = 26 kg
		order := orderdomain.Order{
			ID: "ORD001",
			LineItems: []orderdomain.LineItem{
				{ProductName: "Smart TV 43\"", Quantity: 1},
				{ProductName: "TV Remote", Quantity: 2},
			},
		}
		assert.Equal(t, 26.0, EstimateWeight(order))
	})

	t.Run("SingleItem", func(t *testing.T) {
		order := orderdomain.Order{
			ID: "ORD002",
			LineItems: []orderdomain.LineItem{
				{ProductName: "Refrigerator 260L", Quantity: 1},
			},
		}
		assert.Equal(t, 80.0, EstimateWeight(order))
	})

	t.Run("NoLineItemsIsZero", func(t *testing.T) {
		assert.Equal(t, 0.0, EstimateWeight(orderdomain.Order{ID: "ORD-EMPTY"}))
	})

	t.Run("ScalesLinearlyWithQuantity", func(t *testing.T) {
		single := orderdomain.Order{
			LineItems: []orderdomain.LineItem{{ProductName: "Microwave Oven", Quantity: 1}},
		}
		triple := orderdomain.Order{
			LineItems: []orderdomain.LineItem{{ProductName: "Microwave Oven", Quantity: 3}},
		}
		assert.Equal(t, 3*EstimateWeight(single), EstimateWeight(triple))
	})

	t.Run("UnknownProductsUseDefault", func(t *testing.T) {
		order := orderdomain.Order{
			LineItems: []orderdomain.LineItem{
				{ProductName: "Mystery Box", Quantity: 4},
			},
		}
		assert.Equal(t, 40.0, EstimateWeight(order))
	})
}
