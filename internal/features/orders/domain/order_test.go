package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLineItem(t *testing.T) {
	tests := []struct {
		name          string
		quantity      int
		unitPrice     float64
		expectedTotal float64
	}{
		{name: "SingleUnit", quantity: 1, unitPrice: 950, expectedTotal: 950},
		{name: "MultipleUnits", quantity: 3, unitPrice: 150.5, expectedTotal: 451.5},
		{name: "ZeroQuantity", quantity: 0, unitPrice: 100, expectedTotal: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := NewLineItem("P-100", "Smart TV 43\"", tt.quantity, tt.unitPrice)
			assert.Equal(t, tt.expectedTotal, item.TotalPrice)
		})
	}
}

func TestOrder_Validate(t *testing.T) {
	t.Run("ConsistentLineItems", func(t *testing.T) {
		order := Order{
			ID: "ORD001",
			LineItems: []LineItem{
				NewLineItem("P-100", "Smart TV 43\"", 1, 950),
				NewLineItem("P-101", "TV Remote", 2, 150),
			},
		}
		assert.NoError(t, order.Validate())
	})

	t.Run("PriceMismatch", func(t *testing.T) {
		order := Order{
			ID: "ORD001",
			LineItems: []LineItem{
				{ProductID: "P-100", Quantity: 2, UnitPrice: 100, TotalPrice: 150},
			},
		}
		assert.ErrorIs(t, order.Validate(), ErrLineItemPriceMismatch)
	})

	t.Run("NoLineItems", func(t *testing.T) {
		assert.NoError(t, (&Order{ID: "ORD001"}).Validate())
	})
}
