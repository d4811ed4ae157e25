package domain

import (
	"errors"
	"time"
)

// PaymentStatus represents the settlement state of an order.
type PaymentStatus string

const (
	// PaymentStatusPaid indicates the order has been paid in full.
	PaymentStatusPaid PaymentStatus = "PAID"
	// PaymentStatusPending indicates payment has not yet been received.
	PaymentStatusPending PaymentStatus = "PENDING"
)

// ErrLineItemPriceMismatch is returned when a line item's total price does not
// equal quantity times unit price.
var ErrLineItemPriceMismatch = errors.New("line item total price does not match quantity x unit price")

// GeoLocation represents a geographic coordinate.
type GeoLocation struct {
	// Latitude is the north-south coordinate in decimal degrees.
	Latitude float64 `json:"latitude"`
	// Longitude is the east-west coordinate in decimal degrees.
	Longitude float64 `json:"longitude"`
}

// LineItem represents an individual product line within an order.
type LineItem struct {
	// ProductID is the unique identifier of the product.
	ProductID string `json:"product_id"`
	// ProductName is the descriptive name of the product.
	ProductName string `json:"product_name"`
	// Quantity is the number of units ordered.
	Quantity int `json:"quantity"`
	// UnitPrice is the price of a single unit.
	UnitPrice float64 `json:"unit_price"`
	// TotalPrice is Quantity times UnitPrice.
	TotalPrice float64 `json:"total_price"`
}

// Order represents a customer shipment request.
// Orders are created by the external order-entry system and are read-only to
// the dispatch core; trips hold their own snapshot copies.
type Order struct {
	// ID is the unique identifier for the order.
	ID string `json:"id"`
	// CustomerName is the customer the order belongs to.
	CustomerName string `json:"customer_name"`
	// OrderDate is when the order was placed.
	OrderDate time.Time `json:"order_date"`
	// DeliveryDate is the requested delivery timestamp.
	DeliveryDate time.Time `json:"delivery_date"`
	// TotalAmount is the monetary total of the order.
	TotalAmount float64 `json:"total_amount"`
	// PaymentStatus is the settlement state (PAID, PENDING).
	PaymentStatus PaymentStatus `json:"payment_status"`
	// WarehouseID identifies the originating warehouse.
	WarehouseID string `json:"warehouse_id"`
	// GeoLocation is the delivery coordinate.
	GeoLocation GeoLocation `json:"geo_location"`
	// LineItems contains the products included in the order.
	LineItems []LineItem `json:"order_line_items"`
}

// NewLineItem creates a LineItem with the total price derived from quantity
// and unit price, keeping the price invariant by construction.
func NewLineItem(productID, productName string, quantity int, unitPrice float64) LineItem {
	return LineItem{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalPrice:  float64(quantity) * unitPrice,
	}
}

// Validate checks the order's internal consistency.
func (o *Order) Validate() error {
	for _, item := range o.LineItems {
		if item.TotalPrice != float64(item.Quantity)*item.UnitPrice {
			return ErrLineItemPriceMismatch
		}
	}
	return nil
}
