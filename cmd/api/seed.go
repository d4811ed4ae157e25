package main

import (
	"time"

	orderdomain "fleetdesk/internal/features/orders/domain"
	vehicledomain "fleetdesk/internal/features/vehicles/domain"
)

// Demo catalog used when no fleet back office is configured. Mirrors the
// sample data of the dispatch screens so the API is explorable out of the box.

func demoOrders() []orderdomain.Order {
	return []orderdomain.Order{
		{
			ID:            "ORD001",
			CustomerName:  "Acme Retail",
			OrderDate:     time.Date(2025, 8, 18, 9, 30, 0, 0, time.UTC),
			DeliveryDate:  time.Date(2025, 8, 22, 0, 0, 0, 0, time.UTC),
			TotalAmount:   1250,
			PaymentStatus: orderdomain.PaymentStatusPaid,
			WarehouseID:   "WH-NORTH",
			GeoLocation:   orderdomain.GeoLocation{Latitude: 12.9716, Longitude: 77.5946},
			LineItems: []orderdomain.LineItem{
				orderdomain.NewLineItem("P-100", "Smart TV 43\"", 1, 950),
				orderdomain.NewLineItem("P-101", "TV Remote", 2, 150),
			},
		},
		{
			ID:            "ORD002",
			CustomerName:  "Blue Mart",
			OrderDate:     time.Date(2025, 8, 19, 14, 10, 0, 0, time.UTC),
			DeliveryDate:  time.Date(2025, 8, 23, 0, 0, 0, 0, time.UTC),
			TotalAmount:   780,
			PaymentStatus: orderdomain.PaymentStatusPending,
			WarehouseID:   "WH-NORTH",
			GeoLocation:   orderdomain.GeoLocation{Latitude: 12.2958, Longitude: 76.6394},
			LineItems: []orderdomain.LineItem{
				orderdomain.NewLineItem("P-200", "Refrigerator 260L", 1, 780),
			},
		},
		{
			ID:            "ORD003",
			CustomerName:  "Corner Electronics",
			OrderDate:     time.Date(2025, 8, 20, 11, 45, 0, 0, time.UTC),
			DeliveryDate:  time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC),
			TotalAmount:   2100,
			PaymentStatus: orderdomain.PaymentStatusPaid,
			WarehouseID:   "WH-SOUTH",
			GeoLocation:   orderdomain.GeoLocation{Latitude: 13.0827, Longitude: 80.2707},
			LineItems: []orderdomain.LineItem{
				orderdomain.NewLineItem("P-300", "Washing Machine 7kg", 2, 520),
				orderdomain.NewLineItem("P-301", "Microwave Oven", 2, 530),
			},
		},
	}
}

func demoVehicles() []vehicledomain.Vehicle {
	return []vehicledomain.Vehicle{
		{
			ID:       "V001",
			Type:     "Mini Truck",
			Capacity: 1000,
			Status:   vehicledomain.VehicleStatusAvailable,
			Driver:   &vehicledomain.Driver{ID: "D001", Name: "Ravi Kumar"},
		},
		{
			ID:       "V002",
			Type:     "Container Truck",
			Capacity: 3000,
			Status:   vehicledomain.VehicleStatusAvailable,
			CurrentLocation: &vehicledomain.Location{
				Latitude:  12.9716,
				Longitude: 77.5946,
			},
		},
		{
			ID:       "V003",
			Type:     "Heavy Truck",
			Capacity: 5000,
			Status:   vehicledomain.VehicleStatusAvailable,
		},
		{
			ID:       "V004",
			Type:     "Mini Truck",
			Capacity: 1000,
			Status:   vehicledomain.VehicleStatusMaintenance,
		},
	}
}
