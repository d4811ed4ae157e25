package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"fleetdesk/internal/features/dispatch/domain"
	orderdomain "fleetdesk/internal/features/orders/domain"
	vehicledomain "fleetdesk/internal/features/vehicles/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of orders ports.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) List(ctx context.Context) ([]orderdomain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]orderdomain.Order), args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, orderID string) (*orderdomain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orderdomain.Order), args.Error(1)
}

// MockVehicleRepository is a mock implementation of vehicles ports.VehicleRepository.
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) List(ctx context.Context) ([]vehicledomain.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]vehicledomain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Get(ctx context.Context, vehicleID string) (*vehicledomain.Vehicle, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicledomain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) UpdateStatus(ctx context.Context, vehicleID string, status vehicledomain.VehicleStatus) error {
	args := m.Called(ctx, vehicleID, status)
	return args.Error(0)
}

func orderFixture(id string, productName string, quantity int) *orderdomain.Order {
	return &orderdomain.Order{
		ID:          id,
		WarehouseID: "WH-NORTH",
		LineItems: []orderdomain.LineItem{
			{ProductName: productName, Quantity: quantity},
		},
	}
}

func availableVehicle(id string, capacity float64) *vehicledomain.Vehicle {
	return &vehicledomain.Vehicle{
		ID:       id,
		Capacity: capacity,
		Status:   vehicledomain.VehicleStatusAvailable,
	}
}

func TestPlanner_CreateTrip_SequentialIDs(t *testing.T) {
	planner := NewPlanner(new(MockOrderRepository), new(MockVehicleRepository), true)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 1; i <= 3; i++ {
		trip, err := planner.CreateTrip(ctx)
		require.NoError(t, err)

		assert.Equal(t, fmt.Sprintf("TRIP-%03d", i), trip.ID)
		assert.False(t, seen[trip.ID], "trip IDs must never repeat")
		seen[trip.ID] = true
		assert.Equal(t, domain.TripStatusPlanning, trip.Status)

		trips, err := planner.Trips(ctx)
		require.NoError(t, err)
		assert.Len(t, trips, i)
	}
}

func TestPlanner_AddOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("RecomputesWeight", func(t *testing.T) {
		orders := new(MockOrderRepository)
		planner := NewPlanner(orders, new(MockVehicleRepository), true)

		trip, err := planner.CreateTrip(ctx)
		require.NoError(t, err)

		orders.On("Get", ctx, "ORD001").Return(orderFixture("ORD001", "Smart TV", 1), nil).Once()
		orders.On("Get", ctx, "ORD002").Return(orderFixture("ORD002", "Refrigerator", 1), nil).Once()

		updated, err := planner.AddOrder(ctx, trip.ID, "ORD001")
		require.NoError(t, err)
		assert.Equal(t, 25.0, updated.TotalWeight)

		updated, err = planner.AddOrder(ctx, trip.ID, "ORD002")
		require.NoError(t, err)
		assert.Equal(t, 105.0, updated.TotalWeight)
		assert.Len(t, updated.Orders, 2)

		orders.AssertExpectations(t)
	})

	t.Run("UnknownOrderIsRejectedWithoutMutation", func(t *testing.T) {
		orders := new(MockOrderRepository)
		planner := NewPlanner(orders, new(MockVehicleRepository), true)

		trip, err := planner.CreateTrip(ctx)
		require.NoError(t, err)

		orders.On("Get", ctx, "ORD999").Return(nil, nil).Once()

		_, err = planner.AddOrder(ctx, trip.ID, "ORD999")
		assert.ErrorIs(t, err, ErrOrderNotFound)

		unchanged, err := planner.Trip(ctx, trip.ID)
		require.NoError(t, err)
		assert.Empty(t, unchanged.Orders)
		orders.AssertExpectations(t)
	})

	t.Run("UnknownTrip", func(t *testing.T) {
		planner := NewPlanner(new(MockOrderRepository), new(MockVehicleRepository), true)

		_, err := planner.AddOrder(ctx, "TRIP-404", "ORD001")
		assert.ErrorIs(t, err, ErrTripNotFound)
	})

	t.Run("RepositoryErrorIsWrapped", func(t *testing.T) {
		orders := new(MockOrderRepository)
		planner := NewPlanner(orders, new(MockVehicleRepository), true)

		trip, err := planner.CreateTrip(ctx)
		require.NoError(t, err)

		orders.On("Get", ctx, "ORD001").Return(nil, errors.New("backend down")).Once()

		_, err = planner.AddOrder(ctx, trip.ID, "ORD001")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestPlanner_RemoveOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("SymmetricWithAddOrder", func(t *testing.T) {
		orders := new(MockOrderRepository)
		planner := NewPlanner(orders, new(MockVehicleRepository), true)

		trip, err := planner.CreateTrip(ctx)
		require.NoError(t, err)

		orders.On("Get", ctx, "ORD001").Return(orderFixture("ORD001", "Smart TV", 1), nil).Once()
		orders.On("Get", ctx, "ORD002").Return(orderFixture("ORD002", "Refrigerator", 1), nil).Once()

		_, err = planner.AddOrder(ctx, trip.ID, "ORD001")
		require.NoError(t, err)
		_, err = planner.AddOrder(ctx, trip.ID, "ORD002")
		require.NoError(t, err)

		updated, err := planner.RemoveOrder(ctx, trip.ID, "ORD001")
		require.NoError(t, err)
		assert.Equal(t, 80.0, updated.TotalWeight)
		assert.Len(t, updated.Orders, 1)
	})

	t.Run("OrderNotOnTrip", func(t *testing.T) {
		planner := NewPlanner(new(MockOrderRepository), new(MockVehicleRepository), true)

		trip, err := planner.CreateTrip(ctx)
		require.NoError(t, err)

		_, err = planner.RemoveOrder(ctx, trip.ID, "ORD001")
		assert.ErrorIs(t, err, ErrOrderNotOnTrip)
	})
}

func TestPlanner_AssignVehicle(t *testing.T) {
	ctx := context.Background()

	t.Run("SuccessFlipsBothStatuses", func(t *testing.T) {
		orders := new(MockOrderRepository)
		vehicles := new(MockVehicleRepository)
		planner := NewPlanner(orders, vehicles, true)

		trip, err := planner.CreateTrip(ctx)
		require.NoError(t, err)

		orders.On("Get", ctx, "ORD001").Return(orderFixture("ORD001", "Smart TV", 1), nil).Once()
		_, err = planner.AddOrder(ctx, trip.ID, "ORD001")
		require.NoError(t, err)

		vehicles.On("Get", ctx, "V001").Return(availableVehicle("V001", 1000), nil).Once()
		vehicles.On("UpdateStatus", ctx, "V001", vehicledomain.VehicleStatusAssigned).Return(nil).Once()

		assigned, err := planner.AssignVehicle(ctx, trip.ID, "V001", nil)
		require.NoError(t, err)
		assert.Equal(t, domain.TripStatusAssigned, assigned.Status)
		require.NotNil(t, assigned.Vehicle)
		assert.Equal(t, "V001", assigned.Vehicle.ID)
		assert.Equal(t, vehicledomain.VehicleStatusAssigned, assigned.Vehicle.Status)

		vehicles.AssertExpectations(t)
	})

	t.Run("CapacityErrorLeavesEverythingUnchanged", func(t *testing.T) {
		orders := new(MockOrderRepository)
		vehicles := new(MockVehicleRepository)
		planner := NewPlanner(orders, vehicles, true)

		trip, err := planner.CreateTrip(ctx)
		require.NoError(t, err)

		orders.On("Get", ctx, "ORD002").Return(orderFixture("ORD002", "Refrigerator", 1), nil).Once()
		_, err = planner.AddOrder(ctx, trip.ID, "ORD002")
		require.NoError(t, err)

		vehicles.On("Get", ctx, "V-TINY").Return(availableVehicle("V-TINY", 50), nil).Once()

		_, err = planner.AssignVehicle(ctx, trip.ID, "V-TINY", nil)
		var capErr *domain.CapacityError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, "V-TINY", capErr.VehicleID)

		unchanged, err := planner.Trip(ctx, trip.ID)
		require.NoError(t, err)
		assert.Nil(t, unchanged.Vehicle)
		assert.Equal(t, domain.TripStatusPlanning, unchanged.Status)

		// UpdateStatus must never have been called.
		vehicles.AssertExpectations(t)
	})

	t.Run("MaintenanceVehicleRejected", func(t *testing.T) {
		vehicles := new(MockVehicleRepository)
		planner := NewPlanner(new(MockOrderRepository), vehicles, true)

		trip, err := planner.CreateTrip(ctx)
		require.NoError(t, err)

		maintenance := &vehicledomain.Vehicle{
			ID:       "V004",
			Capacity: 10000,
			Status:   vehicledomain.VehicleStatusMaintenance,
		}
		vehicles.On("Get", ctx, "V004").Return(maintenance, nil).Once()

		_, err = planner.AssignVehicle(ctx, trip.ID, "V004", nil)
		assert.ErrorIs(t, err, domain.ErrVehicleUnavailable)
	})

	t.Run("UnknownVehicle", func(t *testing.T) {
		vehicles := new(MockVehicleRepository)
		planner := NewPlanner(new(MockOrderRepository), vehicles, true)

		trip, err := planner.CreateTrip(ctx)
		require.NoError(t, err)

		vehicles.On("Get", ctx, "V999").Return(nil, nil).Once()

		_, err = planner.AssignVehicle(ctx, trip.ID, "V999", nil)
		assert.ErrorIs(t, err, ErrVehicleNotFound)
	})

	t.Run("StatusUpdateFailureRollsBackTrip", func(t *testing.T) {
		vehicles := new(MockVehicleRepository)
		planner := NewPlanner(new(MockOrderRepository), vehicles, true)

		trip, err := planner.CreateTrip(ctx)
		require.NoError(t, err)

		vehicles.On("Get", ctx, "V001").Return(availableVehicle("V001", 1000), nil).Once()
		vehicles.On("UpdateStatus", ctx, "V001", vehicledomain.VehicleStatusAssigned).
			Return(errors.New("store gone")).Once()

		_, err = planner.AssignVehicle(ctx, trip.ID, "V001", nil)
		require.Error(t, err)

		unchanged, err := planner.Trip(ctx, trip.ID)
		require.NoError(t, err)
		assert.Nil(t, unchanged.Vehicle)
		assert.Equal(t, domain.TripStatusPlanning, unchanged.Status)
	})
}

func TestPlanner_LockAssignedTripsPolicy(t *testing.T) {
	ctx := context.Background()

	setupAssigned := func(t *testing.T, lock bool) (*Planner, string, *MockOrderRepository) {
		t.Helper()
		orders := new(MockOrderRepository)
		vehicles := new(MockVehicleRepository)
		planner := NewPlanner(orders, vehicles, lock)

		trip, err := planner.CreateTrip(ctx)
		require.NoError(t, err)

		orders.On("Get", ctx, "ORD001").Return(orderFixture("ORD001", "Smart TV", 1), nil).Once()
		_, err = planner.AddOrder(ctx, trip.ID, "ORD001")
		require.NoError(t, err)

		vehicles.On("Get", ctx, "V001").Return(availableVehicle("V001", 1000), nil).Once()
		vehicles.On("UpdateStatus", ctx, "V001", vehicledomain.VehicleStatusAssigned).Return(nil).Once()
		_, err = planner.AssignVehicle(ctx, trip.ID, "V001", nil)
		require.NoError(t, err)

		return planner, trip.ID, orders
	}

	t.Run("LockedTripRejectsComposition", func(t *testing.T) {
		planner, tripID, _ := setupAssigned(t, true)

		_, err := planner.AddOrder(ctx, tripID, "ORD002")
		assert.ErrorIs(t, err, ErrTripLocked)

		_, err = planner.RemoveOrder(ctx, tripID, "ORD001")
		assert.ErrorIs(t, err, ErrTripLocked)
	})

	t.Run("UnlockedTripAllowsCapacityOverrun", func(t *testing.T) {
		planner, tripID, orders := setupAssigned(t, false)

		// 20 refrigerators blow well past the 1000 kg capacity; the planner
		// permits it and only logs.
		orders.On("Get", ctx, "ORD002").Return(orderFixture("ORD002", "Refrigerator", 20), nil).Once()

		updated, err := planner.AddOrder(ctx, tripID, "ORD002")
		require.NoError(t, err)
		assert.Equal(t, 1625.0, updated.TotalWeight)
		assert.Equal(t, domain.TripStatusAssigned, updated.Status)
	})
}

func TestPlanner_AdvanceStatus(t *testing.T) {
	ctx := context.Background()

	vehicles := new(MockVehicleRepository)
	planner := NewPlanner(new(MockOrderRepository), vehicles, true)

	trip, err := planner.CreateTrip(ctx)
	require.NoError(t, err)

	// planning -> in_transit is not a planner-producible jump.
	_, err = planner.AdvanceStatus(ctx, trip.ID, domain.TripStatusInTransit)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	vehicles.On("Get", ctx, "V001").Return(availableVehicle("V001", 1000), nil).Once()
	vehicles.On("UpdateStatus", ctx, "V001", vehicledomain.VehicleStatusAssigned).Return(nil).Once()
	_, err = planner.AssignVehicle(ctx, trip.ID, "V001", nil)
	require.NoError(t, err)

	updated, err := planner.AdvanceStatus(ctx, trip.ID, domain.TripStatusInTransit)
	require.NoError(t, err)
	assert.Equal(t, domain.TripStatusInTransit, updated.Status)

	updated, err = planner.AdvanceStatus(ctx, trip.ID, domain.TripStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.TripStatusCompleted, updated.Status)
}
