package commands_test

import (
	"context"
	"testing"
	"time"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/account"
	"courier/internal/core/domain/model/actor"
	"courier/internal/core/domain/model/notification"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/domain/model/vehicle"
	"courier/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id int64) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) ClaimForDriver(ctx context.Context, shipmentID, driverID int64) (bool, error) {
	args := m.Called(ctx, shipmentID, driverID)
	return args.Bool(0), args.Error(1)
}

func (m *MockShipmentRepository) FindActiveJobForDriver(ctx context.Context, driverID int64) (*shipment.Shipment, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) FindMissingInvoices(ctx context.Context) ([]*shipment.Shipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id int64) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) Update(ctx context.Context, aggregate *notification.Notification) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) GetDriver(ctx context.Context, id int64) (account.Account, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(account.Account), args.Error(1)
}

func (m *MockAccountRepository) Get(ctx context.Context, id int64) (account.Account, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(account.Account), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Get(ctx context.Context, id int64) (vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(vehicle.Vehicle), args.Error(1)
}

// MockUoW satisfies both commands.ShipmentUoW and commands.UoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockInvoiceService struct{ mock.Mock }

func (m *MockInvoiceService) EnsureInvoice(
	ctx context.Context,
	shipments ports.ShipmentRepository,
	accounts ports.AccountRepository,
	s *shipment.Shipment,
	now time.Time,
) error {
	args := m.Called(ctx, shipments, accounts, s, now)
	return args.Error(0)
}

// Test fixtures shared by the handler tests.

func testShipper() actor.Actor {
	return actor.Actor{ID: 10, Role: actor.RoleShipper}
}

func testDriver() actor.Actor {
	return actor.Actor{ID: 20, Role: actor.RoleDriver}
}

func testAdmin() actor.Actor {
	return actor.Actor{ID: 1, Role: actor.RoleAdmin}
}

func testAddress(t *testing.T, street string) shipment.Address {
	t.Helper()
	addr, err := shipment.NewAddress(street, "Toronto", "M5V 2T6")
	require.NoError(t, err)
	return addr
}

// pendingShipment builds a stored aggregate in "pending" status owned by
// testShipper.
func pendingShipment(t *testing.T, id int64) *shipment.Shipment {
	t.Helper()

	province, err := shipment.NewProvince("ON")
	require.NoError(t, err)

	s, err := shipment.NewShipment(
		testShipper().ID,
		"parcel",
		testAddress(t, "100 King St W"),
		testAddress(t, "200 Bay St"),
		province,
		"office supplies",
		time.Now().UTC(),
	)
	require.NoError(t, err)
	require.NoError(t, s.AttachID(id))
	return s
}

// quotedShipment builds a stored aggregate in "quoted" status.
func quotedShipment(t *testing.T, id int64, amount float64) *shipment.Shipment {
	t.Helper()
	s := pendingShipment(t, id)
	require.NoError(t, s.Quote(amount, time.Now().UTC()))
	return s
}

// approvedShipment builds a stored aggregate in "approved" status, an open job.
func approvedShipment(t *testing.T, id int64) *shipment.Shipment {
	t.Helper()
	s := quotedShipment(t, id, 120)
	require.NoError(t, s.Approve(time.Now().UTC()))
	return s
}

// assignedShipment builds a stored aggregate assigned to testDriver.
func assignedShipment(t *testing.T, id int64) *shipment.Shipment {
	t.Helper()
	s := quotedShipment(t, id, 120)
	require.NoError(t, s.AssignDriver(testDriver().ID, nil, time.Now().UTC()))
	return s
}
