package commands_test

import (
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateShipmentCommandHandler_Handle_OwnerEditsPending(t *testing.T) {
	ctx := t.Context()

	pkg, err := shipment.NewPackageDetails(2, 20, 20, 10, shipment.UnitCentimeters)
	require.NoError(t, err)
	cmd, err := commands.NewUpdateShipmentCommand(
		testShipper(), 2,
		"freight", "replacement furnace filter",
		testAddress(t, "12 Main St"),
		testAddress(t, "98 Front St"),
		pkg,
	)
	require.NoError(t, err)

	aggregate := pendingShipment(t, 2)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, int64(2)).Return(aggregate, nil).Once(),
		shipmentRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "freight", aggregate.ShipmentType())
	assert.Equal(t, "12 Main St", aggregate.Pickup().Street())
	assert.True(t, aggregate.PackageDetails().IsEqual(pkg))
	uow.AssertExpectations(t)
}

func TestUpdateShipmentCommandHandler_Handle_QuotedShipmentLocked(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewUpdateShipmentCommand(
		testShipper(), 2,
		"parcel", "",
		testAddress(t, "12 Main St"),
		testAddress(t, "98 Front St"),
		shipment.PackageDetails{},
	)
	require.NoError(t, err)

	aggregate := quotedShipment(t, 2, 90) // shipper edits stop once quoted

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, int64(2)).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrForbidden)
	shipmentRepo.AssertNotCalled(t, "Update", ctx, aggregate)
}

func TestUpdateShipmentCommandHandler_Handle_ForeignShipperForbidden(t *testing.T) {
	ctx := t.Context()

	otherShipper := testShipper()
	otherShipper.ID = 55
	cmd, err := commands.NewUpdateShipmentCommand(
		otherShipper, 2,
		"parcel", "",
		testAddress(t, "12 Main St"),
		testAddress(t, "98 Front St"),
		shipment.PackageDetails{},
	)
	require.NoError(t, err)

	aggregate := pendingShipment(t, 2)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, int64(2)).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrForbidden)
}
