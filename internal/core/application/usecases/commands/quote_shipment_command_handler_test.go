package commands_test

import (
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestQuoteShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewQuoteShipmentCommand(testAdmin(), 3, 149.50)
	require.NoError(t, err)

	aggregate := pendingShipment(t, 3)

	shipmentRepo := new(MockShipmentRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, int64(3)).Return(aggregate, nil).Once(),
		shipmentRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewQuoteShipmentCommandHandler(factory, zap.NewNop())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.StatusQuoted, aggregate.Status())
	require.NotNil(t, aggregate.QuoteAmount())
	assert.InDelta(t, 149.50, *aggregate.QuoteAmount(), 0.001)
	shipmentRepo.AssertExpectations(t)
	notificationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestQuoteShipmentCommandHandler_Handle_NotificationFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewQuoteShipmentCommand(testAdmin(), 3, 80)
	require.NoError(t, err)

	aggregate := pendingShipment(t, 3)

	shipmentRepo := new(MockShipmentRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, int64(3)).Return(aggregate, nil).Once(),
		shipmentRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).
			Return(assert.AnError).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewQuoteShipmentCommandHandler(factory, zap.NewNop())
	err = handler.Handle(ctx, cmd)

	// The quote already committed; a lost notification is logged, not fatal.
	require.NoError(t, err)
	assert.Equal(t, shipment.StatusQuoted, aggregate.Status())
}

func TestQuoteShipmentCommandHandler_Handle_NonAdminForbidden(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewQuoteShipmentCommand(testShipper(), 3, 149.50)
	require.NoError(t, err)

	aggregate := pendingShipment(t, 3)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, int64(3)).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewQuoteShipmentCommandHandler(factory, zap.NewNop())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrForbidden)
	assert.Equal(t, shipment.StatusPending, aggregate.Status())
	shipmentRepo.AssertNotCalled(t, "Update", ctx, aggregate)
}

func TestQuoteShipmentCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewQuoteShipmentCommand(testAdmin(), 3, 149.50)
	require.NoError(t, err)

	aggregate := assignedShipment(t, 3) // too late to quote

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, int64(3)).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewQuoteShipmentCommandHandler(factory, zap.NewNop())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, shipment.ErrInvalidTransition)
}

func TestQuoteShipmentCommand_RejectsNonPositiveAmount(t *testing.T) {
	_, err := commands.NewQuoteShipmentCommand(testAdmin(), 3, 0)
	require.Error(t, err)

	_, err = commands.NewQuoteShipmentCommand(testAdmin(), 3, -10)
	require.Error(t, err)
}
