package commands_test

import (
	"testing"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/model/truck"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newClaimedShipment(t *testing.T, companyID kernel.UUID) *shipment.Shipment {
	t.Helper()
	s, err := shipment.RestoreShipment(
		kernel.NewUUID(), kernel.NewUUID(), &companyID,
		"Pallet", "1 Kiln St", "9 Harbor Ave", shipment.StatusClaimed,
	)
	require.NoError(t, err)
	return s
}

func TestAssignShipmentsToTruckCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	companyID := kernel.NewUUID()
	admin, err := account.NewActor(kernel.NewUUID(), account.RoleAdmin, &companyID)
	require.NoError(t, err)

	carrier, err := truck.NewTruck(kernel.NewUUID(), companyID, "FR-1234-XY", time.Now().Add(30*24*time.Hour))
	require.NoError(t, err)

	first := newClaimedShipment(t, companyID)
	second := newClaimedShipment(t, companyID)

	cmd, err := commands.NewAssignShipmentsToTruckCommand(admin, carrier.ID(), []kernel.UUID{first.ID(), second.ID()})
	require.NoError(t, err)

	truckRepo := new(MockTruckRepository)
	shipmentRepo := new(MockShipmentRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TruckRepository").Return(truckRepo).Once(),
		truckRepo.On("Get", ctx, carrier.ID()).Return(carrier, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, first.ID()).Return(first, nil).Once(),
		shipmentRepo.On("Update", ctx, first).Return(nil).Once(),
		shipmentRepo.On("Get", ctx, second.ID()).Return(second, nil).Once(),
		shipmentRepo.On("Update", ctx, second).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	scheduler := new(MockGeocodeScheduler)
	scheduler.On("ScheduleGeocoding", mock.AnythingOfType("[]kernel.UUID")).Once()

	handler := commands.NewAssignShipmentsToTruckCommandHandler(factory, scheduler)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.StatusAssigned, first.Status())
	assert.Equal(t, shipment.StatusAssigned, second.Status())

	scheduledLegIDs := scheduler.Calls[0].Arguments.Get(0).([]kernel.UUID)
	assert.Len(t, scheduledLegIDs, 2)
	mock.AssertExpectationsForObjects(t, uow, truckRepo, shipmentRepo, deliveryRepo, factory, scheduler)
}

func TestAssignShipmentsToTruckCommandHandler_Handle_InactiveTruck(t *testing.T) {
	ctx := t.Context()

	companyID := kernel.NewUUID()
	admin, err := account.NewActor(kernel.NewUUID(), account.RoleAdmin, &companyID)
	require.NoError(t, err)

	carrier, err := truck.RestoreTruck(
		kernel.NewUUID(), companyID, "FR-1234-XY", false, time.Now().Add(-time.Hour),
	)
	require.NoError(t, err)

	claimed := newClaimedShipment(t, companyID)

	cmd, err := commands.NewAssignShipmentsToTruckCommand(admin, carrier.ID(), []kernel.UUID{claimed.ID()})
	require.NoError(t, err)

	truckRepo := new(MockTruckRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TruckRepository").Return(truckRepo).Once(),
		truckRepo.On("Get", ctx, carrier.ID()).Return(carrier, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	scheduler := new(MockGeocodeScheduler)

	handler := commands.NewAssignShipmentsToTruckCommandHandler(factory, scheduler)
	err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	scheduler.AssertNotCalled(t, "ScheduleGeocoding", mock.Anything)
	mock.AssertExpectationsForObjects(t, uow, truckRepo, factory)
}

func TestAssignShipmentsToTruckCommandHandler_Handle_CustomerDenied(t *testing.T) {
	customer, err := account.NewActor(kernel.NewUUID(), account.RoleCustomer, nil)
	require.NoError(t, err)

	cmd, err := commands.NewAssignShipmentsToTruckCommand(customer, kernel.NewUUID(), []kernel.UUID{kernel.NewUUID()})
	require.NoError(t, err)

	factory := new(MockAssignmentUoWFactory)
	handler := commands.NewAssignShipmentsToTruckCommandHandler(factory, new(MockGeocodeScheduler))

	err = handler.Handle(t.Context(), cmd)

	assert.ErrorIs(t, err, errs.ErrAuthorizationDenied)
	factory.AssertNotCalled(t, "Create")
}
