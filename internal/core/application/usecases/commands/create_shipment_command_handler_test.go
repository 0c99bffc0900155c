package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	customer, err := account.NewActor(kernel.NewUUID(), account.RoleCustomer, nil)
	require.NoError(t, err)

	cmd, err := commands.NewCreateShipmentCommand(customer, "Machine parts", "1 Kiln St", "9 Harbor Ave")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	mock.AssertExpectationsForObjects(t, uow, shipmentRepo, factory)
}

func TestCreateShipmentCommandHandler_Handle_StaffDenied(t *testing.T) {
	ctx := t.Context()

	companyID := kernel.NewUUID()
	driver, err := account.NewActor(kernel.NewUUID(), account.RoleDriver, &companyID)
	require.NoError(t, err)

	cmd, err := commands.NewCreateShipmentCommand(driver, "Machine parts", "1 Kiln St", "9 Harbor Ave")
	require.NoError(t, err)

	factory := new(MockShipmentUoWFactory)

	handler := commands.NewCreateShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrAuthorizationDenied)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateShipmentCommandHandler_Handle_InvalidCommand(t *testing.T) {
	handler := commands.NewCreateShipmentCommandHandler(new(MockShipmentUoWFactory))
	err := handler.Handle(t.Context(), commands.CreateShipmentCommand{})
	assert.ErrorIs(t, err, commands.ErrCreateShipmentCommandIsNotConstructed)
}
