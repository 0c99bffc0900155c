package commands

import (
	"context"

	"freight/internal/core/domain/policies"
)

// DeleteShipmentCommandHandler removes unclaimed shipments. The policy and the
// aggregate both refuse once a carrier has claimed the freight.
type DeleteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewDeleteShipmentCommandHandler creates a handler for shipment deletion.
func NewDeleteShipmentCommandHandler(uowFactory ShipmentUoWFactory) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment deletion command.
func (h DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	aggregate, err := repo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if !policies.NewShipmentPolicy().Authorize(cmd.Actor(), policies.ActionDestroy, aggregate) {
		return authorizationDenied(cmd.Actor(), policies.ActionDestroy, "shipment")
	}

	if err = aggregate.EnsureDestroyable(); err != nil {
		return err
	}

	if err = repo.Delete(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
