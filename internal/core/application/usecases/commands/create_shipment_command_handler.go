package commands

import (
	"context"

	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/policies"
)

// CreateShipmentCommandHandler posts new freight for a customer. The shipment
// starts Unclaimed and becomes visible to carriers for bidding.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !policies.NewShipmentPolicy().Authorize(cmd.Actor(), policies.ActionCreate, nil) {
		return authorizationDenied(cmd.Actor(), policies.ActionCreate, "shipment")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := shipment.NewShipment(
		cmd.ShipmentID(), cmd.Actor().ID(),
		cmd.Name(), cmd.SenderAddress(), cmd.ReceiverAddress(),
	)
	if err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
