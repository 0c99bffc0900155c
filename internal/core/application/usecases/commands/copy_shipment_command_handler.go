package commands

import (
	"context"

	"freight/internal/core/domain/policies"
)

// CopyShipmentCommandHandler clones a shipment. The copy keeps the descriptive
// fields and the owner but starts Unclaimed with no company binding.
type CopyShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCopyShipmentCommandHandler creates a handler for shipment copying.
func NewCopyShipmentCommandHandler(uowFactory ShipmentUoWFactory) CopyShipmentCommandHandler {
	return CopyShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment copy command.
func (h CopyShipmentCommandHandler) Handle(ctx context.Context, cmd CopyShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !policies.NewShipmentPolicy().Authorize(cmd.Actor(), policies.ActionCopy, nil) {
		return authorizationDenied(cmd.Actor(), policies.ActionCopy, "shipment")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	source, err := repo.Get(ctx, cmd.SourceShipmentID())
	if err != nil {
		return err
	}

	duplicate, err := source.Copy(cmd.NewShipmentID())
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, duplicate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
