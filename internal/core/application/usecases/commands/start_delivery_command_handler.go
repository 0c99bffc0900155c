package commands

import (
	"context"

	"freight/internal/core/domain/policies"
)

// StartDeliveryCommandHandler transitions a delivery run from Loaded to
// OutForDelivery.
type StartDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewStartDeliveryCommandHandler creates a handler for starting delivery runs.
func NewStartDeliveryCommandHandler(uowFactory DeliveryUoWFactory) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start command.
func (h StartDeliveryCommandHandler) Handle(ctx context.Context, cmd StartDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !policies.NewDeliveryPolicy().Authorize(cmd.Actor(), policies.ActionStart, nil) {
		return authorizationDenied(cmd.Actor(), policies.ActionStart, "delivery")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()
	run, err := repo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = run.Start(); err != nil {
		return err
	}

	if err = repo.Update(ctx, run); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
