package commands

import (
	"context"

	"freight/internal/core/domain/policies"
)

// LoadTruckCommandHandler transitions a delivery run from Pending to Loaded.
type LoadTruckCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewLoadTruckCommandHandler creates a handler for truck loading.
func NewLoadTruckCommandHandler(uowFactory DeliveryUoWFactory) LoadTruckCommandHandler {
	return LoadTruckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the truck loading command.
func (h LoadTruckCommandHandler) Handle(ctx context.Context, cmd LoadTruckCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !policies.NewDeliveryPolicy().Authorize(cmd.Actor(), policies.ActionLoadTruck, nil) {
		return authorizationDenied(cmd.Actor(), policies.ActionLoadTruck, "delivery")
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

	if err = run.Load(); err != nil {
		return err
	}

	if err = repo.Update(ctx, run); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
