package commands

import (
	"context"
	"log/slog"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"
	"freight/internal/core/ports"
)

// TemplateTruckMaintenanceDue names the notification sent to the carrier
// company when one of its trucks is pulled from service.
const TemplateTruckMaintenanceDue = "truck_maintenance_due"

// DeactivateTrucksCommandHandler sweeps active trucks and deactivates those
// whose maintenance deadline has passed.
//
// Each overdue truck is deactivated in its own transaction. A failure on one
// truck is logged and the sweep moves on, so a single bad row never blocks
// the rest of the fleet. A truck whose deactivation failed stays active and
// is picked up again on the next sweep.
type DeactivateTrucksCommandHandler struct {
	uowFactory TruckUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
	now        func() time.Time
}

// NewDeactivateTrucksCommandHandler creates a handler for the maintenance sweep.
func NewDeactivateTrucksCommandHandler(
	uowFactory TruckUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) DeactivateTrucksCommandHandler {
	return DeactivateTrucksCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
		now:        time.Now,
	}
}

// Handle processes the maintenance sweep command.
func (h DeactivateTrucksCommandHandler) Handle(ctx context.Context, cmd DeactivateTrucksCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	readUoW := h.uowFactory.Create()
	if err := readUoW.Begin(ctx); err != nil {
		return err
	}

	trucks, err := readUoW.TruckRepository().GetAllActive(ctx)
	if rollbackErr := readUoW.Rollback(ctx); rollbackErr != nil && err == nil {
		err = rollbackErr
	}
	if err != nil {
		return err
	}

	now := h.now()
	for _, candidate := range trucks {
		if !candidate.ShouldDeactivate(now) {
			continue
		}

		deactivated, deactivateErr := h.deactivateOne(ctx, candidate.ID())
		if deactivateErr != nil {
			h.logger.Error("truck deactivation failed",
				slog.String("truck_id", candidate.ID().String()),
				slog.Any("error", deactivateErr),
			)
			continue
		}

		h.notifyMaintenanceDue(ctx, deactivated)
	}

	return nil
}

// deactivateOne re-reads the truck inside a fresh transaction before flipping
// it, so a truck deactivated concurrently is skipped via ErrTruckIsInactive
// rather than double-written.
func (h DeactivateTrucksCommandHandler) deactivateOne(
	ctx context.Context, truckID kernel.UUID,
) (*truck.Truck, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TruckRepository()
	candidate, err := repo.Get(ctx, truckID)
	if err != nil {
		return nil, err
	}

	if err = candidate.Deactivate(); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, candidate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return candidate, nil
}

func (h DeactivateTrucksCommandHandler) notifyMaintenanceDue(ctx context.Context, deactivated *truck.Truck) {
	err := h.notifier.Send(ctx, ports.Notification{
		Recipient: deactivated.CompanyID(),
		Template:  TemplateTruckMaintenanceDue,
		Context: map[string]string{
			"truck_id": deactivated.ID().String(),
			"plate":    deactivated.Plate(),
		},
	})
	if err != nil {
		h.logger.Warn("maintenance notification failed",
			slog.String("truck_id", deactivated.ID().String()),
			slog.Any("error", err),
		)
	}
}
