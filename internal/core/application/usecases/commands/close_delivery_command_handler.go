package commands

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/policies"
	"freight/internal/core/ports"
)

// CloseDeliveryCommandHandler closes a run and marks every shipment on it
// Delivered, all in one transaction. Owner notifications are scheduled after
// commit; a notification that fails to send is retried by the job, never by
// re-running the close.
type CloseDeliveryCommandHandler struct {
	uowFactory            CloseDeliveryUoWFactory
	notificationScheduler ports.NotificationScheduler
}

// NewCloseDeliveryCommandHandler creates a handler for closing delivery runs.
func NewCloseDeliveryCommandHandler(
	uowFactory CloseDeliveryUoWFactory,
	notificationScheduler ports.NotificationScheduler,
) CloseDeliveryCommandHandler {
	return CloseDeliveryCommandHandler{
		uowFactory:            uowFactory,
		notificationScheduler: notificationScheduler,
	}
}

// Handle processes the close command. Closing requires staff membership in the
// company owning the run's truck.
func (h CloseDeliveryCommandHandler) Handle(ctx context.Context, cmd CloseDeliveryCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	run, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if !policies.NewDeliveryPolicy().Authorize(cmd.Actor(), policies.ActionClose, run) {
		return authorizationDenied(cmd.Actor(), policies.ActionClose, "delivery")
	}

	if err = run.Close(); err != nil {
		return err
	}

	type delivered struct {
		ownerID    kernel.UUID
		shipmentID kernel.UUID
	}

	shipmentRepo := uow.ShipmentRepository()
	notifications := make([]delivered, 0, len(run.Legs()))
	for _, leg := range run.Legs() {
		s, getErr := shipmentRepo.Get(ctx, leg.ShipmentID())
		if getErr != nil {
			return getErr
		}

		if err = s.MarkDelivered(); err != nil {
			return err
		}
		if err = shipmentRepo.Update(ctx, s); err != nil {
			return err
		}

		notifications = append(notifications, delivered{ownerID: s.OwnerID(), shipmentID: s.ID()})
	}

	if err = deliveryRepo.Update(ctx, run); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, n := range notifications {
		h.notificationScheduler.ScheduleDeliveryNotification(n.ownerID, n.shipmentID)
	}

	return nil
}
