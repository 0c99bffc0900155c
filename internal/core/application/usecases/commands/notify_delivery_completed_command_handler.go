package commands

import (
	"context"

	"freight/internal/core/ports"
)

// TemplateDeliveryCompleted names the notification template for delivered freight.
const TemplateDeliveryCompleted = "delivery_completed"

// NotifyDeliveryCompletedCommandHandler tells a shipment owner their freight
// arrived. A send failure is returned to the caller, which re-queues the
// notification; sending is therefore at-least-once and the template must
// tolerate duplicates.
type NotifyDeliveryCompletedCommandHandler struct {
	uowFactory ShipmentUoWFactory
	notifier   ports.Notifier
}

// NewNotifyDeliveryCompletedCommandHandler creates a handler for owner notifications.
func NewNotifyDeliveryCompletedCommandHandler(
	uowFactory ShipmentUoWFactory,
	notifier ports.Notifier,
) NotifyDeliveryCompletedCommandHandler {
	return NotifyDeliveryCompletedCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes one notification.
func (h NotifyDeliveryCompletedCommandHandler) Handle(ctx context.Context, cmd NotifyDeliveryCompletedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	aggregate, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if rollbackErr := uow.Rollback(ctx); rollbackErr != nil && err == nil {
		err = rollbackErr
	}
	if err != nil {
		return err
	}

	return h.notifier.Send(ctx, ports.Notification{
		Recipient: cmd.OwnerID(),
		Template:  TemplateDeliveryCompleted,
		Context: map[string]string{
			"shipment_id":   aggregate.ID().String(),
			"shipment_name": aggregate.Name(),
		},
	})
}
