package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrNotifyCommandIsNotConstructed = errors.New(
	"NotifyDeliveryCompletedCommand must be created via NewNotifyDeliveryCompletedCommand constructor",
)

// NotifyDeliveryCompletedCommand carries one delivered-shipment notification
// for its owner.
type NotifyDeliveryCompletedCommand struct { //nolint:recvcheck //using for validation
	ownerID    kernel.UUID
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewNotifyDeliveryCompletedCommand creates a command to notify the owner that
// their shipment was delivered.
func NewNotifyDeliveryCompletedCommand(ownerID, shipmentID kernel.UUID) (NotifyDeliveryCompletedCommand, error) {
	command := NotifyDeliveryCompletedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOwnerID(ownerID),
		command.setShipmentID(shipmentID),
	); err != nil {
		return NotifyDeliveryCompletedCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c NotifyDeliveryCompletedCommand) Validate() error {
	return c.guard.Validate(ErrNotifyCommandIsNotConstructed)
}

// OwnerID returns the notification recipient.
func (c NotifyDeliveryCompletedCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// ShipmentID returns the delivered shipment.
func (c NotifyDeliveryCompletedCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *NotifyDeliveryCompletedCommand) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.ownerID = id
	return nil
}

func (c *NotifyDeliveryCompletedCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentID = id
	return nil
}
