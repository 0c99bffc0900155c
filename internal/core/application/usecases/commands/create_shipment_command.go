package commands

import (
	"errors"

	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a customer's request to post new freight.
// The acting customer becomes the shipment's owner.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID      kernel.UUID
	actor           account.Actor
	name            string
	senderAddress   string
	receiverAddress string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to post a new shipment.
// Automatically generates a unique ID for the shipment.
func NewCreateShipmentCommand(actor account.Actor, name, senderAddress, receiverAddress string) (CreateShipmentCommand, error) {
	command := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(kernel.NewUUID()),
		command.setActor(actor),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	command.name = name
	command.senderAddress = senderAddress
	command.receiverAddress = receiverAddress
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the generated shipment ID.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Actor returns the acting user.
func (c CreateShipmentCommand) Actor() account.Actor {
	return c.actor
}

// Name returns the shipment name from the command.
func (c CreateShipmentCommand) Name() string {
	return c.name
}

// SenderAddress returns the pickup address from the command.
func (c CreateShipmentCommand) SenderAddress() string {
	return c.senderAddress
}

// ReceiverAddress returns the drop-off address from the command.
func (c CreateShipmentCommand) ReceiverAddress() string {
	return c.receiverAddress
}

func (c *CreateShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentID = id
	return nil
}

func (c *CreateShipmentCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
