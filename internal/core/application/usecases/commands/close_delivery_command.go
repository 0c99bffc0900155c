package commands

import (
	"errors"

	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrCloseDeliveryCommandIsNotConstructed = errors.New(
	"CloseDeliveryCommand must be created via NewCloseDeliveryCommand constructor",
)

// CloseDeliveryCommand represents a run returning with all freight delivered.
type CloseDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actor      account.Actor

	guard guard.ConstructorGuard
}

// NewCloseDeliveryCommand creates a command to close the given delivery run.
func NewCloseDeliveryCommand(actor account.Actor, deliveryID kernel.UUID) (CloseDeliveryCommand, error) {
	command := CloseDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setActor(actor),
	); err != nil {
		return CloseDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCloseDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery run being closed.
func (c CloseDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Actor returns the acting user.
func (c CloseDeliveryCommand) Actor() account.Actor {
	return c.actor
}

func (c *CloseDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.deliveryID = id
	return nil
}

func (c *CloseDeliveryCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
