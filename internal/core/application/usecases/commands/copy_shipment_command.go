package commands

import (
	"errors"

	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrCopyShipmentCommandIsNotConstructed = errors.New(
	"CopyShipmentCommand must be created via NewCopyShipmentCommand constructor",
)

// CopyShipmentCommand represents a request to clone an existing shipment as a
// fresh Unclaimed one. Useful for repeat freight between the same addresses.
type CopyShipmentCommand struct { //nolint:recvcheck //using for validation
	newShipmentID    kernel.UUID
	sourceShipmentID kernel.UUID
	actor            account.Actor

	guard guard.ConstructorGuard
}

// NewCopyShipmentCommand creates a command to copy the given shipment.
// Automatically generates a unique ID for the copy.
func NewCopyShipmentCommand(actor account.Actor, sourceShipmentID kernel.UUID) (CopyShipmentCommand, error) {
	command := CopyShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setNewShipmentID(kernel.NewUUID()),
		command.setSourceShipmentID(sourceShipmentID),
		command.setActor(actor),
	); err != nil {
		return CopyShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CopyShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCopyShipmentCommandIsNotConstructed)
}

// NewShipmentID returns the ID generated for the copy.
func (c CopyShipmentCommand) NewShipmentID() kernel.UUID {
	return c.newShipmentID
}

// SourceShipmentID returns the shipment being copied.
func (c CopyShipmentCommand) SourceShipmentID() kernel.UUID {
	return c.sourceShipmentID
}

// Actor returns the acting user.
func (c CopyShipmentCommand) Actor() account.Actor {
	return c.actor
}

func (c *CopyShipmentCommand) setNewShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.newShipmentID = id
	return nil
}

func (c *CopyShipmentCommand) setSourceShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.sourceShipmentID = id
	return nil
}

func (c *CopyShipmentCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
