package commands

import (
	"errors"

	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrLoadTruckCommandIsNotConstructed = errors.New(
	"LoadTruckCommand must be created via NewLoadTruckCommand constructor",
)

// LoadTruckCommand represents the physical loading of a delivery run's freight
// onto its truck.
type LoadTruckCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actor      account.Actor

	guard guard.ConstructorGuard
}

// NewLoadTruckCommand creates a command to mark the run's truck as loaded.
func NewLoadTruckCommand(actor account.Actor, deliveryID kernel.UUID) (LoadTruckCommand, error) {
	command := LoadTruckCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setActor(actor),
	); err != nil {
		return LoadTruckCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c LoadTruckCommand) Validate() error {
	return c.guard.Validate(ErrLoadTruckCommandIsNotConstructed)
}

// DeliveryID returns the delivery run being loaded.
func (c LoadTruckCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Actor returns the acting user.
func (c LoadTruckCommand) Actor() account.Actor {
	return c.actor
}

func (c *LoadTruckCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.deliveryID = id
	return nil
}

func (c *LoadTruckCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
