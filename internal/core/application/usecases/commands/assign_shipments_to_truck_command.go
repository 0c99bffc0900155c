package commands

import (
	"errors"

	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrAssignShipmentsCommandIsNotConstructed = errors.New(
		"AssignShipmentsToTruckCommand must be created via NewAssignShipmentsToTruckCommand constructor",
	)
	ErrShipmentIDsAreRequired = errs.NewValueIsRequiredError("shipmentIDs")
)

// AssignShipmentsToTruckCommand represents a dispatcher's request to put
// claimed shipments on a truck, creating a delivery run with one leg per
// shipment.
type AssignShipmentsToTruckCommand struct { //nolint:recvcheck //using for validation
	deliveryID  kernel.UUID
	truckID     kernel.UUID
	shipmentIDs []kernel.UUID
	actor       account.Actor

	guard guard.ConstructorGuard
}

// NewAssignShipmentsToTruckCommand creates a command to assign shipments to
// the given truck. Automatically generates a unique ID for the delivery run.
func NewAssignShipmentsToTruckCommand(
	actor account.Actor,
	truckID kernel.UUID,
	shipmentIDs []kernel.UUID,
) (AssignShipmentsToTruckCommand, error) {
	command := AssignShipmentsToTruckCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(kernel.NewUUID()),
		command.setTruckID(truckID),
		command.setShipmentIDs(shipmentIDs),
		command.setActor(actor),
	); err != nil {
		return AssignShipmentsToTruckCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignShipmentsToTruckCommand) Validate() error {
	return c.guard.Validate(ErrAssignShipmentsCommandIsNotConstructed)
}

// DeliveryID returns the ID generated for the delivery run.
func (c AssignShipmentsToTruckCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// TruckID returns the truck receiving the shipments.
func (c AssignShipmentsToTruckCommand) TruckID() kernel.UUID {
	return c.truckID
}

// ShipmentIDs returns the shipments being assigned.
func (c AssignShipmentsToTruckCommand) ShipmentIDs() []kernel.UUID {
	return c.shipmentIDs
}

// Actor returns the acting user.
func (c AssignShipmentsToTruckCommand) Actor() account.Actor {
	return c.actor
}

func (c *AssignShipmentsToTruckCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.deliveryID = id
	return nil
}

func (c *AssignShipmentsToTruckCommand) setTruckID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.truckID = id
	return nil
}

func (c *AssignShipmentsToTruckCommand) setShipmentIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return ErrShipmentIDsAreRequired
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.shipmentIDs = ids
	return nil
}

func (c *AssignShipmentsToTruckCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
