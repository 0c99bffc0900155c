package commands

import (
	"errors"

	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateOfferCommandIsNotConstructed = errors.New(
		"CreateOfferCommand must be created via NewCreateOfferCommand constructor",
	)
	ErrActorHasNoCompany = errors.New("actor does not belong to a company")
)

// CreateOfferCommand represents a carrier's bid on an unclaimed shipment.
// The offer is made on behalf of the acting staff member's company.
type CreateOfferCommand struct { //nolint:recvcheck //using for validation
	offerID    kernel.UUID
	shipmentID kernel.UUID
	actor      account.Actor
	price      int64
	notes      string

	guard guard.ConstructorGuard
}

// NewCreateOfferCommand creates a command to bid on a shipment. price is the
// offered amount in cents. The actor must be a staff member of a company.
func NewCreateOfferCommand(actor account.Actor, shipmentID kernel.UUID, price int64, notes string) (CreateOfferCommand, error) {
	command := CreateOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOfferID(kernel.NewUUID()),
		command.setShipmentID(shipmentID),
		command.setActor(actor),
	); err != nil {
		return CreateOfferCommand{}, err
	}

	command.price = price
	command.notes = notes
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOfferCommand) Validate() error {
	return c.guard.Validate(ErrCreateOfferCommandIsNotConstructed)
}

// OfferID returns the generated offer ID.
func (c CreateOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

// ShipmentID returns the shipment being bid on.
func (c CreateOfferCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Actor returns the acting user.
func (c CreateOfferCommand) Actor() account.Actor {
	return c.actor
}

// Price returns the offered amount in cents.
func (c CreateOfferCommand) Price() int64 {
	return c.price
}

// Notes returns the free-form notes attached to the offer.
func (c CreateOfferCommand) Notes() string {
	return c.notes
}

func (c *CreateOfferCommand) setOfferID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.offerID = id
	return nil
}

func (c *CreateOfferCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentID = id
	return nil
}

func (c *CreateOfferCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.CompanyID() == nil {
		return ErrActorHasNoCompany
	}

	c.actor = actor
	return nil
}
