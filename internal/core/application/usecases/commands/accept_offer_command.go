package commands

import (
	"errors"

	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrAcceptOfferCommandIsNotConstructed = errors.New(
	"AcceptOfferCommand must be created via NewAcceptOfferCommand constructor",
)

// AcceptOfferCommand represents the shipment owner's acceptance of a bid.
type AcceptOfferCommand struct { //nolint:recvcheck //using for validation
	offerID kernel.UUID
	actor   account.Actor

	guard guard.ConstructorGuard
}

// NewAcceptOfferCommand creates a command to accept the given offer.
func NewAcceptOfferCommand(actor account.Actor, offerID kernel.UUID) (AcceptOfferCommand, error) {
	command := AcceptOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOfferID(offerID),
		command.setActor(actor),
	); err != nil {
		return AcceptOfferCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOfferCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOfferCommandIsNotConstructed)
}

// OfferID returns the offer being accepted.
func (c AcceptOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

// Actor returns the acting user.
func (c AcceptOfferCommand) Actor() account.Actor {
	return c.actor
}

func (c *AcceptOfferCommand) setOfferID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.offerID = id
	return nil
}

func (c *AcceptOfferCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
