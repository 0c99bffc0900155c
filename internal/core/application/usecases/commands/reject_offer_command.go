package commands

import (
	"errors"

	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrRejectOfferCommandIsNotConstructed = errors.New(
	"RejectOfferCommand must be created via NewRejectOfferCommand constructor",
)

// RejectOfferCommand represents the shipment owner's rejection of a bid.
type RejectOfferCommand struct { //nolint:recvcheck //using for validation
	offerID kernel.UUID
	actor   account.Actor

	guard guard.ConstructorGuard
}

// NewRejectOfferCommand creates a command to reject the given offer.
func NewRejectOfferCommand(actor account.Actor, offerID kernel.UUID) (RejectOfferCommand, error) {
	command := RejectOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOfferID(offerID),
		command.setActor(actor),
	); err != nil {
		return RejectOfferCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOfferCommand) Validate() error {
	return c.guard.Validate(ErrRejectOfferCommandIsNotConstructed)
}

// OfferID returns the offer being rejected.
func (c RejectOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

// Actor returns the acting user.
func (c RejectOfferCommand) Actor() account.Actor {
	return c.actor
}

func (c *RejectOfferCommand) setOfferID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.offerID = id
	return nil
}

func (c *RejectOfferCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
