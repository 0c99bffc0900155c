package commands

import (
	"context"

	"freight/internal/core/domain/model/offer"
	"freight/internal/pkg/errs"
)

// CreateOfferCommandHandler records a carrier's bid on an unclaimed shipment.
// Multiple companies can have pending offers on the same shipment; only the
// customer's acceptance settles the competition.
type CreateOfferCommandHandler struct {
	uowFactory OfferUoWFactory
}

// NewCreateOfferCommandHandler creates a handler for offer creation.
func NewCreateOfferCommandHandler(uowFactory OfferUoWFactory) CreateOfferCommandHandler {
	return CreateOfferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the offer creation command. Bidding on a shipment that has
// already been claimed fails with errs.ErrValueIsInvalid.
func (h CreateOfferCommandHandler) Handle(ctx context.Context, cmd CreateOfferCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Role().IsStaff() {
		return errs.NewAuthorizationDeniedError(cmd.Actor().Role().String(), "create", "offer")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}
	if target.IsClaimed() {
		return errs.NewValueIsInvalidError("shipment is already claimed")
	}

	bid, err := offer.NewOffer(
		cmd.OfferID(), cmd.ShipmentID(), *cmd.Actor().CompanyID(),
		cmd.Price(), cmd.Notes(),
	)
	if err != nil {
		return err
	}

	if err = uow.OfferRepository().Add(ctx, bid); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
