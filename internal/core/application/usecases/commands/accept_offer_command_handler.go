package commands

import (
	"context"
	"log/slog"

	"freight/internal/core/domain/model/offer"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// TemplateOfferAccepted names the notification sent to the shipment owner
// when their acceptance settles.
const TemplateOfferAccepted = "offer_accepted"

// AcceptOfferCommandHandler settles the bidding on a shipment. Accepting an
// offer flips it to Accepted and claims the shipment for the offering company
// in the same transaction.
//
// Two owners' sessions racing to accept different offers on the same shipment
// cannot both win: the shipment update is status-guarded, so the loser's
// transaction observes zero affected rows and fails with
// errs.ErrConcurrentConflict before anything is committed.
type AcceptOfferCommandHandler struct {
	uowFactory OfferUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewAcceptOfferCommandHandler creates a handler for offer acceptance.
func NewAcceptOfferCommandHandler(
	uowFactory OfferUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) AcceptOfferCommandHandler {
	return AcceptOfferCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the offer acceptance command. Only the shipment's owner may
// accept; losing offers stay Pending and simply become unacceptable once the
// shipment leaves Unclaimed. The owner notification goes out after commit and
// never rolls the acceptance back.
func (h AcceptOfferCommandHandler) Handle(ctx context.Context, cmd AcceptOfferCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	offerRepo := uow.OfferRepository()
	bid, err := offerRepo.Get(ctx, cmd.OfferID())
	if err != nil {
		return err
	}

	shipmentRepo := uow.ShipmentRepository()
	target, err := shipmentRepo.Get(ctx, bid.ShipmentID())
	if err != nil {
		return err
	}

	if !target.OwnerID().IsEqual(cmd.Actor().ID()) {
		return errs.NewAuthorizationDeniedError(cmd.Actor().Role().String(), "accept", "offer")
	}

	if err = bid.Accept(); err != nil {
		return err
	}

	if err = target.Claim(bid.CompanyID()); err != nil {
		return err
	}

	if err = shipmentRepo.UpdateInStatus(ctx, target, shipment.StatusUnclaimed); err != nil {
		return err
	}

	if err = offerRepo.Update(ctx, bid); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifySettled(ctx, bid, target, TemplateOfferAccepted)
	return nil
}

func (h AcceptOfferCommandHandler) notifySettled(
	ctx context.Context, bid *offer.Offer, target *shipment.Shipment, template string,
) {
	err := h.notifier.Send(ctx, ports.Notification{
		Recipient: target.OwnerID(),
		Template:  template,
		Context: map[string]string{
			"offer_id":    bid.ID().String(),
			"shipment_id": target.ID().String(),
			"company_id":  bid.CompanyID().String(),
		},
	})
	if err != nil {
		h.logger.WarnContext(ctx, "Offer settlement notification failed",
			slog.String("offer_id", bid.ID().String()),
			slog.Any("error", err),
		)
	}
}
