package commands

import (
	"context"
	"log/slog"

	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// TemplateOfferRejected names the notification sent to the shipment owner
// when a bid is declined.
const TemplateOfferRejected = "offer_rejected"

// RejectOfferCommandHandler declines a pending bid on behalf of the shipment
// owner. The offer transitions to Rejected and stays visible for audit.
type RejectOfferCommandHandler struct {
	uowFactory OfferUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewRejectOfferCommandHandler creates a handler for offer rejection.
func NewRejectOfferCommandHandler(
	uowFactory OfferUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) RejectOfferCommandHandler {
	return RejectOfferCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the offer rejection command. The notification goes out
// after commit and never rolls the rejection back.
func (h RejectOfferCommandHandler) Handle(ctx context.Context, cmd RejectOfferCommand) error {
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

	target, err := uow.ShipmentRepository().Get(ctx, bid.ShipmentID())
	if err != nil {
		return err
	}

	if !target.OwnerID().IsEqual(cmd.Actor().ID()) {
		return errs.NewAuthorizationDeniedError(cmd.Actor().Role().String(), "reject", "offer")
	}

	if err = bid.Reject(); err != nil {
		return err
	}

	if err = offerRepo.Update(ctx, bid); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyErr := h.notifier.Send(ctx, ports.Notification{
		Recipient: target.OwnerID(),
		Template:  TemplateOfferRejected,
		Context: map[string]string{
			"offer_id":    bid.ID().String(),
			"shipment_id": target.ID().String(),
			"company_id":  bid.CompanyID().String(),
		},
	})
	if notifyErr != nil {
		h.logger.WarnContext(ctx, "Offer settlement notification failed",
			slog.String("offer_id", bid.ID().String()),
			slog.Any("error", notifyErr),
		)
	}

	return nil
}
