package commands

import (
	"context"
	"errors"
	"log/slog"

	"freight/internal/core/domain/model/delivery"
	"freight/internal/core/ports"
)

// GeocodeDeliveryShipmentsCommandHandler resolves leg addresses to
// coordinates. Geocoding is best-effort enrichment: a leg that cannot be
// resolved keeps empty coordinates and the delivery proceeds regardless.
//
// Failure handling per address:
//   - permanent (unresolvable address): log, leave the coordinate empty,
//     keep going with the rest of the batch
//   - rate-limited or transient: persist whatever this leg already resolved,
//     then abort the batch with the error so the caller can retry it later
//
// Already-resolved coordinates are never re-requested, which makes a retried
// batch cheap.
type GeocodeDeliveryShipmentsCommandHandler struct {
	uowFactory DeliveryUoWFactory
	geocoder   ports.Geocoder
	logger     *slog.Logger
}

// NewGeocodeDeliveryShipmentsCommandHandler creates a handler for leg geocoding.
func NewGeocodeDeliveryShipmentsCommandHandler(
	uowFactory DeliveryUoWFactory,
	geocoder ports.Geocoder,
	logger *slog.Logger,
) GeocodeDeliveryShipmentsCommandHandler {
	return GeocodeDeliveryShipmentsCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
		logger:     logger,
	}
}

// Handle processes one geocoding batch. A returned error means the batch
// should be retried; a nil return means every leg is settled, resolved or not.
func (h GeocodeDeliveryShipmentsCommandHandler) Handle(ctx context.Context, cmd GeocodeDeliveryShipmentsCommand) error {
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

	repo := uow.DeliveryRepository()
	legs, err := repo.GetLegs(ctx, cmd.LegIDs())
	if err != nil {
		return err
	}

	for _, leg := range legs {
		retryable, legErr := h.geocodeLeg(ctx, repo, leg)
		if legErr != nil && retryable {
			if commitErr := uow.Commit(ctx); commitErr != nil {
				return commitErr
			}
			return legErr
		}
	}

	return uow.Commit(ctx)
}

// geocodeLeg resolves both endpoints of a leg. It reports retryable=true when
// the batch should stop and come back later; permanent failures settle the
// field as empty and are not retryable.
func (h GeocodeDeliveryShipmentsCommandHandler) geocodeLeg(
	ctx context.Context,
	repo ports.DeliveryRepository,
	leg *delivery.Leg,
) (retryable bool, err error) {
	changed := false

	if leg.SenderPoint() == nil {
		point, geoErr := h.geocoder.Geocode(ctx, leg.SenderAddress())
		switch {
		case geoErr == nil:
			if err = leg.SetSenderPoint(point); err != nil {
				return false, err
			}
			changed = true
		case errors.Is(geoErr, ports.ErrGeocodePermanent):
			h.logUnresolvable(leg, leg.SenderAddress(), geoErr)
		default:
			return true, geoErr
		}
	}

	if leg.ReceiverPoint() == nil {
		point, geoErr := h.geocoder.Geocode(ctx, leg.ReceiverAddress())
		switch {
		case geoErr == nil:
			if err = leg.SetReceiverPoint(point); err != nil {
				return false, err
			}
			changed = true
		case errors.Is(geoErr, ports.ErrGeocodePermanent):
			h.logUnresolvable(leg, leg.ReceiverAddress(), geoErr)
		default:
			if changed {
				if updateErr := repo.UpdateLeg(ctx, leg); updateErr != nil {
					return false, updateErr
				}
			}
			return true, geoErr
		}
	}

	if changed {
		if err = repo.UpdateLeg(ctx, leg); err != nil {
			return false, err
		}
	}

	return false, nil
}

func (h GeocodeDeliveryShipmentsCommandHandler) logUnresolvable(leg *delivery.Leg, address string, err error) {
	h.logger.Warn("address cannot be geocoded",
		slog.String("leg_id", leg.ID().String()),
		slog.String("address", address),
		slog.Any("error", err),
	)
}
