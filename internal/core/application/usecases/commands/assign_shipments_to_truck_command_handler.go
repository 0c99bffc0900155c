package commands

import (
	"context"

	"freight/internal/core/domain/model/delivery"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/policies"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// AssignShipmentsToTruckCommandHandler turns claimed shipments into a delivery
// run. Each shipment transitions Claimed to Assigned, and the run gets one leg
// per shipment carrying its addresses. Geocoding of the legs is scheduled
// after commit so the transaction never waits on provider I/O.
type AssignShipmentsToTruckCommandHandler struct {
	uowFactory       AssignmentUoWFactory
	geocodeScheduler ports.GeocodeScheduler
}

// NewAssignShipmentsToTruckCommandHandler creates a handler for shipment assignment.
func NewAssignShipmentsToTruckCommandHandler(
	uowFactory AssignmentUoWFactory,
	geocodeScheduler ports.GeocodeScheduler,
) AssignShipmentsToTruckCommandHandler {
	return AssignShipmentsToTruckCommandHandler{
		uowFactory:       uowFactory,
		geocodeScheduler: geocodeScheduler,
	}
}

// Handle processes the assignment command. The truck must be active and belong
// to the acting staff member's company; every shipment must be claimed by that
// same company.
func (h AssignShipmentsToTruckCommandHandler) Handle(ctx context.Context, cmd AssignShipmentsToTruckCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !policies.NewShipmentPolicy().Authorize(cmd.Actor(), policies.ActionAssignShipmentsToTruck, nil) {
		return authorizationDenied(cmd.Actor(), policies.ActionAssignShipmentsToTruck, "shipment")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	carrier, err := uow.TruckRepository().Get(ctx, cmd.TruckID())
	if err != nil {
		return err
	}
	if !carrier.IsActive() {
		return errs.NewValueIsInvalidError("truck is deactivated")
	}
	if !cmd.Actor().IsMemberOf(carrier.CompanyID()) {
		return authorizationDenied(cmd.Actor(), policies.ActionAssignShipmentsToTruck, "truck")
	}

	shipmentRepo := uow.ShipmentRepository()
	legs := make([]*delivery.Leg, 0, len(cmd.ShipmentIDs()))
	for _, shipmentID := range cmd.ShipmentIDs() {
		s, getErr := shipmentRepo.Get(ctx, shipmentID)
		if getErr != nil {
			return getErr
		}
		if s.CompanyID() == nil || !s.CompanyID().IsEqual(carrier.CompanyID()) {
			return errs.NewValueIsInvalidError("shipment is not claimed by the truck's company")
		}

		if err = s.Assign(); err != nil {
			return err
		}
		if err = shipmentRepo.Update(ctx, s); err != nil {
			return err
		}

		leg, legErr := delivery.NewLeg(kernel.NewUUID(), s.ID(), s.SenderAddress(), s.ReceiverAddress())
		if legErr != nil {
			return legErr
		}
		legs = append(legs, leg)
	}

	run, err := delivery.NewDelivery(cmd.DeliveryID(), carrier.ID(), carrier.CompanyID(), legs)
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, run); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	legIDs := make([]kernel.UUID, 0, len(legs))
	for _, leg := range legs {
		legIDs = append(legIDs, leg.ID())
	}
	h.geocodeScheduler.ScheduleGeocoding(legIDs)

	return nil
}
