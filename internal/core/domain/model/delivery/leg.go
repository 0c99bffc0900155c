package delivery

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	// ErrLegIsNotConstructed is returned when a Leg was not created via NewLeg or RestoreLeg.
	ErrLegIsNotConstructed = errors.New("Leg must be created via NewLeg constructor")

	// ErrLegAddressIsRequired is returned when creating a leg with an empty address.
	ErrLegAddressIsRequired = errs.NewValueIsRequiredError("leg addresses")
)

// Leg ties one shipment to a delivery run and carries the address pair to be
// geocoded. Coordinates are nil until the geocoding job resolves them; sender
// and receiver resolve independently, so one side may be set while the other
// is still pending.
type Leg struct {
	id            kernel.UUID
	shipmentID    kernel.UUID
	senderAddress string
	receiverAddr  string
	senderPoint   *kernel.GeoPoint
	receiverPoint *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewLeg creates an ungeocoded leg for the given shipment.
func NewLeg(id, shipmentID kernel.UUID, senderAddress, receiverAddress string) (*Leg, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}
	if senderAddress == "" || receiverAddress == "" {
		return nil, ErrLegAddressIsRequired
	}

	return &Leg{
		id:            id,
		shipmentID:    shipmentID,
		senderAddress: senderAddress,
		receiverAddr:  receiverAddress,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreLeg reconstructs a leg from persistence, including any resolved coordinates.
func RestoreLeg(
	id, shipmentID kernel.UUID,
	senderAddress, receiverAddress string,
	senderPoint, receiverPoint *kernel.GeoPoint,
) (*Leg, error) {
	leg, err := NewLeg(id, shipmentID, senderAddress, receiverAddress)
	if err != nil {
		return nil, err
	}

	leg.senderPoint = senderPoint
	leg.receiverPoint = receiverPoint
	return leg, nil
}

// SetSenderPoint records the geocoded pickup coordinates.
func (l *Leg) SetSenderPoint(p kernel.GeoPoint) error {
	if err := p.Validate(); err != nil {
		return err
	}
	l.senderPoint = &p
	return nil
}

// SetReceiverPoint records the geocoded drop-off coordinates.
func (l *Leg) SetReceiverPoint(p kernel.GeoPoint) error {
	if err := p.Validate(); err != nil {
		return err
	}
	l.receiverPoint = &p
	return nil
}

// ID returns the leg's identifier.
func (l *Leg) ID() kernel.UUID {
	return l.id
}

// ShipmentID returns the shipment carried on this leg.
func (l *Leg) ShipmentID() kernel.UUID {
	return l.shipmentID
}

// SenderAddress returns the pickup address.
func (l *Leg) SenderAddress() string {
	return l.senderAddress
}

// ReceiverAddress returns the drop-off address.
func (l *Leg) ReceiverAddress() string {
	return l.receiverAddr
}

// SenderPoint returns the pickup coordinates, or nil while unresolved.
func (l *Leg) SenderPoint() *kernel.GeoPoint {
	return l.senderPoint
}

// ReceiverPoint returns the drop-off coordinates, or nil while unresolved.
func (l *Leg) ReceiverPoint() *kernel.GeoPoint {
	return l.receiverPoint
}

// IsGeocoded reports whether both sides of the leg have been resolved.
func (l *Leg) IsGeocoded() bool {
	return l.senderPoint != nil && l.receiverPoint != nil
}

// Validate ensures the leg was created via a constructor.
func (l *Leg) Validate() error {
	if l == nil {
		return ErrLegIsNotConstructed
	}
	return l.guard.Validate(ErrLegIsNotConstructed)
}
