// Package offer models a company's bid to carry a customer's shipment.
package offer

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	// ErrOfferIsNotConstructed is returned when an Offer was not created via
	// NewOffer or RestoreOffer.
	ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer constructor")

	// ErrPriceIsInvalid is returned when creating an offer with a non-positive price.
	ErrPriceIsInvalid = errs.NewValueIsInvalidError("price must be greater than 0")
)

// Offer is a company's bid on an unclaimed shipment. Offers start Pending and
// end in exactly one of the terminal states. At most one offer per shipment
// may ever reach Accepted; the accept command enforces that with a
// status-guarded shipment update.
type Offer struct {
	id         kernel.UUID
	shipmentID kernel.UUID
	companyID  kernel.UUID
	price      int64
	notes      string
	status     Status

	guard guard.ConstructorGuard
}

// NewOffer creates a pending offer. Price is in cents and must be positive;
// notes are optional.
func NewOffer(id, shipmentID, companyID kernel.UUID, price int64, notes string) (*Offer, error) {
	o := &Offer{
		notes:  notes,
		status: StatusPending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setShipmentID(shipmentID),
		o.setCompanyID(companyID),
		o.setPrice(price),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOffer reconstructs an offer from persistence.
func RestoreOffer(id, shipmentID, companyID kernel.UUID, price int64, notes string, status Status) (*Offer, error) {
	o, err := NewOffer(id, shipmentID, companyID, price, notes)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	return o, nil
}

// Accept transitions the offer Pending→Accepted. The caller is responsible
// for claiming the parent shipment in the same transaction.
func (o *Offer) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Reject transitions the offer Pending→Rejected. Rejection never affects the shipment.
func (o *Offer) Reject() error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ID returns the offer's identifier.
func (o *Offer) ID() kernel.UUID {
	return o.id
}

// ShipmentID returns the shipment this offer bids on.
func (o *Offer) ShipmentID() kernel.UUID {
	return o.shipmentID
}

// CompanyID returns the bidding company.
func (o *Offer) CompanyID() kernel.UUID {
	return o.companyID
}

// Price returns the offered price in cents.
func (o *Offer) Price() int64 {
	return o.price
}

// Notes returns the free-form notes attached to the offer.
func (o *Offer) Notes() string {
	return o.notes
}

// Status returns the current lifecycle state.
func (o *Offer) Status() Status {
	return o.status
}

// IsEqual compares offers by identifier.
func (o *Offer) IsEqual(other *Offer) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Validate ensures the offer was created via a constructor.
func (o *Offer) Validate() error {
	if o == nil {
		return ErrOfferIsNotConstructed
	}
	return o.guard.Validate(ErrOfferIsNotConstructed)
}

func (o *Offer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Offer) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.shipmentID = id
	return nil
}

func (o *Offer) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.companyID = id
	return nil
}

func (o *Offer) setPrice(price int64) error {
	if price <= 0 {
		return ErrPriceIsInvalid
	}
	o.price = price
	return nil
}
