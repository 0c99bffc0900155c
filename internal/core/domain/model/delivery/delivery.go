// Package delivery models a truck's delivery run and its shipment legs.
package delivery

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery was not created
	// via NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrLegsAreRequired is returned when creating a delivery without legs.
	ErrLegsAreRequired = errs.NewValueIsRequiredError("legs")
)

// Delivery is the aggregate root for one truck run. It carries the truck, the
// owning company (denormalized from the truck for authorization checks), and
// the shipment legs on board.
type Delivery struct {
	id        kernel.UUID
	truckID   kernel.UUID
	companyID kernel.UUID
	status    Status
	legs      []*Leg

	guard guard.ConstructorGuard
}

// NewDelivery creates a pending delivery for the given truck with at least one leg.
// companyID is the truck's owning company.
func NewDelivery(id, truckID, companyID kernel.UUID, legs []*Leg) (*Delivery, error) {
	if err := errors.Join(id.Validate(), truckID.Validate(), companyID.Validate()); err != nil {
		return nil, err
	}
	if len(legs) == 0 {
		return nil, ErrLegsAreRequired
	}
	for _, leg := range legs {
		if err := leg.Validate(); err != nil {
			return nil, err
		}
	}

	return &Delivery{
		id:        id,
		truckID:   truckID,
		companyID: companyID,
		status:    StatusPending,
		legs:      legs,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreDelivery reconstructs a delivery from persistence.
func RestoreDelivery(id, truckID, companyID kernel.UUID, status Status, legs []*Leg) (*Delivery, error) {
	d, err := NewDelivery(id, truckID, companyID, legs)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	d.status = status
	return d, nil
}

// Load transitions Pending→Loaded.
func (d *Delivery) Load() error {
	newStatus, err := d.status.Load()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Start transitions Loaded→OutForDelivery.
func (d *Delivery) Start() error {
	newStatus, err := d.status.Start()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Close transitions OutForDelivery→Closed. The caller delivers each leg's
// shipment in the same transaction and schedules completion notifications
// after commit.
func (d *Delivery) Close() error {
	newStatus, err := d.status.Close()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// ID returns the delivery's identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// TruckID returns the truck running this delivery.
func (d *Delivery) TruckID() kernel.UUID {
	return d.truckID
}

// CompanyID returns the company that owns the truck.
func (d *Delivery) CompanyID() kernel.UUID {
	return d.companyID
}

// Status returns the current lifecycle state.
func (d *Delivery) Status() Status {
	return d.status
}

// Legs returns the shipment legs on this run.
func (d *Delivery) Legs() []*Leg {
	return d.legs
}

// IsEqual compares deliveries by identifier.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// Validate ensures the delivery was created via a constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}
