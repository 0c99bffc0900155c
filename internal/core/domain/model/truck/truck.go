// Package truck models company-owned trucks and their maintenance eligibility.
package truck

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	// ErrTruckIsNotConstructed is returned when a Truck was not created via
	// NewTruck or RestoreTruck.
	ErrTruckIsNotConstructed = errors.New("Truck must be created via NewTruck constructor")

	// ErrPlateIsRequired is returned when creating a truck without a license plate.
	ErrPlateIsRequired = errs.NewValueIsRequiredError("plate")

	// ErrMaintenanceDueIsRequired is returned when creating a truck without a
	// maintenance due date.
	ErrMaintenanceDueIsRequired = errs.NewValueIsRequiredError("maintenanceDueAt")

	// ErrTruckIsInactive is returned when deactivating a truck that is already inactive.
	ErrTruckIsInactive = errs.NewInvalidTransitionError("truck", "inactive", "inactive")
)

// Truck is a company-owned vehicle. Trucks start active; the deactivation
// sweep (or a manual admin action) takes them out of rotation once maintenance
// is overdue.
type Truck struct {
	id               kernel.UUID
	companyID        kernel.UUID
	plate            string
	active           bool
	maintenanceDueAt time.Time

	guard guard.ConstructorGuard
}

// NewTruck creates an active truck for the owning company.
func NewTruck(id, companyID kernel.UUID, plate string, maintenanceDueAt time.Time) (*Truck, error) {
	t := &Truck{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setCompanyID(companyID),
		t.setPlate(plate),
		t.setMaintenanceDueAt(maintenanceDueAt),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTruck reconstructs a truck from persistence, including its active flag.
func RestoreTruck(id, companyID kernel.UUID, plate string, active bool, maintenanceDueAt time.Time) (*Truck, error) {
	t, err := NewTruck(id, companyID, plate, maintenanceDueAt)
	if err != nil {
		return nil, err
	}

	t.active = active
	return t, nil
}

// ShouldDeactivate is the pure eligibility predicate evaluated at sweep time:
// an active truck whose maintenance due date has passed must be deactivated.
func (t *Truck) ShouldDeactivate(now time.Time) bool {
	return t.active && !t.maintenanceDueAt.After(now)
}

// Deactivate takes the truck out of rotation.
func (t *Truck) Deactivate() error {
	if !t.active {
		return ErrTruckIsInactive
	}

	t.active = false
	return nil
}

// ID returns the truck's identifier.
func (t *Truck) ID() kernel.UUID {
	return t.id
}

// CompanyID returns the owning company.
func (t *Truck) CompanyID() kernel.UUID {
	return t.companyID
}

// Plate returns the truck's license plate.
func (t *Truck) Plate() string {
	return t.plate
}

// IsActive reports whether the truck is in rotation.
func (t *Truck) IsActive() bool {
	return t.active
}

// MaintenanceDueAt returns the next maintenance due date.
func (t *Truck) MaintenanceDueAt() time.Time {
	return t.maintenanceDueAt
}

// IsEqual compares trucks by identifier.
func (t *Truck) IsEqual(other *Truck) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// Validate ensures the truck was created via a constructor.
func (t *Truck) Validate() error {
	if t == nil {
		return ErrTruckIsNotConstructed
	}
	return t.guard.Validate(ErrTruckIsNotConstructed)
}

func (t *Truck) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Truck) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.companyID = id
	return nil
}

func (t *Truck) setPlate(plate string) error {
	if plate == "" {
		return ErrPlateIsRequired
	}
	t.plate = plate
	return nil
}

func (t *Truck) setMaintenanceDueAt(due time.Time) error {
	if due.IsZero() {
		return ErrMaintenanceDueIsRequired
	}
	t.maintenanceDueAt = due
	return nil
}
