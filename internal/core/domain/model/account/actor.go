// Package account models the acting user for authorization decisions.
// An Actor carries exactly the attributes the policy engine needs: identity,
// role, and optional company affiliation.
package account

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	// ErrActorIsNotConstructed is returned when an Actor was not created via NewActor.
	ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

	// ErrStaffRequiresCompany is returned when an Admin or Driver is created without a company.
	ErrStaffRequiresCompany = errs.NewValueIsRequiredError("companyID for staff roles")

	// ErrCustomerHasCompany is returned when a Customer is created with a company affiliation.
	// Company affiliation is mutually exclusive with the Customer role.
	ErrCustomerHasCompany = errs.NewValueIsInvalidError("companyID must be empty for customers")
)

// Actor is the authenticated user on whose behalf an operation runs.
//
// Invariant: Admin and Driver actors always carry a company; Customer actors never do.
// The invariant is enforced at construction, so policies can rely on it.
type Actor struct {
	id        kernel.UUID
	role      Role
	companyID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewActor creates an Actor, enforcing the role/company invariant.
// companyID must be non-nil for Admin and Driver and nil for Customer.
func NewActor(id kernel.UUID, role Role, companyID *kernel.UUID) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	if role.IsStaff() && companyID == nil {
		return Actor{}, ErrStaffRequiresCompany
	}
	if role == RoleCustomer && companyID != nil {
		return Actor{}, ErrCustomerHasCompany
	}
	if companyID != nil {
		if err := companyID.Validate(); err != nil {
			return Actor{}, err
		}
	}

	return Actor{
		id:        id,
		role:      role,
		companyID: companyID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// ID returns the actor's identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// CompanyID returns the actor's company, or nil for customers.
func (a Actor) CompanyID() *kernel.UUID {
	return a.companyID
}

// IsMemberOf reports whether the actor belongs to the given company.
func (a Actor) IsMemberOf(companyID kernel.UUID) bool {
	return a.companyID != nil && a.companyID.IsEqual(companyID)
}

// Validate ensures the actor was created via NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}
