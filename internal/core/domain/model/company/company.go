// Package company models carrier companies that bid on and haul shipments.
package company

import (
	"errors"
	"slices"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	// ErrCompanyIsNotConstructed is returned when a Company was not created via NewCompany.
	ErrCompanyIsNotConstructed = errors.New("Company must be created via NewCompany constructor")

	// ErrNameIsRequired is returned when creating a company without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrAddressIsRequired is returned when creating a company without an address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")

	// ErrAdminEmailIsRequired is returned when creating a company with no admin emails.
	ErrAdminEmailIsRequired = errs.NewValueIsRequiredError("adminEmails")
)

// Company is a carrier that owns trucks, submits offers on customer shipments,
// and runs deliveries. A company is created once per registering admin who has
// no prior company; after that the admin's company pointer never changes.
type Company struct {
	id          kernel.UUID
	name        string
	address     string
	adminEmails []string

	guard guard.ConstructorGuard
}

// NewCompany creates a Company. Name, address, and at least one admin email
// are required. Duplicate admin emails are collapsed.
func NewCompany(id kernel.UUID, name, address string, adminEmails []string) (*Company, error) {
	c := &Company{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setAddress(address),
		c.setAdminEmails(adminEmails),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCompany reconstructs a Company from persistence without re-deriving state.
func RestoreCompany(id kernel.UUID, name, address string, adminEmails []string) (*Company, error) {
	return NewCompany(id, name, address, adminEmails)
}

// Update changes the company's descriptive fields.
func (c *Company) Update(name, address string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return errors.Join(
		c.setName(name),
		c.setAddress(address),
	)
}

// AddAdminEmail registers another admin notification address. Adding an
// existing address is a no-op.
func (c *Company) AddAdminEmail(email string) error {
	if email == "" {
		return ErrAdminEmailIsRequired
	}
	if !slices.Contains(c.adminEmails, email) {
		c.adminEmails = append(c.adminEmails, email)
	}
	return nil
}

// ID returns the company's identifier.
func (c *Company) ID() kernel.UUID {
	return c.id
}

// Name returns the company's display name.
func (c *Company) Name() string {
	return c.name
}

// Address returns the company's postal address.
func (c *Company) Address() string {
	return c.address
}

// AdminEmails returns a copy of the admin notification addresses.
func (c *Company) AdminEmails() []string {
	return slices.Clone(c.adminEmails)
}

// IsEqual compares companies by identifier.
func (c *Company) IsEqual(other *Company) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// Validate ensures the company was created via NewCompany.
func (c *Company) Validate() error {
	if c == nil {
		return ErrCompanyIsNotConstructed
	}
	return c.guard.Validate(ErrCompanyIsNotConstructed)
}

func (c *Company) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Company) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Company) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	c.address = address
	return nil
}

func (c *Company) setAdminEmails(emails []string) error {
	deduped := make([]string, 0, len(emails))
	for _, email := range emails {
		if email != "" && !slices.Contains(deduped, email) {
			deduped = append(deduped, email)
		}
	}
	if len(deduped) == 0 {
		return ErrAdminEmailIsRequired
	}
	c.adminEmails = deduped
	return nil
}
