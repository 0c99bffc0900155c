package commands

import (
	"errors"

	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrUpdateCompanyCommandIsNotConstructed = errors.New(
	"UpdateCompanyCommand must be created via NewUpdateCompanyCommand constructor",
)

// UpdateCompanyCommand represents a request to change a company's profile.
type UpdateCompanyCommand struct { //nolint:recvcheck //using for validation
	companyID kernel.UUID
	actor     account.Actor
	name      string
	address   string

	guard guard.ConstructorGuard
}

// NewUpdateCompanyCommand creates a command to update a company's name and address.
func NewUpdateCompanyCommand(actor account.Actor, companyID kernel.UUID, name, address string) (UpdateCompanyCommand, error) {
	command := UpdateCompanyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCompanyID(companyID),
		command.setActor(actor),
	); err != nil {
		return UpdateCompanyCommand{}, err
	}

	command.name = name
	command.address = address
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCompanyCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCompanyCommandIsNotConstructed)
}

// CompanyID returns the target company ID.
func (c UpdateCompanyCommand) CompanyID() kernel.UUID {
	return c.companyID
}

// Actor returns the acting user.
func (c UpdateCompanyCommand) Actor() account.Actor {
	return c.actor
}

// Name returns the new company name.
func (c UpdateCompanyCommand) Name() string {
	return c.name
}

// Address returns the new company address.
func (c UpdateCompanyCommand) Address() string {
	return c.address
}

func (c *UpdateCompanyCommand) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.companyID = id
	return nil
}

func (c *UpdateCompanyCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
