package commands

import (
	"errors"

	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrCreateCompanyCommandIsNotConstructed = errors.New(
	"CreateCompanyCommand must be created via NewCreateCompanyCommand constructor",
)

// CreateCompanyCommand represents a request to register a carrier company.
// The acting admin becomes the company's first administrator.
type CreateCompanyCommand struct { //nolint:recvcheck //using for validation
	companyID   kernel.UUID
	actor       account.Actor
	name        string
	address     string
	adminEmails []string

	guard guard.ConstructorGuard
}

// NewCreateCompanyCommand creates a command to register a carrier company.
// Automatically generates a unique ID for the company.
func NewCreateCompanyCommand(actor account.Actor, name, address string, adminEmails []string) (CreateCompanyCommand, error) {
	command := CreateCompanyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCompanyID(kernel.NewUUID()),
		command.setActor(actor),
	); err != nil {
		return CreateCompanyCommand{}, err
	}

	command.name = name
	command.address = address
	command.adminEmails = adminEmails
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCompanyCommand) Validate() error {
	return c.guard.Validate(ErrCreateCompanyCommandIsNotConstructed)
}

// CompanyID returns the generated company ID.
func (c CreateCompanyCommand) CompanyID() kernel.UUID {
	return c.companyID
}

// Actor returns the acting user.
func (c CreateCompanyCommand) Actor() account.Actor {
	return c.actor
}

// Name returns the company name from the command.
func (c CreateCompanyCommand) Name() string {
	return c.name
}

// Address returns the company address from the command.
func (c CreateCompanyCommand) Address() string {
	return c.address
}

// AdminEmails returns the administrator emails from the command.
func (c CreateCompanyCommand) AdminEmails() []string {
	return c.adminEmails
}

func (c *CreateCompanyCommand) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.companyID = id
	return nil
}

func (c *CreateCompanyCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
