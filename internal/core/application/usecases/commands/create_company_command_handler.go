package commands

import (
	"context"

	"freight/internal/core/domain/model/company"
	"freight/internal/core/domain/policies"
)

// CreateCompanyCommandHandler registers carrier companies. Only an admin
// without an existing company may create one.
type CreateCompanyCommandHandler struct {
	uowFactory CompanyUoWFactory
}

// NewCreateCompanyCommandHandler creates a handler for company registration.
func NewCreateCompanyCommandHandler(uowFactory CompanyUoWFactory) CreateCompanyCommandHandler {
	return CreateCompanyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the company creation command.
func (h CreateCompanyCommandHandler) Handle(ctx context.Context, cmd CreateCompanyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !policies.NewCompanyPolicy().Authorize(cmd.Actor(), policies.ActionCreate, nil) {
		return authorizationDenied(cmd.Actor(), policies.ActionCreate, "company")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := company.NewCompany(cmd.CompanyID(), cmd.Name(), cmd.Address(), cmd.AdminEmails())
	if err != nil {
		return err
	}

	if err = uow.CompanyRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
