package commands

import (
	"context"

	"freight/internal/core/domain/policies"
)

// UpdateCompanyCommandHandler changes a company's name and address.
type UpdateCompanyCommandHandler struct {
	uowFactory CompanyUoWFactory
}

// NewUpdateCompanyCommandHandler creates a handler for company updates.
func NewUpdateCompanyCommandHandler(uowFactory CompanyUoWFactory) UpdateCompanyCommandHandler {
	return UpdateCompanyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the company update command.
func (h UpdateCompanyCommandHandler) Handle(ctx context.Context, cmd UpdateCompanyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !policies.NewCompanyPolicy().Authorize(cmd.Actor(), policies.ActionUpdate, nil) {
		return authorizationDenied(cmd.Actor(), policies.ActionUpdate, "company")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CompanyRepository()
	aggregate, err := repo.Get(ctx, cmd.CompanyID())
	if err != nil {
		return err
	}

	if err = aggregate.Update(cmd.Name(), cmd.Address()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
