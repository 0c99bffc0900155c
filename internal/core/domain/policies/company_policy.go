package policies

import "freight/internal/core/domain/model/account"

// CompanyPolicy authorizes actions on carrier companies.
//
// Creation is limited to admins that have no company yet, which makes the
// company a per-admin singleton. Edit/update permits any admin regardless of
// company match (platform-admin behavior, kept as-is pending product review).
type CompanyPolicy struct{}

// NewCompanyPolicy creates a CompanyPolicy.
func NewCompanyPolicy() CompanyPolicy {
	return CompanyPolicy{}
}

// Authorize implements Policy for the company family.
func (CompanyPolicy) Authorize(actor account.Actor, action Action, _ any) bool {
	if actor.Validate() != nil {
		return false
	}

	switch action {
	case ActionShow:
		return true
	case ActionNew, ActionCreate:
		return actor.Role() == account.RoleAdmin && actor.CompanyID() == nil
	case ActionEdit, ActionUpdate:
		return actor.Role() == account.RoleAdmin
	default:
		return false
	}
}
