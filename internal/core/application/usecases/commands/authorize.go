package commands

import (
	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/policies"
	"freight/internal/pkg/errs"
)

// authorizationDenied builds the typed denial error surfaced when a policy
// check fails. Handlers never branch on why a policy said no.
func authorizationDenied(actor account.Actor, action policies.Action, target string) error {
	return errs.NewAuthorizationDeniedError(actor.Role().String(), string(action), target)
}
