// Package policies implements the authorization policy engine.
//
// Every state-changing operation names an actor, an action, and a target
// entity; one evaluator per entity family decides whether the combination is
// allowed. Evaluators are pure functions: no I/O, no side effects, and they
// never error. Any unmodeled action name — and any target of an unexpected
// type — is denied.
//
// Callers are responsible for halting the requested transition and surfacing
// an authorization failure when Authorize returns false.
package policies

import "freight/internal/core/domain/model/account"

// Action names an operation checked against a policy. The names mirror the
// request-handler surface rather than the state machine transitions.
type Action string

const (
	ActionIndex   Action = "index"
	ActionShow    Action = "show"
	ActionNew     Action = "new"
	ActionCreate  Action = "create"
	ActionEdit    Action = "edit"
	ActionUpdate  Action = "update"
	ActionDestroy Action = "destroy"
	ActionCopy    Action = "copy"
	ActionClose   Action = "close"

	ActionAssign                 Action = "assign"
	ActionAssignShipmentsToTruck Action = "assign_shipments_to_truck"
	ActionInitiateDelivery       Action = "initiate_delivery"
	ActionLoadTruck              Action = "load_truck"
	ActionStart                  Action = "start"
)

// Policy is the uniform authorization contract implemented once per entity
// family. target is the entity being acted on; collection-level actions that
// need no entity pass nil.
type Policy interface {
	Authorize(actor account.Actor, action Action, target any) bool
}
