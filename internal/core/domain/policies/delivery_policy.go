package policies

import (
	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/delivery"
)

// DeliveryPolicy authorizes actions on delivery runs.
//
// Loading and starting require staff role only: dispatch staff may act before
// being tied to a specific truck. Showing and closing additionally require
// that the actor belongs to the company owning the delivery's truck.
type DeliveryPolicy struct{}

// NewDeliveryPolicy creates a DeliveryPolicy.
func NewDeliveryPolicy() DeliveryPolicy {
	return DeliveryPolicy{}
}

// Authorize implements Policy for the delivery family.
func (DeliveryPolicy) Authorize(actor account.Actor, action Action, target any) bool {
	if actor.Validate() != nil {
		return false
	}

	switch action {
	case ActionIndex, ActionLoadTruck, ActionStart:
		return actor.Role().IsStaff()
	case ActionShow, ActionClose:
		d, ok := target.(*delivery.Delivery)
		if !ok || d == nil {
			return false
		}
		return actor.Role().IsStaff() && actor.IsMemberOf(d.CompanyID())
	default:
		return false
	}
}
