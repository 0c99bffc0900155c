package policies

import (
	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/shipment"
)

// ShipmentPolicy authorizes actions on shipments.
//
// Customers own the creation-side actions; staff own the dispatch-side
// actions. Edit/update allows either any customer or a member of the claiming
// company — note the asymmetry with DeliveryPolicy, which requires role AND
// company ownership together.
type ShipmentPolicy struct{}

// NewShipmentPolicy creates a ShipmentPolicy.
func NewShipmentPolicy() ShipmentPolicy {
	return ShipmentPolicy{}
}

// Authorize implements Policy for the shipment family. Actions that inspect
// the target deny when it is missing or of an unexpected type.
func (ShipmentPolicy) Authorize(actor account.Actor, action Action, target any) bool {
	if actor.Validate() != nil {
		return false
	}

	switch action {
	case ActionShow:
		return true
	case ActionIndex, ActionNew, ActionCreate, ActionCopy:
		return actor.Role() == account.RoleCustomer
	case ActionEdit, ActionUpdate:
		s, ok := target.(*shipment.Shipment)
		if !ok || s == nil {
			return false
		}
		if actor.Role() == account.RoleCustomer {
			return true
		}
		return s.CompanyID() != nil && actor.IsMemberOf(*s.CompanyID())
	case ActionDestroy:
		s, ok := target.(*shipment.Shipment)
		if !ok || s == nil {
			return false
		}
		return actor.Role() == account.RoleCustomer && !s.IsClaimed()
	case ActionClose, ActionAssign, ActionAssignShipmentsToTruck, ActionInitiateDelivery:
		return actor.Role().IsStaff()
	default:
		return false
	}
}
