package account

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Role classifies an actor for authorization decisions.
// Admins and Drivers are company staff; Customers own shipments and are never
// affiliated with a company.
type Role int

const (
	// RoleUnknown is the invalid zero value.
	RoleUnknown Role = iota

	// RoleAdmin manages a company: trucks, offers, and deliveries.
	RoleAdmin

	// RoleDriver operates a company's trucks and deliveries.
	RoleDriver

	// RoleCustomer creates shipments and decides on offers.
	RoleCustomer
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		RoleAdmin:    "Admin",
		RoleDriver:   "Driver",
		RoleCustomer: "Customer",
	}
}

// RoleFromString parses a role name as it appears in requests and persistence.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// String returns the human-readable role name.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects RoleUnknown and any out-of-range value.
func (r Role) Validate() error {
	if r != RoleAdmin && r != RoleDriver && r != RoleCustomer {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// IsStaff reports whether the role is a company-side role (Admin or Driver).
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleDriver
}
