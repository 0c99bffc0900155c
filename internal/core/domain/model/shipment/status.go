package shipment

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status is the lifecycle state of a shipment.
//
// State transitions:
//
//	Unclaimed ──> Claimed ──> Assigned ──> Delivered
//
// Unclaimed→Claimed happens when an offer is accepted, Claimed→Assigned when
// the shipment is put on a truck, Assigned→Delivered when the delivery closes.
// Destroying a shipment is not a transition; it is only legal from Unclaimed.
type Status int

const (
	// StatusUnknown is the invalid zero value.
	StatusUnknown Status = iota

	// StatusUnclaimed is the initial state: the shipment is open for offers.
	StatusUnclaimed

	// StatusClaimed means an offer was accepted and the shipment is bound to a company.
	StatusClaimed

	// StatusAssigned means the shipment has been assigned to one of the company's trucks.
	StatusAssigned

	// StatusDelivered is the final state.
	StatusDelivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusUnclaimed: "Unclaimed",
		StatusClaimed:   "Claimed",
		StatusAssigned:  "Assigned",
		StatusDelivered: "Delivered",
	}
}

// String returns the human-readable status name.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects StatusUnknown and out-of-range values.
func (s Status) Validate() error {
	switch s {
	case StatusUnclaimed, StatusClaimed, StatusAssigned, StatusDelivered:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid shipment status", s))
	}
}

// Claim transitions Unclaimed→Claimed.
func (s Status) Claim() (Status, error) {
	if s != StatusUnclaimed {
		return StatusUnknown, errs.NewInvalidTransitionError("shipment", s.String(), StatusClaimed.String())
	}
	return StatusClaimed, nil
}

// Assign transitions Claimed→Assigned.
func (s Status) Assign() (Status, error) {
	if s != StatusClaimed {
		return StatusUnknown, errs.NewInvalidTransitionError("shipment", s.String(), StatusAssigned.String())
	}
	return StatusAssigned, nil
}

// Deliver transitions Assigned→Delivered.
func (s Status) Deliver() (Status, error) {
	if s != StatusAssigned {
		return StatusUnknown, errs.NewInvalidTransitionError("shipment", s.String(), StatusDelivered.String())
	}
	return StatusDelivered, nil
}
