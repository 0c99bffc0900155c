package offer

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status is the lifecycle state of an offer.
//
// State transitions:
//
//	Pending ──┬──> Accepted
//	          └──> Rejected
//
// Accepted and Rejected are both terminal.
type Status int

const (
	// StatusUnknown is the invalid zero value.
	StatusUnknown Status = iota

	// StatusPending is the initial state: the offer awaits the shipment owner's decision.
	StatusPending

	// StatusAccepted is terminal; acceptance claims the parent shipment.
	StatusAccepted

	// StatusRejected is terminal; rejection never affects the shipment.
	StatusRejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "Unknown",
		StatusPending:  "Pending",
		StatusAccepted: "Accepted",
		StatusRejected: "Rejected",
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
	case StatusPending, StatusAccepted, StatusRejected:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid offer status", s))
	}
}

// Accept transitions Pending→Accepted.
func (s Status) Accept() (Status, error) {
	if s != StatusPending {
		return StatusUnknown, errs.NewInvalidTransitionError("offer", s.String(), StatusAccepted.String())
	}
	return StatusAccepted, nil
}

// Reject transitions Pending→Rejected.
func (s Status) Reject() (Status, error) {
	if s != StatusPending {
		return StatusUnknown, errs.NewInvalidTransitionError("offer", s.String(), StatusRejected.String())
	}
	return StatusRejected, nil
}
