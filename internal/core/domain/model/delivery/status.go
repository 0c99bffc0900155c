package delivery

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status is the lifecycle state of a delivery run.
//
// State transitions:
//
//	Pending ──> Loaded ──> OutForDelivery ──> Closed
//
// Loading and starting require staff role only; closing additionally requires
// that the actor belongs to the truck's company (checked by the policy engine).
type Status int

const (
	// StatusUnknown is the invalid zero value.
	StatusUnknown Status = iota

	// StatusPending is the initial state after shipments are assigned to a truck.
	StatusPending

	// StatusLoaded means the truck has been loaded.
	StatusLoaded

	// StatusOutForDelivery means the truck is on the road.
	StatusOutForDelivery

	// StatusClosed is the final state; closing delivers every shipment on the run.
	StatusClosed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		StatusPending:        "Pending",
		StatusLoaded:         "Loaded",
		StatusOutForDelivery: "OutForDelivery",
		StatusClosed:         "Closed",
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
	case StatusPending, StatusLoaded, StatusOutForDelivery, StatusClosed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid delivery status", s))
	}
}

// Load transitions Pending→Loaded.
func (s Status) Load() (Status, error) {
	if s != StatusPending {
		return StatusUnknown, errs.NewInvalidTransitionError("delivery", s.String(), StatusLoaded.String())
	}
	return StatusLoaded, nil
}

// Start transitions Loaded→OutForDelivery.
func (s Status) Start() (Status, error) {
	if s != StatusLoaded {
		return StatusUnknown, errs.NewInvalidTransitionError("delivery", s.String(), StatusOutForDelivery.String())
	}
	return StatusOutForDelivery, nil
}

// Close transitions OutForDelivery→Closed.
func (s Status) Close() (Status, error) {
	if s != StatusOutForDelivery {
		return StatusUnknown, errs.NewInvalidTransitionError("delivery", s.String(), StatusClosed.String())
	}
	return StatusClosed, nil
}
