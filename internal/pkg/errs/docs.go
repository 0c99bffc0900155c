// Package errs provides standardized error types for the freight coordination core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers two groups of errors:
//
// Validation errors raised while constructing domain objects:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//   - ObjectNotFoundError: an object cannot be found
//
// Domain errors raised while applying lifecycle transitions:
//   - AuthorizationDeniedError: the policy engine rejected the action
//   - InvalidTransitionError: a state machine rejected the transition
//   - ConcurrentConflictError: a racing transition on the same entity won
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where applicable
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Callers classify errors at boundaries with errors.Is against the sentinels,
// never by string matching.
package errs
