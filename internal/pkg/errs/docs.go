// Package errs provides standardized error types for the parcelmatch engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the workflow engine's failure kinds:
//   - ObjectNotFoundError: a referenced shipment/offer/transaction does not exist
//   - ForbiddenError: the actor lacks authorization for the requested transition
//   - InvalidStateError: an operation's state precondition fails
//   - ConflictError: duplicate offer/hold or a retryable store-level conflict
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError:
//     validation failures on input values
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrForbidden)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Transports map the sentinels onto their own status codes; the application
// layer never inspects error strings.
package errs
