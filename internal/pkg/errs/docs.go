// Package errs provides standardized error types for the order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input validation failures
//   - ObjectNotFoundError: a referenced order or menu item does not exist
//   - ObjectIsUnavailableError: a referenced menu item exists but is disabled
//   - StatusTransitionIsInvalidError: a lifecycle move the order state machine rejects
//   - VersionIsInvalidError: an optimistic concurrency conflict on save
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the failure
//
// Transport adapters map the sentinels to client-visible failures in one place.
package errs
