// Package errs provides standardized error types for the ordering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines one error type per failure class in the system:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or unrecognized
//   - ObjectNotFoundError: a referenced object is missing or soft-deleted
//   - BusinessRuleError: the operation conflicts with current state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Anything that does not unwrap to one of these sentinels is treated as an
// internal error at the transport boundary: logged with full context and
// surfaced generically.
package errs
