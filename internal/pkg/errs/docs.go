// Package errs provides standardized error types for the QuickCart application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package groups failures into three families:
//   - validation: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError, ObjectNotFoundError
//   - authorization: AccessDeniedError (wrong role, rider not available, rider not assigned)
//   - state conflict: StateConflictError (transition not permitted, empty cart, insufficient stock)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so callers classify with errors.Is
package errs
