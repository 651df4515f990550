// Package errs provides standardized error types for the orders application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//   - ValueIsDuplicatedError: For when a unique value is already taken
//   - ObjectNotFoundError: For when an object cannot be found
//   - ValidationError: A field-keyed collection of the errors above
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// ValidationError unwraps to every error it holds, so errors.Is matches any
// recorded violation as well as ErrValidationFailed. HTTP adapters use
// Messages() to render the field-keyed error payload.
package errs
