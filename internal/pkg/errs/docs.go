// Package errs provides the typed errors shared by the domain model, the use
// cases and the HTTP adapter of the food-service API.
//
// Every error type follows the same pattern:
//   - a sentinel error (ErrValueIsRequired, ErrValueIsInvalid, ...)
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without a cause
//   - Unwrap returning the sentinel, so callers classify with errors.Is
//
// The HTTP adapter maps the sentinels onto status codes; see
// internal/adapters/in/http.
package errs
