// Package errs provides the error taxonomy shared by the POS service.
//
// Every error type follows the same pattern:
//   - a sentinel error variable (e.g., ErrValueIsRequired) usable with errors.Is
//   - a struct carrying the offending parameter name and an optional cause
//   - constructors with and without cause
//   - Unwrap returning the sentinel
//
// Validation failures (missing customer name, missing discount reason, unknown payment
// method) are reported as ValueIsRequiredError or ValueIsInvalidError so that transport
// adapters can classify them without inspecting messages.
package errs
