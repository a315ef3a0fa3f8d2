// Package errs provides the standardized error taxonomy for the inventory application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The taxonomy mirrors the failure modes of the unit lifecycle workflows:
//   - ObjectNotFoundError: a referenced unit, transfer, location or shipment does not exist
//   - ValueIsInvalidError / ValueIsRequiredError: malformed or missing input
//   - StateConflictError: the operation is illegal from the entity's current state
//   - UniquenessConflictError: an engine number, chassis number or receipt collides
//     with an existing record
//   - ConfigurationMissingError: required reference data (workshop, warehouse) is absent
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrStateConflict) for errors.Is classification
//   - A struct type with fields carrying the conflicting context
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
//
// Callers classify failures with errors.Is against the sentinels; the HTTP
// adapter maps sentinels to response status codes.
package errs
