package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Every concrete error type
// in this package unwraps to exactly one of these.
var (
	ErrObjectNotFound       = errors.New("object not found")
	ErrValueIsInvalid       = errors.New("value is invalid")
	ErrValueIsRequired      = errors.New("value is required")
	ErrStateConflict        = errors.New("state conflict")
	ErrUniquenessConflict   = errors.New("uniqueness conflict")
	ErrConfigurationMissing = errors.New("required configuration is missing")
)

// sanitize strips newlines from interpolated values so a single error message
// always occupies a single log line.
func sanitize(value any) string {
	return strings.ReplaceAll(strings.ReplaceAll(fmt.Sprintf("%v", value), "\n", " "), "\r", " ")
}

// ObjectNotFoundError indicates that a referenced entity does not exist.
// ParamName names the reference that failed to resolve (for example "unit"),
// ID carries the identifier that was looked up.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value is malformed or violates
// a business rule that does not depend on any entity's current state.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates that a required value was not provided.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// StateConflictError indicates that an operation is not legal from the entity's
// current state. Entity names what was inspected, Current is its observed state
// and Requested names the rejected operation or target state.
type StateConflictError struct {
	Entity    string
	Current   string
	Requested string
	Cause     error
}

// NewStateConflictError creates a StateConflictError without an underlying cause.
func NewStateConflictError(entity, current, requested string) *StateConflictError {
	return &StateConflictError{Entity: entity, Current: current, Requested: requested}
}

// NewStateConflictErrorWithCause creates a StateConflictError wrapping an underlying cause.
func NewStateConflictErrorWithCause(entity, current, requested string, cause error) *StateConflictError {
	return &StateConflictError{Entity: entity, Current: current, Requested: requested, Cause: cause}
}

func (e *StateConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is %s, cannot %s (cause: %v)",
			ErrStateConflict, e.Entity, e.Current, e.Requested, e.Cause)
	}
	return fmt.Sprintf("%s: %s is %s, cannot %s", ErrStateConflict, e.Entity, e.Current, e.Requested)
}

func (e *StateConflictError) Unwrap() error {
	return ErrStateConflict
}

// UniquenessConflictError indicates that a value collides with one already
// recorded on another entity (engine number, chassis number, receipt).
type UniquenessConflictError struct {
	ParamName string
	Value     any
	Cause     error
}

// NewUniquenessConflictError creates a UniquenessConflictError without an underlying cause.
func NewUniquenessConflictError(paramName string, value any) *UniquenessConflictError {
	return &UniquenessConflictError{ParamName: paramName, Value: value}
}

// NewUniquenessConflictErrorWithCause creates a UniquenessConflictError wrapping an underlying cause.
func NewUniquenessConflictErrorWithCause(paramName string, value any, cause error) *UniquenessConflictError {
	return &UniquenessConflictError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *UniquenessConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s is already in use (cause: %v)",
			ErrUniquenessConflict, e.ParamName, sanitize(e.Value), e.Cause)
	}
	return fmt.Sprintf("%s: %s %s is already in use", ErrUniquenessConflict, e.ParamName, sanitize(e.Value))
}

func (e *UniquenessConflictError) Unwrap() error {
	return ErrUniquenessConflict
}

// ConfigurationMissingError indicates that reference data the system cannot
// operate without (for example the workshop location) is absent. This is a
// fatal condition rather than a user error.
type ConfigurationMissingError struct {
	ParamName string
	Cause     error
}

// NewConfigurationMissingError creates a ConfigurationMissingError without an underlying cause.
func NewConfigurationMissingError(paramName string) *ConfigurationMissingError {
	return &ConfigurationMissingError{ParamName: paramName}
}

// NewConfigurationMissingErrorWithCause creates a ConfigurationMissingError wrapping an underlying cause.
func NewConfigurationMissingErrorWithCause(paramName string, cause error) *ConfigurationMissingError {
	return &ConfigurationMissingError{ParamName: paramName, Cause: cause}
}

func (e *ConfigurationMissingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrConfigurationMissing, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConfigurationMissing, e.ParamName)
}

func (e *ConfigurationMissingError) Unwrap() error {
	return ErrConfigurationMissing
}
