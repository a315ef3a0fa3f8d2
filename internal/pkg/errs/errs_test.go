package errs_test

import (
	"errors"
	"testing"

	"inventory/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("unit", "123")

		assert.Equal(t, "unit", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("unit", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: unit, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("receipt")

		assert.Equal(t, "receipt", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: receipt", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("receipt", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: receipt (cause: invalid format)", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("brand")

	assert.Equal(t, "brand", err.ParamName)
	assert.Equal(t, "value is required: brand", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestStateConflictError(t *testing.T) {
	t.Run("NewStateConflictError", func(t *testing.T) {
		err := errs.NewStateConflictError("unit", "SOLD", "sell")

		assert.Equal(t, "unit", err.Entity)
		assert.Equal(t, "SOLD", err.Current)
		assert.Equal(t, "sell", err.Requested)
		assert.Equal(t, "state conflict: unit is SOLD, cannot sell", err.Error())
		assert.Equal(t, errs.ErrStateConflict, err.Unwrap())
	})

	t.Run("NewStateConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("transfer already completed")
		err := errs.NewStateConflictErrorWithCause("transfer", "RECEIVED", "receive", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"state conflict: transfer is RECEIVED, cannot receive (cause: transfer already completed)",
			err.Error())
	})
}

func TestUniquenessConflictError(t *testing.T) {
	t.Run("NewUniquenessConflictError", func(t *testing.T) {
		err := errs.NewUniquenessConflictError("engine_number", int64(12345678901234))

		assert.Equal(t, "engine_number", err.ParamName)
		assert.Equal(t, "uniqueness conflict: engine_number 12345678901234 is already in use", err.Error())
		assert.Equal(t, errs.ErrUniquenessConflict, err.Unwrap())
	})

	t.Run("sanitizes_newlines_in_values", func(t *testing.T) {
		err := errs.NewUniquenessConflictError("receipt", "R\n001")
		assert.NotContains(t, err.Error(), "\n")
		assert.Contains(t, err.Error(), "R 001")
	})
}

func TestConfigurationMissingError(t *testing.T) {
	err := errs.NewConfigurationMissingError("workshop location")

	assert.Equal(t, "workshop location", err.ParamName)
	assert.Equal(t, "required configuration is missing: workshop location", err.Error())
	assert.Equal(t, errs.ErrConfigurationMissing, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error_messages_match_expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "state conflict", errs.ErrStateConflict.Error())
		assert.Equal(t, "uniqueness conflict", errs.ErrUniquenessConflict.Error())
		assert.Equal(t, "required configuration is missing", errs.ErrConfigurationMissing.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors_is_works_with_custom_errors", func(t *testing.T) {
		var err error = errs.NewStateConflictError("unit", "SOLD", "sell")
		assert.True(t, errors.Is(err, errs.ErrStateConflict))
		assert.False(t, errors.Is(err, errs.ErrObjectNotFound))

		err = errs.NewUniquenessConflictError("receipt", "R-001")
		assert.True(t, errors.Is(err, errs.ErrUniquenessConflict))

		err = errs.NewObjectNotFoundError("transfer", "42")
		assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
	})
}
