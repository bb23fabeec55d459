package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrRequestProcessing,
		ErrValidation,
		ErrCatalog,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b,
					"sentinels should be distinct: %v vs %v", a, b)
			}
		}
	}
}

func TestRequestProcessingError(t *testing.T) {
	cause := errors.New("invalid character 'x' looking for beginning of value")

	tests := []struct {
		name        string
		op          string
		cause       error
		expectedMsg string
	}{
		{
			name:        "keeps cause message verbatim",
			op:          "decode request",
			cause:       cause,
			expectedMsg: "invalid character 'x' looking for beginning of value",
		},
		{
			name:        "without cause",
			op:          "assemble advice",
			cause:       nil,
			expectedMsg: "assemble advice failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRequestProcessingError(tt.op, tt.cause)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrRequestProcessing)

			var rpe *RequestProcessingError
			require.ErrorAs(t, err, &rpe)
			assert.Equal(t, tt.op, rpe.Op)
		})
	}
}

func TestRequestProcessingError_UnwrapsCause(t *testing.T) {
	var target *json.SyntaxError

	cause := json.Unmarshal([]byte("{"), &struct{}{})
	require.Error(t, cause)

	err := NewRequestProcessingError("decode request", cause)

	assert.True(t, IsRequestProcessing(err))
	assert.ErrorIs(t, err, cause)
	assert.ErrorAs(t, err, &target)
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		message     string
		expectedMsg string
	}{
		{
			name:        "with field",
			field:       "birthdate",
			message:     "must be a date in YYYY-MM-DD format",
			expectedMsg: "validation failed for birthdate: must be a date in YYYY-MM-DD format",
		},
		{
			name:        "without field",
			field:       "",
			message:     "general validation error",
			expectedMsg: "validation failed: general validation error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrValidation)

			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.field, validation.Field)
			assert.Equal(t, tt.message, validation.Message)
		})
	}
}

func TestValidationError_WithValue(t *testing.T) {
	err := NewValidationErrorWithValue("birthdate", "invalid", "1990-13-01")

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "1990-13-01", validation.Value)
	assert.Equal(t, ErrValidation, validation.Unwrap())
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		isFunc   func(error) bool
		expected bool
	}{
		{"IsRequestProcessing with typed error", NewRequestProcessingError("decode", errors.New("eof")), IsRequestProcessing, true},
		{"IsRequestProcessing with sentinel", ErrRequestProcessing, IsRequestProcessing, true},
		{"IsRequestProcessing with wrapped", fmt.Errorf("wrapped: %w", ErrRequestProcessing), IsRequestProcessing, true},
		{"IsRequestProcessing with other error", ErrValidation, IsRequestProcessing, false},
		{"IsRequestProcessing with nil", nil, IsRequestProcessing, false},

		{"IsValidation with ValidationError", NewValidationError("birthdate", "invalid"), IsValidation, true},
		{"IsValidation with sentinel", ErrValidation, IsValidation, true},
		{"IsValidation with wrapped", fmt.Errorf("wrapped: %w", ErrValidation), IsValidation, true},
		{"IsValidation with other error", ErrCatalog, IsValidation, false},
		{"IsValidation with nil", nil, IsValidation, false},

		{"IsCatalog with sentinel", ErrCatalog, IsCatalog, true},
		{"IsCatalog with wrapped", fmt.Errorf("startup: %w", ErrCatalog), IsCatalog, true},
		{"IsCatalog with other error", ErrValidation, IsCatalog, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.isFunc(tt.err))
		})
	}
}

func TestErrorWrappingChain(t *testing.T) {
	t.Run("deeply wrapped RequestProcessingError", func(t *testing.T) {
		original := NewRequestProcessingError("decode request", errors.New("unexpected EOF"))
		wrapped := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", original))

		assert.True(t, IsRequestProcessing(wrapped))

		var rpe *RequestProcessingError
		require.ErrorAs(t, wrapped, &rpe)
		assert.Equal(t, "decode request", rpe.Op)
	})

	t.Run("deeply wrapped ValidationError", func(t *testing.T) {
		original := NewValidationError("birthdate", "invalid")
		wrapped := fmt.Errorf("validation: %w", original)

		assert.True(t, IsValidation(wrapped))

		var validation *ValidationError
		require.ErrorAs(t, wrapped, &validation)
		assert.Equal(t, "birthdate", validation.Field)
	})
}
