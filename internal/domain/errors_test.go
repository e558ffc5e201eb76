package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrDuplicateDate,
		ErrValidation,
		ErrStorageUnavailable,
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

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name        string
		entity      string
		key         string
		expectedMsg string
	}{
		{
			name:        "with entity and key",
			entity:      "mood entry",
			key:         "2024-01-01",
			expectedMsg: `mood entry for "2024-01-01" not found`,
		},
		{
			name:        "with entity only",
			entity:      "mood entry",
			key:         "",
			expectedMsg: "mood entry not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewNotFoundError(tt.entity, tt.key)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrNotFound)

			var notFound *NotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, tt.entity, notFound.Entity)
			assert.Equal(t, tt.key, notFound.Key)
		})
	}
}

func TestDuplicateDateError(t *testing.T) {
	err := NewDuplicateDateError("2024-01-03")

	assert.Equal(t, "an entry for 2024-01-03 already exists", err.Error())
	require.ErrorIs(t, err, ErrDuplicateDate)

	var dup *DuplicateDateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "2024-01-03", dup.Date)
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
			field:       "date",
			message:     "must be a date in YYYY-MM-DD form",
			expectedMsg: "validation failed for date: must be a date in YYYY-MM-DD form",
		},
		{
			name:        "without field",
			field:       "",
			message:     "empty request",
			expectedMsg: "validation failed: empty request",
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

func TestValidationErrorWithValue(t *testing.T) {
	err := NewValidationErrorWithValue("mood", "not in vocabulary", "🤖")

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "🤖", validation.Value)
}

func TestStorageUnavailableError(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := NewStorageUnavailableError("create", cause)

	assert.Equal(t, "storage unavailable during create: disk I/O error", err.Error())
	require.ErrorIs(t, err, ErrStorageUnavailable)
	require.ErrorIs(t, err, cause)

	var storageErr *StorageUnavailableError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "create", storageErr.Op)

	bare := NewStorageUnavailableError("initialize", nil)
	assert.Equal(t, "storage unavailable during initialize", bare.Error())
	assert.ErrorIs(t, bare, ErrStorageUnavailable)
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		isFunc   func(error) bool
		expected bool
	}{
		{"IsNotFound with NotFoundError", NewNotFoundError("mood entry", "2024-01-01"), IsNotFound, true},
		{"IsNotFound with wrapped", fmt.Errorf("wrapped: %w", ErrNotFound), IsNotFound, true},
		{"IsNotFound with other error", ErrDuplicateDate, IsNotFound, false},
		{"IsNotFound with nil", nil, IsNotFound, false},

		{"IsDuplicateDate with DuplicateDateError", NewDuplicateDateError("2024-01-01"), IsDuplicateDate, true},
		{"IsDuplicateDate with wrapped", fmt.Errorf("wrapped: %w", ErrDuplicateDate), IsDuplicateDate, true},
		{"IsDuplicateDate with other error", ErrNotFound, IsDuplicateDate, false},

		{"IsValidation with ValidationError", NewValidationError("mood", "required"), IsValidation, true},
		{"IsValidation with other error", ErrNotFound, IsValidation, false},

		{"IsStorageUnavailable with typed", NewStorageUnavailableError("list", errors.New("x")), IsStorageUnavailable, true},
		{"IsStorageUnavailable with wrapped", fmt.Errorf("outer: %w", NewStorageUnavailableError("list", nil)), IsStorageUnavailable, true},
		{"IsStorageUnavailable with other error", ErrValidation, IsStorageUnavailable, false},
		{"IsStorageUnavailable with nil", nil, IsStorageUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.isFunc(tt.err))
		})
	}
}
