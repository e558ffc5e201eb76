// Package domain contains the journal's entities, outcomes and errors.
// Domain errors describe journal-level failures. They know nothing about
// SQLite or the terminal and are translated into messages by the shell.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates no entry exists for the requested date.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateDate indicates an entry already exists for the date.
	ErrDuplicateDate = errors.New("duplicate date")

	// ErrValidation indicates a candidate entry failed validation.
	ErrValidation = errors.New("validation failed")

	// ErrStorageUnavailable indicates the backing store could not be used.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	Key    string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s for %q not found", e.Entity, e.Key)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, key string) error {
	return &NotFoundError{Entity: entity, Key: key}
}

// DuplicateDateError reports that a date already has an entry.
type DuplicateDateError struct {
	Date string
}

// Error implements the error interface.
func (e *DuplicateDateError) Error() string {
	return fmt.Sprintf("an entry for %s already exists", e.Date)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *DuplicateDateError) Unwrap() error {
	return ErrDuplicateDate
}

// NewDuplicateDateError creates a duplicate date error.
func NewDuplicateDateError(date string) error {
	return &DuplicateDateError{Date: date}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// StorageUnavailableError wraps an infrastructure failure of the store.
// It matches both ErrStorageUnavailable and the underlying cause.
type StorageUnavailableError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *StorageUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("storage unavailable during %s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("storage unavailable during %s", e.Op)
}

// Is reports whether target is ErrStorageUnavailable.
func (e *StorageUnavailableError) Is(target error) bool {
	return target == ErrStorageUnavailable
}

// Unwrap returns the underlying driver error.
func (e *StorageUnavailableError) Unwrap() error {
	return e.Err
}

// NewStorageUnavailableError creates a storage error for the named operation.
func NewStorageUnavailableError(op string, err error) error {
	return &StorageUnavailableError{Op: op, Err: err}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateDate checks if an error is a duplicate date error.
func IsDuplicateDate(err error) bool {
	return errors.Is(err, ErrDuplicateDate)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsStorageUnavailable checks if an error is a storage failure.
func IsStorageUnavailable(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}
