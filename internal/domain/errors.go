package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrNotFound            = errors.New("not found")
	ErrNoOwner             = errors.New("no owner configured (set owner.email in config or pass --owner)")
	ErrInsufficientBalance = errors.New("expense exceeds available balance")
	ErrEmptyFile           = errors.New("file is empty")
	ErrNoDraftsInFile      = errors.New("no task drafts found in file")
	ErrConfigExists        = errors.New("config file already exists")
	ErrNoSnapshot          = errors.New("no local snapshot available")
)

// Validation failure reasons.
const (
	ReasonMissingField    = "missing_field"
	ReasonInvalidDuration = "invalid_duration"
	ReasonNotesTooLong    = "notes_too_long"
	ReasonInvalidDeadline = "invalid_deadline"
	ReasonInvalidTimeSlot = "invalid_time_slot"
	ReasonInvalidPriority = "invalid_priority"
	ReasonInvalidAmount   = "invalid_amount"
	ReasonInvalidType     = "invalid_type"
	ReasonInvalidDay      = "invalid_day"
	ReasonEndBeforeStart  = "end_before_start"
)

// ValidationError is raised by form validation before any network call.
// It is always recoverable locally by correcting the input.
type ValidationError struct {
	Reason string // One of the Reason* constants
	Field  string // Offending field name, when known
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid input (%s): %s", e.Reason, e.Field)
	}
	return fmt.Sprintf("invalid input (%s)", e.Reason)
}

// NewValidationError creates a ValidationError for the given reason and field.
func NewValidationError(reason, field string) *ValidationError {
	return &ValidationError{Reason: reason, Field: field}
}

// FetchError is raised when communication with the remote repository fails.
// Prior local state is always left intact; the user retries manually.
type FetchError struct {
	Err       error  // Underlying transport or status error
	Operation string // Logical operation, e.g. "list tasks"
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch failed (%s): %v", e.Operation, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError wraps err as a FetchError for the given operation.
func NewFetchError(operation string, err error) *FetchError {
	return &FetchError{Operation: operation, Err: err}
}
