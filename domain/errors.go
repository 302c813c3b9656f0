package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeInvalid      ErrorCode = "INVALID"
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInternal     ErrorCode = "INTERNAL"
)

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ErrInvalidPayload rejects request bodies that cannot be decoded at all.
var ErrInvalidPayload = NewError(ErrCodeInvalid, "invalid payload")

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}

// NotFoundError reports that no Todo with the given id exists in the store.
// It is an explicit kind so callers branch on the type, never on message text.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("TODO with id '%s' not found", e.ID)
}

// NewNotFound builds a NotFoundError carrying the missing id.
func NewNotFound(id string) *NotFoundError {
	return &NotFoundError{ID: id}
}

// IsNotFound reports whether err means an absent Todo.
func IsNotFound(err error) bool {
	var nfErr *NotFoundError
	return errors.As(err, &nfErr)
}

// FieldError describes a single rejected input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates the per-field failures of a request body.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// Details renders the field failures as user-facing messages.
func (e *ValidationError) Details() []string {
	details := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		details = append(details, fmt.Sprintf("%s %s", f.Field, f.Message))
	}
	return details
}
