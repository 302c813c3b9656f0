package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError_Message(t *testing.T) {
	t.Parallel()

	err := NewNotFound("abc-123")
	want := "TODO with id 'abc-123' not found"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "direct not found", err: NewNotFound("id-1"), want: true},
		{name: "wrapped not found", err: fmt.Errorf("existence check: %w", NewNotFound("id-2")), want: true},
		{name: "nil", err: nil, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		// Message content must never drive classification.
		{name: "message mentioning not found", err: errors.New("resource not found upstream"), want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsNotFound(tt.err); got != tt.want {
				t.Errorf("IsNotFound(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsDomainError(t *testing.T) {
	t.Parallel()

	invalid := NewError(ErrCodeInvalid, "bad input")
	if !IsDomainError(invalid, ErrCodeInvalid) {
		t.Error("expected ErrCodeInvalid match")
	}
	if IsDomainError(invalid, ErrCodeConflict) {
		t.Error("unexpected ErrCodeConflict match")
	}

	wrapped := fmt.Errorf("outer: %w", WrapError(ErrCodeConflict, "conflict", errors.New("inner")))
	if !IsDomainError(wrapped, ErrCodeConflict) {
		t.Error("expected wrapped ErrCodeConflict match")
	}
	if IsDomainError(errors.New("plain"), ErrCodeInternal) {
		t.Error("plain error should not classify as domain error")
	}
}

func TestWrapError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("socket closed")
	err := WrapError(ErrCodeInternal, "store failure", cause)
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
	if err.Error() != "store failure: socket closed" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestValidationError_Details(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Fields: []FieldError{
		{Field: "title", Message: "must be at most 200 characters"},
		{Field: "status", Message: "is required"},
	}}

	details := err.Details()
	if len(details) != 2 {
		t.Fatalf("Details() returned %d entries, want 2", len(details))
	}
	if details[0] != "title must be at most 200 characters" {
		t.Errorf("details[0] = %q", details[0])
	}
	if details[1] != "status is required" {
		t.Errorf("details[1] = %q", details[1])
	}
	if err.Error() != "validation failed" {
		t.Errorf("Error() = %q", err.Error())
	}
}
