package transport

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/todokit/backend/domain"
	"github.com/todokit/backend/repository"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 2000
)

var dueDateLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02",
}

// CreateTodoRequest is the accepted body of POST /api/todos.
type CreateTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`

	dueDate *time.Time
}

// Validate checks every field constraint and returns a ValidationError
// listing all failures, or nil. On success the parsed due date is cached for
// DueDateValue.
func (r *CreateTodoRequest) Validate() error {
	var fields []domain.FieldError

	if strings.TrimSpace(r.Title) == "" {
		fields = append(fields, domain.FieldError{Field: "title", Message: "is required"})
	} else if utf8.RuneCountInString(r.Title) > maxTitleLength {
		fields = append(fields, domain.FieldError{
			Field:   "title",
			Message: fmt.Sprintf("must be at most %d characters", maxTitleLength),
		})
	}

	if utf8.RuneCountInString(r.Description) > maxDescriptionLength {
		fields = append(fields, domain.FieldError{
			Field:   "description",
			Message: fmt.Sprintf("must be at most %d characters", maxDescriptionLength),
		})
	}

	if r.Status == "" {
		fields = append(fields, domain.FieldError{Field: "status", Message: "is required"})
	} else if !domain.Status(r.Status).IsValid() {
		fields = append(fields, domain.FieldError{Field: "status", Message: enumMessage(r.Status, "pending, in-progress, completed")})
	}

	if r.Priority != "" && !domain.Priority(r.Priority).IsValid() {
		fields = append(fields, domain.FieldError{Field: "priority", Message: enumMessage(r.Priority, "low, medium, high")})
	}

	if r.DueDate != "" {
		parsed, err := parseDueDate(r.DueDate)
		if err != nil {
			fields = append(fields, domain.FieldError{Field: "dueDate", Message: "must be an ISO 8601 date string"})
		} else {
			r.dueDate = &parsed
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// DueDateValue returns the due date parsed during Validate, or nil.
func (r *CreateTodoRequest) DueDateValue() *time.Time {
	return r.dueDate
}

// UpdateTodoRequest is the accepted body of PUT /api/todos/{id}. Every field
// is optional; absent fields leave the stored value unchanged.
type UpdateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`

	dueDate *time.Time
}

// Validate applies the creation constraints to whichever fields are present.
func (r *UpdateTodoRequest) Validate() error {
	var fields []domain.FieldError

	if r.Title != nil {
		if strings.TrimSpace(*r.Title) == "" {
			fields = append(fields, domain.FieldError{Field: "title", Message: "must not be empty"})
		} else if utf8.RuneCountInString(*r.Title) > maxTitleLength {
			fields = append(fields, domain.FieldError{
				Field:   "title",
				Message: fmt.Sprintf("must be at most %d characters", maxTitleLength),
			})
		}
	}

	if r.Description != nil && utf8.RuneCountInString(*r.Description) > maxDescriptionLength {
		fields = append(fields, domain.FieldError{
			Field:   "description",
			Message: fmt.Sprintf("must be at most %d characters", maxDescriptionLength),
		})
	}

	if r.Status != nil && !domain.Status(*r.Status).IsValid() {
		fields = append(fields, domain.FieldError{Field: "status", Message: enumMessage(*r.Status, "pending, in-progress, completed")})
	}

	if r.Priority != nil && !domain.Priority(*r.Priority).IsValid() {
		fields = append(fields, domain.FieldError{Field: "priority", Message: enumMessage(*r.Priority, "low, medium, high")})
	}

	if r.DueDate != nil && *r.DueDate != "" {
		parsed, err := parseDueDate(*r.DueDate)
		if err != nil {
			fields = append(fields, domain.FieldError{Field: "dueDate", Message: "must be an ISO 8601 date string"})
		} else {
			r.dueDate = &parsed
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Patch converts the validated request into a repository patch.
func (r *UpdateTodoRequest) Patch() repository.TodoUpdate {
	patch := repository.TodoUpdate{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.dueDate,
	}
	if r.Status != nil {
		status := domain.Status(*r.Status)
		patch.Status = &status
	}
	if r.Priority != nil {
		priority := domain.Priority(*r.Priority)
		patch.Priority = &priority
	}
	return patch
}

// parseDueDate accepts RFC 3339 timestamps (with or without fractional
// seconds) and bare dates, which are pinned to midnight UTC.
func parseDueDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dueDateLayouts {
		parsed, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		if layout == "2006-01-02" {
			parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
		}
		return parsed, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date format %q", value)
}

func enumMessage(value, allowed string) string {
	return fmt.Sprintf("has unknown value %q, allowed values: %s", value, allowed)
}
