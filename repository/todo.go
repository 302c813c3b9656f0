package repository

import (
	"context"
	"time"

	"github.com/todokit/backend/domain"
)

// TodoFilter narrows and orders a listing. Values are assumed pre-validated
// by the transport DTOs; unrecognized sort fields are ignored.
type TodoFilter struct {
	Status   domain.Status
	Priority domain.Priority
	SortBy   string
	Order    string
}

// TodoUpdate carries the subset of mutable fields present in an update
// request. Nil means "leave unchanged".
type TodoUpdate struct {
	Title       *string
	Description *string
	Status      *domain.Status
	Priority    *domain.Priority
	DueDate     *time.Time
}

// TodoRepository is the sole gateway to the document store.
type TodoRepository interface {
	Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	List(ctx context.Context, filter TodoFilter) ([]domain.Todo, error)
	GetByID(ctx context.Context, id string) (*domain.Todo, error)
	Update(ctx context.Context, id string, patch TodoUpdate) (*domain.Todo, error)
	Delete(ctx context.Context, id string) error
}
