package todo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/todokit/backend/domain"
	"github.com/todokit/backend/repository"
)

// CreateInput carries the pre-validated fields of a creation request.
// An empty Priority means "use the default".
type CreateInput struct {
	Title       string
	Description string
	Status      domain.Status
	Priority    domain.Priority
	DueDate     *time.Time
}

// UseCase enforces the business rules around Todo persistence: id and
// timestamp assignment, the medium-priority default, and existence checks
// before every mutation.
type UseCase struct {
	todos  repository.TodoRepository
	logger *zap.Logger
}

func New(todos repository.TodoRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		todos:  todos,
		logger: logger,
	}
}

func (uc *UseCase) Create(ctx context.Context, input CreateInput) (*domain.Todo, error) {
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	now := time.Now().UTC()
	todo := &domain.Todo{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    priority,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := uc.todos.Create(ctx, todo)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("todo created", zap.String("id", created.ID))
	return created, nil
}

func (uc *UseCase) List(ctx context.Context, filter repository.TodoFilter) ([]domain.Todo, error) {
	return uc.todos.List(ctx, filter)
}

func (uc *UseCase) Get(ctx context.Context, id string) (*domain.Todo, error) {
	return uc.todos.GetByID(ctx, id)
}

// Update checks existence first so an absent record surfaces as a uniform
// not-found error instead of whatever the store reports.
func (uc *UseCase) Update(ctx context.Context, id string, patch repository.TodoUpdate) (*domain.Todo, error) {
	if _, err := uc.todos.GetByID(ctx, id); err != nil {
		return nil, err
	}

	updated, err := uc.todos.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("todo updated", zap.String("id", id))
	return updated, nil
}

func (uc *UseCase) Remove(ctx context.Context, id string) error {
	if _, err := uc.todos.GetByID(ctx, id); err != nil {
		return err
	}

	if err := uc.todos.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("todo deleted", zap.String("id", id))
	return nil
}
