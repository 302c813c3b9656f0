package cosmos

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"

	"github.com/todokit/backend/domain"
	"github.com/todokit/backend/repository"
)

type todoRepository struct {
	container *azcosmos.ContainerClient
}

// NewTodoRepository returns a Cosmos-backed implementation of TodoRepository.
// The container client is the only long-lived store resource and is injected
// here rather than constructed from package state.
func NewTodoRepository(container *azcosmos.ContainerClient) repository.TodoRepository {
	return &todoRepository{container: container}
}

func (r *todoRepository) Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error) {
	if todo == nil {
		return nil, domain.ErrInvalidPayload
	}

	body, err := json.Marshal(todo)
	if err != nil {
		return nil, err
	}

	pk := azcosmos.NewPartitionKeyString(todo.ID)
	if _, err := r.container.CreateItem(ctx, pk, body, nil); err != nil {
		return nil, err
	}
	return todo, nil
}

func (r *todoRepository) List(ctx context.Context, filter repository.TodoFilter) ([]domain.Todo, error) {
	query, parameters := buildListQuery(filter)

	pager := r.container.NewQueryItemsPager(query, azcosmos.NewPartitionKey(), &azcosmos.QueryOptions{
		QueryParameters: parameters,
	})

	todos := make([]domain.Todo, 0)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var todo domain.Todo
			if err := json.Unmarshal(raw, &todo); err != nil {
				return nil, err
			}
			todos = append(todos, todo)
		}
	}
	return todos, nil
}

func (r *todoRepository) GetByID(ctx context.Context, id string) (*domain.Todo, error) {
	resp, err := r.container.ReadItem(ctx, azcosmos.NewPartitionKeyString(id), id, nil)
	if err != nil {
		if hasStatus(err, http.StatusNotFound) {
			return nil, domain.NewNotFound(id)
		}
		return nil, err
	}

	var todo domain.Todo
	if err := json.Unmarshal(resp.Value, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// Update reads the current document, merges the patch over it and writes the
// result back as a full replace. ID and CreatedAt are preserved, UpdatedAt is
// stamped here. Last write wins: there is no etag check before the replace.
func (r *todoRepository) Update(ctx context.Context, id string, patch repository.TodoUpdate) (*domain.Todo, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if patch.Title != nil {
		merged.Title = *patch.Title
	}
	if patch.Description != nil {
		merged.Description = *patch.Description
	}
	if patch.Status != nil {
		merged.Status = *patch.Status
	}
	if patch.Priority != nil {
		merged.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		merged.DueDate = patch.DueDate
	}
	merged.ID = existing.ID
	merged.CreatedAt = existing.CreatedAt
	merged.UpdatedAt = time.Now().UTC()

	body, err := json.Marshal(&merged)
	if err != nil {
		return nil, err
	}

	if _, err := r.container.ReplaceItem(ctx, azcosmos.NewPartitionKeyString(id), id, body, nil); err != nil {
		if hasStatus(err, http.StatusNotFound) {
			return nil, domain.NewNotFound(id)
		}
		return nil, err
	}
	return &merged, nil
}

func (r *todoRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.container.DeleteItem(ctx, azcosmos.NewPartitionKeyString(id), id, nil); err != nil {
		if hasStatus(err, http.StatusNotFound) {
			return domain.NewNotFound(id)
		}
		return err
	}
	return nil
}

func hasStatus(err error, status int) bool {
	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && respErr.StatusCode == status
}
