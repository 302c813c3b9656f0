package todo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todokit/backend/domain"
	"github.com/todokit/backend/repository"
)

// fakeRepo is an in-memory TodoRepository recording the calls it receives.
type fakeRepo struct {
	todos map[string]domain.Todo

	lastFilter  repository.TodoFilter
	updateCalls int
	deleteCalls int
}

func newFakeRepo(seed ...domain.Todo) *fakeRepo {
	r := &fakeRepo{todos: make(map[string]domain.Todo)}
	for _, t := range seed {
		r.todos[t.ID] = t
	}
	return r
}

func (r *fakeRepo) Create(_ context.Context, todo *domain.Todo) (*domain.Todo, error) {
	r.todos[todo.ID] = *todo
	return todo, nil
}

func (r *fakeRepo) List(_ context.Context, filter repository.TodoFilter) ([]domain.Todo, error) {
	r.lastFilter = filter
	out := make([]domain.Todo, 0, len(r.todos))
	for _, t := range r.todos {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*domain.Todo, error) {
	t, ok := r.todos[id]
	if !ok {
		return nil, domain.NewNotFound(id)
	}
	return &t, nil
}

func (r *fakeRepo) Update(_ context.Context, id string, patch repository.TodoUpdate) (*domain.Todo, error) {
	r.updateCalls++
	existing, ok := r.todos[id]
	if !ok {
		return nil, domain.NewNotFound(id)
	}
	if patch.Title != nil {
		existing.Title = *patch.Title
	}
	if patch.Description != nil {
		existing.Description = *patch.Description
	}
	if patch.Status != nil {
		existing.Status = *patch.Status
	}
	if patch.Priority != nil {
		existing.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		existing.DueDate = patch.DueDate
	}
	existing.UpdatedAt = time.Now().UTC()
	r.todos[id] = existing
	return &existing, nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	r.deleteCalls++
	if _, ok := r.todos[id]; !ok {
		return domain.NewNotFound(id)
	}
	delete(r.todos, id)
	return nil
}

func TestCreate_AssignsIDAndTimestamps(t *testing.T) {
	t.Parallel()

	uc := New(newFakeRepo(), nil)
	before := time.Now().UTC()

	created, err := uc.Create(context.Background(), CreateInput{
		Title:  "Write spec",
		Status: domain.StatusPending,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	assert.False(t, created.CreatedAt.Before(before))
	assert.False(t, created.CreatedAt.After(time.Now().UTC()))
}

func TestCreate_DefaultsPriorityToMedium(t *testing.T) {
	t.Parallel()

	uc := New(newFakeRepo(), nil)

	created, err := uc.Create(context.Background(), CreateInput{
		Title:  "no priority given",
		Status: domain.StatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, created.Priority)
}

func TestCreate_KeepsExplicitPriority(t *testing.T) {
	t.Parallel()

	uc := New(newFakeRepo(), nil)

	created, err := uc.Create(context.Background(), CreateInput{
		Title:    "explicit priority",
		Status:   domain.StatusPending,
		Priority: domain.PriorityHigh,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, created.Priority)
}

func TestCreate_UniqueIDs(t *testing.T) {
	t.Parallel()

	uc := New(newFakeRepo(), nil)
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		created, err := uc.Create(context.Background(), CreateInput{
			Title:  "x",
			Status: domain.StatusPending,
		})
		require.NoError(t, err)
		require.False(t, seen[created.ID], "duplicate id %s", created.ID)
		seen[created.ID] = true
	}
}

func TestList_PassesFilterThrough(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	uc := New(repo, nil)

	filter := repository.TodoFilter{
		Status:   domain.StatusCompleted,
		Priority: domain.PriorityLow,
		SortBy:   "dueDate",
		Order:    "desc",
	}
	_, err := uc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, filter, repo.lastFilter)
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	uc := New(newFakeRepo(), nil)

	_, err := uc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestUpdate_ChecksExistenceFirst(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	uc := New(repo, nil)

	title := "new"
	_, err := uc.Update(context.Background(), "missing", repository.TodoUpdate{Title: &title})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Zero(t, repo.updateCalls, "repository update must not run when the record is absent")
}

func TestUpdate_MergesPatch(t *testing.T) {
	t.Parallel()

	seed := domain.Todo{
		ID:        "id-1",
		Title:     "old",
		Status:    domain.StatusPending,
		Priority:  domain.PriorityMedium,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	uc := New(newFakeRepo(seed), nil)

	status := domain.StatusCompleted
	updated, err := uc.Update(context.Background(), "id-1", repository.TodoUpdate{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, "id-1", updated.ID)
	assert.Equal(t, "old", updated.Title, "untouched fields keep their value")
	assert.Equal(t, domain.StatusCompleted, updated.Status)
	assert.Equal(t, seed.CreatedAt, updated.CreatedAt, "createdAt never changes")
	assert.True(t, updated.UpdatedAt.After(seed.UpdatedAt), "updatedAt must be refreshed")
}

func TestRemove_ChecksExistenceFirst(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	uc := New(repo, nil)

	err := uc.Remove(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Zero(t, repo.deleteCalls, "repository delete must not run when the record is absent")
}

func TestRemove_DeletesExisting(t *testing.T) {
	t.Parallel()

	seed := domain.Todo{ID: "id-2", Title: "x", Status: domain.StatusPending}
	repo := newFakeRepo(seed)
	uc := New(repo, nil)

	require.NoError(t, uc.Remove(context.Background(), "id-2"))

	err := uc.Remove(context.Background(), "id-2")
	require.Error(t, err, "second remove must fail, not succeed silently")
	assert.True(t, domain.IsNotFound(err))
}
