package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/todokit/backend/api/transport"
	"github.com/todokit/backend/domain"
	"github.com/todokit/backend/pkg/httpcontext"
	"github.com/todokit/backend/repository"
	todoUC "github.com/todokit/backend/usecase/todo"
)

type TodoHandler struct {
	baseHandler
	uc *todoUC.UseCase
}

func NewTodoHandler(uc *todoUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TodoHandler {
	return &TodoHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List todos
// @Tags todos
// @Router /api/todos [get]
func (h *TodoHandler) List(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	filter := repository.TodoFilter{
		Status:   domain.Status(args.Peek("status")),
		Priority: domain.Priority(args.Peek("priority")),
		SortBy:   string(args.Peek("sortBy")),
		Order:    string(args.Peek("order")),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	todos, err := h.uc.List(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, todos)
}

// @Summary Create a todo
// @Tags todos
// @Router /api/todos [post]
func (h *TodoHandler) Create(ctx *fasthttp.RequestCtx) {
	var req transport.CreateTodoRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(ctx, err)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, todoUC.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.Status(req.Status),
		Priority:    domain.Priority(req.Priority),
		DueDate:     req.DueDateValue(),
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Get a todo by id
// @Tags todos
// @Router /api/todos/{id} [get]
func (h *TodoHandler) Get(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	todo, err := h.uc.Get(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, todo)
}

// @Summary Update a todo
// @Tags todos
// @Router /api/todos/{id} [put]
func (h *TodoHandler) Update(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	var req transport.UpdateTodoRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(ctx, err)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.Update(stdCtx, id, req.Patch())
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete a todo
// @Tags todos
// @Router /api/todos/{id} [delete]
func (h *TodoHandler) Delete(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Remove(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func (h *TodoHandler) pathID(ctx *fasthttp.RequestCtx) (string, bool) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondError(ctx, domain.NewError(domain.ErrCodeInvalid, "missing todo id"))
		return "", false
	}
	return id, true
}
