package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/todokit/backend/api/transport"
	"github.com/todokit/backend/domain"
	"github.com/todokit/backend/pkg/httpcontext"
)

// Stable error codes of the response envelope.
const (
	codeValidation    = "VALIDATION_ERROR"
	codeTodoNotFound  = "TODO_NOT_FOUND"
	codeUnauthorized  = "UNAUTHORIZED"
	codeForbidden     = "FORBIDDEN"
	codeHTTPException = "HTTP_EXCEPTION"
	codeInternal      = "INTERNAL_SERVER_ERROR"
)

type baseHandler struct {
	adapter *httpcontext.Adapter
	logger  *zap.Logger
}

func newBaseHandler(adapter *httpcontext.Adapter, logger *zap.Logger) baseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseHandler{adapter: adapter, logger: logger}
}

func (h baseHandler) requestContext(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	if h.adapter != nil {
		return h.adapter.Attach(ctx)
	}
	return context.WithCancel(context.Background())
}

func (h baseHandler) respondJSON(ctx *fasthttp.RequestCtx, status int, payload transport.Envelope) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}

// respondSuccess wraps data in the success envelope. 204 responses carry no
// body and pass through unwrapped.
func (h baseHandler) respondSuccess(ctx *fasthttp.RequestCtx, status int, data interface{}) {
	if status == http.StatusNoContent {
		ctx.SetStatusCode(status)
		return
	}
	h.respondJSON(ctx, status, transport.NewSuccess(data))
}

func (h baseHandler) respondError(ctx *fasthttp.RequestCtx, err error) {
	status, code, details := classifyError(err)

	message := err.Error()
	switch {
	case code == codeValidation && len(details) > 0:
		message = "Validation failed"
	case status == http.StatusInternalServerError:
		h.logger.Error("unexpected error", zap.Error(err))
		message = "An unexpected error occurred"
	}

	h.respondJSON(ctx, status, transport.NewError(status, code, message, details))
}

// classifyError normalizes any error into a status code, a stable error code
// and optional validation details. Classification is by error kind only;
// message content is never inspected.
func classifyError(err error) (int, string, []string) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, codeValidation, vErr.Details()
	}
	if domain.IsNotFound(err) {
		return http.StatusNotFound, codeTodoNotFound, nil
	}

	switch {
	case domain.IsDomainError(err, domain.ErrCodeUnauthorized):
		return http.StatusUnauthorized, codeUnauthorized, nil
	case domain.IsDomainError(err, domain.ErrCodeForbidden):
		return http.StatusForbidden, codeForbidden, nil
	case domain.IsDomainError(err, domain.ErrCodeInvalid):
		return http.StatusBadRequest, codeValidation, nil
	case domain.IsDomainError(err, domain.ErrCodeConflict):
		return http.StatusConflict, codeHTTPException, nil
	default:
		return http.StatusInternalServerError, codeInternal, nil
	}
}
