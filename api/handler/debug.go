package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/todokit/backend/api/transport"
	"github.com/todokit/backend/internal/infrastructure/monitor"
	"github.com/todokit/backend/pkg/httpcontext"
)

// DebugHandler backs the developer-only diagnostic button on the index page.
// Outside development the route answers 404 so the surface stays identical
// across environments.
type DebugHandler struct {
	baseHandler
	monitor     *monitor.Monitor
	appName     string
	environment string
	startedAt   time.Time
}

func NewDebugHandler(mon *monitor.Monitor, adapter *httpcontext.Adapter, logger *zap.Logger, appName, environment string) *DebugHandler {
	return &DebugHandler{
		baseHandler: newBaseHandler(adapter, logger),
		monitor:     mon,
		appName:     appName,
		environment: environment,
		startedAt:   time.Now().UTC(),
	}
}

// @Summary Developer diagnostics
// @Tags debug
// @Router /api/debug [get]
func (h *DebugHandler) Info(ctx *fasthttp.RequestCtx) {
	if h.environment != "development" {
		h.respondJSON(ctx, http.StatusNotFound, transport.NewError(http.StatusNotFound, codeHTTPException, "Cannot GET /api/debug", nil))
		return
	}

	status := h.monitor.GetStatus()
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"app":         h.appName,
		"environment": h.environment,
		"timestamp":   time.Now().UTC(),
		"uptime":      time.Since(h.startedAt).String(),
		"goroutines":  runtime.NumGoroutine(),
		"store": map[string]interface{}{
			"online":     status.Cosmos,
			"last_check": status.LastCheck,
		},
	})
}
