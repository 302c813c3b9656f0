package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/todokit/backend/internal/infrastructure/monitor"
)

func TestDebug_DevelopmentOnly(t *testing.T) {
	t.Parallel()

	mon := monitor.New(nil, 0, nil)

	t.Run("enabled in development", func(t *testing.T) {
		t.Parallel()
		h := NewDebugHandler(mon, nil, nil, "todo-backend", "development")
		ctx := &fasthttp.RequestCtx{}
		ctx.Request.Header.SetMethod(http.MethodGet)
		ctx.Request.SetRequestURI("/api/debug")

		h.Info(ctx)

		require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
		env := decodeEnvelope(t, ctx)
		assert.True(t, env.Success)
	})

	t.Run("hidden in production", func(t *testing.T) {
		t.Parallel()
		h := NewDebugHandler(mon, nil, nil, "todo-backend", "production")
		ctx := &fasthttp.RequestCtx{}
		ctx.Request.Header.SetMethod(http.MethodGet)
		ctx.Request.SetRequestURI("/api/debug")

		h.Info(ctx)

		require.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
		env := decodeEnvelope(t, ctx)
		assert.False(t, env.Success)
	})
}

func TestUIHandler_DevButton(t *testing.T) {
	t.Parallel()

	t.Run("development page includes the button", func(t *testing.T) {
		t.Parallel()
		h, err := NewUIHandler("todo-backend", "development")
		require.NoError(t, err)

		ctx := &fasthttp.RequestCtx{}
		h.Index(ctx)

		assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
		assert.Contains(t, string(ctx.Response.Body()), "debug-btn")
	})

	t.Run("production page omits the button", func(t *testing.T) {
		t.Parallel()
		h, err := NewUIHandler("todo-backend", "production")
		require.NoError(t, err)

		ctx := &fasthttp.RequestCtx{}
		h.Index(ctx)

		assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
		assert.NotContains(t, string(ctx.Response.Body()), "debug-btn")
	})
}
