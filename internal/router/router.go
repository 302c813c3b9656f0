package router

import (
	"github.com/fasthttp/router"

	apiHandler "github.com/todokit/backend/api/handler"
)

type Handlers struct {
	Todo   *apiHandler.TodoHandler
	Health *apiHandler.HealthHandler
	Debug  *apiHandler.DebugHandler
	UI     *apiHandler.UIHandler
}

func New(handlers Handlers) *router.Router {
	r := router.New()

	r.GET("/", handlers.UI.Index)
	r.GET("/health", handlers.Health.Check)

	// Developer diagnostics; responds 404 outside development.
	r.GET("/api/debug", handlers.Debug.Info)

	r.GET("/api/todos", handlers.Todo.List)
	r.POST("/api/todos", handlers.Todo.Create)
	r.GET("/api/todos/{id}", handlers.Todo.Get)
	r.PUT("/api/todos/{id}", handlers.Todo.Update)
	r.DELETE("/api/todos/{id}", handlers.Todo.Delete)

	return r
}
