package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/todokit/backend/api/handler"
	"github.com/todokit/backend/internal/config"
	cosmosInfra "github.com/todokit/backend/internal/infrastructure/cosmos"
	"github.com/todokit/backend/internal/infrastructure/monitor"
	"github.com/todokit/backend/internal/middleware"
	"github.com/todokit/backend/internal/router"
	"github.com/todokit/backend/internal/services/lifecycle"
	"github.com/todokit/backend/pkg/httpcontext"
	"github.com/todokit/backend/pkg/logger"
	cosmosRepo "github.com/todokit/backend/repository/cosmos"
	todoUC "github.com/todokit/backend/usecase/todo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	client, err := cosmosInfra.NewClient(cfg.Cosmos)
	if err != nil {
		zapLogger.Fatal("cosmos client construction failed", zap.Error(err))
	}

	container, err := cosmosInfra.Provision(appCtx, client, cfg.Cosmos, zapLogger)
	if err != nil {
		zapLogger.Fatal("cosmos provisioning failed", zap.Error(err))
	}

	mon := monitor.New(container, cfg.Monitor.Interval, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	todoRepo := cosmosRepo.NewTodoRepository(container)
	todoUseCase := todoUC.New(todoRepo, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	uiHandler, err := apiHandler.NewUIHandler(cfg.AppName, cfg.Environment)
	if err != nil {
		zapLogger.Fatal("index page rendering failed", zap.Error(err))
	}

	handlers := router.Handlers{
		Todo:   apiHandler.NewTodoHandler(todoUseCase, ctxAdapter, zapLogger),
		Health: apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
		Debug:  apiHandler.NewDebugHandler(mon, ctxAdapter, zapLogger, cfg.AppName, cfg.Environment),
		UI:     uiHandler,
	}

	r := router.New(handlers)
	handler := middleware.CORS(cfg.FrontendURL)(middleware.AccessLog(zapLogger)(r.Handler))

	server := &fasthttp.Server{
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
