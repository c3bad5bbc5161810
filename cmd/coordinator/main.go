package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/campuspool/campuspool/internal/pkg/config"
	"github.com/campuspool/campuspool/internal/pkg/health"
	"github.com/campuspool/campuspool/internal/pkg/logger"
	natspkg "github.com/campuspool/campuspool/internal/pkg/nats"
	"github.com/campuspool/campuspool/internal/pkg/server"
	wspkg "github.com/campuspool/campuspool/internal/pkg/websocket"
	"github.com/campuspool/campuspool/services/coordinator/gateway"
	"github.com/campuspool/campuspool/services/coordinator/handler"
	"github.com/campuspool/campuspool/services/coordinator/usecase"
)

func main() {
	appName := "coordinator-service"
	configs := config.InitConfig("config/coordinator.env")

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	// Initialize NATS for the store's change feeds
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Rides store gateway. Missing store credentials put it into disabled
	// mode rather than failing startup.
	ridesAPI := gateway.NewRidesGateway(configs)
	if !ridesAPI.Enabled() {
		zapLogger.Warn("Store credentials missing, running in disabled mode")
	}

	sessionManager := usecase.NewSessionManager(configs, ridesAPI)

	reconciler, err := handler.NewReconciler(natsClient, sessionManager)
	if err != nil {
		zapLogger.Fatal("Failed to subscribe to change feeds", logger.Err(err))
	}
	defer reconciler.Stop()

	// WebSocket endpoint
	wsManager := wspkg.NewManager(configs.JWT)
	wsHandler := handler.NewWebSocketHandler(configs, wsManager, sessionManager)

	e := echo.New()
	e.HideBanner = true
	e.Use(logger.EchoMiddleware(zapLogger))

	healthSvc := health.NewService(appName)
	healthSvc.RegisterEndpoints(e)

	wsHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server exited with error", logger.Err(err))
	}
}
