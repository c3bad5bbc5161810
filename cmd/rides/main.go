package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campuspool/campuspool/internal/pkg/config"
	"github.com/campuspool/campuspool/internal/pkg/database"
	"github.com/campuspool/campuspool/internal/pkg/health"
	"github.com/campuspool/campuspool/internal/pkg/logger"
	natspkg "github.com/campuspool/campuspool/internal/pkg/nats"
	nsqpkg "github.com/campuspool/campuspool/internal/pkg/nsq"
	"github.com/campuspool/campuspool/internal/pkg/server"
	"github.com/campuspool/campuspool/services/rides/gateway"
	"github.com/campuspool/campuspool/services/rides/handler"
	"github.com/campuspool/campuspool/services/rides/repository"
	"github.com/campuspool/campuspool/services/rides/usecase"
)

func main() {
	appName := "rides-service"
	configs := config.InitConfig("config/rides.env")

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

	// Initialize PostgreSQL
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS for the change feeds
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize NSQ producer for notification dispatch
	nsqProducer, err := nsqpkg.NewProducer(configs.NSQ.ProducerAddr)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer nsqProducer.Stop()

	// Wire the service
	rideRepo := repository.NewRideRepository(configs, postgresClient.GetDB())
	rideCache := repository.NewRideCacheRepository(redisClient)
	rideGW := gateway.NewRideGateway(natspkg.NewProducer(natsClient), nsqProducer)
	rideUC := usecase.NewRideUC(configs, rideRepo, rideCache, rideGW)
	rideHandler := handler.NewRideHandler(configs, rideUC)

	// Notification worker persists dispatched notifications and publishes
	// their change events
	notificationWorker, err := handler.NewNotificationWorker(configs.NSQ.LookupdAddr, rideUC)
	if err != nil {
		zapLogger.Fatal("Failed to start notification worker", logger.Err(err))
	}

	// Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(logger.EchoMiddleware(zapLogger))

	healthSvc := health.NewService(appName)
	healthSvc.AddChecker("postgres", postgresClient.Ping)
	healthSvc.AddChecker("redis", func(ctx context.Context) error {
		return redisClient.GetClient().Ping(ctx).Err()
	})
	healthSvc.RegisterEndpoints(e)

	rideHandler.RegisterRoutes(e)

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register(func(ctx context.Context) error {
		notificationWorker.Stop()
		return nil
	})

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server exited with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown failed", logger.Err(err))
	}
}
