package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/piresc/fleettrack/internal/pkg/config"
	"github.com/piresc/fleettrack/internal/pkg/database"
	"github.com/piresc/fleettrack/internal/pkg/health"
	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/pkg/middleware"
	"github.com/piresc/fleettrack/internal/pkg/nats"
	nrpkg "github.com/piresc/fleettrack/internal/pkg/newrelic"
	"github.com/piresc/fleettrack/internal/pkg/retry"
	"github.com/piresc/fleettrack/internal/pkg/server"
	"github.com/piresc/fleettrack/internal/pkg/tracking"
	"github.com/piresc/fleettrack/services/location/gateway"
	"github.com/piresc/fleettrack/services/location/handler"
	"github.com/piresc/fleettrack/services/location/repository"
	"github.com/piresc/fleettrack/services/location/usecase"
)

func main() {
	appName := "location-service"
	configPath := "config/location.env"
	configs, err := config.InitConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS with JetStream", logger.Err(err))
	}

	logger.Info("JetStream client initialized successfully",
		logger.String("url", configs.NATS.URL),
		logger.Bool("connected", natsClient.IsConnected()))

	frame := tracking.FrameOptions{
		Width:   configs.Tracking.FrameWidth,
		Height:  configs.Tracking.FrameHeight,
		Padding: configs.Tracking.FramePadding,
		MaxZoom: configs.Tracking.MaxZoom,
	}

	locationRepo := repository.NewLocationRepository(redisClient, configs.Tracking.HistoryTTL)
	locationGW := gateway.NewNATSGateway(natsClient, retry.NewWithDefaults(zapLogger))
	locationUC := usecase.NewLocationUC(locationRepo, locationGW)

	locationHandler := handler.NewHandler(locationUC, natsClient, frame, nrApp)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := locationHandler.InitNATSConsumers(initCtx); err != nil {
		cancel()
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}
	cancel()

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second

	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewHealthService()
	healthService.AddChecker("redis", health.NewPingChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	api := e.Group("/api", middleware.ScopeMiddleware(configs.JWT))
	ingest := e.Group("/api",
		middleware.ScopeMiddleware(configs.JWT),
		middleware.UserRateLimiter(600, time.Minute, redisClient.GetClient()),
	)
	ws := e.Group("/ws", middleware.WebSocketScopeMiddleware(configs.JWT))
	locationHandler.RegisterRoutes(api, ingest)
	locationHandler.RegisterWebSocketRoutes(ws)

	// stopped in reverse order, so consumers stop before Redis closes
	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })
	shutdown.Register("nats", func(context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdown.Register("newrelic", func(context.Context) error {
		if nrApp != nil {
			nrApp.Shutdown(10 * time.Second)
		}
		return nil
	})

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, shutdown)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
