package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/piresc/fleettrack/internal/pkg/catalog"
	"github.com/piresc/fleettrack/internal/pkg/config"
	"github.com/piresc/fleettrack/internal/pkg/database"
	"github.com/piresc/fleettrack/internal/pkg/health"
	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/pkg/middleware"
	"github.com/piresc/fleettrack/internal/pkg/nats"
	nrpkg "github.com/piresc/fleettrack/internal/pkg/newrelic"
	"github.com/piresc/fleettrack/internal/pkg/retry"
	"github.com/piresc/fleettrack/internal/pkg/server"
	fleetHandler "github.com/piresc/fleettrack/services/fleet/handler"
	fleetRepository "github.com/piresc/fleettrack/services/fleet/repository"
	fleetUsecase "github.com/piresc/fleettrack/services/fleet/usecase"
	runsGateway "github.com/piresc/fleettrack/services/runs/gateway"
	runsHandler "github.com/piresc/fleettrack/services/runs/handler"
	runsRepository "github.com/piresc/fleettrack/services/runs/repository"
	runsUsecase "github.com/piresc/fleettrack/services/runs/usecase"
)

func main() {
	appName := "fleet-service"
	configPath := "config/fleet.env"
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

	stopPoints, err := catalog.Load(configs.Tracking.StopPointCatalogPath)
	if err != nil {
		zapLogger.Fatal("Failed to load stop point catalog", logger.Err(err))
	}
	logger.Info("Stop point catalog loaded", logger.Int("stop_points", stopPoints.Len()))

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

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

	// Repositories
	fleetRepo := fleetRepository.NewFleetRepository(postgresClient.GetDB())
	runRepo := runsRepository.NewRunRepository(postgresClient.GetDB())

	// Gateways
	runGW := runsGateway.NewNATSGateway(natsClient, retry.NewWithDefaults(zapLogger))

	// Use cases
	fleetUC := fleetUsecase.NewFleetUC(fleetRepo)
	runUC := runsUsecase.NewRunUC(runRepo, fleetRepo, runGW, stopPoints)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	// panic recovery first so it also covers the other middlewares
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPingChecker(postgresClient))
	healthService.AddChecker("redis", health.NewPingChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	api := e.Group("/api",
		middleware.ScopeMiddleware(configs.JWT),
		middleware.UserRateLimiter(120, time.Minute, redisClient.GetClient()),
	)
	fleetHandler.NewHandler(fleetUC).RegisterRoutes(api)
	runsHandler.NewHandler(runUC).RegisterRoutes(api)

	// stopped in reverse order after the HTTP server
	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })
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
