package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/swiftcab/backend/internal/pkg/config"
	"github.com/swiftcab/backend/internal/pkg/database"
	"github.com/swiftcab/backend/internal/pkg/health"
	"github.com/swiftcab/backend/internal/pkg/logger"
	"github.com/swiftcab/backend/internal/pkg/middleware"
	natspkg "github.com/swiftcab/backend/internal/pkg/nats"
	nrpkg "github.com/swiftcab/backend/internal/pkg/newrelic"
	wspkg "github.com/swiftcab/backend/internal/pkg/websocket"
	driverHTTP "github.com/swiftcab/backend/services/drivers/handler/http"
	driverRepo "github.com/swiftcab/backend/services/drivers/repository"
	driverUC "github.com/swiftcab/backend/services/drivers/usecase"
	realtimeNats "github.com/swiftcab/backend/services/realtime/handler/nats"
	realtimeWS "github.com/swiftcab/backend/services/realtime/handler/websocket"
	realtimeRepo "github.com/swiftcab/backend/services/realtime/repository"
	realtimeUC "github.com/swiftcab/backend/services/realtime/usecase"
	riderHTTP "github.com/swiftcab/backend/services/riders/handler/http"
	riderRepo "github.com/swiftcab/backend/services/riders/repository"
	riderUC "github.com/swiftcab/backend/services/riders/usecase"
	rideGateway "github.com/swiftcab/backend/services/rides/gateway"
	rideHTTP "github.com/swiftcab/backend/services/rides/handler/http"
	rideRepo "github.com/swiftcab/backend/services/rides/repository"
	rideUC "github.com/swiftcab/backend/services/rides/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "swiftcab-backend"
	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.NewZapLogger(configs.Logger, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	db := postgresClient.GetDB()

	// Live-connection core: registry plus the targeted dispatcher over it
	registry := wspkg.NewRegistry()
	dispatcher := wspkg.NewDispatcher(registry)

	// Repositories
	presenceRepo := realtimeRepo.NewPresenceRepo(db, redisClient)
	ridersRepo := riderRepo.NewRiderRepo(db, redisClient)
	driversRepo := driverRepo.NewDriverRepo(db, redisClient)
	ridesRepo := rideRepo.NewRideRepo(db, redisClient)

	// Gateways
	ridesGW := rideGateway.NewRideGW(natsClient)

	// Use cases
	presenceUC := realtimeUC.NewPresenceUC(presenceRepo)
	ridersUC := riderUC.NewRiderUC(configs, ridersRepo)
	driversUC := driverUC.NewDriverUC(configs, driversRepo)
	ridesUC := rideUC.NewRideUC(configs, ridesRepo, ridesGW, dispatcher)

	// Handlers
	allow := middleware.NewOriginAllowlist(configs.CORS.FrontendOrigins)
	socketHandler := realtimeWS.NewSocketHandler(registry, presenceUC, allow)
	riderHandler := riderHTTP.NewRiderHandler(ridersUC)
	driverHandler := driverHTTP.NewDriverHandler(driversUC)
	rideHandler := rideHTTP.NewRideHandler(ridesUC)

	// Bridge bus events back onto live connections
	natsHandler := realtimeNats.NewNatsHandler(dispatcher, natsClient)
	if err := natsHandler.InitConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", zap.Error(err))
	}
	defer natsHandler.Close()

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.CORSMiddleware(allow))

	health.RegisterHealthEndpoints(e, appName)

	authMW := []echo.MiddlewareFunc{
		middleware.BlacklistMiddleware(redisClient),
		middleware.JWTMiddleware(configs),
	}

	riderHandler.RegisterRoutes(e.Group("/riders"), authMW...)
	driverHandler.RegisterRoutes(e.Group("/drivers"), authMW...)
	rideHandler.RegisterRoutes(e.Group("/rides", authMW...))

	e.GET("/socket", socketHandler.HandleSocket)

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
