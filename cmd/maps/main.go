package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nearbycabs/internal/pkg/circuitbreaker"
	"github.com/piresc/nearbycabs/internal/pkg/config"
	"github.com/piresc/nearbycabs/internal/pkg/constants"
	"github.com/piresc/nearbycabs/internal/pkg/database"
	"github.com/piresc/nearbycabs/internal/pkg/health"
	"github.com/piresc/nearbycabs/internal/pkg/jwt"
	"github.com/piresc/nearbycabs/internal/pkg/logger"
	"github.com/piresc/nearbycabs/internal/pkg/middleware"
	"github.com/piresc/nearbycabs/internal/pkg/nats"
	"github.com/piresc/nearbycabs/internal/pkg/server"
	"github.com/piresc/nearbycabs/internal/utils"
	"github.com/piresc/nearbycabs/services/maps"
	"github.com/piresc/nearbycabs/services/maps/gateway"
	natsgw "github.com/piresc/nearbycabs/services/maps/gateway/nats"
	"github.com/piresc/nearbycabs/services/maps/gateway/replay"
	"github.com/piresc/nearbycabs/services/maps/handler"
	"github.com/piresc/nearbycabs/services/maps/prompts"
	"github.com/piresc/nearbycabs/services/maps/surface"
	"github.com/piresc/nearbycabs/services/maps/usecase"
)

func main() {
	appName := "maps-service"
	configPath := "config/maps.env"
	issueToken := flag.String("issue-token", "", "print a bearer token for the given subject and exit")
	flag.Parse()

	configs := config.InitConfig(configPath)

	if *issueToken != "" {
		if configs.JWT.Secret == "" {
			log.Fatalf("JWT_SECRET must be set to issue tokens")
		}
		token, expiresAt, err := jwt.GenerateToken(*issueToken, "operator", configs.JWT)
		if err != nil {
			log.Fatalf("Failed to issue token: %v", err)
		}
		fmt.Println(token)
		log.Printf("Token for %s expires at %s", *issueToken, time.Unix(expiresAt, 0).Format(time.RFC3339))
		return
	}

	// Initialize logger
	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	checks := map[string]health.Checker{}
	var natsClient *nats.Client
	var redisClient *database.RedisClient

	// Initialize location provider
	var locationProvider maps.LocationProvider
	switch configs.Maps.LocationSource {
	case constants.LocationSourceReplay:
		route, err := utils.ParseRoute(configs.Maps.ReplayRoute)
		if err != nil {
			logger.Fatal("Invalid replay route", logger.Err(err))
		}
		locationProvider = replay.NewRouteReplay(route, configs.Maps.LocationRequest().Interval)
	default:
		natsClient, err = nats.NewClient(configs.NATS.URL)
		if err != nil {
			logger.Fatal("Failed to connect to NATS", logger.Err(err))
		}
		checks["nats"] = natsClient
		locationProvider = natsgw.NewLocationProvider(natsClient, configs.Maps.DeviceID, configs.Maps.LocationSubject)
	}

	// Initialize nearby vehicle source
	var vehicleSource maps.VehicleGW
	switch configs.Maps.VehicleSource {
	case constants.VehicleSourceRedis:
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		checks["redis"] = redisClient
		vehicleSource = gateway.NewRedisVehicleSource(redisClient, configs.Maps.SearchRadiusKm)
	case constants.VehicleSourceWebSocket:
		vehicleSource = gateway.NewWSVehicleSource(configs.Services.SimulatorWSURL, configs.Maps.SearchRadiusKm)
	default:
		vehicleSource = gateway.NewHTTPVehicleSource(configs.Services.LocationServiceURL,
			configs.Maps.SearchRadiusKm, configs.Maps.FetchTimeout())
	}
	vehicleGW := gateway.NewVehicleGW(configs.Maps.VehicleSource, vehicleSource, configs.Maps, zapLogger)
	checks["vehicle_source"] = health.CheckerFunc(func(context.Context) error {
		if state := vehicleGW.BreakerState(); state == circuitbreaker.StateOpen {
			return fmt.Errorf("circuit breaker is %s", state)
		}
		return nil
	})

	// Initialize usecase
	device := prompts.New(configs.Device.PermissionGranted, configs.Device.LocationEnabled)
	canvas := surface.NewMemoryCanvas()
	screenUC := usecase.NewScreenUC(configs, device, locationProvider, vehicleGW)

	// Initialize handlers
	h := handler.NewHandler(screenUC, canvas, device)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, checks)

	// Register service routes
	h.RegisterRoutes(e, configs.JWT)

	// The host opens straight onto the map screen
	screenUC.OnCreate()
	screenUC.OnMapReady(canvas)
	screenUC.OnStart()

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.OnShutdown(func(context.Context) error {
		screenUC.OnDestroy()
		screenUC.WaitForLookups()
		return nil
	})
	if natsClient != nil {
		srv.OnShutdown(func(context.Context) error {
			natsClient.Close()
			return nil
		})
	}
	if redisClient != nil {
		srv.OnShutdown(func(context.Context) error {
			return redisClient.Close()
		})
	}

	logger.Info("Starting service",
		logger.String("service", appName),
		logger.String("location_source", configs.Maps.LocationSource),
		logger.String("vehicle_source", configs.Maps.VehicleSource))
	if err := srv.Start(); err != nil {
		logger.Fatal("Server stopped with error", logger.Err(err))
	}
}
