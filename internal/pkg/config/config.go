package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/piresc/nearbycabs/internal/pkg/constants"
	"github.com/piresc/nearbycabs/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" && configPath != "" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "maps-service")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9994)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 10)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "nats://localhost:4222")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 0)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")

	// Services config
	configs.Services.LocationServiceURL = GetEnv("LOCATION_SERVICE_URL", "http://localhost:9991")
	configs.Services.SimulatorWSURL = GetEnv("SIMULATOR_WS_URL", "ws://localhost:8080/ws")

	// Maps config
	configs.Maps.PermissionRequestCode = GetEnvAsInt("MAPS_PERMISSION_REQUEST_CODE", constants.DefaultPermissionRequestCode)
	configs.Maps.ZoomLevel = GetEnvAsFloat("MAPS_ZOOM_LEVEL", constants.DefaultZoomLevel)
	configs.Maps.TopPaddingPx = GetEnvAsInt("MAPS_TOP_PADDING_PX", constants.DefaultTopPaddingPx)
	configs.Maps.LocationIntervalMs = GetEnvAsInt("MAPS_LOCATION_INTERVAL_MS", constants.DefaultLocationIntervalMs)
	configs.Maps.FastestIntervalMs = GetEnvAsInt("MAPS_FASTEST_INTERVAL_MS", constants.DefaultFastestIntervalMs)
	configs.Maps.LocationPriority = GetEnv("MAPS_LOCATION_PRIORITY", string(models.PriorityHighAccuracy))
	configs.Maps.VehicleIcon = GetEnv("MAPS_VEHICLE_ICON", constants.DefaultVehicleIcon)
	configs.Maps.SearchRadiusKm = GetEnvAsFloat("MAPS_SEARCH_RADIUS_KM", constants.DefaultSearchRadiusKm)
	configs.Maps.VehicleSource = GetEnv("MAPS_VEHICLE_SOURCE", constants.VehicleSourceHTTP)
	configs.Maps.LocationSource = GetEnv("MAPS_LOCATION_SOURCE", constants.LocationSourceNATS)
	configs.Maps.LocationSubject = GetEnv("MAPS_LOCATION_SUBJECT", "")
	configs.Maps.DeviceID = GetEnv("MAPS_DEVICE_ID", constants.DefaultDeviceID)
	configs.Maps.ReplayRoute = GetEnv("MAPS_REPLAY_ROUTE", "")
	configs.Maps.FetchTimeoutSec = GetEnvAsInt("MAPS_FETCH_TIMEOUT_SEC", constants.DefaultFetchTimeoutSec)
	configs.Maps.PermissionDeniedNotice = GetEnv("MAPS_PERMISSION_DENIED_NOTICE", constants.DefaultPermissionDeniedNotice)
	configs.Maps.FetchRetries = GetEnvAsInt("MAPS_FETCH_RETRIES", constants.DefaultFetchRetries)
	configs.Maps.BreakerThreshold = GetEnvAsInt("MAPS_BREAKER_THRESHOLD", constants.DefaultBreakerThreshold)
	configs.Maps.BreakerTimeoutSec = GetEnvAsInt("MAPS_BREAKER_TIMEOUT_SEC", constants.DefaultBreakerTimeoutSec)

	// Device config
	configs.Device.PermissionGranted = GetEnvAsBool("DEVICE_PERMISSION_GRANTED", false)
	configs.Device.LocationEnabled = GetEnvAsBool("DEVICE_LOCATION_ENABLED", true)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")
	configs.Logger.MaxSize = GetEnvAsInt64("LOG_MAX_SIZE", 100)
	configs.Logger.MaxAge = GetEnvAsInt("LOG_MAX_AGE", 7)
	configs.Logger.MaxBackups = GetEnvAsInt("LOG_MAX_BACKUPS", 3)
	configs.Logger.Compress = GetEnvAsBool("LOG_COMPRESS", true)
	configs.Logger.Type = GetEnv("LOG_TYPE", "console")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Warning: Invalid int64 value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
