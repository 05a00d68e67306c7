package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Services ServicesConfig
	Maps     MapsConfig
	Device   DeviceConfig
	Logger   LoggerConfig
}

// ServicesConfig contains URLs for the services the map screen talks to
type ServicesConfig struct {
	LocationServiceURL string
	SimulatorWSURL     string
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// MapsConfig contains map screen behaviour
type MapsConfig struct {
	PermissionRequestCode  int     `json:"permission_request_code"`
	ZoomLevel              float64 `json:"zoom_level"`
	TopPaddingPx           int     `json:"top_padding_px"`
	LocationIntervalMs     int     `json:"location_interval_ms"`
	FastestIntervalMs      int     `json:"fastest_interval_ms"`
	LocationPriority       string  `json:"location_priority"`
	VehicleIcon            string  `json:"vehicle_icon"`
	SearchRadiusKm         float64 `json:"search_radius_km"`
	VehicleSource          string  `json:"vehicle_source"`  // http, redis or websocket
	LocationSource         string  `json:"location_source"` // nats or replay
	LocationSubject        string  `json:"location_subject"`
	DeviceID               string  `json:"device_id"`
	ReplayRoute            string  `json:"replay_route"` // "lat,lng;lat,lng;..."
	FetchTimeoutSec        int     `json:"fetch_timeout_sec"`
	PermissionDeniedNotice string  `json:"permission_denied_notice"`
	FetchRetries           int     `json:"fetch_retries"`
	BreakerThreshold       int     `json:"breaker_threshold"`
	BreakerTimeoutSec      int     `json:"breaker_timeout_sec"`
}

// LocationRequest builds the stream request for the configured cadence and priority.
// Non-positive intervals fall back to the 2 second default.
func (c MapsConfig) LocationRequest() LocationRequest {
	req := DefaultLocationRequest()
	if c.LocationIntervalMs > 0 {
		req.Interval = time.Duration(c.LocationIntervalMs) * time.Millisecond
	}
	if c.FastestIntervalMs > 0 {
		req.FastestInterval = time.Duration(c.FastestIntervalMs) * time.Millisecond
	}
	if c.LocationPriority != "" {
		req.Priority = LocationPriority(c.LocationPriority)
	}
	return req
}

// FetchTimeout is the deadline applied to one nearby-cab lookup
func (c MapsConfig) FetchTimeout() time.Duration {
	if c.FetchTimeoutSec <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.FetchTimeoutSec) * time.Second
}

// DeviceConfig seeds the headless prompt service
type DeviceConfig struct {
	PermissionGranted bool
	LocationEnabled   bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
	Type       string
}
