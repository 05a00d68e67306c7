package constants

// Map screen defaults
const (
	DefaultPermissionRequestCode = 999
	DefaultZoomLevel             = 15.5
	DefaultTopPaddingPx          = 48
	DefaultLocationIntervalMs    = 2000
	DefaultFastestIntervalMs     = 2000
	DefaultVehicleIcon           = "ic_car"
	DefaultSearchRadiusKm        = 2.0
	DefaultFetchTimeoutSec       = 10
	DefaultDeviceID              = "local-device"
	DefaultFetchRetries          = 0
	DefaultBreakerThreshold      = 5
	DefaultBreakerTimeoutSec     = 30

	DefaultPermissionDeniedNotice = "Location permission not granted"
)

// Vehicle data sources
const (
	VehicleSourceHTTP      = "http"
	VehicleSourceRedis     = "redis"
	VehicleSourceWebSocket = "websocket"
)

// Location fix sources
const (
	LocationSourceNATS   = "nats"
	LocationSourceReplay = "replay"
)

// GeohashPrecision is the cell size used to tag nearby-cab lookups (~150m)
const GeohashPrecision = 7
