package constants

// Redis key formats
const (
	KeyDriverGeo        = "driver:geo"        // GeoHash set of all driver locations
	KeyAvailableDrivers = "drivers:available" // Set of available driver IDs
)

// GeoUnitKilometers is the distance unit of driver geo lookups
const GeoUnitKilometers = "km"
