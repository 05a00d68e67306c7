package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/nearbycabs/internal/pkg/models"
)

// earthRadiusKm is the mean Earth radius used by the Haversine formula
const earthRadiusKm = 6371.0

// EncodeLocation converts a position to a geohash string
func EncodeLocation(position models.Position, precision uint) string {
	return geohash.EncodeWithPrecision(position.Latitude, position.Longitude, precision)
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(a, b models.Position) float64 {
	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}
