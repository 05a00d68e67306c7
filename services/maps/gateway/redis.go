package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/nearbycabs/internal/pkg/constants"
	"github.com/piresc/nearbycabs/internal/pkg/database"
	"github.com/piresc/nearbycabs/internal/pkg/models"
)

// RedisVehicleSource reads driver positions straight from the geo index
type RedisVehicleSource struct {
	redisClient *database.RedisClient
	radiusKm    float64
}

// NewRedisVehicleSource creates a source over the driver geo set
func NewRedisVehicleSource(redisClient *database.RedisClient, radiusKm float64) *RedisVehicleSource {
	return &RedisVehicleSource{
		redisClient: redisClient,
		radiusKm:    radiusKm,
	}
}

// FetchNearbyVehicles returns available drivers within the radius, nearest first
func (s *RedisVehicleSource) FetchNearbyVehicles(ctx context.Context, origin models.Position) ([]models.Position, error) {
	locations, err := s.redisClient.GeoRadius(ctx, constants.KeyDriverGeo,
		origin.Longitude, origin.Latitude, s.radiusKm, constants.GeoUnitKilometers)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby drivers: %w", err)
	}
	if len(locations) == 0 {
		return []models.Position{}, nil
	}

	available, err := s.redisClient.SMembers(ctx, constants.KeyAvailableDrivers)
	if err != nil {
		return nil, fmt.Errorf("failed to get available drivers: %w", err)
	}
	isAvailable := make(map[string]struct{}, len(available))
	for _, id := range available {
		isAvailable[id] = struct{}{}
	}

	positions := make([]models.Position, 0, len(locations))
	for _, loc := range locations {
		if _, ok := isAvailable[loc.Name]; !ok {
			continue
		}
		positions = append(positions, models.NewPosition(loc.Latitude, loc.Longitude))
	}
	return positions, nil
}
