package maps

import (
	"context"

	"github.com/piresc/nearbycabs/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/piresc/nearbycabs/services/maps LocationProvider,VehicleGW

// LocationProvider streams device fixes.
// Cancelling ctx ends the subscription and closes the returned channel.
type LocationProvider interface {
	RequestLocationUpdates(ctx context.Context, req models.LocationRequest) (<-chan models.LocationResult, error)
}

// VehicleGW looks up cabs around an origin
type VehicleGW interface {
	FetchNearbyVehicles(ctx context.Context, origin models.Position) ([]models.Position, error)
}
