package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/piresc/nearbycabs/internal/pkg/constants"
	httpclient "github.com/piresc/nearbycabs/internal/pkg/http"
	"github.com/piresc/nearbycabs/internal/pkg/logger"
	"github.com/piresc/nearbycabs/internal/pkg/models"
	"github.com/piresc/nearbycabs/internal/utils"
)

const nearbyDriversPath = "/drivers/nearby"

// HTTPVehicleSource asks the location service for drivers around a point
type HTTPVehicleSource struct {
	client   *httpclient.Client
	radiusKm float64
}

// NewHTTPVehicleSource creates a source for the location service at baseURL
func NewHTTPVehicleSource(baseURL string, radiusKm float64, timeout time.Duration) *HTTPVehicleSource {
	return &HTTPVehicleSource{
		client:   httpclient.NewClient(baseURL, timeout),
		radiusKm: radiusKm,
	}
}

// FetchNearbyVehicles returns the drivers the location service reports around origin
func (s *HTTPVehicleSource) FetchNearbyVehicles(ctx context.Context, origin models.Position) ([]models.Position, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(origin.Latitude, 'f', -1, 64))
	query.Set("lng", strconv.FormatFloat(origin.Longitude, 'f', -1, 64))
	query.Set("radius_km", strconv.FormatFloat(s.radiusKm, 'f', -1, 64))
	query.Set("cell", utils.EncodeLocation(origin, constants.GeohashPrecision))

	var response models.NearbyVehiclesResponse
	if err := s.client.GetJSON(ctx, nearbyDriversPath, query, &response); err != nil {
		logger.Error("Failed to find nearby drivers", logger.Err(err))
		return nil, fmt.Errorf("failed to find nearby drivers: %w", err)
	}

	return response.Positions(), nil
}
