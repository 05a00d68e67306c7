package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/piresc/nearbycabs/internal/pkg/models"
)

// ParseRoute reads a "lat,lng;lat,lng" list into validated positions
func ParseRoute(route string) ([]models.Position, error) {
	route = strings.TrimSpace(route)
	if route == "" {
		return nil, fmt.Errorf("route is empty")
	}

	points := strings.Split(route, ";")
	positions := make([]models.Position, 0, len(points))
	for i, point := range points {
		point = strings.TrimSpace(point)
		if point == "" {
			continue
		}
		parts := strings.Split(point, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("route point %d %q: expected lat,lng", i, point)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("route point %d: failed to parse latitude: %w", i, err)
		}
		lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("route point %d: failed to parse longitude: %w", i, err)
		}
		position := models.NewPosition(lat, lng)
		if err := position.Validate(); err != nil {
			return nil, fmt.Errorf("route point %d: %w", i, err)
		}
		positions = append(positions, position)
	}

	if len(positions) == 0 {
		return nil, fmt.Errorf("route has no points")
	}
	return positions, nil
}
