package replay

import (
	"context"
	"errors"
	"time"

	"github.com/piresc/nearbycabs/internal/pkg/logger"
	"github.com/piresc/nearbycabs/internal/pkg/models"
)

// ErrEmptyRoute is returned when there is nothing to replay
var ErrEmptyRoute = errors.New("replay route is empty")

// RouteReplay plays a fixed route back as a location stream, one point per tick.
// After the last point the stream stays open and quiet until cancelled.
type RouteReplay struct {
	route    []models.Position
	interval time.Duration
}

// NewRouteReplay creates a replay of route. A non-positive interval follows the request.
func NewRouteReplay(route []models.Position, interval time.Duration) *RouteReplay {
	return &RouteReplay{
		route:    append([]models.Position(nil), route...),
		interval: interval,
	}
}

// RequestLocationUpdates emits the first point at once and the rest every interval
func (r *RouteReplay) RequestLocationUpdates(ctx context.Context, req models.LocationRequest) (<-chan models.LocationResult, error) {
	if len(r.route) == 0 {
		return nil, ErrEmptyRoute
	}

	interval := r.interval
	if interval <= 0 {
		interval = req.Interval
	}
	if interval <= 0 {
		interval = models.DefaultLocationInterval
	}

	updates := make(chan models.LocationResult)
	go r.play(ctx, interval, updates)

	return updates, nil
}

func (r *RouteReplay) play(ctx context.Context, interval time.Duration, updates chan<- models.LocationResult) {
	defer close(updates)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for i, position := range r.route {
		if i > 0 {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}

		result := models.LocationResult{Locations: []models.Fix{{
			Latitude:  position.Latitude,
			Longitude: position.Longitude,
			Timestamp: time.Now(),
		}}}
		select {
		case <-ctx.Done():
			return
		case updates <- result:
		}
	}

	logger.Debug("Replay route finished", logger.Int("points", len(r.route)))
	<-ctx.Done()
}
