package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"github.com/piresc/nearbycabs/internal/pkg/constants"
	"github.com/piresc/nearbycabs/internal/pkg/logger"
	"github.com/piresc/nearbycabs/internal/pkg/models"
	"github.com/piresc/nearbycabs/internal/utils"
)

// WSVehicleSource asks the cab simulator for nearby cabs over a websocket, one
// connection per lookup
type WSVehicleSource struct {
	url      string
	radiusKm float64
	dialer   *websocket.Dialer
}

// NewWSVehicleSource creates a source for the simulator socket at url
func NewWSVehicleSource(url string, radiusKm float64) *WSVehicleSource {
	return &WSVehicleSource{
		url:      url,
		radiusKm: radiusKm,
		dialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
		},
	}
}

// FetchNearbyVehicles sends a nearby_cabs request and waits for its reply
func (s *WSVehicleSource) FetchNearbyVehicles(ctx context.Context, origin models.Position) ([]models.Position, error) {
	conn, _, err := s.dialer.DialContext(ctx, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to simulator: %w", err)
	}
	defer conn.Close()

	// ctx bounds the whole exchange; closing the socket unblocks any read or write
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	payload, err := json.Marshal(models.NearbyVehiclesRequest{
		Origin:   origin,
		RadiusKm: s.radiusKm,
		Cell:     utils.EncodeLocation(origin, constants.GeohashPrecision),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal nearby cabs request: %w", err)
	}
	if err := conn.WriteJSON(models.WSMessage{Event: constants.EventNearbyCabs, Data: payload}); err != nil {
		return nil, s.connError(ctx, "failed to send nearby cabs request", err)
	}

	for {
		var msg models.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return nil, s.connError(ctx, "failed to read simulator reply", err)
		}

		switch msg.Event {
		case constants.EventNearbyCabs:
			var response models.NearbyVehiclesResponse
			if err := json.Unmarshal(msg.Data, &response); err != nil {
				return nil, fmt.Errorf("failed to parse nearby cabs reply: %w", err)
			}
			return response.Positions(), nil
		case constants.EventError:
			var wsErr models.WSErrorMessage
			if err := json.Unmarshal(msg.Data, &wsErr); err != nil {
				return nil, fmt.Errorf("simulator returned an unreadable error: %w", err)
			}
			return nil, fmt.Errorf("simulator error %s: %s", wsErr.Code, wsErr.Message)
		case constants.EventPing:
			if err := conn.WriteJSON(models.WSMessage{Event: constants.EventPong}); err != nil {
				return nil, s.connError(ctx, "failed to answer ping", err)
			}
		default:
			logger.Debug("Ignoring simulator event", logger.String("event", msg.Event))
		}
	}
}

// connError prefers the context error when the connection was torn down by ctx
func (s *WSVehicleSource) connError(ctx context.Context, msg string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s: %w", msg, ctxErr)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
