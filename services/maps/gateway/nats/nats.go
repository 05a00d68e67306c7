package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/piresc/nearbycabs/internal/pkg/constants"
	"github.com/piresc/nearbycabs/internal/pkg/logger"
	"github.com/piresc/nearbycabs/internal/pkg/models"
	natspkg "github.com/piresc/nearbycabs/internal/pkg/nats"
)

// streamBuffer is how many batches may wait for the tracker before new ones are dropped
const streamBuffer = 8

// LocationProvider streams device fixes published on NATS
type LocationProvider struct {
	natsClient *natspkg.Client
	subject    string
}

// NewLocationProvider subscribes to the device's location subject, or to subject when set
func NewLocationProvider(client *natspkg.Client, deviceID, subject string) *LocationProvider {
	if subject == "" {
		subject = fmt.Sprintf(constants.SubjectDeviceLocation, deviceID)
	}
	return &LocationProvider{
		natsClient: client,
		subject:    subject,
	}
}

// Subject is the NATS subject fixes are read from
func (p *LocationProvider) Subject() string {
	return p.subject
}

// RequestLocationUpdates subscribes until ctx is cancelled, then closes the channel
func (p *LocationProvider) RequestLocationUpdates(ctx context.Context, req models.LocationRequest) (<-chan models.LocationResult, error) {
	s := &stream{
		subject: p.subject,
		fastest: req.FastestInterval,
		updates: make(chan models.LocationResult, streamBuffer),
	}

	sub, err := p.natsClient.Subscribe(p.subject, s.handle)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to device location: %w", err)
	}

	logger.Info("Subscribed to device location", logger.String("subject", p.subject))

	go func() {
		<-ctx.Done()
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe from device location",
				logger.String("subject", p.subject),
				logger.Err(err))
		}
		s.close()
	}()

	return s.updates, nil
}

// locationMessage accepts either a batch or a single fix
type locationMessage struct {
	Locations []models.Fix `json:"locations"`
	Latitude  *float64     `json:"latitude"`
	Longitude *float64     `json:"longitude"`
	Accuracy  float64      `json:"accuracy"`
	Timestamp time.Time    `json:"timestamp"`
}

func (m locationMessage) result() models.LocationResult {
	if len(m.Locations) > 0 || m.Latitude == nil || m.Longitude == nil {
		return models.LocationResult{Locations: m.Locations}
	}
	return models.LocationResult{Locations: []models.Fix{{
		Latitude:  *m.Latitude,
		Longitude: *m.Longitude,
		Accuracy:  m.Accuracy,
		Timestamp: m.Timestamp,
	}}}
}

type stream struct {
	subject string
	fastest time.Duration

	mu        sync.Mutex
	updates   chan models.LocationResult
	closed    bool
	delivered time.Time
}

func (s *stream) handle(msg *nats.Msg) {
	var message locationMessage
	if err := json.Unmarshal(msg.Data, &message); err != nil {
		logger.Warn("Failed to decode device location",
			logger.String("subject", s.subject),
			logger.Err(err))
		return
	}
	result := message.result()
	if len(result.Locations) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	now := time.Now()
	if s.fastest > 0 && !s.delivered.IsZero() && now.Sub(s.delivered) < s.fastest {
		logger.Debug("Throttling device location", logger.String("subject", s.subject))
		return
	}

	select {
	case s.updates <- result:
		s.delivered = now
	default:
		logger.Warn("Dropping device location, tracker is behind", logger.String("subject", s.subject))
	}
}

func (s *stream) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.updates)
}
