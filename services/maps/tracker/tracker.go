package tracker

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/piresc/nearbycabs/internal/pkg/logger"
	"github.com/piresc/nearbycabs/internal/pkg/models"
	"github.com/piresc/nearbycabs/services/maps"
)

// FixHandler receives an accepted fix
type FixHandler func(position models.Position)

// LocationTracker owns at most one subscription to the location stream.
// Only the first valid fix of a session is reported; later fixes are counted and dropped.
type LocationTracker struct {
	provider maps.LocationProvider
	request  models.LocationRequest

	mu      sync.Mutex
	session *session
}

type session struct {
	id         string
	cancel     context.CancelFunc
	firstFix   bool
	current    *models.Position
	suppressed int
}

// NewLocationTracker creates a tracker that asks the provider for req-shaped updates
func NewLocationTracker(provider maps.LocationProvider, req models.LocationRequest) *LocationTracker {
	return &LocationTracker{
		provider: provider,
		request:  req,
	}
}

// Start opens a session. onFix and then onUpdate run once, with the first valid fix,
// on the delivery goroutine and without the tracker lock held.
func (t *LocationTracker) Start(onFix, onUpdate FixHandler) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.session != nil {
		return "", maps.ErrSessionActive
	}

	ctx, cancel := context.WithCancel(context.Background())
	updates, err := t.provider.RequestLocationUpdates(ctx, t.request)
	if err != nil {
		cancel()
		return "", fmt.Errorf("failed to request location updates: %w", err)
	}

	s := &session{id: uuid.New().String(), cancel: cancel}
	t.session = s

	logger.Info("Location tracking started",
		logger.String("session_id", s.id),
		logger.Duration("interval", t.request.Interval),
		logger.String("priority", string(t.request.Priority)))

	go t.deliver(s, updates, onFix, onUpdate)

	return s.id, nil
}

func (t *LocationTracker) deliver(s *session, updates <-chan models.LocationResult, onFix, onUpdate FixHandler) {
	for result := range updates {
		accepted, ok := t.accept(s, result)
		if !ok {
			continue
		}
		if onFix != nil {
			onFix(accepted)
		}
		if onUpdate != nil {
			onUpdate(accepted)
		}
	}
	logger.Debug("Location stream closed", logger.String("session_id", s.id))
}

// accept records a batch and reports the fix to announce, if any
func (t *LocationTracker) accept(s *session, result models.LocationResult) (models.Position, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.session != s || len(result.Locations) == 0 {
		return models.Position{}, false
	}

	var accepted *models.Position
	for _, fix := range result.Locations {
		position := fix.Position()
		if err := position.Validate(); err != nil {
			logger.Warn("Skipping invalid fix", logger.String("session_id", s.id), logger.Err(err))
			continue
		}
		if s.firstFix {
			s.suppressed++
			continue
		}
		s.firstFix = true
		s.current = &position
		accepted = &position
	}

	if accepted == nil {
		return models.Position{}, false
	}
	return *accepted, true
}

// Stop cancels the subscription. Safe to call repeatedly or before Start.
func (t *LocationTracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.session == nil {
		return
	}
	t.session.cancel()
	logger.Info("Location tracking stopped",
		logger.String("session_id", t.session.id),
		logger.Int("suppressed_fixes", t.session.suppressed))
	t.session = nil
}

// Active reports whether a session is open
func (t *LocationTracker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.session != nil
}

// Snapshot returns the current session state
func (t *LocationTracker) Snapshot() models.TrackingSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.session == nil {
		return models.TrackingSnapshot{}
	}

	snapshot := models.TrackingSnapshot{
		SessionID:        t.session.id,
		Active:           true,
		FirstFixCaptured: t.session.firstFix,
		SuppressedFixes:  t.session.suppressed,
	}
	if t.session.current != nil {
		current := *t.session.current
		snapshot.CurrentPosition = &current
	}
	return snapshot
}
