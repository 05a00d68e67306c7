package tracker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/nearbycabs/internal/pkg/models"
	"github.com/piresc/nearbycabs/services/maps"
	"github.com/piresc/nearbycabs/services/maps/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects callback invocations from the delivery goroutine
type recorder struct {
	mu      sync.Mutex
	fixes   []models.Position
	updates []models.Position
}

func (r *recorder) onFix(p models.Position) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fixes = append(r.fixes, p)
}

func (r *recorder) onUpdate(p models.Position) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, p)
}

func (r *recorder) counts() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.fixes), len(r.updates)
}

func fix(lat, lng float64) models.Fix {
	return models.Fix{Latitude: lat, Longitude: lng, Timestamp: time.Now()}
}

func startTracker(t *testing.T) (*LocationTracker, chan models.LocationResult, *recorder, *context.Context) {
	t.Helper()
	ctrl := gomock.NewController(t)

	updates := make(chan models.LocationResult)
	var streamCtx context.Context

	mockProvider := mocks.NewMockLocationProvider(ctrl)
	mockProvider.EXPECT().
		RequestLocationUpdates(gomock.Any(), models.DefaultLocationRequest()).
		DoAndReturn(func(ctx context.Context, _ models.LocationRequest) (<-chan models.LocationResult, error) {
			streamCtx = ctx
			return updates, nil
		})

	tr := NewLocationTracker(mockProvider, models.DefaultLocationRequest())
	rec := &recorder{}

	sessionID, err := tr.Start(rec.onFix, rec.onUpdate)
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)
	t.Cleanup(func() {
		tr.Stop()
		close(updates)
	})

	return tr, updates, rec, &streamCtx
}

func TestLocationTracker_FirstFixInvokesBothCallbacks(t *testing.T) {
	// Arrange
	tr, updates, rec, _ := startTracker(t)

	// Act
	updates <- models.LocationResult{Locations: []models.Fix{fix(12.9, 77.6)}}

	// Assert
	require.Eventually(t, func() bool {
		fixes, upd := rec.counts()
		return fixes == 1 && upd == 1
	}, time.Second, 5*time.Millisecond)

	rec.mu.Lock()
	assert.Equal(t, models.NewPosition(12.9, 77.6), rec.fixes[0])
	assert.Equal(t, models.NewPosition(12.9, 77.6), rec.updates[0])
	rec.mu.Unlock()

	snapshot := tr.Snapshot()
	assert.True(t, snapshot.Active)
	assert.True(t, snapshot.FirstFixCaptured)
	require.NotNil(t, snapshot.CurrentPosition)
	assert.Equal(t, models.NewPosition(12.9, 77.6), *snapshot.CurrentPosition)
}

func TestLocationTracker_OnFixAtMostOncePerSession(t *testing.T) {
	// Arrange
	tr, updates, rec, _ := startTracker(t)

	// Act: several fixes in one batch, then more batches
	updates <- models.LocationResult{Locations: []models.Fix{fix(12.9, 77.6), fix(12.91, 77.61), fix(12.92, 77.62)}}
	updates <- models.LocationResult{Locations: []models.Fix{fix(12.95, 77.65)}}
	updates <- models.LocationResult{Locations: []models.Fix{fix(12.96, 77.66), fix(12.97, 77.67)}}

	// Assert: unbuffered sends above have all been received; wait for the last to be counted
	require.Eventually(t, func() bool {
		return tr.Snapshot().SuppressedFixes == 5
	}, time.Second, 5*time.Millisecond)

	fixes, upd := rec.counts()
	assert.Equal(t, 1, fixes)
	assert.Equal(t, 1, upd)
	assert.Equal(t, models.NewPosition(12.9, 77.6), *tr.Snapshot().CurrentPosition)
}

func TestLocationTracker_EmptyAndInvalidBatches(t *testing.T) {
	// Arrange
	tr, updates, rec, _ := startTracker(t)

	// Act
	updates <- models.LocationResult{}
	updates <- models.LocationResult{Locations: []models.Fix{fix(123, 77.6)}}

	// Assert
	fixes, _ := rec.counts()
	assert.Zero(t, fixes)
	assert.False(t, tr.Snapshot().FirstFixCaptured)

	// the first valid fix after invalid ones is accepted
	updates <- models.LocationResult{Locations: []models.Fix{fix(0, 500), fix(12.9, 77.6)}}
	require.Eventually(t, func() bool {
		fixes, _ := rec.counts()
		return fixes == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, models.NewPosition(12.9, 77.6), *tr.Snapshot().CurrentPosition)
	assert.Zero(t, tr.Snapshot().SuppressedFixes)
}

func TestLocationTracker_SecondStartFails(t *testing.T) {
	tr, _, rec, _ := startTracker(t)

	sessionID, err := tr.Start(rec.onFix, rec.onUpdate)

	assert.ErrorIs(t, err, maps.ErrSessionActive)
	assert.Empty(t, sessionID)
}

func TestLocationTracker_StopCancelsStream(t *testing.T) {
	// Arrange
	tr, updates, rec, streamCtx := startTracker(t)

	// Act
	tr.Stop()
	tr.Stop()

	// Assert
	select {
	case <-(*streamCtx).Done():
	case <-time.After(time.Second):
		t.Fatal("stream context not cancelled")
	}
	assert.False(t, tr.Active())
	assert.Equal(t, models.TrackingSnapshot{}, tr.Snapshot())

	// fixes from the stopped session are ignored
	updates <- models.LocationResult{Locations: []models.Fix{fix(12.9, 77.6)}}
	fixes, _ := rec.counts()
	assert.Zero(t, fixes)
}

func TestLocationTracker_StopBeforeStart(t *testing.T) {
	tr := NewLocationTracker(nil, models.DefaultLocationRequest())

	assert.NotPanics(t, tr.Stop)
	assert.False(t, tr.Active())
}

func TestLocationTracker_ProviderError(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mocks.NewMockLocationProvider(ctrl)
	mockProvider.EXPECT().
		RequestLocationUpdates(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("nats: no servers available"))

	tr := NewLocationTracker(mockProvider, models.DefaultLocationRequest())

	// Act
	sessionID, err := tr.Start(nil, nil)

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to request location updates")
	assert.Empty(t, sessionID)
	assert.False(t, tr.Active())
}
