package surface

import (
	"sync"

	"github.com/google/uuid"
	"github.com/piresc/nearbycabs/internal/pkg/logger"
	"github.com/piresc/nearbycabs/internal/pkg/models"
)

// MemoryCanvas is a render surface that keeps what was drawn in memory so a
// headless host can report it
type MemoryCanvas struct {
	mu          sync.Mutex
	markers     []models.MarkerHandle
	camera      models.CameraState
	cameraMoves int
	myLocation  bool
	topPadding  int
}

// NewMemoryCanvas creates an empty canvas
func NewMemoryCanvas() *MemoryCanvas {
	return &MemoryCanvas{}
}

// AddMarker draws a marker and returns its handle
func (c *MemoryCanvas) AddMarker(options models.MarkerOptions) models.MarkerHandle {
	c.mu.Lock()
	defer c.mu.Unlock()

	handle := models.MarkerHandle{
		ID:      uuid.New().String(),
		Options: options,
	}
	c.markers = append(c.markers, handle)
	return handle
}

// ClearAll removes every marker
func (c *MemoryCanvas) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.markers = nil
}

// MoveCamera jumps the camera to position, keeping the zoom
func (c *MemoryCanvas) MoveCamera(position models.Position) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.camera.Target = &position
	c.camera.Animated = false
	c.cameraMoves++

	logger.Debug("Camera moved", logger.Position(position.Latitude, position.Longitude))
}

// AnimateCamera glides the camera to position at zoom
func (c *MemoryCanvas) AnimateCamera(position models.Position, zoom float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.camera.Target = &position
	c.camera.Zoom = zoom
	c.camera.Animated = true
	c.cameraMoves++

	logger.Debug("Camera animated",
		logger.Position(position.Latitude, position.Longitude),
		logger.Float64("zoom", zoom))
}

// SetMyLocationIndicator toggles the device position dot and the top padding it needs
func (c *MemoryCanvas) SetMyLocationIndicator(enabled bool, topPaddingPx int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.myLocation = enabled
	c.topPadding = topPaddingPx
}

// Snapshot returns a copy of the drawn state
func (c *MemoryCanvas) Snapshot() models.CanvasSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := models.CanvasSnapshot{
		Camera:            c.camera,
		CameraMoves:       c.cameraMoves,
		MyLocationEnabled: c.myLocation,
		TopPaddingPx:      c.topPadding,
		Markers:           make([]models.MarkerHandle, len(c.markers)),
	}
	copy(snapshot.Markers, c.markers)
	if c.camera.Target != nil {
		target := *c.camera.Target
		snapshot.Camera.Target = &target
	}
	return snapshot
}
