package synchronizer

import (
	"github.com/piresc/nearbycabs/internal/pkg/logger"
	"github.com/piresc/nearbycabs/internal/pkg/models"
	"github.com/piresc/nearbycabs/services/maps"
)

// CabMarkerSynchronizer keeps the surface's cab markers equal to the last list it was given.
// It is not safe for concurrent use; the screen controller serialises calls.
type CabMarkerSynchronizer struct {
	surface maps.RenderSurface
	icon    string
	markers []models.MarkerHandle
}

// NewCabMarkerSynchronizer draws cabs on surface with the given icon
func NewCabMarkerSynchronizer(surface maps.RenderSurface, icon string) *CabMarkerSynchronizer {
	return &CabMarkerSynchronizer{
		surface: surface,
		icon:    icon,
	}
}

// Replace clears every marker and adds one flat marker per position, in order
func (s *CabMarkerSynchronizer) Replace(positions []models.Position) {
	s.surface.ClearAll()

	markers := make([]models.MarkerHandle, 0, len(positions))
	for _, position := range positions {
		markers = append(markers, s.surface.AddMarker(models.MarkerOptions{
			Position: position,
			Flat:     true,
			Icon:     s.icon,
		}))
	}
	s.markers = markers

	logger.Debug("Cab markers replaced", logger.Int("markers", len(markers)))
}

// Clear removes every marker from the surface
func (s *CabMarkerSynchronizer) Clear() {
	s.Replace(nil)
}

// Markers returns a copy of the handles currently drawn
func (s *CabMarkerSynchronizer) Markers() []models.MarkerHandle {
	markers := make([]models.MarkerHandle, len(s.markers))
	copy(markers, s.markers)
	return markers
}
