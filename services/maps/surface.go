package maps

import "github.com/piresc/nearbycabs/internal/pkg/models"

//go:generate mockgen -destination=mocks/mock_surface.go -package=mocks github.com/piresc/nearbycabs/services/maps RenderSurface

// RenderSurface is the drawable map the screen owns
type RenderSurface interface {
	AddMarker(options models.MarkerOptions) models.MarkerHandle
	ClearAll()
	MoveCamera(position models.Position)
	AnimateCamera(position models.Position, zoom float64)
	SetMyLocationIndicator(enabled bool, topPaddingPx int)
}
