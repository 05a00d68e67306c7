package maps

import "github.com/piresc/nearbycabs/internal/pkg/models"

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/nearbycabs/services/maps ScreenUC,NearbyCabsView

// ScreenUC is the map screen, driven 1:1 by host lifecycle events
type ScreenUC interface {
	OnCreate()
	OnMapReady(surface RenderSurface)
	OnStart()
	OnPermissionResult(requestCode int, granted bool)
	OnDestroy()
	Snapshot() models.ScreenSnapshot
}

// NearbyCabsView receives fetched cabs for the origin they were requested around
type NearbyCabsView interface {
	ShowNearbyCabs(origin models.Position, cabs []models.Position)
}
