package usecase

import (
	"errors"

	"github.com/piresc/nearbycabs/internal/pkg/logger"
	"github.com/piresc/nearbycabs/internal/pkg/models"
	"github.com/piresc/nearbycabs/services/maps"
	"github.com/piresc/nearbycabs/services/maps/synchronizer"
)

// OnCreate attaches the screen to its data source
func (uc *ScreenUC) OnCreate() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.created {
		return
	}
	uc.created = true
	uc.generation++
	uc.state = models.ScreenIdle
	uc.presenter.OnAttach(uc)

	logger.Info("Map screen created")
}

// OnMapReady hands the render surface to the screen. A recenter or cab list that
// arrived before the surface is applied now.
func (uc *ScreenUC) OnMapReady(surface maps.RenderSurface) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.surface = surface
	uc.cabMarkers = synchronizer.NewCabMarkerSynchronizer(surface, uc.cfg.VehicleIcon)

	if uc.pendingRecenter && uc.currentPosition != nil {
		uc.recenter(*uc.currentPosition)
		uc.pendingRecenter = false
	}
	if uc.pendingCabs != nil {
		uc.cabMarkers.Replace(uc.pendingCabs)
		uc.pendingCabs = nil
	}
}

// OnStart runs the location gate unless tracking already has, or is waiting for, a fix
func (uc *ScreenUC) OnStart() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.created {
		logger.Warn("Ignoring start for a screen that was not created")
		return
	}
	if uc.currentPosition != nil || uc.tracker.Active() {
		return
	}

	switch decision := uc.gate.Evaluate(); decision {
	case models.GateProceed:
		uc.startTracking()
	case models.GateNeedsPermission:
		uc.state = models.ScreenAwaitingPermission
		uc.prompts.RequestPermission(uc.gate.RequestCode())
	case models.GateNeedsGPS:
		uc.state = models.ScreenAwaitingGPS
		uc.prompts.ShowEnablementDialog()
	}
}

// OnPermissionResult continues the gate after the permission prompt was answered
func (uc *ScreenUC) OnPermissionResult(requestCode int, granted bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.created || uc.state != models.ScreenAwaitingPermission {
		logger.Warn("Ignoring permission result outside of a permission prompt",
			logger.Int("request_code", requestCode),
			logger.String("state", uc.state.String()))
		return
	}

	decision, err := uc.gate.OnPermissionResult(requestCode, granted)
	switch {
	case errors.Is(err, maps.ErrUnexpectedRequestCode):
		return
	case errors.Is(err, maps.ErrPermissionDenied):
		uc.state = models.ScreenIdle
		uc.lastNotice = uc.cfg.PermissionDeniedNotice
		uc.prompts.ShowNotice(uc.cfg.PermissionDeniedNotice)
		logger.Info("Location permission denied")
		return
	case errors.Is(err, maps.ErrLocationServiceDisabled):
		logger.Info("Location permission granted with location services off")
	}

	switch decision {
	case models.GateProceed:
		uc.startTracking()
	case models.GateNeedsGPS:
		uc.state = models.ScreenAwaitingGPS
		uc.prompts.ShowEnablementDialog()
	}
}

// OnDestroy releases the tracker, the data source and the surface
func (uc *ScreenUC) OnDestroy() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.generation++
	uc.tracker.Stop()
	uc.presenter.OnDetach()

	if uc.cabMarkers != nil {
		uc.cabMarkers.Clear()
	}
	uc.surface = nil
	uc.cabMarkers = nil
	uc.currentPosition = nil
	uc.pendingRecenter = false
	uc.pendingCabs = nil
	uc.state = models.ScreenIdle

	if uc.created {
		logger.Info("Map screen destroyed")
	}
	uc.created = false
}

// ShowNearbyCabs renders cabs fetched around origin, as long as origin is still
// the screen's position and the screen is alive
func (uc *ScreenUC) ShowNearbyCabs(origin models.Position, cabs []models.Position) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.created || uc.state != models.ScreenTrackingSet ||
		uc.currentPosition == nil || *uc.currentPosition != origin {
		logger.Debug("Dropping stale nearby cabs", logger.String("origin", origin.String()))
		return
	}

	if uc.cabMarkers == nil {
		uc.pendingCabs = append(make([]models.Position, 0, len(cabs)), cabs...)
		return
	}
	uc.cabMarkers.Replace(cabs)
}

// Snapshot reports the screen state
func (uc *ScreenUC) Snapshot() models.ScreenSnapshot {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	permission, enablement := uc.gate.States()
	snapshot := models.ScreenSnapshot{
		State:           uc.state,
		Attached:        uc.created,
		MapReady:        uc.surface != nil,
		Permission:      permission,
		LocationService: enablement,
		Tracking:        uc.tracker.Snapshot(),
		Markers:         []models.MarkerHandle{},
		LastNotice:      uc.lastNotice,
	}
	if uc.currentPosition != nil {
		current := *uc.currentPosition
		snapshot.CurrentPosition = &current
	}
	if uc.cabMarkers != nil {
		snapshot.Markers = uc.cabMarkers.Markers()
	}
	return snapshot
}

// startTracking must be called with uc.mu held
func (uc *ScreenUC) startTracking() {
	generation := uc.generation
	sessionID, err := uc.tracker.Start(
		func(position models.Position) { uc.onFirstFix(generation, position) },
		func(position models.Position) { uc.onLocationUpdate(generation, position) },
	)
	if err != nil {
		uc.state = models.ScreenIdle
		logger.Error("Failed to start location tracking", logger.Err(err))
		return
	}

	uc.state = models.ScreenTrackingUnset
	logger.Info("Waiting for first fix", logger.String("session_id", sessionID))
}

func (uc *ScreenUC) onFirstFix(generation uint64, position models.Position) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if generation != uc.generation || uc.state != models.ScreenTrackingUnset {
		return
	}

	uc.currentPosition = &position
	uc.state = models.ScreenTrackingSet
	logger.Info("First fix accepted", logger.Position(position.Latitude, position.Longitude))

	if uc.surface != nil {
		uc.recenter(position)
	} else {
		uc.pendingRecenter = true
	}
	uc.presenter.RequestNearbyCabs(position)
}

func (uc *ScreenUC) onLocationUpdate(generation uint64, position models.Position) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if generation != uc.generation {
		return
	}
	logger.Debug("Location update", logger.Position(position.Latitude, position.Longitude))
}

// recenter must be called with uc.mu held and a surface attached
func (uc *ScreenUC) recenter(position models.Position) {
	uc.surface.SetMyLocationIndicator(true, uc.cfg.TopPaddingPx)
	uc.surface.MoveCamera(position)
	uc.surface.AnimateCamera(position, uc.cfg.ZoomLevel)
}
