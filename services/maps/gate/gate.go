package gate

import (
	"sync"

	"github.com/piresc/nearbycabs/internal/pkg/logger"
	"github.com/piresc/nearbycabs/internal/pkg/models"
	"github.com/piresc/nearbycabs/services/maps"
)

// LocationGate decides whether tracking may start. It only queries the prompt service;
// showing prompts is left to the caller.
type LocationGate struct {
	prompts     maps.PromptService
	requestCode int

	mu         sync.Mutex
	permission models.PermissionState
	enablement models.LocationEnablementState
}

// NewLocationGate creates a gate answering permission results for requestCode
func NewLocationGate(prompts maps.PromptService, requestCode int) *LocationGate {
	return &LocationGate{
		prompts:     prompts,
		requestCode: requestCode,
	}
}

// RequestCode is the code permission prompts must be raised with
func (g *LocationGate) RequestCode() int {
	return g.requestCode
}

// Evaluate checks permission first and the location service only once permission is granted
func (g *LocationGate) Evaluate() models.GateDecision {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.prompts.IsPermissionGranted() {
		g.permission = models.PermissionDenied
		g.enablement = models.LocationEnablementUnknown
		return models.GateNeedsPermission
	}
	g.permission = models.PermissionGranted

	return g.checkLocationService()
}

// OnPermissionResult folds a prompt answer into a new decision.
// A denial is reported as ErrPermissionDenied alongside GateNeedsPermission, and a
// grant on a device with location switched off as ErrLocationServiceDisabled alongside GateNeedsGPS.
func (g *LocationGate) OnPermissionResult(requestCode int, granted bool) (models.GateDecision, error) {
	if requestCode != g.requestCode {
		logger.Warn("Ignoring permission result for unknown request",
			logger.Int("request_code", requestCode),
			logger.Int("expected_code", g.requestCode))
		return models.GateNeedsPermission, maps.ErrUnexpectedRequestCode
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !granted {
		g.permission = models.PermissionDenied
		return models.GateNeedsPermission, maps.ErrPermissionDenied
	}
	g.permission = models.PermissionGranted

	if decision := g.checkLocationService(); decision == models.GateNeedsGPS {
		return decision, maps.ErrLocationServiceDisabled
	}
	return models.GateProceed, nil
}

func (g *LocationGate) checkLocationService() models.GateDecision {
	if !g.prompts.IsLocationEnabled() {
		g.enablement = models.LocationDisabled
		return models.GateNeedsGPS
	}
	g.enablement = models.LocationEnabled
	return models.GateProceed
}

// States returns the last observed permission and location-service states
func (g *LocationGate) States() (models.PermissionState, models.LocationEnablementState) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.permission, g.enablement
}
