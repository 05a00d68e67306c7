package usecase

import (
	"sync"

	"github.com/piresc/nearbycabs/internal/pkg/models"
	"github.com/piresc/nearbycabs/services/maps"
	"github.com/piresc/nearbycabs/services/maps/gate"
	"github.com/piresc/nearbycabs/services/maps/presenter"
	"github.com/piresc/nearbycabs/services/maps/synchronizer"
	"github.com/piresc/nearbycabs/services/maps/tracker"
)

// ScreenUC implements the map screen use case
type ScreenUC struct {
	cfg       models.MapsConfig
	prompts   maps.PromptService
	gate      *gate.LocationGate
	tracker   *tracker.LocationTracker
	presenter *presenter.MapsPresenter

	mu              sync.Mutex
	created         bool
	state           models.ScreenState
	generation      uint64
	surface         maps.RenderSurface
	cabMarkers      *synchronizer.CabMarkerSynchronizer
	currentPosition *models.Position
	pendingRecenter bool
	pendingCabs     []models.Position
	lastNotice      string
}

// NewScreenUC creates a new map screen use case
func NewScreenUC(
	cfg *models.Config,
	prompts maps.PromptService,
	locationProvider maps.LocationProvider,
	vehicleGW maps.VehicleGW,
) *ScreenUC {
	return &ScreenUC{
		cfg:       cfg.Maps,
		prompts:   prompts,
		gate:      gate.NewLocationGate(prompts, cfg.Maps.PermissionRequestCode),
		tracker:   tracker.NewLocationTracker(locationProvider, cfg.Maps.LocationRequest()),
		presenter: presenter.NewMapsPresenter(vehicleGW, cfg.Maps.FetchTimeout()),
		state:     models.ScreenIdle,
	}
}

// WaitForLookups blocks until nearby-cab lookups already started have finished
func (uc *ScreenUC) WaitForLookups() {
	uc.presenter.Wait()
}
