package presenter

import (
	"context"
	"sync"
	"time"

	"github.com/piresc/nearbycabs/internal/pkg/constants"
	"github.com/piresc/nearbycabs/internal/pkg/logger"
	"github.com/piresc/nearbycabs/internal/pkg/models"
	"github.com/piresc/nearbycabs/internal/utils"
	"github.com/piresc/nearbycabs/services/maps"
)

// MapsPresenter fetches nearby cabs off the caller's goroutine and pushes them to the
// attached view. Results for a view that has since detached are dropped.
type MapsPresenter struct {
	vehicleGW maps.VehicleGW
	timeout   time.Duration

	mu         sync.Mutex
	view       maps.NearbyCabsView
	ctx        context.Context
	cancel     context.CancelFunc
	attachment uint64

	inflight sync.WaitGroup
}

// NewMapsPresenter creates a presenter whose lookups are bounded by timeout
func NewMapsPresenter(vehicleGW maps.VehicleGW, timeout time.Duration) *MapsPresenter {
	if timeout <= 0 {
		timeout = time.Duration(constants.DefaultFetchTimeoutSec) * time.Second
	}
	return &MapsPresenter{
		vehicleGW: vehicleGW,
		timeout:   timeout,
	}
}

// OnAttach binds view, replacing and cancelling any previous attachment
func (p *MapsPresenter) OnAttach(view maps.NearbyCabsView) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		p.cancel()
	}
	p.ctx, p.cancel = context.WithCancel(context.Background())
	p.view = view
	p.attachment++
}

// OnDetach unbinds the view and cancels lookups still in flight
func (p *MapsPresenter) OnDetach() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.view = nil
}

// Attached reports whether a view is bound
func (p *MapsPresenter) Attached() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.view != nil
}

// RequestNearbyCabs starts a lookup around origin and returns immediately
func (p *MapsPresenter) RequestNearbyCabs(origin models.Position) {
	p.mu.Lock()
	if p.view == nil {
		p.mu.Unlock()
		logger.Debug("Nearby cab request without a view", logger.String("origin", origin.String()))
		return
	}
	ctx := p.ctx
	attachment := p.attachment
	p.inflight.Add(1)
	p.mu.Unlock()

	go p.fetch(ctx, attachment, origin)
}

func (p *MapsPresenter) fetch(ctx context.Context, attachment uint64, origin models.Position) {
	defer p.inflight.Done()

	cell := utils.EncodeLocation(origin, constants.GeohashPrecision)
	start := time.Now()

	fetchCtx, cancel := context.WithTimeout(ctx, p.timeout)
	cabs, err := p.vehicleGW.FetchNearbyVehicles(fetchCtx, origin)
	cancel()

	if err != nil {
		if ctx.Err() != nil {
			logger.Debug("Nearby cab lookup abandoned after detach", logger.String("cell", cell))
			return
		}
		// markers stay as they are; there is no retry or error UI for lookups
		logger.Warn("Nearby cab lookup failed",
			logger.String("cell", cell),
			logger.Position(origin.Latitude, origin.Longitude),
			logger.Duration("latency", time.Since(start)),
			logger.Err(err))
		return
	}

	p.mu.Lock()
	view := p.view
	live := view != nil && p.attachment == attachment
	p.mu.Unlock()

	if !live {
		logger.Debug("Dropping nearby cabs for a detached view", logger.String("cell", cell))
		return
	}

	fields := []logger.Field{
		logger.String("cell", cell),
		logger.Int("cabs", len(cabs)),
		logger.Duration("latency", time.Since(start)),
	}
	if nearest, ok := nearestKm(origin, cabs); ok {
		fields = append(fields, logger.Float64("nearest_km", nearest))
	}
	logger.Info("Nearby cabs fetched", fields...)

	view.ShowNearbyCabs(origin, cabs)
}

func nearestKm(origin models.Position, cabs []models.Position) (float64, bool) {
	if len(cabs) == 0 {
		return 0, false
	}
	nearest := utils.CalculateDistance(origin, cabs[0])
	for _, cab := range cabs[1:] {
		if d := utils.CalculateDistance(origin, cab); d < nearest {
			nearest = d
		}
	}
	return nearest, true
}

// Wait blocks until every lookup started so far has finished
func (p *MapsPresenter) Wait() {
	p.inflight.Wait()
}
