package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/nearbycabs/internal/pkg/circuitbreaker"
	"github.com/piresc/nearbycabs/internal/pkg/logger"
	"github.com/piresc/nearbycabs/internal/pkg/models"
	"github.com/piresc/nearbycabs/internal/pkg/retry"
	"github.com/piresc/nearbycabs/services/maps"
)

// VehicleGW fronts a nearby-vehicle data source with a circuit breaker and optional retries.
// Every failure it returns wraps maps.ErrDataSourceUnavailable.
type VehicleGW struct {
	source  maps.VehicleGW
	breaker *circuitbreaker.CircuitBreaker
	retrier *retry.Retrier
}

// NewVehicleGW wraps source according to the maps retry and breaker settings
func NewVehicleGW(name string, source maps.VehicleGW, cfg models.MapsConfig, zapLogger *logger.ZapLogger) *VehicleGW {
	breakerCfg := circuitbreaker.DefaultConfig(name)
	if cfg.BreakerThreshold > 0 {
		breakerCfg.FailureThreshold = uint32(cfg.BreakerThreshold)
	}
	if cfg.BreakerTimeoutSec > 0 {
		breakerCfg.Timeout = time.Duration(cfg.BreakerTimeoutSec) * time.Second
	}

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = cfg.FetchRetries
	if retryCfg.MaxRetries < 0 {
		retryCfg.MaxRetries = 0
	}
	retryCfg.RetryableFunc = func(err error) bool {
		return !errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen)
	}

	return &VehicleGW{
		source:  source,
		breaker: circuitbreaker.New(breakerCfg, zapLogger),
		retrier: retry.New(retryCfg, zapLogger),
	}
}

// FetchNearbyVehicles asks the source for cabs around origin and drops positions it cannot draw
func (gw *VehicleGW) FetchNearbyVehicles(ctx context.Context, origin models.Position) ([]models.Position, error) {
	var cabs []models.Position
	err := gw.retrier.Execute(ctx, func(ctx context.Context) error {
		return gw.breaker.Execute(ctx, func(ctx context.Context) error {
			var err error
			cabs, err = gw.source.FetchNearbyVehicles(ctx, origin)
			return err
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", maps.ErrDataSourceUnavailable, err)
	}

	valid := make([]models.Position, 0, len(cabs))
	for _, cab := range cabs {
		if err := cab.Validate(); err != nil {
			logger.Warn("Dropping cab with invalid position",
				logger.String("breaker", gw.breaker.Name()),
				logger.Err(err))
			continue
		}
		valid = append(valid, cab)
	}
	return valid, nil
}

// BreakerState reports the data source circuit state
func (gw *VehicleGW) BreakerState() circuitbreaker.State {
	return gw.breaker.State()
}
