package observer_sweep

import (
	"context"
	"time"

	"github.com/Andresg1046/AppTracking/pkg/logger"
)

type Hub interface {
	SweepIdle(maxIdle time.Duration) int
}

// ObserverSweep drops subscriptions that have not been pushed to
// within the idle window.
type ObserverSweep struct {
	log      logger.Logger
	hub      Hub
	interval time.Duration
	idle     time.Duration
}

func New(log logger.Logger, hub Hub, interval, idle time.Duration) *ObserverSweep {
	return &ObserverSweep{
		log:      log,
		hub:      hub,
		interval: interval,
		idle:     idle,
	}
}

func (o *ObserverSweep) TTL() time.Duration {
	return o.interval
}

func (o *ObserverSweep) Do(context.Context) error {
	dropped := o.hub.SweepIdle(o.idle)

	if dropped > 0 {
		o.log.With(
			logger.NewField("dropped_observers", dropped),
		).Info("observer sweep")
	}

	return nil
}

func (o *ObserverSweep) Info() string {
	return "observer sweep"
}
