package assignment_sweep

import (
	"context"
	"time"

	"github.com/Andresg1046/AppTracking/pkg/logger"
)

type Service interface {
	ReleaseExpired(ctx context.Context, maxAge time.Duration) (int64, error)
}

// AssignmentSweep fails assignments stuck past maxAge and releases
// their drivers.
type AssignmentSweep struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	maxAge   time.Duration
}

func New(log logger.Logger, service Service, interval, maxAge time.Duration) *AssignmentSweep {
	return &AssignmentSweep{
		log:      log,
		service:  service,
		interval: interval,
		maxAge:   maxAge,
	}
}

func (a *AssignmentSweep) TTL() time.Duration {
	return a.interval
}

func (a *AssignmentSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.interval)
	defer cancel()

	rowsAffected, err := a.service.ReleaseExpired(ctxWithTimeout, a.maxAge)

	if rowsAffected > 0 {
		a.log.With(
			logger.NewField("expired_assignments", rowsAffected),
		).Info("assignment sweep")
	}

	return err
}

func (a *AssignmentSweep) Info() string {
	return "assignment sweep"
}
