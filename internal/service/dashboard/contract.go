//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dashboard_test
package dashboard

import (
	"context"
	"time"

	"github.com/Andresg1046/AppTracking/internal/entities"
)

type DriverRepository interface {
	List(ctx context.Context, filter entities.DriverListFilter) ([]entities.Driver, error)
}

type DeliveryRepository interface {
	CountActive(ctx context.Context) (int64, error)
	CountCompletedSince(ctx context.Context, since time.Time) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]entities.DeliveryAssignment, error)
	ListActive(ctx context.Context) ([]entities.DeliveryAssignment, error)
}
