//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=location_test
package location

import (
	"context"
	"time"

	"github.com/Andresg1046/AppTracking/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, sample entities.LocationSample) (*entities.LocationSample, error)
	ListByDriverSince(ctx context.Context, driverID int64, since time.Time) ([]entities.LocationSample, error)
}

type DriverService interface {
	GetDriver(ctx context.Context, id int64) (*entities.Driver, error)
	UpdateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error)
}

type DeliveryService interface {
	ActiveForDriver(ctx context.Context, driverID int64) (*entities.DeliveryAssignment, error)
	UpdateProgress(ctx context.Context, assignmentModify entities.DeliveryAssignmentModify) (*entities.DeliveryAssignment, error)
}

// SnapshotPublisher pushes fresh tracking snapshots to realtime
// observers. Implemented by the notification hub.
type SnapshotPublisher interface {
	Publish(snapshot entities.TrackingSnapshot)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
