//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"github.com/Andresg1046/AppTracking/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, assignment entities.DeliveryAssignment) (*entities.DeliveryAssignment, error)
	Update(ctx context.Context, assignmentModify entities.DeliveryAssignmentModify) (*entities.DeliveryAssignment, error)
	GetByID(ctx context.Context, id int64) (*entities.DeliveryAssignment, error)
	GetLatestByOrderNumber(ctx context.Context, orderNumber string) (*entities.DeliveryAssignment, error)
	GetActiveByOrderID(ctx context.Context, orderID int64) (*entities.DeliveryAssignment, error)
	GetActiveByDriverID(ctx context.Context, driverID int64) (*entities.DeliveryAssignment, error)
	ListByDriver(ctx context.Context, driverID int64, status *entities.DeliveryStatusType) ([]entities.DeliveryAssignment, error)
	FailExpired(ctx context.Context, cutoff time.Time) ([]string, error)
}

type DriverService interface {
	GetDriver(ctx context.Context, id int64) (*entities.Driver, error)
	UpdateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error)
}

type OrderGateway interface {
	GetOrder(ctx context.Context, orderID int64) (*entities.Order, error)
}

// ClosedNotifier tells realtime observers an assignment reached a
// terminal status. Called after the owning transaction commits.
type ClosedNotifier interface {
	NotifyClosed(orderNumber string, status entities.DeliveryStatusType)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
