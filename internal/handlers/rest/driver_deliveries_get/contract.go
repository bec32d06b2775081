//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_deliveries_get_test
package driver_deliveries_get

import (
	"context"

	"github.com/Andresg1046/AppTracking/internal/entities"
	"github.com/Andresg1046/AppTracking/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type DriverService interface {
	GetDriverByUser(ctx context.Context, userID int64) (*entities.Driver, error)
}

type Service interface {
	ListForDriver(ctx context.Context, driverID int64, status *entities.DeliveryStatusType) ([]entities.DeliveryAssignment, error)
}
