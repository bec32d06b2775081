//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_driver_location_get_test
package order_driver_location_get

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

type Service interface {
	GetByOrderNumber(ctx context.Context, orderNumber string) (*entities.DeliveryAssignment, error)
}

type DriverService interface {
	GetDriver(ctx context.Context, id int64) (*entities.Driver, error)
}
