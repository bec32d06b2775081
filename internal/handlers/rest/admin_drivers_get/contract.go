//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_drivers_get_test
package admin_drivers_get

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
	GetDrivers(ctx context.Context, filter entities.DriverListFilter) ([]entities.Driver, error)
}
