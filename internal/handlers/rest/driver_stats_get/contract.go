//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_stats_get_test
package driver_stats_get

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
	GetDriverByUser(ctx context.Context, userID int64) (*entities.Driver, error)
	GetStats(ctx context.Context, driverID int64) (*entities.DriverStats, error)
}
