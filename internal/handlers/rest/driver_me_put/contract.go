//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_me_put_test
package driver_me_put

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
	UpdateProfile(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error)
}
