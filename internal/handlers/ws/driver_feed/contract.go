//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_feed_test
package driver_feed

import (
	"context"

	"github.com/Andresg1046/AppTracking/internal/entities"
	"github.com/Andresg1046/AppTracking/internal/hub"
	"github.com/Andresg1046/AppTracking/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type TokenParser interface {
	ParseToken(token string) (int64, string, error)
}

type DriverService interface {
	GetDriverByUser(ctx context.Context, userID int64) (*entities.Driver, error)
}

type LocationService interface {
	RecordUpdate(ctx context.Context, driverID int64, loc entities.Location) (*entities.TrackingSnapshot, error)
}

type Hub interface {
	AttachDriver(driverID int64, observer hub.Observer)
	DetachDriver(driverID int64, observer hub.Observer)
}
