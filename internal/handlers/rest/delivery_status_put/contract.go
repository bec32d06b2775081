//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_status_put_test
package delivery_status_put

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
	UpdateStatus(ctx context.Context, assignmentID, actorDriverID int64, status entities.DeliveryStatusType, notes *string) (*entities.DeliveryAssignment, error)
}
