package order_status_changed

import (
	"context"

	"github.com/Andresg1046/AppTracking/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	FailForCancelledOrder(ctx context.Context, orderID int64) error
}
