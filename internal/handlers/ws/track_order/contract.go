//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=track_order_test
package track_order

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

type DeliveryService interface {
	GetByOrderNumber(ctx context.Context, orderNumber string) (*entities.DeliveryAssignment, error)
}

type DriverService interface {
	GetDriver(ctx context.Context, id int64) (*entities.Driver, error)
}

type Hub interface {
	Subscribe(orderNumber string, observer hub.Observer) *hub.Subscription
	Deliver(sub *hub.Subscription, snapshot entities.TrackingSnapshot)
	Unsubscribe(sub *hub.Subscription)
}
