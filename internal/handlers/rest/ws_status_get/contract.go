//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ws_status_get_test
package ws_status_get

import (
	"github.com/Andresg1046/AppTracking/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Stats() (orders, observers, drivers int)
}
