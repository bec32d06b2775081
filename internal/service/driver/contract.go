//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_test
package driver

import (
	"context"

	"github.com/Andresg1046/AppTracking/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error)
	Update(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error)
	GetByID(ctx context.Context, id int64) (*entities.Driver, error)
	GetByUserID(ctx context.Context, userID int64) (*entities.Driver, error)
	List(ctx context.Context, filter entities.DriverListFilter) ([]entities.Driver, error)
}

type StatsRepository interface {
	StatsByDriver(ctx context.Context, driverID int64) (*entities.DriverStats, error)
}

type IdentityGateway interface {
	GetUser(ctx context.Context, userID int64) (*entities.User, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
