//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	commerceOrder "github.com/Andresg1046/AppTracking/internal/gateway/commerce/order"
	commerceUser "github.com/Andresg1046/AppTracking/internal/gateway/commerce/user"
	"github.com/Andresg1046/AppTracking/internal/handlers/rest/admin_dashboard_get"
	"github.com/Andresg1046/AppTracking/internal/handlers/rest/admin_driver_locations_get"
	"github.com/Andresg1046/AppTracking/internal/handlers/rest/admin_drivers_get"
	"github.com/Andresg1046/AppTracking/internal/handlers/rest/delivery_assign_post"
	"github.com/Andresg1046/AppTracking/internal/handlers/rest/delivery_status_put"
	"github.com/Andresg1046/AppTracking/internal/handlers/rest/driver_activate_post"
	"github.com/Andresg1046/AppTracking/internal/handlers/rest/driver_current_location_get"
	"github.com/Andresg1046/AppTracking/internal/handlers/rest/driver_deliveries_get"
	"github.com/Andresg1046/AppTracking/internal/handlers/rest/driver_location_history_get"
	"github.com/Andresg1046/AppTracking/internal/handlers/rest/driver_location_post"
	"github.com/Andresg1046/AppTracking/internal/handlers/rest/driver_me_get"
	"github.com/Andresg1046/AppTracking/internal/handlers/rest/driver_me_put"
	"github.com/Andresg1046/AppTracking/internal/handlers/rest/driver_stats_get"
	"github.com/Andresg1046/AppTracking/internal/handlers/rest/driver_status_post"
	"github.com/Andresg1046/AppTracking/internal/handlers/rest/track_order_get"
	"github.com/Andresg1046/AppTracking/internal/handlers/tasks/assignment_sweep"
	"github.com/Andresg1046/AppTracking/internal/handlers/tasks/hub_heartbeat"
	"github.com/Andresg1046/AppTracking/internal/handlers/tasks/observer_sweep"
	"github.com/Andresg1046/AppTracking/internal/hub"
	"github.com/Andresg1046/AppTracking/internal/pkg/config"
	"github.com/Andresg1046/AppTracking/internal/pkg/middlewares/auth"

	deliveryRepo "github.com/Andresg1046/AppTracking/internal/repository/delivery"
	driverRepo "github.com/Andresg1046/AppTracking/internal/repository/driver"
	locationRepo "github.com/Andresg1046/AppTracking/internal/repository/location"
	dashboardService "github.com/Andresg1046/AppTracking/internal/service/dashboard"
	deliveryService "github.com/Andresg1046/AppTracking/internal/service/delivery"
	driverService "github.com/Andresg1046/AppTracking/internal/service/driver"
	locationService "github.com/Andresg1046/AppTracking/internal/service/location"

	"github.com/Andresg1046/AppTracking/pkg/background"
	"github.com/Andresg1046/AppTracking/pkg/logger"
	"github.com/Andresg1046/AppTracking/pkg/logger/zap_adapter"
	"github.com/Andresg1046/AppTracking/pkg/querier"
	"github.com/Andresg1046/AppTracking/pkg/tx"
)

const commerceHTTPTimeout = 10 * time.Second

type Application struct {
	ServiceDriver     ServiceDriver
	ServiceDelivery   ServiceDelivery
	ServiceLocation   ServiceLocation
	ServiceDashboard  ServiceDashboard
	Hub               *hub.Hub
	Auth              *auth.Auth
	BackgroundWorkers *background.Worker
}

type ServiceDriver interface {
	driver_activate_post.Service
	driver_me_get.Service
	driver_me_put.Service
	driver_status_post.Service
	driver_stats_get.Service
	driver_current_location_get.Service
	admin_drivers_get.Service
	driver_location_post.DriverService
	driver_location_history_get.DriverService
	driver_deliveries_get.DriverService
	delivery_status_put.DriverService
	track_order_get.DriverService
}

type ServiceDelivery interface {
	delivery_assign_post.Service
	delivery_status_put.Service
	driver_deliveries_get.Service
	track_order_get.Service
}

type ServiceLocation interface {
	driver_location_post.Service
	driver_location_history_get.Service
}

type ServiceDashboard interface {
	admin_dashboard_get.Service
	admin_driver_locations_get.Service
}

// InitializeApplication builds the HTTP service (cmd/service). The hub
// takes the concrete zap adapter, its debug logging is not part of the
// shared logger contract.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	hubLog *zap_adapter.ZapAdapter,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideDriverRepository,
		provideDeliveryRepository,
		provideLocationRepository,

		provideHub,
		provideOrderGateway,
		provideUserGateway,
		provideAuth,

		provideServiceDriver,
		provideServiceDelivery,
		provideServiceLocation,
		provideServiceDashboard,

		provideAssignmentSweepTask,
		provideHubHeartbeatTask,
		provideObserverSweepTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDriver), new(*driverService.Driver)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceLocation), new(*locationService.Location)),
		wire.Bind(new(ServiceDashboard), new(*dashboardService.Dashboard)),

		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
		wire.Bind(new(driverService.StatsRepository), new(*deliveryRepo.Repository)),
		wire.Bind(new(driverService.IdentityGateway), new(*commerceUser.UserGateway)),
		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.DriverService), new(*driverService.Driver)),
		wire.Bind(new(deliveryService.OrderGateway), new(*commerceOrder.OrderGateway)),
		wire.Bind(new(deliveryService.ClosedNotifier), new(*hub.Hub)),
		wire.Bind(new(locationService.Repository), new(*locationRepo.Repository)),
		wire.Bind(new(locationService.DriverService), new(*driverService.Driver)),
		wire.Bind(new(locationService.DeliveryService), new(*deliveryService.Delivery)),
		wire.Bind(new(locationService.SnapshotPublisher), new(*hub.Hub)),
		wire.Bind(new(dashboardService.DriverRepository), new(*driverRepo.Repository)),
		wire.Bind(new(dashboardService.DeliveryRepository), new(*deliveryRepo.Repository)),

		wire.Bind(new(driverService.TxManager), new(*tx.Manager)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(locationService.TxManager), new(*tx.Manager)),

		wire.Bind(new(assignment_sweep.Service), new(*deliveryService.Delivery)),
		wire.Bind(new(hub_heartbeat.Hub), new(*hub.Hub)),
		wire.Bind(new(observer_sweep.Hub), new(*hub.Hub)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	ServiceDelivery *deliveryService.Delivery
}

// InitializeKafkaWorkerApp builds the order events worker
// (cmd/worker-order-events). The worker gets its own hub, no observer
// ever attaches in that process but the delivery service still wants a
// notifier.
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	hubLog *zap_adapter.ZapAdapter,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideDriverRepository,
		provideDeliveryRepository,

		provideHub,
		provideOrderGateway,
		provideUserGateway,

		provideServiceDriver,
		provideServiceDelivery,

		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
		wire.Bind(new(driverService.StatsRepository), new(*deliveryRepo.Repository)),
		wire.Bind(new(driverService.IdentityGateway), new(*commerceUser.UserGateway)),
		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.DriverService), new(*driverService.Driver)),
		wire.Bind(new(deliveryService.OrderGateway), new(*commerceOrder.OrderGateway)),
		wire.Bind(new(deliveryService.ClosedNotifier), new(*hub.Hub)),

		wire.Bind(new(driverService.TxManager), new(*tx.Manager)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideLocationRepository(querier *querier.Querier) *locationRepo.Repository {
	return locationRepo.New(querier)
}

func provideHub(hubLog *zap_adapter.ZapAdapter) *hub.Hub {
	return hub.New(hubLog, hub.NewMetrics())
}

func provideOrderGateway(cfg *config.Config) *commerceOrder.OrderGateway {
	client := &http.Client{Timeout: commerceHTTPTimeout}
	return commerceOrder.New(client, cfg.Commerce.BaseURL, cfg.Commerce.APIKey)
}

func provideUserGateway(cfg *config.Config) *commerceUser.UserGateway {
	client := &http.Client{Timeout: commerceHTTPTimeout}
	return commerceUser.New(client, cfg.Commerce.BaseURL, cfg.Commerce.APIKey)
}

func provideAuth(cfg *config.Config) *auth.Auth {
	return auth.New(cfg.Auth.JWTSecret)
}

func provideServiceDriver(
	repository driverService.Repository,
	stats driverService.StatsRepository,
	identity driverService.IdentityGateway,
	txManager driverService.TxManager,
) *driverService.Driver {
	return driverService.New(repository, stats, identity, txManager)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	drivers deliveryService.DriverService,
	orderGateway deliveryService.OrderGateway,
	notifier deliveryService.ClosedNotifier,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(repository, drivers, orderGateway, notifier, txManager)
}

func provideServiceLocation(
	repository locationService.Repository,
	drivers locationService.DriverService,
	deliveries locationService.DeliveryService,
	publisher locationService.SnapshotPublisher,
	txManager locationService.TxManager,
) *locationService.Location {
	return locationService.New(repository, drivers, deliveries, publisher, txManager)
}

func provideServiceDashboard(
	drivers dashboardService.DriverRepository,
	deliveries dashboardService.DeliveryRepository,
) *dashboardService.Dashboard {
	return dashboardService.New(drivers, deliveries)
}

func provideAssignmentSweepTask(
	log logger.Logger,
	deliveries assignment_sweep.Service,
	cfg *config.Config,
) *assignment_sweep.AssignmentSweep {
	return assignment_sweep.New(log, deliveries, cfg.Tasks.AssignmentSweepInterval, cfg.Tasks.AssignmentMaxAge)
}

func provideHubHeartbeatTask(h hub_heartbeat.Hub, cfg *config.Config) *hub_heartbeat.HubHeartbeat {
	return hub_heartbeat.New(h, cfg.Tasks.HubHeartbeatInterval)
}

func provideObserverSweepTask(
	log logger.Logger,
	h observer_sweep.Hub,
	cfg *config.Config,
) *observer_sweep.ObserverSweep {
	return observer_sweep.New(log, h, cfg.Tasks.HubSweepInterval, cfg.Tasks.HubIdleWindow)
}

func provideTaskList(
	assignmentSweepTask *assignment_sweep.AssignmentSweep,
	hubHeartbeatTask *hub_heartbeat.HubHeartbeat,
	observerSweepTask *observer_sweep.ObserverSweep,
) []background.Task {
	return []background.Task{
		assignmentSweepTask,
		hubHeartbeatTask,
		observerSweepTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
