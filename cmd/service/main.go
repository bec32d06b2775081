package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "github.com/Andresg1046/AppTracking/internal/app"
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
	"github.com/Andresg1046/AppTracking/internal/handlers/rest/healthcheck_head"
	"github.com/Andresg1046/AppTracking/internal/handlers/rest/order_driver_location_get"
	"github.com/Andresg1046/AppTracking/internal/handlers/rest/ping_get"
	"github.com/Andresg1046/AppTracking/internal/handlers/rest/track_order_get"
	"github.com/Andresg1046/AppTracking/internal/handlers/rest/ws_status_get"
	wsdriverfeed "github.com/Andresg1046/AppTracking/internal/handlers/ws/driver_feed"
	wstrackorder "github.com/Andresg1046/AppTracking/internal/handlers/ws/track_order"
	"github.com/Andresg1046/AppTracking/internal/pkg/config"
	"github.com/Andresg1046/AppTracking/internal/pkg/dotenv"
	"github.com/Andresg1046/AppTracking/internal/pkg/middlewares/auth"
	"github.com/Andresg1046/AppTracking/internal/pkg/middlewares/graceful_shutdown"
	"github.com/Andresg1046/AppTracking/internal/pkg/middlewares/metrics"
	"github.com/Andresg1046/AppTracking/internal/pkg/middlewares/rate_limiter"
	"github.com/Andresg1046/AppTracking/internal/pkg/middlewares/timeout"
	"github.com/Andresg1046/AppTracking/internal/pkg/postgres"
	metrics_system "github.com/Andresg1046/AppTracking/internal/pkg/metrics"
	"github.com/Andresg1046/AppTracking/pkg/logger"
	"github.com/Andresg1046/AppTracking/pkg/logger/zap_adapter"
	"github.com/Andresg1046/AppTracking/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting delivery-tracking application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger, zapLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger, zapLogger *zap_adapter.ZapAdapter) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	if err := postgres.Migrate(ctx, log, &cfg.Database); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(ctx, log, zapLogger, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx feeds BaseContext and must survive SIGTERM. It is only
	// cancelled after server.Shutdown() so in-flight requests finish.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil channel when pprof is disabled, never selected
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must be independent of ctx, already cancelled here.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// Public tracking surface, no auth. Order numbers are unguessable
	// enough for the storefront link.
	router.Handle("/tracking/{order_number}", track_order_get.New(log, app.ServiceDelivery, app.ServiceDriver)).Methods("GET")
	router.Handle("/order/{order_number}/driver-location", order_driver_location_get.New(log, app.ServiceDelivery, app.ServiceDriver)).Methods("GET")
	router.Handle("/ws/status", ws_status_get.New(log, app.Hub)).Methods("GET")

	// Websocket channels authenticate on their own, browser clients
	// cannot send an Authorization header on the upgrade request.
	router.Handle("/ws/tracking/{order_number}", wstrackorder.New(log, app.ServiceDelivery, app.ServiceDriver, app.Hub)).Methods("GET")
	router.Handle("/ws/driver", wsdriverfeed.New(log, app.Auth, app.ServiceDriver, app.ServiceLocation, app.Hub)).Methods("GET")

	adminOnly := func(h http.Handler) http.Handler {
		return app.Auth.Middleware(auth.RequireRole(auth.RoleAdmin)(h))
	}

	// Registered before the /drivers and /deliveries subrouters so the
	// admin routes win the prefix match.
	router.Handle("/drivers/activate/{user_id}", adminOnly(driver_activate_post.New(log, app.ServiceDriver))).Methods("POST")
	router.Handle("/deliveries/assign", adminOnly(delivery_assign_post.New(log, app.ServiceDelivery))).Methods("POST")

	driverRouter := router.PathPrefix("/drivers").Subrouter()
	driverRouter.Use(app.Auth.Middleware, auth.RequireRole(auth.RoleDriver))
	driverRouter.Handle("/me", driver_me_get.New(log, app.ServiceDriver)).Methods("GET")
	driverRouter.Handle("/me", driver_me_put.New(log, app.ServiceDriver)).Methods("PUT")
	driverRouter.Handle("/status", driver_status_post.New(log, app.ServiceDriver)).Methods("POST")
	driverRouter.Handle("/stats", driver_stats_get.New(log, app.ServiceDriver)).Methods("GET")
	driverRouter.Handle("/location", driver_location_post.New(log, app.ServiceDriver, app.ServiceLocation)).Methods("POST")
	driverRouter.Handle("/location/history", driver_location_history_get.New(log, app.ServiceDriver, app.ServiceLocation)).Methods("GET")
	driverRouter.Handle("/current-location", driver_current_location_get.New(log, app.ServiceDriver)).Methods("GET")
	driverRouter.Handle("/deliveries", driver_deliveries_get.New(log, app.ServiceDriver, app.ServiceDelivery)).Methods("GET")

	deliveryRouter := router.PathPrefix("/deliveries").Subrouter()
	deliveryRouter.Use(app.Auth.Middleware, auth.RequireRole(auth.RoleDriver))
	deliveryRouter.Handle("/{id}/status", delivery_status_put.New(log, app.ServiceDriver, app.ServiceDelivery)).Methods("PUT")

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(app.Auth.Middleware, auth.RequireRole(auth.RoleAdmin))
	adminRouter.Handle("/drivers", admin_drivers_get.New(log, app.ServiceDriver)).Methods("GET")
	adminRouter.Handle("/drivers/locations", admin_driver_locations_get.New(log, app.ServiceDashboard)).Methods("GET")
	adminRouter.Handle("/dashboard", admin_dashboard_get.New(log, app.ServiceDashboard)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
