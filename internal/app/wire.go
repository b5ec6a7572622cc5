//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"fasterpost/internal/handlers/rest/package_scan_post"
	"fasterpost/internal/handlers/rest/route_current_get"
	"fasterpost/internal/handlers/rest/route_finish_post"
	"fasterpost/internal/handlers/rest/route_start_post"
	"fasterpost/internal/handlers/rest/routes_get"
	"fasterpost/internal/handlers/rest/stop_complete_post"
	"fasterpost/internal/handlers/tasks/route_cleanup"
	"fasterpost/internal/pkg/config"
	"fasterpost/internal/pkg/factory/package_handle"
	"fasterpost/internal/pkg/factory/scan_transition"
	"fasterpost/internal/pkg/middlewares/auth"
	"fasterpost/internal/pkg/routecache"

	accountsRepo "fasterpost/internal/repository/accounts"
	cargoRepo "fasterpost/internal/repository/cargo"
	routeRepo "fasterpost/internal/repository/route"
	"fasterpost/internal/service/courierroute"
	"fasterpost/internal/service/packagestatus"

	"fasterpost/pkg/background"
	"fasterpost/pkg/logger"
	"fasterpost/pkg/querier"
	"fasterpost/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

type (
	CleanupInterval time.Duration
	RouteCacheTTL   time.Duration
)

type Application struct {
	ServiceRoute      ServiceRoute
	TokenVerifier     auth.TokenVerifier
	BackgroundWorkers *background.Worker
}

type ServiceRoute interface {
	route_current_get.Service
	route_start_post.Service
	package_scan_post.Service
	stop_complete_post.Service
	route_finish_post.Service
	routes_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCleanupInterval,
		provideRouteCacheTTL,

		provideRouteRepository,
		provideCargoRepository,
		provideAccountsRepository,

		scan_transition.New,
		provideRouteCache,
		provideServiceRoute,

		provideRouteCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceRoute), new(*courierroute.CourierRoute)),

		wire.Bind(new(courierroute.Repository), new(*routeRepo.Repository)),
		wire.Bind(new(courierroute.CargoRepository), new(*cargoRepo.Repository)),
		wire.Bind(new(courierroute.ScanTransitionFactory), new(*scan_transition.ScanTransitionFactory)),
		wire.Bind(new(courierroute.RouteCache), new(*routecache.Cache)),
		wire.Bind(new(courierroute.TxManager), new(*tx.Manager)),

		wire.Bind(new(auth.TokenVerifier), new(*accountsRepo.Repository)),

		wire.Bind(new(route_cleanup.Service), new(*courierroute.CourierRoute)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	StatusService *packagestatus.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-package-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideCargoRepository,

		packagestatus.NewApplier,
		package_handle.NewStatusHandlerFactory,
		packagestatus.New,

		wire.Bind(new(packagestatus.StateRepository), new(*cargoRepo.Repository)),
		wire.Bind(new(packagestatus.StateWriter), new(*packagestatus.Applier)),
		wire.Bind(new(packagestatus.HandlerFactory), new(*package_handle.StatusHandlerFactory)),

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

func provideRouteRepository(querier *querier.Querier) *routeRepo.Repository {
	return routeRepo.New(querier)
}

func provideCargoRepository(querier *querier.Querier) *cargoRepo.Repository {
	return cargoRepo.New(querier)
}

func provideAccountsRepository(querier *querier.Querier) *accountsRepo.Repository {
	return accountsRepo.New(querier)
}

func provideServiceRoute(
	repository courierroute.Repository,
	cargo courierroute.CargoRepository,
	transitions courierroute.ScanTransitionFactory,
	cache courierroute.RouteCache,
	txManager courierroute.TxManager,
) *courierroute.CourierRoute {
	return courierroute.New(repository, cargo, transitions, cache, txManager)
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.RouteCleanupInterval)
}

func provideRouteCacheTTL(cfg *config.Config) RouteCacheTTL {
	return RouteCacheTTL(cfg.Redis.RouteCacheTTL)
}

func provideRouteCache(redisClient *goredis.Client, ttl RouteCacheTTL) *routecache.Cache {
	return routecache.New(redisClient, time.Duration(ttl))
}

func provideRouteCleanupTask(
	log logger.Logger,
	routeService route_cleanup.Service,
	interval CleanupInterval,
) *route_cleanup.RouteCleanup {
	return route_cleanup.NewRouteCleanup(log, routeService, time.Duration(interval))
}

func provideTaskList(
	routeCleanupTask *route_cleanup.RouteCleanup,
) []background.Task {
	return []background.Task{
		routeCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
