//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courierroute_test
package courierroute

import (
	"context"
	"time"

	"fasterpost/internal/entities"
)

type Repository interface {
	GetCurrentByCourier(ctx context.Context, courierID string, today time.Time) (*entities.Route, error)
	GetByID(ctx context.Context, routeID, courierID string) (*entities.Route, error)
	ListByCourier(ctx context.Context, courierID string) ([]entities.Route, error)

	Start(ctx context.Context, routeID, courierID string, startedAt time.Time) error
	Finish(ctx context.Context, routeID, courierID string, completedAt time.Time) error
	CompleteStop(ctx context.Context, routeID, stopID string, completedAt time.Time) error

	IncompleteStopsCount(ctx context.Context, routeID string) (int64, error)
	CancelStalePlanned(ctx context.Context, before time.Time) (int64, error)
}

type CargoRepository interface {
	SetPackageStatus(ctx context.Context, packageID string, status entities.PackageStatusType) error
	AppendEvent(ctx context.Context, event entities.PackageEvent) error
}

type ScanTransitionFactory interface {
	NewStatus(action entities.ScanAction, kind entities.LocationKind) (entities.PackageStatusType, error)
}

type RouteCache interface {
	GetCurrent(ctx context.Context, courierID string) (*entities.Route, error)
	SetCurrent(ctx context.Context, courierID string, route *entities.Route) error
	InvalidateCurrent(ctx context.Context, courierID string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
