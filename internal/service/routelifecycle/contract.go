//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=routelifecycle_test
package routelifecycle

import (
	"context"

	"fasterpost/internal/entities"
)

type RouteClient interface {
	StartRoute(ctx context.Context, routeID string) error
	FinishRoute(ctx context.Context, routeID string) error
}

type ProgressModel interface {
	Current() *entities.Route
	NextStop() *entities.Stop
	Reload(ctx context.Context) error
}

type Notifier interface {
	Notify(msg string)
}

type Confirmer interface {
	Confirm(prompt string) bool
}
