//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=lockerinteraction_test
package lockerinteraction

import (
	"context"

	"fasterpost/internal/entities"
)

type RouteClient interface {
	ScanPackage(ctx context.Context, routeID, stopID, packageID string, action entities.ScanAction) (entities.PackageStatusType, error)
	CompleteStop(ctx context.Context, routeID, stopID string) error
}

type ProgressModel interface {
	StopByID(stopID string) *entities.Stop
	IsReadyToFinishStop(stopID string) bool
	ApplyScanResult(stopID, packageID string, newStatus entities.PackageStatusType) *entities.Route
	Reload(ctx context.Context) error
}

// Notifier - контракт "видимого не-тихого" сообщения об ошибке.
// Реализация на стороне view (alert, toast), ядро про DOM не знает.
type Notifier interface {
	Notify(msg string)
}

// Confirmer - контракт подтверждения действия пользователем перед выполнением.
type Confirmer interface {
	Confirm(prompt string) bool
}
