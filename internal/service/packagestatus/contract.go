//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=packagestatus_test
package packagestatus

import (
	"context"

	"fasterpost/internal/entities"
)

type StateRepository interface {
	PackageStatus(ctx context.Context, packageID string) (entities.PackageStatusType, error)
	SetPackageStatus(ctx context.Context, packageID string, status entities.PackageStatusType) error
	AppendEvent(ctx context.Context, event entities.PackageEvent) error
}

// StateWriter применяет новый статус посылки вместе с записью в журнал событий.
type StateWriter interface {
	ApplyStatus(ctx context.Context, packageID string, status entities.PackageStatusType) error
}

type (
	ExecuteFn      func(ctx context.Context, packageID string) error
	HandlerFactory interface {
		GetHandler(status entities.PackageStatusType) (ExecuteFn, error)
	}
)
