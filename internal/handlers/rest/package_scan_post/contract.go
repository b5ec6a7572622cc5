//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_scan_post_test
package package_scan_post

import (
	"context"

	"fasterpost/internal/entities"
	"fasterpost/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ScanPackage(ctx context.Context, courierID, routeID, stopID, packageID string, action entities.ScanAction) (entities.PackageStatusType, error)
}
