package package_status_changed

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
	ProcessPackageStatusChange(ctx context.Context, packageModify entities.PackageModify) (entities.PackageStatusType, error)
}
