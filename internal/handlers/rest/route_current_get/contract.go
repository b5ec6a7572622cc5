//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_current_get_test
package route_current_get

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
	CurrentRoute(ctx context.Context, courierID string) (*entities.Route, error)
}
