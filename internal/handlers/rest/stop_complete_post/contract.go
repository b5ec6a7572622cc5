//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stop_complete_post_test
package stop_complete_post

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
	CompleteStop(ctx context.Context, courierID, routeID, stopID string) (*entities.Route, error)
}
