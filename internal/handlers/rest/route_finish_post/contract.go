//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_finish_post_test
package route_finish_post

import (
	"context"

	"fasterpost/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	FinishRoute(ctx context.Context, courierID, routeID string) error
}
