package route_cleanup

import (
	"context"
	"time"

	"fasterpost/pkg/logger"
)

type Service interface {
	CleanupStaleRoutes(ctx context.Context) (int64, error)
}

// RouteCleanup отменяет запланированные маршруты, дата которых уже прошла.
type RouteCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewRouteCleanup(log logger.Logger, service Service, interval time.Duration) *RouteCleanup {
	return &RouteCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (r *RouteCleanup) TTL() time.Duration {
	return r.interval
}

func (r *RouteCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	rowsAffected, err := r.service.CleanupStaleRoutes(ctxWithTimeout)

	if rowsAffected > 0 {
		r.log.With(
			logger.NewField("cancelled_routes", rowsAffected),
		).Info("route cleanup")
	}

	return err
}

func (r *RouteCleanup) Info() string {
	return "route cleanup"
}
