package courierroute

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fasterpost/internal/entities"
	"github.com/google/uuid"
)

type CourierRoute struct {
	repository  Repository
	cargo       CargoRepository
	transitions ScanTransitionFactory
	cache       RouteCache
	txManager   TxManager
}

func New(
	repository Repository,
	cargo CargoRepository,
	transitions ScanTransitionFactory,
	cache RouteCache,
	txManager TxManager,
) *CourierRoute {
	return &CourierRoute{
		repository:  repository,
		cargo:       cargo,
		transitions: transitions,
		cache:       cache,
		txManager:   txManager,
	}
}

func (s *CourierRoute) CurrentRoute(ctx context.Context, courierID string) (*entities.Route, error) {
	if cached, err := s.cache.GetCurrent(ctx, courierID); err == nil && cached != nil {
		return cached, nil
	}

	today := time.Now().UTC()
	route, err := s.repository.GetCurrentByCourier(ctx, courierID, today)
	if err != nil {
		return nil, err
	}

	// кеш вспомогательный, ошибку записи не поднимаем
	_ = s.cache.SetCurrent(ctx, courierID, route)

	return route, nil
}

func (s *CourierRoute) StartRoute(ctx context.Context, courierID, routeID string) (*entities.Route, error) {
	if !isValidID(routeID) {
		return nil, ErrInvalidRouteID
	}

	var started *entities.Route
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		route, err := s.repository.GetByID(ctx, routeID, courierID)
		if err != nil {
			return fmt.Errorf("get route: %w", err)
		}

		if route.Status != entities.RoutePlanned {
			return ErrRouteNotPlanned
		}

		startedAt := time.Now().UTC()
		if err := s.repository.Start(ctx, routeID, courierID, startedAt); err != nil {
			return fmt.Errorf("start route: %w", err)
		}

		route.Status = entities.RouteInProgress
		route.StartedAt = &startedAt
		started = route
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.InvalidateCurrent(ctx, courierID)
	return started, nil
}

func (s *CourierRoute) ScanPackage(
	ctx context.Context,
	courierID, routeID, stopID, packageID string,
	action entities.ScanAction,
) (entities.PackageStatusType, error) {
	if !isValidID(routeID) {
		return "", ErrInvalidRouteID
	}
	if !isValidID(stopID) {
		return "", ErrInvalidStopID
	}
	if !isValidID(packageID) {
		return "", ErrInvalidPackageID
	}
	if !entities.IsValidScanAction(action) {
		return "", ErrInvalidAction
	}

	var newStatus entities.PackageStatusType
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		route, err := s.repository.GetByID(ctx, routeID, courierID)
		if err != nil {
			return fmt.Errorf("get route: %w", err)
		}

		if route.Status != entities.RouteInProgress {
			return ErrRouteNotInProgress
		}

		stop := route.StopByID(stopID)
		if stop == nil {
			return ErrStopNotFound
		}
		if stop.CompletedAt != nil {
			return ErrStopAlreadyCompleted
		}

		if !stopHasPackage(stop, packageID, action) {
			return ErrPackageNotAtStop
		}

		status, err := s.transitions.NewStatus(action, stop.LocationKind())
		if err != nil {
			return fmt.Errorf("resolve scan transition: %w", err)
		}

		if err := s.actualizePackage(ctx, route, stop, packageID, status, courierID); err != nil {
			return err
		}

		newStatus = status
		return nil
	})
	if err != nil {
		return "", err
	}

	_ = s.cache.InvalidateCurrent(ctx, courierID)
	return newStatus, nil
}

func (s *CourierRoute) CompleteStop(ctx context.Context, courierID, routeID, stopID string) (*entities.Route, error) {
	if !isValidID(routeID) {
		return nil, ErrInvalidRouteID
	}
	if !isValidID(stopID) {
		return nil, ErrInvalidStopID
	}

	var completed *entities.Route
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		route, err := s.repository.GetByID(ctx, routeID, courierID)
		if err != nil {
			return fmt.Errorf("get route: %w", err)
		}

		if route.Status != entities.RouteInProgress {
			return ErrRouteNotInProgress
		}

		stop := route.StopByID(stopID)
		if stop == nil {
			return ErrStopNotFound
		}
		if stop.CompletedAt != nil {
			return ErrStopAlreadyCompleted
		}

		// завершение точки актуализирует все непросканированные посылки скопом
		if err := s.actualizeRemaining(ctx, route, stop, courierID); err != nil {
			return err
		}

		completedAt := time.Now().UTC()
		if err := s.repository.CompleteStop(ctx, routeID, stopID, completedAt); err != nil {
			return fmt.Errorf("complete stop: %w", err)
		}

		stop.CompletedAt = &completedAt
		completed = route
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.InvalidateCurrent(ctx, courierID)
	return completed, nil
}

func (s *CourierRoute) FinishRoute(ctx context.Context, courierID, routeID string) error {
	if !isValidID(routeID) {
		return ErrInvalidRouteID
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		route, err := s.repository.GetByID(ctx, routeID, courierID)
		if err != nil {
			return fmt.Errorf("get route: %w", err)
		}

		if route.Status != entities.RouteInProgress {
			return ErrRouteNotInProgress
		}

		incomplete, err := s.repository.IncompleteStopsCount(ctx, routeID)
		if err != nil {
			return fmt.Errorf("count incomplete stops: %w", err)
		}
		if incomplete > 0 {
			return ErrRouteHasIncompleteStops
		}

		completedAt := time.Now().UTC()
		if err := s.repository.Finish(ctx, routeID, courierID, completedAt); err != nil {
			return fmt.Errorf("finish route: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	_ = s.cache.InvalidateCurrent(ctx, courierID)
	return nil
}

func (s *CourierRoute) ListRoutes(ctx context.Context, courierID string) ([]entities.Route, error) {
	routes, err := s.repository.ListByCourier(ctx, courierID)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	return routes, nil
}

func (s *CourierRoute) CleanupStaleRoutes(ctx context.Context) (int64, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	rowsAffected, err := s.repository.CancelStalePlanned(ctx, today)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("cleanup timed out: %w", err)
		}
		return 0, fmt.Errorf("cleanup: %w", err)
	}

	return rowsAffected, nil
}

// actualizeRemaining доводит до целевого статуса все посылки точки,
// которые курьер не просканировал вручную.
func (s *CourierRoute) actualizeRemaining(ctx context.Context, route *entities.Route, stop *entities.Stop, courierID string) error {
	kind := stop.LocationKind()

	dropStatus, err := s.transitions.NewStatus(entities.ActionDrop, kind)
	if err != nil {
		return fmt.Errorf("resolve drop transition: %w", err)
	}
	pickStatus, err := s.transitions.NewStatus(entities.ActionPick, kind)
	if err != nil {
		return fmt.Errorf("resolve pick transition: %w", err)
	}

	for _, item := range stop.Dropoffs {
		if entities.IsPackageCompleted(item.Status, entities.ActionDrop) {
			continue
		}
		if err := s.actualizePackage(ctx, route, stop, item.ID, dropStatus, courierID); err != nil {
			return err
		}
	}
	for _, item := range stop.Pickups {
		if entities.IsPackageCompleted(item.Status, entities.ActionPick) {
			continue
		}
		if err := s.actualizePackage(ctx, route, stop, item.ID, pickStatus, courierID); err != nil {
			return err
		}
	}

	return nil
}

func (s *CourierRoute) actualizePackage(
	ctx context.Context,
	route *entities.Route,
	stop *entities.Stop,
	packageID string,
	status entities.PackageStatusType,
	courierID string,
) error {
	if err := s.cargo.SetPackageStatus(ctx, packageID, status); err != nil {
		return fmt.Errorf("set package status: %w", err)
	}

	event := entities.PackageEvent{
		ID:        uuid.NewString(),
		PackageID: packageID,
		Status:    status,
		CourierID: courierID,
		RouteID:   route.ID,
		StopID:    stop.ID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.cargo.AppendEvent(ctx, event); err != nil {
		return fmt.Errorf("append package event: %w", err)
	}

	return nil
}

func stopHasPackage(stop *entities.Stop, packageID string, action entities.ScanAction) bool {
	items := stop.Dropoffs
	if action == entities.ActionPick {
		items = stop.Pickups
	}
	for _, item := range items {
		if item.ID == packageID {
			return true
		}
	}
	return false
}
