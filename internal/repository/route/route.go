package route

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fasterpost/internal/entities"
	"fasterpost/internal/service/courierroute"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetCurrentByCourier: начатый маршрут всегда приоритетнее и не фильтруется
// по дате - маршрут, стартовавший вчера и еще не закрытый, остается текущим
// после полуночи. Запланированный берется только на сегодня.
func (r *Repository) GetCurrentByCourier(ctx context.Context, courierID string, today time.Time) (*entities.Route, error) {
	query := `
		SELECT id, courier_id, status, route_type, scheduled_date,
		       total_distance_km, estimated_duration_min, started_at, completed_at
		FROM routes
		WHERE courier_id = $1
		  AND (status = 'in_progress'
		       OR (status = 'planned' AND scheduled_date = $2::date))
		ORDER BY CASE status WHEN 'in_progress' THEN 0 ELSE 1 END, scheduled_date
		LIMIT 1
	`

	var routeModel RouteDB
	err := r.querier.QueryRow(ctx, query, courierID, today).Scan(
		&routeModel.ID,
		&routeModel.CourierID,
		&routeModel.Status,
		&routeModel.RouteType,
		&routeModel.ScheduledDate,
		&routeModel.TotalDistanceKm,
		&routeModel.EstimatedDurationMin,
		&routeModel.StartedAt,
		&routeModel.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courierroute.ErrNoActiveRoute
		}
		return nil, fmt.Errorf("unexpected route repository get current error: %w", err)
	}

	return r.loadRoute(ctx, &routeModel)
}

func (r *Repository) GetByID(ctx context.Context, routeID, courierID string) (*entities.Route, error) {
	query := `
		SELECT id, courier_id, status, route_type, scheduled_date,
		       total_distance_km, estimated_duration_min, started_at, completed_at
		FROM routes
		WHERE id = $1 AND courier_id = $2
	`

	var routeModel RouteDB
	err := r.querier.QueryRow(ctx, query, routeID, courierID).Scan(
		&routeModel.ID,
		&routeModel.CourierID,
		&routeModel.Status,
		&routeModel.RouteType,
		&routeModel.ScheduledDate,
		&routeModel.TotalDistanceKm,
		&routeModel.EstimatedDurationMin,
		&routeModel.StartedAt,
		&routeModel.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courierroute.ErrRouteNotFound
		}
		return nil, fmt.Errorf("unexpected route repository getbyid error: %w", err)
	}

	return r.loadRoute(ctx, &routeModel)
}

func (r *Repository) ListByCourier(ctx context.Context, courierID string) ([]entities.Route, error) {
	query := `
		SELECT id, courier_id, status, route_type, scheduled_date,
		       total_distance_km, estimated_duration_min, started_at, completed_at
		FROM routes
		WHERE courier_id = $1
		ORDER BY scheduled_date DESC, id
	`

	rows, err := r.querier.Query(ctx, query, courierID)
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository list error: %w", err)
	}
	defer rows.Close()

	routeModels := make([]RouteDB, 0, 8)
	for rows.Next() {
		var routeModel RouteDB
		err := rows.Scan(
			&routeModel.ID,
			&routeModel.CourierID,
			&routeModel.Status,
			&routeModel.RouteType,
			&routeModel.ScheduledDate,
			&routeModel.TotalDistanceKm,
			&routeModel.EstimatedDurationMin,
			&routeModel.StartedAt,
			&routeModel.CompletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected route repository list error: %w", err)
		}
		routeModels = append(routeModels, routeModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository list error: %w", err)
	}

	return ToDomainList(routeModels), nil
}

func (r *Repository) Start(ctx context.Context, routeID, courierID string, startedAt time.Time) error {
	builder := qb.
		Update("routes").
		Set("status", entities.RouteInProgress.String()).
		Set("started_at", startedAt).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{
			"id":         routeID,
			"courier_id": courierID,
			"status":     entities.RoutePlanned.String(),
		})

	return r.execTransition(ctx, builder, courierroute.ErrRouteNotPlanned)
}

func (r *Repository) Finish(ctx context.Context, routeID, courierID string, completedAt time.Time) error {
	builder := qb.
		Update("routes").
		Set("status", entities.RouteCompleted.String()).
		Set("completed_at", completedAt).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{
			"id":         routeID,
			"courier_id": courierID,
			"status":     entities.RouteInProgress.String(),
		})

	return r.execTransition(ctx, builder, courierroute.ErrRouteNotInProgress)
}

func (r *Repository) CompleteStop(ctx context.Context, routeID, stopID string, completedAt time.Time) error {
	query := `
		UPDATE route_stops
		SET completed_at = $3
		WHERE id = $2 AND route_id = $1 AND completed_at IS NULL
	`

	result, err := r.querier.Exec(ctx, query, routeID, stopID, completedAt)
	if err != nil {
		return fmt.Errorf("unexpected route repository complete stop error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return courierroute.ErrStopAlreadyCompleted
	}

	return nil
}

func (r *Repository) IncompleteStopsCount(ctx context.Context, routeID string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM route_stops
		WHERE route_id = $1 AND completed_at IS NULL
	`

	var count int64
	err := r.querier.QueryRow(ctx, query, routeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected route repository incomplete stops error: %w", err)
	}

	return count, nil
}

func (r *Repository) CancelStalePlanned(ctx context.Context, before time.Time) (int64, error) {
	query := `
		UPDATE routes
		SET status = 'cancelled',
		    updated_at = NOW()
		WHERE status = 'planned'
		  AND scheduled_date < $1::date
	`

	result, err := r.querier.Exec(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("unexpected route repository cancel stale error: %w", err)
	}

	return result.RowsAffected(), nil
}

// execTransition выполняет условный UPDATE смены статуса;
// нулевое число строк означает что маршрут не в ожидаемом состоянии.
func (r *Repository) execTransition(ctx context.Context, builder sq.UpdateBuilder, mismatchErr error) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected route repository transition error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected route repository transition error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return mismatchErr
	}

	return nil
}

func (r *Repository) loadRoute(ctx context.Context, routeModel *RouteDB) (*entities.Route, error) {
	stops, err := r.loadStops(ctx, routeModel.ID)
	if err != nil {
		return nil, err
	}

	cargo, err := r.loadCargo(ctx, routeModel.ID)
	if err != nil {
		return nil, err
	}

	return ToDomain(routeModel, stops, cargo), nil
}

func (r *Repository) loadStops(ctx context.Context, routeID string) ([]StopDB, error) {
	query := `
		SELECT id, route_id, stop_order, location_kind, location_id,
		       location_name, location_address, latitude, longitude, completed_at
		FROM route_stops
		WHERE route_id = $1
		ORDER BY stop_order
	`

	rows, err := r.querier.Query(ctx, query, routeID)
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository load stops error: %w", err)
	}
	defer rows.Close()

	stops := make([]StopDB, 0, 8)
	for rows.Next() {
		var stopModel StopDB
		err := rows.Scan(
			&stopModel.ID,
			&stopModel.RouteID,
			&stopModel.StopOrder,
			&stopModel.LocationKind,
			&stopModel.LocationID,
			&stopModel.LocationName,
			&stopModel.LocationAddress,
			&stopModel.Latitude,
			&stopModel.Longitude,
			&stopModel.CompletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected route repository load stops error: %w", err)
		}
		stops = append(stops, stopModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository load stops error: %w", err)
	}

	return stops, nil
}

func (r *Repository) loadCargo(ctx context.Context, routeID string) ([]CargoRowDB, error) {
	query := `
		SELECT rc.stop_id, rc.package_id, rc.direction, rc.nested,
		       ps.pickup_code, ps.status, ps.size
		FROM route_cargo rc
		JOIN package_state ps ON ps.package_id = rc.package_id
		WHERE rc.route_id = $1
		ORDER BY rc.stop_id, rc.package_id
	`

	rows, err := r.querier.Query(ctx, query, routeID)
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository load cargo error: %w", err)
	}
	defer rows.Close()

	cargo := make([]CargoRowDB, 0, 16)
	for rows.Next() {
		var row CargoRowDB
		err := rows.Scan(
			&row.StopID,
			&row.PackageID,
			&row.Direction,
			&row.Nested,
			&row.PickupCode,
			&row.Status,
			&row.Size,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected route repository load cargo error: %w", err)
		}
		cargo = append(cargo, row)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository load cargo error: %w", err)
	}

	return cargo, nil
}
