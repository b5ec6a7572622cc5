package cargo

import (
	"context"
	"errors"
	"fmt"

	"fasterpost/internal/entities"
	"github.com/jackc/pgx/v5"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) SetPackageStatus(ctx context.Context, packageID string, status entities.PackageStatusType) error {
	query := `
		UPDATE package_state
		SET status = $2,
		    updated_at = NOW()
		WHERE package_id = $1
	`

	result, err := r.querier.Exec(ctx, query, packageID, status.String())
	if err != nil {
		return fmt.Errorf("unexpected cargo repository set status error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrPackageNotFound
	}

	return nil
}

func (r *Repository) AppendEvent(ctx context.Context, event entities.PackageEvent) error {
	query := `
		INSERT INTO package_events (id, package_id, status, courier_id, route_id, stop_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		event.ID,
		event.PackageID,
		event.Status.String(),
		nullable(event.CourierID),
		nullable(event.RouteID),
		nullable(event.StopID),
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected cargo repository append event error: %w", err)
	}

	return nil
}

// nullable - внешние события приходят без курьера и маршрута,
// пустые ссылки пишем как NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *Repository) PackageStatus(ctx context.Context, packageID string) (entities.PackageStatusType, error) {
	query := `
		SELECT status
		FROM package_state
		WHERE package_id = $1
	`

	var status string
	err := r.querier.QueryRow(ctx, query, packageID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrPackageNotFound
		}
		return "", fmt.Errorf("unexpected cargo repository get status error: %w", err)
	}

	return entities.PackageStatusType(status), nil
}
