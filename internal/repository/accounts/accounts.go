package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

var ErrTokenNotFound = errors.New("token not found")

type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// CourierIDByToken резолвит bearer-токен терминала в идентификатор курьера.
func (r *Repository) CourierIDByToken(ctx context.Context, token string) (string, error) {
	query := `
		SELECT courier_id
		FROM courier_tokens
		WHERE token = $1 AND revoked_at IS NULL
	`

	var courierID string
	err := r.querier.QueryRow(ctx, query, token).Scan(&courierID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrTokenNotFound
		}
		return "", fmt.Errorf("unexpected accounts repository token lookup error: %w", err)
	}

	return courierID, nil
}
