//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=routeprogress_test
package routeprogress

import (
	"context"

	"fasterpost/internal/entities"
)

type RouteClient interface {
	FetchCurrentRoute(ctx context.Context) (*entities.Route, error)
}
