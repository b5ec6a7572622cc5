package routelifecycle

import "errors"

var (
	ErrNoActiveRoute      = errors.New("no active route")
	ErrRouteNotStartable  = errors.New("route is not in planned state")
	ErrRouteNotFinishable = errors.New("route has incomplete stops")
	ErrActionInProgress   = errors.New("action already in progress")
)
