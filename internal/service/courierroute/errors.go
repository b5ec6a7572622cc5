package courierroute

import "errors"

var (
	ErrInvalidRouteID   = errors.New("invalid route id")
	ErrInvalidStopID    = errors.New("invalid stop id")
	ErrInvalidPackageID = errors.New("invalid package id")
	ErrInvalidAction    = errors.New("invalid scan action")

	ErrRouteNotFound           = errors.New("route not found")
	ErrNoActiveRoute           = errors.New("no active route found for today")
	ErrRouteNotPlanned         = errors.New("route is not in planned state")
	ErrRouteNotInProgress      = errors.New("route is not in progress")
	ErrRouteHasIncompleteStops = errors.New("cannot finish route: complete all stops first")

	ErrStopNotFound         = errors.New("stop not found in route")
	ErrStopAlreadyCompleted = errors.New("stop already completed")
	ErrPackageNotAtStop     = errors.New("package is not in the stop manifest")
)
