package entities

import (
	"time"
)

type Route struct {
	ID                   string
	CourierID            string
	Status               RouteStatusType
	RouteType            RouteTypeKind
	ScheduledDate        time.Time
	TotalDistanceKm      float64
	EstimatedDurationMin int64
	StartedAt            *time.Time
	CompletedAt          *time.Time
	Stops                []*Stop
}

type RouteStatusType string

const (
	RoutePlanned    RouteStatusType = "planned"
	RouteInProgress RouteStatusType = "in_progress"
	RouteCompleted  RouteStatusType = "completed"
	RouteCancelled  RouteStatusType = "cancelled"
)

func (t RouteStatusType) String() string {
	return string(t)
}

type RouteTypeKind string

const (
	RouteLineHaul RouteTypeKind = "line_haul"
	RouteLastMile RouteTypeKind = "last_mile"
)

func (t RouteTypeKind) String() string {
	return string(t)
}

// NextStop возвращает первый непройденный стоп (порядок списка = порядок объезда).
// nil означает что все стопы завершены.
func (r *Route) NextStop() *Stop {
	for _, stop := range r.Stops {
		if stop.CompletedAt == nil {
			return stop
		}
	}
	return nil
}

func (r *Route) Progress() float64 {
	if len(r.Stops) == 0 {
		return 0
	}

	completed := 0
	for _, stop := range r.Stops {
		if stop.CompletedAt != nil {
			completed++
		}
	}
	return float64(completed) / float64(len(r.Stops)) * 100
}

func (r *Route) StopByID(stopID string) *Stop {
	for _, stop := range r.Stops {
		if stop.ID == stopID {
			return stop
		}
	}
	return nil
}

type RouteModify struct {
	ID          *string
	CourierID   *string
	Status      *RouteStatusType
	StartedAt   *time.Time
	CompletedAt *time.Time
}
