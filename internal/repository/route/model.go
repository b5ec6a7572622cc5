package route

import "time"

type RouteDB struct {
	ID                   string
	CourierID            string
	Status               string
	RouteType            string
	ScheduledDate        time.Time
	TotalDistanceKm      float64
	EstimatedDurationMin int64
	StartedAt            *time.Time
	CompletedAt          *time.Time
}

type StopDB struct {
	ID              string
	RouteID         string
	StopOrder       int64
	LocationKind    string
	LocationID      string
	LocationName    string
	LocationAddress string
	Latitude        float64
	Longitude       float64
	CompletedAt     *time.Time
}

type CargoRowDB struct {
	StopID     string
	PackageID  string
	Direction  string
	Nested     bool
	PickupCode *string
	Status     string
	Size       string
}
